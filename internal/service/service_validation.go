package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-taskflow/internal/validators"
	"github.com/MKhiriev/go-taskflow/models"
)

// TodoValidationService rejects tasks without a title or owner before they
// reach the wrapped TodoService.
type TodoValidationService struct {
	TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TodoValidationService) Add(ctx context.Context, task models.Task) (models.Task, error) {
	if err := v.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.TodoService.Add(ctx, task)
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.TodoService = inner
	return v
}

// NoteValidationService rejects notes without a title before they reach the
// wrapped NoteService.
type NoteValidationService struct {
	NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *NoteValidationService) Add(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.NoteService.Add(ctx, note)
}

func (v *NoteValidationService) Update(ctx context.Context, note models.Note) error {
	if err := v.validator.Validate(ctx, note, validators.FieldID, validators.FieldTitle, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.NoteService.Update(ctx, note)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.NoteService = inner
	return v
}
