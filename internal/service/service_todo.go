package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/models"
)

type todoService struct {
	todoRepository store.TodoRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewTodoService returns the bare TodoService. Input checks live in the
// wrapper returned by NewTodoValidationService.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *todoService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.todoRepository.ListTodos(ctx, userID)
}

func (s *todoService) Add(ctx context.Context, task models.Task) (models.Task, error) {
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = s.now()

	return s.todoRepository.CreateTodo(ctx, task)
}

func (s *todoService) Toggle(ctx context.Context, userID, todoID int64) (models.Task, error) {
	task, err := s.todoRepository.GetTodo(ctx, userID, todoID)
	if err != nil {
		return models.Task{}, err
	}

	var completedAt *time.Time
	if !task.Completed {
		at := s.now()
		completedAt = &at
	}

	if err = s.todoRepository.SetTodoCompleted(ctx, userID, todoID, completedAt); err != nil {
		logger.FromContext(ctx).Err(err).Int64("todo_id", todoID).Msg("toggle failed")
		return models.Task{}, fmt.Errorf("toggle failed: %w", err)
	}

	task.Completed = completedAt != nil
	task.CompletedAt = completedAt

	return task, nil
}

func (s *todoService) Delete(ctx context.Context, userID, todoID int64) error {
	return s.todoRepository.DeleteTodo(ctx, userID, todoID)
}
