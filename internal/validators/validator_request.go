package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-taskflow/models"
)

// RequestValidator checks the values the HTTP layer hands to the services.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for credentials, tasks and notes.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.TaskRequest:
		return v.validateTitled(value.Title, 0, 0, orDefault(fields, FieldTitle)...)
	case *models.TaskRequest:
		return v.validateTitled(value.Title, 0, 0, orDefault(fields, FieldTitle)...)
	case models.Task:
		return v.validateTitled(value.Title, value.ID, value.UserID, orDefault(fields, FieldTitle, FieldUserID)...)

	case models.NoteRequest:
		return v.validateTitled(value.Title, 0, 0, orDefault(fields, FieldTitle)...)
	case *models.NoteRequest:
		return v.validateTitled(value.Title, 0, 0, orDefault(fields, FieldTitle)...)
	case models.Note:
		return v.validateTitled(value.Title, value.ID, value.UserID, orDefault(fields, FieldTitle, FieldUserID)...)

	default:
		return ErrUnsupportedType
	}
}

func orDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	for _, f := range orDefault(fields, FieldLogin, FieldPassword) {
		switch f {
		case FieldLogin:
			if c.Login == "" {
				return ErrEmptyCredentials
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyCredentials
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTitled(title string, id, userID int64, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}
		case FieldUserID:
			if userID <= 0 {
				return ErrInvalidUserID
			}
		case FieldID:
			if id <= 0 {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
