// Package service holds the business rules of the taskflow server: account
// and session handling, task and note operations.
package service

import (
	"context"

	"github.com/MKhiriev/go-taskflow/models"
)

// AuthService registers users, opens and checks sessions and removes accounts.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login verifies creds and opens a new session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	// Authenticate resolves a session id to a live session.
	Authenticate(ctx context.Context, sessionID string) (models.Session, error)
	// DeleteAccount removes the user with all of its data and sessions.
	DeleteAccount(ctx context.Context, userID int64) error
	// CleanupSessions drops expired sessions and reports how many were dropped.
	CleanupSessions(ctx context.Context) (int64, error)
}

type TodoService interface {
	List(ctx context.Context, userID int64) ([]models.Task, error)
	Add(ctx context.Context, task models.Task) (models.Task, error)
	// Toggle flips the completion state of the task and returns it updated.
	Toggle(ctx context.Context, userID, todoID int64) (models.Task, error)
	Delete(ctx context.Context, userID, todoID int64) error
}

type NoteService interface {
	List(ctx context.Context, userID int64) ([]models.NotePreview, error)
	Get(ctx context.Context, userID, noteID int64) (models.Note, error)
	Add(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) error
	Delete(ctx context.Context, userID, noteID int64) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// validating.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

// NoteServiceWrapper is the NoteService counterpart of TodoServiceWrapper.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
