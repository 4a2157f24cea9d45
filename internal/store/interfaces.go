// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of taskflow: the SQL
// repositories used by the server (SQLite by default, PostgreSQL when the DSN
// is a postgres URL) and the file that keeps the client's session cookie.
package store

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-taskflow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// DeleteUser removes the user together with its sessions, todos and notes.
	DeleteUser(ctx context.Context, userID int64) error
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteUserSessions(ctx context.Context, userID int64) error
	// DeleteExpiredSessions removes sessions that expired at or before now
	// and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// TodoRepository persists tasks. Every method is scoped to a user.
type TodoRepository interface {
	ListTodos(ctx context.Context, userID int64) ([]models.Task, error)
	GetTodo(ctx context.Context, userID, todoID int64) (models.Task, error)
	CreateTodo(ctx context.Context, task models.Task) (models.Task, error)
	SetTodoCompleted(ctx context.Context, userID, todoID int64, completedAt *time.Time) error
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// NoteRepository persists notes. Every method is scoped to a user.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID int64) ([]models.NotePreview, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// SessionFileStorage keeps the client's session cookie between runs.
type SessionFileStorage interface {
	// Load returns the saved cookie, or nil when nothing is saved.
	Load() (*http.Cookie, error)
	Save(cookie *http.Cookie) error
	// Clear removes the saved cookie. Clearing an absent file is not an error.
	Clear() error
}
