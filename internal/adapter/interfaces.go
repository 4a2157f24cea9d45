// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the terminal client
// and the taskflow REST backend.
//
// The primary abstraction is [ServerAdapter]. The package ships a resty based
// implementation ([NewHTTPServerAdapter]) that keeps the session cookie in a
// cookie jar, so callers never handle the cookie value for authenticated calls.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] wrapping
// one of the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401) and [ServerMessage] to get the text the
// server sent.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-taskflow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the taskflow backend.
type ServerAdapter interface {
	// Login posts credentials to POST /api/login. On success the server sets
	// the session cookie, which the adapter keeps for subsequent calls.
	Login(ctx context.Context, creds models.Credentials) error

	// Register posts credentials to POST /api/register.
	Register(ctx context.Context, creds models.Credentials) error

	// ListTodos fetches GET /api/todos. It doubles as the session probe:
	// any non-2xx answer means the session is not usable.
	ListTodos(ctx context.Context) ([]models.Task, error)

	// CreateTodo posts a new task title to POST /api/todos.
	CreateTodo(ctx context.Context, title string) error

	// CompleteTodo calls PUT /api/todos/{ref}/complete.
	CompleteTodo(ctx context.Context, ref int64) error

	// DeleteTodo calls DELETE /api/todos/{ref}.
	DeleteTodo(ctx context.Context, ref int64) error

	// ListNotes fetches note previews from GET /api/notes.
	ListNotes(ctx context.Context) ([]models.NotePreview, error)

	// GetNote fetches a full note from GET /api/notes/{id}.
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// CreateNote posts a new note to POST /api/notes.
	CreateNote(ctx context.Context, req models.NoteRequest) error

	// UpdateNote replaces title and content with PUT /api/notes/{id}.
	UpdateNote(ctx context.Context, id int64, req models.NoteRequest) error

	// DeleteNote calls DELETE /api/notes/{id}.
	DeleteNote(ctx context.Context, id int64) error

	// DeleteAccount calls POST /api/account.
	DeleteAccount(ctx context.Context) error

	// SessionCookie returns the session cookie currently held, or nil.
	SessionCookie() *http.Cookie

	// RestoreSession puts a previously saved session cookie back into the jar.
	RestoreSession(cookie *http.Cookie)

	// ClearSession expires the session cookie locally. No request is sent.
	ClearSession()
}
