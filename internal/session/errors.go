package session

import (
	"errors"

	"github.com/MKhiriev/go-taskflow/internal/app"
)

var (
	// ErrEmptyCredentials is returned before any request when login or
	// password is empty.
	ErrEmptyCredentials = errors.New(app.MsgFillAllFields)

	// ErrEmptyTitle is returned before any request when a title is blank.
	ErrEmptyTitle = errors.New(app.MsgTitleRequired)

	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled = errors.New(app.MsgCancelled)

	// ErrSessionExpired is returned when the backend answered 401 to a data
	// fetch. The session has been logged out locally.
	ErrSessionExpired = errors.New(app.MsgSessionExpired)
)
