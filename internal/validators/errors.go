package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCredentials = errors.New("login and password are required")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidID        = errors.New("invalid ID")
)
