package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx answer of the backend.
type ResponseError struct {
	StatusCode int
	// Message is the trimmed response body, the text the server wants shown.
	Message string

	err error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (http %d)", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%v: %s", e.err, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

// ServerMessage returns the text the server sent with a non-2xx response
// wrapped in err, or "" if err carries none.
func ServerMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}

// IsResponseError reports whether err came from a server answer as opposed
// to a transport failure.
func IsResponseError(err error) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr)
}
