package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), string(resp.Body()))
}

// NewResponseError builds the error for a non-2xx answer with the given
// status and body. The body is trimmed and kept as the server message.
func NewResponseError(statusCode int, body string) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(body),
	}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.err = ErrForbidden
	case http.StatusNotFound:
		respErr.err = ErrNotFound
	case http.StatusConflict:
		respErr.err = ErrConflict
	case http.StatusBadGateway:
		respErr.err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.err = ErrInternalServerError
	default:
		respErr.err = ErrUnexpectedStatus
	}

	return respErr
}
