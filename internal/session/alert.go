package session

import (
	"errors"

	"github.com/MKhiriev/go-taskflow/internal/adapter"
	"github.com/MKhiriev/go-taskflow/internal/app"
)

// AlertText turns err into the text shown to the user: the server message
// when the backend sent one, the local validation text for errors raised
// before a request, and a generic connectivity message otherwise.
func AlertText(err error) string {
	if err == nil {
		return ""
	}

	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, ErrEmptyCredentials),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrCancelled):
		return localText(err)
	case adapter.IsResponseError(err):
		return app.MsgRequestFailed
	}

	return app.MsgNetworkError
}

func localText(err error) string {
	for _, sentinel := range []error{ErrEmptyCredentials, ErrEmptyTitle, ErrCancelled} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
