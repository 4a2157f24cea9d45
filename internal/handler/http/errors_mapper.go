package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-taskflow/internal/service"
	"github.com/MKhiriev/go-taskflow/internal/store"
)

var errorStatusMap = map[error]int{
	ErrNoSessionCookie:         http.StatusUnauthorized,
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrJSONContentTypeRequired: http.StatusBadRequest,
	ErrInvalidID:               http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrSessionInvalid:      http.StatusUnauthorized,
	service.ErrSessionExpired:      http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTodoNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Known errors expose
// their message; anything else is reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := h.requestLogger(r).Warn()
	if status == http.StatusInternalServerError {
		event = h.requestLogger(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
