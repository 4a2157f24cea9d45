package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, "*Handler.register", ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Str("login", user.Login).Msg("user registered")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, "*Handler.login", ErrInvalidJSON)
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, "*Handler.login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    session.ID,
		Path:     models.SessionCookiePath,
		HttpOnly: true,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})

	logger.FromRequest(r).Debug().Int64("id", session.UserID).Msg("user successfully logged in")
	w.WriteHeader(http.StatusOK)
}

// deleteAccount removes the signed-in user and expires its cookie.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		h.writeError(w, r, "*Handler.deleteAccount", ErrNoSessionCookie)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), userID); err != nil {
		h.writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     models.SessionCookiePath,
		HttpOnly: true,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
