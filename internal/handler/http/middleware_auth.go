package http

import (
	"net/http"

	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/models"
)

// requireSession is an HTTP middleware that enforces cookie based sessions.
//
// It reads the session cookie, resolves it through
// [service.AuthService.Authenticate] and stores the user's id and login in
// the request context (see [utils.WithSessionUser]).
//
// Requests without the cookie, or whose session is unknown or expired, are
// rejected with 401 Unauthorized.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(models.SessionCookieName)
		if err != nil || cookie.Value == "" {
			h.writeError(w, r, "*Handler.requireSession", ErrNoSessionCookie)
			return
		}

		session, err := h.services.AuthService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			h.writeError(w, r, "*Handler.requireSession", err)
			return
		}

		ctx := utils.WithSessionUser(r.Context(), session.UserID, session.Login)
		remember(ctx, w)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserID returns the user id put in the context by requireSession.
func sessionUserID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
