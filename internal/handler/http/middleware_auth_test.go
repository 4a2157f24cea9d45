package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/service"
	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/models"
)

func TestRequireSession_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		cookie         *http.Cookie
		authErr        error
		wantStatus     int
		wantBody       string
		wantNextCalled bool
	}{
		{
			name:       "no cookie",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "login required\n",
		},
		{
			name:       "empty cookie",
			cookie:     &http.Cookie{Name: models.SessionCookieName, Value: ""},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "login required\n",
		},
		{
			name:       "unknown session",
			cookie:     &http.Cookie{Name: models.SessionCookieName, Value: "nope"},
			authErr:    service.ErrSessionInvalid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "session is invalid\n",
		},
		{
			name:       "expired session",
			cookie:     &http.Cookie{Name: models.SessionCookieName, Value: "old"},
			authErr:    service.ErrSessionExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "session has expired\n",
		},
		{
			name:           "valid session",
			cookie:         &http.Cookie{Name: models.SessionCookieName, Value: "good"},
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticateFn: func(_ context.Context, id string) (models.Session, error) {
					if tt.authErr != nil {
						return models.Session{}, tt.authErr
					}
					return models.Session{ID: id, UserID: 42, Login: "bob"}, nil
				},
			}
			h := NewHandler(&service.Services{AuthService: auth}, logger.Nop())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				// данные сессии должны оказаться в контексте
				userID, ok := utils.GetUserIDFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(42), userID)
				login, _ := utils.GetLoginFromContext(r.Context())
				assert.Equal(t, "bob", login)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			h.requireSession(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
