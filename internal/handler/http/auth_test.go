// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-taskflow/internal/service"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/validators"
	"github.com/MKhiriev/go-taskflow/models"
)

const credsBody = `{"login":"alice","password":"secret"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "created", body: credsBody, wantStatus: http.StatusCreated},
		{name: "invalid JSON", body: "{", wantStatus: http.StatusBadRequest, wantBody: ErrInvalidJSON.Error()},
		{
			name:       "empty credentials",
			body:       `{"login":"alice"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyCredentials),
			wantStatus: http.StatusBadRequest,
			wantBody:   "login and password are required",
		},
		{
			name:       "login taken",
			body:       credsBody,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   "login already exists",
		},
		{
			name:       "unexpected error hides details",
			body:       credsBody,
			serviceErr: errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.AuthService.(*mockAuthService).registerFn = func(_ context.Context, c models.Credentials) (models.User, error) {
				assert.Equal(t, "alice", c.Login)
				if tt.serviceErr != nil {
					return models.User{}, tt.serviceErr
				}
				return models.User{UserID: 1, Login: c.Login}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rec := serve(t, newTestRouter(svcs), req, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_SetsSessionCookie(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService.(*mockAuthService).loginFn = func(_ context.Context, c models.Credentials) (models.Session, error) {
		return models.Session{ID: "new-session", UserID: 1, Login: c.Login, ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(credsBody))
	rec := serve(t, newTestRouter(svcs), req, false)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, models.SessionCookieName, c.Name)
	assert.Equal(t, "new-session", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.InDelta(t, (24 * time.Hour).Seconds(), float64(c.MaxAge), 5)
}

func TestLogin_WrongPassword(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService.(*mockAuthService).loginFn = func(context.Context, models.Credentials) (models.Session, error) {
		return models.Session{}, service.ErrWrongPassword
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(credsBody))
	rec := serve(t, newTestRouter(svcs), req, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong login or password\n", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

// ─────────────────────────────────────────────
// deleteAccount
// ─────────────────────────────────────────────

func TestDeleteAccount(t *testing.T) {
	svcs := newTestServices()
	var deleted int64
	svcs.AuthService.(*mockAuthService).deleteAccountFn = func(_ context.Context, userID int64) error {
		deleted = userID
		return nil
	}

	rec := serve(t, newTestRouter(svcs), httptest.NewRequest(http.MethodPost, "/api/account", nil), true)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testUserID, deleted)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestDeleteAccount_ServiceError(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService.(*mockAuthService).deleteAccountFn = func(context.Context, int64) error {
		return errors.New("db down")
	}

	rec := serve(t, newTestRouter(svcs), httptest.NewRequest(http.MethodPost, "/api/account", nil), true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
