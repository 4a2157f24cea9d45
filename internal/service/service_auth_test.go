// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/mock"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/validators"
	"github.com/MKhiriev/go-taskflow/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(users, sessions, config.App{SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, users, sessions
}

func mustHash(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Login)
			assert.NotEqual(t, "secret", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
			assert.Equal(t, fixedNow, u.CreatedAt)
			u.UserID = 1
			return u, nil
		})

	user, err := svc.Register(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// до репозитория дело не доходит
	_, err := svc.Register(context.Background(), models.Credentials{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyCredentials)
}

func TestAuthService_Register_LoginTaken(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.Register(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)

	users.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 5, Login: "alice", PasswordHash: mustHash(t, "secret")}, nil)
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Len(t, s.ID, 64)
			assert.Equal(t, int64(5), s.UserID)
			assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
			return nil
		})

	session, err := svc.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Login)
	assert.NotEmpty(t, session.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 5, Login: "alice", PasswordHash: mustHash(t, "secret")}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_SessionStoreFails(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)

	users.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 5, Login: "alice", PasswordHash: mustHash(t, "secret")}, nil)
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrSessionCreationFailed)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *mock.MockSessionRepository)
		id      string
		wantErr error
	}{
		{
			name: "live session",
			id:   "abc",
			setup: func(s *mock.MockSessionRepository) {
				s.EXPECT().FindSession(gomock.Any(), "abc").
					Return(models.Session{ID: "abc", UserID: 1, ExpiresAt: fixedNow.Add(time.Minute)}, nil)
			},
		},
		{
			name: "unknown session",
			id:   "abc",
			setup: func(s *mock.MockSessionRepository) {
				s.EXPECT().FindSession(gomock.Any(), "abc").Return(models.Session{}, store.ErrSessionNotFound)
			},
			wantErr: ErrSessionInvalid,
		},
		{
			name: "expired session is dropped",
			id:   "abc",
			setup: func(s *mock.MockSessionRepository) {
				s.EXPECT().FindSession(gomock.Any(), "abc").
					Return(models.Session{ID: "abc", UserID: 1, ExpiresAt: fixedNow}, nil)
				s.EXPECT().DeleteSession(gomock.Any(), "abc").Return(nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name:    "empty id",
			id:      "",
			setup:   func(s *mock.MockSessionRepository) {},
			wantErr: ErrSessionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sessions := newTestAuthService(t)
			tt.setup(sessions)

			session, err := svc.Authenticate(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), session.UserID)
		})
	}
}

// ─────────────────────────────────────────────
// DeleteAccount / CleanupSessions
// ─────────────────────────────────────────────

func TestAuthService_DeleteAccount(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)
	require.NoError(t, svc.DeleteAccount(context.Background(), 5))

	users.EXPECT().DeleteUser(gomock.Any(), int64(6)).Return(store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 6), store.ErrNoUserWasFound)
}

func TestAuthService_CleanupSessions(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow).Return(int64(3), nil)

	n, err := svc.CleanupSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
