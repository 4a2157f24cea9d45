package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/internal/validators"
	"github.com/MKhiriev/go-taskflow/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; sessions are random opaque ids kept
// in the SessionRepository until they expire.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	validator         validators.Validator

	// sessionTTL controls how long a newly opened session remains valid.
	sessionTTL time.Duration
	bcryptCost int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService using the session and hashing
// parameters of cfg.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validators.NewRequestValidator(),
		sessionTTL:        cfg.SessionTTL,
		bcryptCost:        cfg.BcryptCost,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// Register creates a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validation error if login or
//     password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken, see store.ErrLoginAlreadyExists).
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("login", creds.Login).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        creds.Login,
		PasswordHash: string(hash),
		CreatedAt:    a.now(),
	})
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user and opens a session for it.
//
// An unknown login and a wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("login", creds.Login).Msg("invalid credentials provided")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByLogin(ctx, creds.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("login", creds.Login).Msg("login attempt for unknown user")
		return models.Session{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("user search by login failed")
		return models.Session{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Int64("id", user.UserID).Str("login", user.Login).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	sessionID, err := utils.NewSessionID()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.UserID,
		Login:     user.Login,
		ExpiresAt: a.now().Add(a.sessionTTL),
	}
	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// Authenticate returns the live session for sessionID.
//
// Returns ErrSessionInvalid for an unknown id and ErrSessionExpired for a
// session past its expiry; the expired session is removed.
func (a *authService) Authenticate(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.Session{}, ErrSessionInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionInvalid
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(a.now()) {
		if err = a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to drop expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (a *authService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}

func (a *authService) CleanupSessions(ctx context.Context) (int64, error) {
	removed, err := a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("expired sessions cleanup failed: %w", err)
	}

	return removed, nil
}
