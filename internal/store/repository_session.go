package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a SQL backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	query, args, err := buildCreateSessionQuery(r.db.builder, session, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindSession returns the session with its owner's login, or
// [ErrSessionNotFound]. Expiry is not checked here.
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string) (models.Session, error) {
	query, args, err := buildFindSessionQuery(r.db.builder, sessionID)
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.Login, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.FindSession").Msg("error selecting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := buildDeleteSessionQuery(r.db.builder, sessionID)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteByUserQuery(r.db.builder, models.Session{}.TableName(), userID)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteUserSessions").Msg("error deleting sessions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, now)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
