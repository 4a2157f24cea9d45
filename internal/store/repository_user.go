package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and removal against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the assigned UserID.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByLogin retrieves the user with the given login.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(r.db.builder, login)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Login, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteUser removes the user and everything it owns in one transaction.
// Returns [ErrNoUserWasFound] if no user row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{models.Note{}.TableName(), models.Task{}.TableName(), models.Session{}.TableName()} {
		query, args, buildErr := buildDeleteByUserQuery(r.db.builder, table, userID)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("table", table).Msg("error deleting user data")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
