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

type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a SQL backed [TodoRepository].
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Task, error) {
	var (
		t           models.Task
		completedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt, &completedAt); err != nil {
		return models.Task{}, err
	}
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}
	t.Ref = t.ID

	return t, nil
}

// ListTodos returns the user's tasks in creation order.
func (r *todoRepository) ListTodos(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error selecting todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		t, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*todoRepository.ListTodos").Msg("error scanning todo")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// GetTodo returns one task of the user or [ErrTodoNotFound].
func (r *todoRepository) GetTodo(ctx context.Context, userID, todoID int64) (models.Task, error) {
	query, args, err := buildGetTodoQuery(r.db.builder, userID, todoID)
	if err != nil {
		return models.Task{}, err
	}

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTodoNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.GetTodo").Msg("error selecting todo")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return t, nil
}

// CreateTodo inserts an uncompleted task and returns it with its ID.
func (r *todoRepository) CreateTodo(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := buildCreateTodoQuery(r.db.builder, task)
	if err != nil {
		return models.Task{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&task.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error inserting todo")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	task.Completed = false
	task.CompletedAt = nil
	task.Ref = task.ID

	return task, nil
}

// SetTodoCompleted marks the task completed at completedAt, or pending when
// completedAt is nil.
func (r *todoRepository) SetTodoCompleted(ctx context.Context, userID, todoID int64, completedAt *time.Time) error {
	query, args, err := buildSetTodoCompletedQuery(r.db.builder, userID, todoID, completedAt)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*todoRepository.SetTodoCompleted", query, args)
}

// DeleteTodo removes the task or returns [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	query, args, err := buildDeleteTodoQuery(r.db.builder, userID, todoID)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*todoRepository.DeleteTodo", query, args)
}

func (r *todoRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
