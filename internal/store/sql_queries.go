// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-taskflow/models"
)

var (
	userColumns    = []string{"id", "login", "password_hash", "created_at"}
	sessionColumns = []string{"s.id", "s.user_id", "u.login", "s.expires_at"}
	todoColumns    = []string{"id", "user_id", "title", "completed", "created_at", "completed_at"}
	noteColumns    = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}
	previewColumns = []string{"id", "title", "created_at", "updated_at"}
)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(user.TableName()).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id"))
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}))
}

func buildDeleteByUserQuery(b sq.StatementBuilderType, table string, userID int64) (string, []any, error) {
	return toSQL(b.Delete(table).Where(sq.Eq{"user_id": userID}))
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Delete(models.User{}.TableName()).Where(sq.Eq{"id": userID}))
}

// ── sessions ─────────────────────────────────────────────────────────────────

func buildCreateSessionQuery(b sq.StatementBuilderType, s models.Session, createdAt time.Time) (string, []any, error) {
	return toSQL(b.Insert(s.TableName()).
		Columns("id", "user_id", "expires_at", "created_at").
		Values(s.ID, s.UserID, s.ExpiresAt, createdAt))
}

func buildFindSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return toSQL(b.Select(sessionColumns...).
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.id": sessionID}))
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return toSQL(b.Delete(models.Session{}.TableName()).Where(sq.Eq{"id": sessionID}))
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return toSQL(b.Delete(models.Session{}.TableName()).Where(sq.LtOrEq{"expires_at": now}))
}

// ── todos ────────────────────────────────────────────────────────────────────

func buildListTodosQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Select(todoColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id"))
}

func buildGetTodoQuery(b sq.StatementBuilderType, userID, todoID int64) (string, []any, error) {
	return toSQL(b.Select(todoColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}))
}

func buildCreateTodoQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return toSQL(b.Insert(task.TableName()).
		Columns("user_id", "title", "completed", "created_at").
		Values(task.UserID, task.Title, false, task.CreatedAt).
		Suffix("RETURNING id"))
}

func buildSetTodoCompletedQuery(b sq.StatementBuilderType, userID, todoID int64, completedAt *time.Time) (string, []any, error) {
	return toSQL(b.Update(models.Task{}.TableName()).
		Set("completed", completedAt != nil).
		Set("completed_at", completedAt).
		Where(sq.Eq{"id": todoID, "user_id": userID}))
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, userID, todoID int64) (string, []any, error) {
	return toSQL(b.Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}))
}

// ── notes ────────────────────────────────────────────────────────────────────

func buildListNotesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Select(previewColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC"))
}

func buildGetNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	return toSQL(b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}))
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(b.Insert(note.TableName()).
		Columns("user_id", "title", "content", "created_at", "updated_at").
		Values(note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id"))
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(b.Update(note.TableName()).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}))
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	return toSQL(b.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}))
}
