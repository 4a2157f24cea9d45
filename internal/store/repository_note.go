package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
)

type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a SQL backed [NoteRepository].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotes returns previews of the user's notes, most recently updated first.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.NotePreview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	previews := make([]models.NotePreview, 0)
	for rows.Next() {
		var p models.NotePreview
		if err = rows.Scan(&p.ID, &p.Title, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		previews = append(previews, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return previews, nil
}

// GetNote returns a full note or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	query, args, err := buildGetNoteQuery(r.db.builder, userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	var n models.Note
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.GetNote").Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

// CreateNote inserts the note and returns it with its ID.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildCreateNoteQuery(r.db.builder, note)
	if err != nil {
		return models.Note{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// UpdateNote overwrites title, content and updated_at of note.ID.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	query, args, err := buildUpdateNoteQuery(r.db.builder, note)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*noteRepository.UpdateNote", query, args)
}

// DeleteNote removes the note or returns [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	query, args, err := buildDeleteNoteQuery(r.db.builder, userID, noteID)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*noteRepository.DeleteNote", query, args)
}

func (r *noteRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
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
		return ErrNoteNotFound
	}

	return nil
}
