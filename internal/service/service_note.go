package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewNoteService returns the bare NoteService.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, userID int64) ([]models.NotePreview, error) {
	return s.noteRepository.ListNotes(ctx, userID)
}

func (s *noteService) Get(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, userID, noteID)
}

func (s *noteService) Add(ctx context.Context, note models.Note) (models.Note, error) {
	now := s.now()
	note.CreatedAt = now
	note.UpdatedAt = now

	return s.noteRepository.CreateNote(ctx, note)
}

// Update overwrites title and content and bumps UpdatedAt.
func (s *noteService) Update(ctx context.Context, note models.Note) error {
	note.UpdatedAt = s.now()
	return s.noteRepository.UpdateNote(ctx, note)
}

func (s *noteService) Delete(ctx context.Context, userID, noteID int64) error {
	return s.noteRepository.DeleteNote(ctx, userID, noteID)
}
