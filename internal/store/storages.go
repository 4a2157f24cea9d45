package store

import "github.com/MKhiriev/go-taskflow/internal/logger"

// Storages groups the repositories the server services depend on.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	TodoRepository    TodoRepository
	NoteRepository    NoteRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		TodoRepository:    NewTodoRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
	}
}
