package models

import (
	"encoding/json"
	"time"
)

// Note is a titled free-form text of the signed-in user.
//
// On the wire the modification time is "updated_at". Decoding also accepts the
// legacy "update_at" key; when both are present "updated_at" wins.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

type noteWire struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdateAt  *time.Time `json:"update_at,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Note) UnmarshalJSON(b []byte) error {
	var w noteWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*n = Note{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
	}
	switch {
	case w.UpdatedAt != nil:
		n.UpdatedAt = *w.UpdatedAt
	case w.UpdateAt != nil:
		n.UpdatedAt = *w.UpdateAt
	}

	return nil
}

// LastModified returns UpdatedAt, or CreatedAt for notes never edited.
func (n Note) LastModified() time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

// NotePreview is an entry of GET /api/notes; the content is fetched
// separately with GET /api/notes/{id}.
type NotePreview struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnmarshalJSON implements json.Unmarshaler with the same key fallback as Note.
func (p *NotePreview) UnmarshalJSON(b []byte) error {
	var n Note
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*p = n.Preview()
	return nil
}

// Preview drops the content of the note.
func (n Note) Preview() NotePreview {
	return NotePreview{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// Note converts the preview into a note without content.
func (p NotePreview) Note() Note {
	return Note{
		ID:        p.ID,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NoteRequest is the body of POST /api/notes and PUT /api/notes/{id}.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
