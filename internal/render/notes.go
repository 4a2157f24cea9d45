package render

import (
	"strings"

	"github.com/MKhiriev/go-taskflow/internal/app"
	"github.com/MKhiriev/go-taskflow/models"
)

const previewWidth = 60

// NoteCard renders the title, a one-line content preview and the last
// modification date of note.
func NoteCard(note models.Note, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	preview := SanitizeLine(note.Content)
	if preview == "" {
		preview = app.MsgNoContent
	}

	return prefix + SanitizeLine(note.Title) + "\n" +
		"    " + Truncate(preview, previewWidth) + "\n" +
		"    Updated: " + note.LastModified().Format(dateLayout)
}

// Notes renders cards separated by blank lines.
func Notes(notes []models.Note, cursor int) string {
	cards := make([]string, 0, len(notes))
	for i, n := range notes {
		cards = append(cards, NoteCard(n, i == cursor))
	}
	return strings.Join(cards, "\n\n")
}

// NoteView renders the full note for the view modal.
func NoteView(note models.Note) string {
	content := Sanitize(note.Content)
	if strings.TrimSpace(content) == "" {
		content = app.MsgNoContent
	}

	return SanitizeLine(note.Title) + "\n\n" +
		content + "\n\n" +
		"Created: " + note.CreatedAt.Format(dateTimeLayout) + "\n" +
		"Updated: " + note.LastModified().Format(dateTimeLayout)
}
