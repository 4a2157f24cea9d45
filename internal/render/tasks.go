package render

import (
	"strings"

	"github.com/MKhiriev/go-taskflow/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// TaskLine renders one task: cursor mark, checkbox, title, creation date and
// the completion date when present.
func TaskLine(task models.Task, selected bool) string {
	var b strings.Builder

	if selected {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}

	if task.Completed {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}

	b.WriteString(SanitizeLine(task.Title))
	b.WriteString("  (created ")
	b.WriteString(task.CreatedAt.Format(dateLayout))
	if task.CompletedAt != nil {
		b.WriteString(", done ")
		b.WriteString(task.CompletedAt.Format(dateLayout))
	}
	b.WriteString(")")

	return b.String()
}

// Tasks renders tasks one per line; the task at cursor is marked.
func Tasks(tasks []models.Task, cursor int) string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, TaskLine(t, i == cursor))
	}
	return strings.Join(lines, "\n")
}

// TaskSections renders the "To do" and "Completed" sections. cursor indexes
// the concatenation of pending and completed.
func TaskSections(pending, completed []models.Task, cursor int) string {
	var b strings.Builder

	b.WriteString("To do\n")
	if len(pending) == 0 {
		b.WriteString("  Nothing to do\n")
	} else {
		b.WriteString(Tasks(pending, cursor))
		b.WriteString("\n")
	}

	b.WriteString("\nCompleted\n")
	if len(completed) == 0 {
		b.WriteString("  Nothing completed yet")
	} else {
		b.WriteString(Tasks(completed, cursor-len(pending)))
	}

	return b.String()
}
