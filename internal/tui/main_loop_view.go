package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-taskflow/internal/render"
)

func (m mainLoopModel) View() string {
	switch {
	case m.errOverlay != nil:
		return m.place(m.errOverlay.View())
	case m.confirm != nil:
		return m.place(m.confirm.View())
	}

	switch m.modal {
	case modalAddTask:
		return renderPage("NEW TASK", m.viewModalBody(false), "enter: save │ esc: cancel")
	case modalAddNote:
		return renderPage("NEW NOTE", m.viewModalBody(true), "tab: next field │ ctrl+s: save │ esc: cancel")
	case modalEditNote:
		return renderPage("EDIT NOTE", m.viewModalBody(true), "tab: next field │ ctrl+s: save │ esc: cancel")
	case modalViewNote:
		return renderPage("NOTE", m.withStatus(render.NoteView(m.viewing)), "c: copy content │ e: edit │ esc: close")
	}

	var body string
	var hotKeys string
	switch m.section {
	case sectionTasks:
		body = render.TaskSections(m.pending, m.completed, m.cursor)
		hotKeys = "a: add │ space: done/undo │ d: delete"
	case sectionNotes:
		body = render.Notes(m.notes, m.cursor)
		if len(m.notes) == 0 {
			body = "No notes yet"
		}
		hotKeys = "a: add │ enter: open │ e: edit │ d: delete"
	case sectionAccount:
		body = m.viewAccount()
		hotKeys = "x: delete account"
	}

	hotKeys += " │ tab/1-3: section │ r: refresh │ l: log out │ q: quit"
	return renderPage(m.viewTabs(), m.withStatus(body), hotKeys)
}

func (m mainLoopModel) viewTabs() string {
	tabs := make([]string, 0, len(sectionNames))
	for i, name := range sectionNames {
		if section(i) == m.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return "TaskFlow  " + strings.Join(tabs, "  ")
}

func (m mainLoopModel) viewAccount() string {
	if m.user == "" {
		return "Signed in"
	}
	return "Signed in as " + render.SanitizeLine(m.user)
}

func (m mainLoopModel) viewModalBody(withContent bool) string {
	var b strings.Builder

	b.WriteString("Title    │ [")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n")
	if withContent {
		b.WriteString("Content  │\n")
		b.WriteString(indent(m.contentArea.View(), 2))
		b.WriteString("\n")
	}
	if m.modalErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.modalErr))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) withStatus(body string) string {
	var line string
	switch {
	case m.busy:
		line = m.spinner.View() + " working..."
	case m.status != "":
		line = statusStyle.Render(m.status)
	default:
		return body
	}
	return line + "\n\n" + body
}

// place centers an overlay in the window when its size is known.
func (m mainLoopModel) place(overlay string) string {
	if m.width == 0 || m.height == 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
