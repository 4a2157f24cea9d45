package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/models"
)

// Destructive commands pass session.Approved: the confirm overlay has
// already asked the user.

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		err := errors.Join(sess.RefreshTasks(ctx), sess.RefreshNotes(ctx))
		return actionDoneMsg{status: "Refreshed", err: err}
	}
}

func (m mainLoopModel) cmdAddTask(title string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{status: "Task added", err: sess.AddTask(ctx, title)}
	}
}

func (m mainLoopModel) cmdToggleTask(task models.Task) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{err: sess.ToggleTask(ctx, task)}
	}
}

func (m mainLoopModel) cmdDeleteTask(task models.Task) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{status: "Task deleted", err: sess.DeleteTask(ctx, task, session.Approved)}
	}
}

func (m mainLoopModel) cmdAddNote(title, content string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{status: "Note added", err: sess.AddNote(ctx, title, content)}
	}
}

func (m mainLoopModel) cmdUpdateNote(id int64, title, content string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{status: "Note saved", err: sess.UpdateNote(ctx, id, title, content)}
	}
}

func (m mainLoopModel) cmdDeleteNote(note models.Note) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{status: "Note deleted", err: sess.DeleteNote(ctx, note, session.Approved)}
	}
}

func (m mainLoopModel) cmdOpenNote(id int64) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		note, err := sess.OpenNote(ctx, id)
		return noteOpenedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return actionDoneMsg{err: sess.DeleteAccount(ctx, session.Approved)}
	}
}
