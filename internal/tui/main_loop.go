package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/internal/app"
	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/models"
)

const statusTTL = 3 * time.Second

type section int

const (
	sectionTasks section = iota
	sectionNotes
	sectionAccount
)

var sectionNames = []string{"Tasks", "Notes", "Account"}

type modal int

const (
	modalNone modal = iota
	modalAddTask
	modalAddNote
	modalViewNote
	modalEditNote
)

type mainLoopModel struct {
	ctx     context.Context
	session ClientSession

	section section
	cursor  int

	user      string
	pending   []models.Task
	completed []models.Task
	notes     []models.Note

	spinner spinner.Model
	busy    bool
	status  string

	modal       modal
	modalErr    string
	titleInput  textinput.Model
	contentArea textarea.Model
	editFocus   int
	viewing     models.Note

	confirm    *confirmModel
	errOverlay *errorOverlayModel

	width, height int

	logout bool
}

func newMainLoopModel(ctx context.Context, sess ClientSession) mainLoopModel {
	m := mainLoopModel{
		ctx:     ctx,
		session: sess,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.reload()
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

// reload copies the session snapshots into the model and clamps the cursor.
func (m *mainLoopModel) reload() {
	m.user = m.session.User()
	m.pending = m.session.PendingTasks()
	m.completed = m.session.CompletedTasks()
	m.notes = m.session.Notes()
	m.clampCursor()
}

func (m *mainLoopModel) clampCursor() {
	n := m.itemCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m mainLoopModel) itemCount() int {
	switch m.section {
	case sectionTasks:
		return len(m.pending) + len(m.completed)
	case sectionNotes:
		return len(m.notes)
	}
	return 0
}

func (m mainLoopModel) currentTask() (models.Task, bool) {
	switch {
	case m.section != sectionTasks:
		return models.Task{}, false
	case m.cursor < len(m.pending):
		return m.pending[m.cursor], true
	case m.cursor-len(m.pending) < len(m.completed):
		return m.completed[m.cursor-len(m.pending)], true
	}
	return models.Task{}, false
}

func (m mainLoopModel) currentNote() (models.Note, bool) {
	if m.section != sectionNotes || m.cursor >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.cursor], true
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case actionDoneMsg:
		return m.finish(msg.status, msg.err)
	case noteOpenedMsg:
		if msg.err == nil {
			m.viewing = msg.note
			m.modal = modalViewNote
		}
		return m.finish("", msg.err)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			cmd := m.confirm.onYes()
			m.confirm = nil
			return m.start(cmd)
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
			return m.setStatus(app.MsgCancelled)
		}
		return m, nil
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	return m.updateMain(keyMsg)
}

// finish ends an async call: state is re-read from the session, a forced
// logout quits the loop, errors open the overlay.
func (m mainLoopModel) finish(status string, err error) (tea.Model, tea.Cmd) {
	m.busy = false
	m.reload()

	if m.session.Screen() == session.ScreenAuth {
		m.logout = true
		return m, tea.Quit
	}

	if err != nil {
		if errors.Is(err, session.ErrCancelled) {
			return m.setStatus(app.MsgCancelled)
		}
		m.errOverlay = &errorOverlayModel{message: session.AlertText(err)}
		return m, nil
	}

	if status == "" {
		return m, nil
	}
	return m.setStatus(status)
}

func (m mainLoopModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// start marks the model busy and runs cmd. Requests are not serialized:
// a second action while busy is sent as well.
func (m mainLoopModel) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m mainLoopModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.session.Logout()
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		return m.switchSection((m.section + 1) % 3), nil
	case key.Matches(msg, keys.backtab):
		return m.switchSection((m.section + 2) % 3), nil
	case key.Matches(msg, keys.tasks):
		return m.switchSection(sectionTasks), nil
	case key.Matches(msg, keys.notes):
		return m.switchSection(sectionNotes), nil
	case key.Matches(msg, keys.account):
		return m.switchSection(sectionAccount), nil
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m.start(m.cmdRefresh())
	}

	switch m.section {
	case sectionTasks:
		return m.updateTasks(msg)
	case sectionNotes:
		return m.updateNotes(msg)
	case sectionAccount:
		if key.Matches(msg, keys.deleteAccount) {
			m.confirm = &confirmModel{message: app.MsgConfirmDeleteAccount, onYes: m.cmdDeleteAccount}
		}
	}
	return m, nil
}

func (m mainLoopModel) switchSection(s section) mainLoopModel {
	m.section = s
	m.cursor = 0
	return m
}

func (m mainLoopModel) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.newItem):
		m.openModal(modalAddTask, "", "")
		return m, textinput.Blink
	case key.Matches(msg, keys.toggle):
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		return m.start(m.cmdToggleTask(task))
	case key.Matches(msg, keys.delete):
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{
			message: app.MsgConfirmDeleteTask,
			onYes:   func() tea.Cmd { return m.cmdDeleteTask(task) },
		}
	}
	return m, nil
}

func (m mainLoopModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.newItem):
		m.openModal(modalAddNote, "", "")
		return m, textinput.Blink
	case key.Matches(msg, keys.enter):
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		return m.start(m.cmdOpenNote(note.ID))
	case key.Matches(msg, keys.edit):
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		m.viewing = note
		m.openModal(modalEditNote, note.Title, note.Content)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{
			message: app.MsgConfirmDeleteNote,
			onYes:   func() tea.Cmd { return m.cmdDeleteNote(note) },
		}
	}
	return m, nil
}

// ── modals ───────────────────────────────────────────────────────────────────

func (m *mainLoopModel) openModal(kind modal, title, content string) {
	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "title"
	m.titleInput.CharLimit = 200
	m.titleInput.Width = 50
	m.titleInput.SetValue(title)
	m.titleInput.Focus()

	m.contentArea = textarea.New()
	m.contentArea.Placeholder = "content"
	m.contentArea.SetWidth(50)
	m.contentArea.SetHeight(8)
	m.contentArea.SetValue(content)
	m.contentArea.Blur()

	m.editFocus = 0
	m.modalErr = ""
	m.modal = kind
}

func (m mainLoopModel) closeModal() mainLoopModel {
	m.modal = modalNone
	m.modalErr = ""
	m.titleInput.Blur()
	m.contentArea.Blur()
	return m
}

func (m mainLoopModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalViewNote:
		return m.updateViewNote(msg)
	case modalAddTask:
		return m.updateAddTask(msg)
	}
	return m.updateNoteForm(msg)
}

func (m mainLoopModel) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.closeModal(), nil
		case key.Matches(keyMsg, keys.enter):
			title := m.titleInput.Value()
			if strings.TrimSpace(title) == "" {
				m.modalErr = app.MsgTitleRequired
				return m, nil
			}
			m = m.closeModal()
			return m.start(m.cmdAddTask(title))
		}
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.closeModal(), nil
		case key.Matches(keyMsg, keys.tab, keys.backtab):
			m.editFocus = 1 - m.editFocus
			if m.editFocus == 0 {
				m.contentArea.Blur()
				return m, m.titleInput.Focus()
			}
			m.titleInput.Blur()
			return m, m.contentArea.Focus()
		case key.Matches(keyMsg, keys.save):
			return m.submitNoteForm()
		case key.Matches(keyMsg, keys.enter) && m.editFocus == 0:
			return m.submitNoteForm()
		}
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) submitNoteForm() (tea.Model, tea.Cmd) {
	title, content := m.titleInput.Value(), m.contentArea.Value()
	if strings.TrimSpace(title) == "" {
		m.modalErr = app.MsgTitleRequired
		return m, nil
	}

	kind, id := m.modal, m.viewing.ID
	m = m.closeModal()
	if kind == modalEditNote {
		return m.start(m.cmdUpdateNote(id, title, content))
	}
	return m.start(m.cmdAddNote(title, content))
}

func (m mainLoopModel) updateViewNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		return m.closeModal(), nil
	case key.Matches(keyMsg, keys.edit):
		m.openModal(modalEditNote, m.viewing.Title, m.viewing.Content)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(m.viewing.Content); err != nil {
			m.errOverlay = &errorOverlayModel{message: "Copy failed: " + err.Error()}
			return m, nil
		}
		return m.setStatus(app.MsgCopied)
	}
	return m, nil
}
