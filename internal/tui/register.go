package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/internal/app"
	"github.com/MKhiriev/go-taskflow/internal/session"
)

// RegisterModel is the Bubble Tea model for the registration screen. On
// success it resets the form and navigates to the login page with a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx     context.Context
	session ClientSession

	form authForm
}

func NewRegisterModel(ctx context.Context, sess ClientSession) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: sess,
		form:    newAuthForm(),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.form.submitting = false
		if msg.Err != nil {
			m.form.errMsg = session.AlertText(msg.Err)
			return m, nil
		}

		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageLogin,
				Payload: RegisterSuccessNotice{Username: msg.Username},
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t", "esc":
			if m.form.submitting {
				return m, nil
			}
			m.session.ShowLoginForm()
			m.form.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case "tab", "down":
			m.form.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.form.submitting {
				return m, nil
			}

			login, pass := m.form.values()
			if login == "" || pass == "" {
				m.form.errMsg = app.MsgFillAllFields
				return m, nil
			}

			m.form.errMsg = ""
			m.form.submitting = true
			return m, tea.Batch(m.form.spinner.Tick, m.cmdRegister(login, pass))
		}
	}

	return m, m.form.updateInputs(msg)
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.view("Create account"), "tab: next field │ enter: create │ esc / ctrl+t: back to sign in")
}

func (m *RegisterModel) cmdRegister(login, pass string) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		err := sess.Register(ctx, login, pass)
		return RegisterResult{Err: err, Username: login}
	}
}
