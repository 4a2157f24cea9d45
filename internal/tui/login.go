// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/internal/app"
	"github.com/MKhiriev/go-taskflow/internal/session"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (login and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel] to finish
// the authentication flow.
type LoginModel struct {
	ctx     context.Context
	session ClientSession

	form authForm
}

// NewLoginModel creates a [LoginModel]; the login field receives focus immediately.
func NewLoginModel(ctx context.Context, sess ClientSession) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: sess,
		form:    newAuthForm(),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears submitting state; on error, shows the alert text.
//   - [RegisterSuccessNotice]: shows the "account created" status.
//   - ctrl+t: switches to the register form.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: checks presence and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.form.submitting = false
		if msg.Err != nil {
			m.form.status = ""
			m.form.errMsg = session.AlertText(msg.Err)
		}
		return m, nil
	case RegisterSuccessNotice:
		m.form.reset()
		m.form.status = app.MsgAccountCreated
		if msg.Username != "" {
			m.form.inputs[0].SetValue(msg.Username)
			m.form.focusNext()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			if m.form.submitting {
				return m, nil
			}
			m.session.ShowRegisterForm()
			m.form.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
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
			return m, tea.Batch(m.form.spinner.Tick, m.cmdLogin(login, pass))
		}
	}

	return m, m.form.updateInputs(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	return renderPage("SIGN IN", m.form.view("Sign in"), "tab: next field │ enter: sign in │ ctrl+t: create account │ f1: version")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		err := sess.Login(ctx, login, pass)
		return LoginResult{Err: err, Username: login}
	}
}
