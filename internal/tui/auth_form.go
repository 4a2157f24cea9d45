// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm holds the login and password inputs shared by the login and
// register pages.
type authForm struct {
	inputs     []textinput.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	errMsg     string
	status     string
}

func newAuthForm() authForm {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return authForm{
		inputs:  []textinput.Model{loginInput, passwordInput},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (f *authForm) values() (login, password string) {
	return strings.TrimSpace(f.inputs[0].Value()), f.inputs[1].Value()
}

func (f *authForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *authForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
	f.submitting = false
	f.errMsg = ""
}

// updateInputs forwards msg to the focused input, or to the spinner while a
// request is running.
func (f *authForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if _, ok := msg.(spinner.TickMsg); ok {
		if !f.submitting {
			return nil
		}
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) view(button string) string {
	var b strings.Builder

	if f.status != "" {
		b.WriteString(statusStyle.Render(f.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Login     │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n\n")

	if f.submitting {
		b.WriteString(f.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString("[")
	b.WriteString(button)
	b.WriteString("]\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
