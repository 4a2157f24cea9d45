package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/models"
)

// NavigateTo switches RootModel to Page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is the outcome of the async login command.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterResult is the outcome of the async register command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is delivered to the login page after registration.
type RegisterSuccessNotice struct {
	Username string
}

// actionDoneMsg ends any async call of the main loop that only refreshes
// session state.
type actionDoneMsg struct {
	status string
	err    error
}

type noteOpenedMsg struct {
	note models.Note
	err  error
}

type clearStatusMsg struct{}
