package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks y/n before a destructive action. onYes builds the
// command that performs it.
type confirmModel struct {
	message string
	onYes   func() tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
