package tui

// errorOverlayModel blocks the main loop until the user dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
