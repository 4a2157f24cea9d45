package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/models"
)

const (
	pageLogin    = "login"
	pageRegister = "register"
)

type TUI struct {
	session   ClientSession
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(sess ClientSession, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{session: sess, buildInfo: buildInfo, logger: logger}
}

// AuthFlow runs the login/register screens until the user signs in.
func (t *TUI) AuthFlow(ctx context.Context) error {
	start := pageLogin
	if t.session.Form() == session.FormRegister {
		start = pageRegister
	}

	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session),
	}

	root := NewRootModel(pages, start, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Info().Str("user", t.session.User()).Msg("signed in")
	return nil
}

// MainLoop runs the main screen. logout reports whether the user signed out
// (or was signed out by the backend) rather than quitting.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
