package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/internal/tui"
)

// Session is the part of *session.Session the app drives directly.
type Session interface {
	CheckAuth(ctx context.Context) session.Screen
}

// UI runs the interactive flows.
type UI interface {
	AuthFlow(ctx context.Context) error
	MainLoop(ctx context.Context) (logout bool, err error)
}

type App struct {
	session Session
	ui      UI
	logger  *logger.Logger
}

func NewApp(sess Session, ui UI, logger *logger.Logger) (*App, error) {
	if sess == nil || ui == nil {
		return nil, ErrNotConfigured
	}
	return &App{session: sess, ui: ui, logger: logger}, nil
}

// Run checks the saved session, shows the auth flow when needed and then the
// main loop. Signing out returns to the auth flow; quitting ends Run.
func (a *App) Run(ctx context.Context) error {
	screen := a.session.CheckAuth(ctx)

	for {
		if screen == session.ScreenAuth {
			err := a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("signed out")
		screen = session.ScreenAuth
	}
}
