package client

import (
	"context"
	"errors"

	"github.com/mhenke/logbuch/internal/adapter"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/tui"
)

type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{server: server, tui: ui, logger: logger}, nil
}

// Run drives the client lifecycle: the login flow first, then the main loop.
// Logging out drops the bearer token and restarts the login flow; quitting
// from the login flow exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	username, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Str("username", username).Msg("user logged in")

	logout, err := a.tui.MainLoop(ctx, username)
	if err != nil {
		return err
	}
	if logout {
		a.server.SetToken("")
		return a.Run()
	}

	return nil
}
