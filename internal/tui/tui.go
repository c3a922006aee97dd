// Package tui implements the terminal user interface of the logbuch client:
// the login flow, the category sidebar, dynamic entry forms with product
// search, the entry list, the category builder, and the summary chart.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhenke/logbuch/internal/adapter"
	"github.com/mhenke/logbuch/internal/logger"
)

// ErrUserQuit is returned by LoginFlow when the user leaves the program
// without authenticating.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server  adapter.ServerAdapter
	catalog adapter.ProductCatalog
	logger  *logger.Logger
}

func New(server adapter.ServerAdapter, catalog adapter.ProductCatalog, logger *logger.Logger) (*TUI, error) {
	return &TUI{server: server, catalog: catalog, logger: logger}, nil
}

// LoginFlow runs the welcome/login/register screens until the user is
// authenticated (the adapter then holds the bearer token) or quits.
// Returns the authenticated username.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	model := newLoginAppModel(ctx, t.server, t.catalog)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.err != nil {
		return "", result.err
	}
	if result.resultUsername == "" {
		return "", ErrUserQuit
	}

	return result.resultUsername, nil
}

// MainLoop runs the category sidebar and all screens behind it until the
// user quits or logs out. Returns logout = true when the caller should
// restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, username string) (logout bool, err error) {
	model := newMainAppModel(ctx, t.server, t.catalog, username)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
