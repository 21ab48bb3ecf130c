package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/buildmcp/internal/adapter"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/models"
)

// TUI is the interactive MetaMCP browser. It renders the server and
// namespace catalogs of a deployment and edits them through [adapter.MetaMCP].
type TUI struct {
	api       adapter.MetaMCP
	buildInfo models.AppBuildInfo
	logs      *logger.Logger
}

func New(api adapter.MetaMCP, buildInfo models.AppBuildInfo, logs *logger.Logger) (*TUI, error) {
	return &TUI{api: api, buildInfo: buildInfo, logs: logs}, nil
}

// Run starts the browser and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	t.logs.Debug().Msg("starting metamcp browser")

	model := newBrowserModel(ctx, t.api, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
