// Package tui renders the application store in the terminal.
//
// The model never changes state itself: key presses become actions sent
// through scoped views of the store, and every committed state is pulled
// back with Snapshot before the next frame.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/app"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
)

type TUI struct {
	source    flow.Source[app.State, app.Action]
	buildInfo models.AppBuildInfo
	log       *logger.Logger
	options   []tea.ProgramOption
}

// New returns a TUI over source. Extra program options are appended to the
// defaults (alternate screen, cancellation through Run's context).
func New(source flow.Source[app.State, app.Action], buildInfo models.AppBuildInfo, log *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		source:    source,
		buildInfo: buildInfo,
		log:       log,
		options:   options,
	}
}

// Run shows the UI until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes := make(chan struct{}, 1)
	unsubscribe := t.source.Observe(func(app.State, bool) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, t.options...)
	program := tea.NewProgram(newRootModel(ctx, t.source, changes, t.buildInfo), opts...)

	t.log.Debug().Msg("terminal ui started")
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	t.log.Debug().Msg("terminal ui closed")

	return nil
}
