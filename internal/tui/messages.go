package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// stateChangedMsg tells the model to re-read the store.
type stateChangedMsg struct{}

// waitForChange blocks until the store commits a new state. Commits that
// happen while the model is busy collapse into one message.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			return stateChangedMsg{}
		}
	}
}
