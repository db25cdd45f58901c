package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

// loadMsg fires once the startup delay has elapsed
type loadMsg struct{}

// defaultsMsg fires once the load-defaults delay has elapsed
type defaultsMsg struct{}

// delayCmd returns msg after d, or nil if ctx is cancelled first.
// The timer is stopped either way so nothing outlives the model.
func delayCmd(ctx context.Context, d time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return msg
		}
	}
}
