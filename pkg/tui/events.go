package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
)

// UpdateMsg carries one collector update into the bubbletea loop.
type UpdateMsg struct {
	collectors.Update
}

// TickMsg is sent periodically to refresh staleness markers.
type TickMsg struct {
	Time time.Time
}

// updatesClosedMsg reports that the update channel was closed. The model
// stops listening after it.
type updatesClosedMsg struct{}

// TickCmd returns a Cmd that sends a TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// WaitForUpdate returns a Cmd that blocks on the next update from ch. The
// model re-arms it after every UpdateMsg. A nil channel yields a nil Cmd.
func WaitForUpdate(ch <-chan collectors.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return updatesClosedMsg{}
		}
		return UpdateMsg{Update: u}
	}
}
