package list

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settleMsg is sent on every settle tick while the list is overscrolled
type settleMsg struct{}

// settleCmd returns a command that sends a settleMsg after the interval
func settleCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return settleMsg{}
	})
}

// settleStep moves an overscrolled offset one row back toward [lo, hi].
func settleStep(offset, lo, hi float64) float64 {
	switch {
	case offset < lo:
		return min(offset+1, lo)
	case offset > hi:
		return max(offset-1, hi)
	}
	return offset
}
