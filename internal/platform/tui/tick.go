// Package tui provides the Bubble Tea integration for shift.
// It runs the lobby, the game tick loop, the scoreboard, and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// game model that scheduled it so a stale tick cannot start a second loop.
type TickMsg struct {
	Loop int64
	Time time.Time
}

var tickLoops atomic.Int64

// newTickLoop returns a fresh tick loop id.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
