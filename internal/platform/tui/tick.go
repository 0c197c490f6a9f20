// Package tui runs the game in a terminal through Bubble Tea.
// It owns the frame loop, maps keys to actions and turns draw calls into
// styled terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next frame's tick.
// It doubles as the frame limiter: one tick is in flight at a time.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
