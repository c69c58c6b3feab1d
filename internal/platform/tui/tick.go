// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal event loop, key mapping, and rendering; the
// simulation itself lives in internal/game and never blocks or sleeps.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to poll the simulation. The simulation decides for
// itself whether enough time has elapsed for a step, so the frame rate
// only bounds input latency and rendering, not game speed.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
