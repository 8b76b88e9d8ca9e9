// Package tui runs the asteroids game inside a terminal: the Bubble Tea
// loop, key and mouse mapping, the menu and scoreboard screens, and the
// SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// frameInterval is the wall time of one frame. It uses the same whole
// milliseconds the simulation advances by, so run durations match the clock.
func frameInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.FrameMillis()) * time.Millisecond
}

func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(frameInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
