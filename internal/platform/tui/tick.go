// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, key mapping, and display, while the
// invaders package owns the simulation. Bubble Tea delivers timer ticks
// and key presses to a single Update with run-to-completion semantics,
// so ticks and input never mutate the session concurrently.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick after
// the fixed simulation interval.
func tickCmd() tea.Cmd {
	return tea.Tick(invaders.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
