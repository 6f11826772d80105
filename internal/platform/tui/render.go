package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// cellClass buckets glyphs that share a display style so adjacent cells
// can be grouped into runs, keeping ANSI escape sequences short.
type cellClass int

const (
	classDefault cellClass = iota
	classPlayer
	classEnemy
	classProjectile
	classFrame
)

var classStyles = map[cellClass]lipgloss.Style{
	classDefault:    lipgloss.NewStyle(),
	classPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	classEnemy:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	classProjectile: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	classFrame:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	farewellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func classify(r rune) cellClass {
	switch r {
	case invaders.GlyphPlayer:
		return classPlayer
	case invaders.GlyphEnemy:
		return classEnemy
	case invaders.GlyphProjectile:
		return classProjectile
	case '┌', '┐', '└', '┘', '─', '│':
		return classFrame
	}
	return classDefault
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped to minimize escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := classify(s.Get(x, y))

			var run strings.Builder
			for x < s.Width() && classify(s.Get(x, y)) == start {
				run.WriteRune(s.Get(x, y))
				x++
			}

			sb.WriteString(classStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// Farewell returns the styled goodbye printed after a session ends.
func Farewell() string {
	return farewellStyle.Render("Thanks for playing!")
}
