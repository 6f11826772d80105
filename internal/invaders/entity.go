// Package invaders implements the game simulation: a player-controlled
// shooter at the bottom of a fixed-size board defends against a rigid
// formation of enemies sweeping side to side above it. The package is
// pure logic with no external dependencies (especially no Bubble Tea);
// the platform layer owns input mapping, timing, and display.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Display glyphs for each entity kind. The board frame uses the screen's
// box-drawing primitives and is not part of this set.
const (
	GlyphPlayer     = '^'
	GlyphEnemy      = 'W'
	GlyphProjectile = '|'
	GlyphBackground = ' '
)

// Direction is the lateral sweep direction shared by the whole enemy
// formation. It belongs to the formation, not to any one enemy.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// step returns the x displacement for one tick of movement.
func (d Direction) step() int {
	if d == DirRight {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the singleton shooter on the bottom row. It has no identity
// and no lifecycle beyond the session.
type Player struct {
	Pos core.Point
}

// Enemy is one member of the formation. Enemies are destroyed
// individually when a projectile lands on their cell; collision is
// positional, never ID-based.
type Enemy struct {
	ID  int
	Pos core.Point
}

// Projectile travels straight up one cell per tick. It is destroyed on
// contact with an enemy or when it leaves the top of the board.
type Projectile struct {
	ID  int
	Pos core.Point
}
