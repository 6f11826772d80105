package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Board dimensions (playable interior, excluding the frame) and the
// fixed simulation tick period. These are gameplay constants, not
// configuration.
const (
	BoardWidth  = 40
	BoardHeight = 20

	TickInterval = 250 * time.Millisecond
)

// Initial formation layout: enemyRows x enemyCols enemies with fixed
// spacing, anchored at (enemyStartX, enemyStartY).
const (
	enemyRows   = 3
	enemyCols   = 8
	enemyStartX = 3
	enemyStartY = 1
	enemyGapX   = 3
	enemyGapY   = 2
)

// Session owns all entity state for one run of the game: the player,
// the enemy formation, in-flight projectiles, the sweep direction, and
// the running flag. It is not safe for concurrent use; the platform
// layer applies ticks and key events one at a time.
//
// A session terminates exactly once, on the quit action, and never
// restarts.
type Session struct {
	ids         idAllocator
	player      Player
	enemies     []Enemy
	projectiles []Projectile
	dir         Direction
	running     bool
}

// NewSession creates a running session with the player centered on the
// bottom row and the full enemy formation in place, sweeping right.
func NewSession() *Session {
	s := &Session{
		player:  Player{Pos: core.Point{X: BoardWidth / 2, Y: BoardHeight - 1}},
		dir:     DirRight,
		running: true,
	}
	for row := 0; row < enemyRows; row++ {
		for col := 0; col < enemyCols; col++ {
			s.enemies = append(s.enemies, Enemy{
				ID: s.ids.Next(),
				Pos: core.Point{
					X: enemyStartX + col*enemyGapX,
					Y: enemyStartY + row*enemyGapY,
				},
			})
		}
	}
	return s
}

// Running reports whether the session still accepts ticks and input.
func (s *Session) Running() bool {
	return s.running
}

// EnemyCount returns the number of enemies still alive.
func (s *Session) EnemyCount() int {
	return len(s.enemies)
}

// ProjectileCount returns the number of projectiles in flight.
func (s *Session) ProjectileCount() int {
	return len(s.projectiles)
}

// PlayerPos returns the player's current position.
func (s *Session) PlayerPos() core.Point {
	return s.player.Pos
}

// Tick advances the simulation one step: the formation sweeps first,
// then projectiles move and collisions resolve. A terminated session
// ignores ticks.
func (s *Session) Tick() {
	if !s.running {
		return
	}
	s.dir = advanceEnemies(s.enemies, s.dir)
	s.projectiles, s.enemies = advanceProjectiles(s.projectiles, s.enemies)
}

// Apply performs the state change for a single key action. Movement
// clamps at the board edges, fire spawns a projectile one cell above
// the player, and quit terminates the session. Unknown actions and any
// input after termination are ignored.
func (s *Session) Apply(a core.Action) {
	if !s.running {
		return
	}
	switch a {
	case core.ActionLeft:
		s.player.Pos.X = core.Clamp(s.player.Pos.X-1, 0, BoardWidth-1)
	case core.ActionRight:
		s.player.Pos.X = core.Clamp(s.player.Pos.X+1, 0, BoardWidth-1)
	case core.ActionFire:
		s.projectiles = append(s.projectiles, Projectile{
			ID:  s.ids.Next(),
			Pos: core.Point{X: s.player.Pos.X, Y: s.player.Pos.Y - 1},
		})
	case core.ActionQuit:
		s.running = false
	}
}
