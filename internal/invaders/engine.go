package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// advanceEnemies shifts the whole formation one cell in the current
// sweep direction and returns the direction to store for the next tick.
// The stored direction flips as soon as the step would carry the
// extremal enemy out of the playable interior [1, BoardWidth-2], but the
// displacement applied this tick is still the pre-flip one: the
// formation visibly takes one more step toward the edge before
// reversing. An empty formation is a no-op.
func advanceEnemies(enemies []Enemy, dir Direction) Direction {
	if len(enemies) == 0 {
		return dir
	}

	step := dir.step()
	minX, maxX := enemies[0].Pos.X, enemies[0].Pos.X
	for _, e := range enemies[1:] {
		minX = core.Min(minX, e.Pos.X)
		maxX = core.Max(maxX, e.Pos.X)
	}
	if maxX+step >= BoardWidth-1 || minX+step <= 0 {
		dir = dir.Flip()
	}

	for i := range enemies {
		enemies[i].Pos.X += step
	}
	return dir
}

// advanceProjectiles moves every projectile up one cell, removes
// enemy/projectile pairs occupying the same cell, then drops projectiles
// that left the top of the board. Collisions resolve before off-board
// pruning, so a shot that connects on its last cell still counts.
// Collision is exact coordinate equality at post-move positions,
// evaluated once per tick.
func advanceProjectiles(projectiles []Projectile, enemies []Enemy) ([]Projectile, []Enemy) {
	for i := range projectiles {
		projectiles[i].Pos.Y--
	}

	occupied := make(map[core.Point]bool, len(projectiles))
	for _, p := range projectiles {
		occupied[p.Pos] = true
	}

	hit := make(map[core.Point]bool)
	liveEnemies := enemies[:0]
	for _, e := range enemies {
		if occupied[e.Pos] {
			hit[e.Pos] = true
			continue
		}
		liveEnemies = append(liveEnemies, e)
	}

	liveProjectiles := projectiles[:0]
	for _, p := range projectiles {
		if hit[p.Pos] || p.Pos.Y < 0 {
			continue
		}
		liveProjectiles = append(liveProjectiles, p)
	}

	return liveProjectiles, liveEnemies
}
