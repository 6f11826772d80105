package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// ScreenWidth and ScreenHeight are the rendered grid dimensions: the
// playable interior plus a one-cell frame on each side.
const (
	ScreenWidth  = BoardWidth + 2
	ScreenHeight = BoardHeight + 2
)

// Render projects the current entity state onto dst, which must be a
// ScreenWidth x ScreenHeight buffer. Enemies are drawn first,
// projectiles over them (the engine removes coinciding pairs before
// rendering, so this ordering is defensive), and the player last so it
// is always visible. The frame is drawn over the outer ring. Entity
// state is never mutated; identical state renders identically.
func (s *Session) Render(dst *core.Screen) {
	dst.Fill(GlyphBackground)
	for _, e := range s.enemies {
		dst.Set(e.Pos.X+1, e.Pos.Y+1, GlyphEnemy)
	}
	for _, p := range s.projectiles {
		dst.Set(p.Pos.X+1, p.Pos.Y+1, GlyphProjectile)
	}
	dst.Set(s.player.Pos.X+1, s.player.Pos.Y+1, GlyphPlayer)
	dst.DrawBox(core.NewRect(0, 0, ScreenWidth, ScreenHeight))
}
