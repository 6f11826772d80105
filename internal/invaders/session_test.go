package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestNewSessionFormation(t *testing.T) {
	s := NewSession()

	if !s.Running() {
		t.Fatal("New session should be running")
	}
	if s.EnemyCount() != enemyRows*enemyCols {
		t.Fatalf("Expected %d enemies, got %d", enemyRows*enemyCols, s.EnemyCount())
	}
	if s.dir != DirRight {
		t.Errorf("Initial direction = %v, expected right", s.dir)
	}
	if s.PlayerPos() != (core.Point{X: BoardWidth / 2, Y: BoardHeight - 1}) {
		t.Errorf("Player at %v, expected (%d,%d)", s.PlayerPos(), BoardWidth/2, BoardHeight-1)
	}

	// Grid layout: columns at 3,6,...,24 and rows at 1,3,5
	seen := make(map[core.Point]bool)
	ids := make(map[int]bool)
	for _, e := range s.enemies {
		seen[e.Pos] = true
		if ids[e.ID] {
			t.Errorf("Duplicate enemy id %d", e.ID)
		}
		ids[e.ID] = true
	}
	for row := 0; row < enemyRows; row++ {
		for col := 0; col < enemyCols; col++ {
			p := core.Point{X: enemyStartX + col*enemyGapX, Y: enemyStartY + row*enemyGapY}
			if !seen[p] {
				t.Errorf("No enemy at expected cell %v", p)
			}
		}
	}
}

func TestEnemyIDsStrictlyIncreasing(t *testing.T) {
	s := NewSession()

	last := 0
	for _, e := range s.enemies {
		if e.ID <= last {
			t.Fatalf("Enemy ids not strictly increasing: %d after %d", e.ID, last)
		}
		last = e.ID
	}
	if s.enemies[0].ID != 1 {
		t.Errorf("First id = %d, expected 1", s.enemies[0].ID)
	}

	// Projectiles draw from the same allocator
	s.Apply(core.ActionFire)
	if got := s.projectiles[0].ID; got != last+1 {
		t.Errorf("Projectile id = %d, expected %d", got, last+1)
	}
}

func TestPlayerClampsAtEdges(t *testing.T) {
	s := NewSession()

	for i := 0; i < BoardWidth*2; i++ {
		s.Apply(core.ActionLeft)
	}
	if s.PlayerPos().X != 0 {
		t.Errorf("Player x = %d after spamming left, expected 0", s.PlayerPos().X)
	}

	for i := 0; i < BoardWidth*2; i++ {
		s.Apply(core.ActionRight)
	}
	if s.PlayerPos().X != BoardWidth-1 {
		t.Errorf("Player x = %d after spamming right, expected %d", s.PlayerPos().X, BoardWidth-1)
	}
}

func TestFireSpawnsAboveShooter(t *testing.T) {
	s := NewSession()

	s.Apply(core.ActionFire)

	if s.ProjectileCount() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", s.ProjectileCount())
	}
	want := core.Point{X: s.PlayerPos().X, Y: s.PlayerPos().Y - 1}
	if s.projectiles[0].Pos != want {
		t.Errorf("Projectile at %v, expected %v", s.projectiles[0].Pos, want)
	}
}

func TestTickSweepsBeforeShots(t *testing.T) {
	// The formation moves before projectiles resolve, so an enemy can
	// step into a shot's landing cell and be hit that same tick.
	s := &Session{
		running:     true,
		dir:         DirRight,
		enemies:     []Enemy{{ID: 1, Pos: core.Point{X: 10, Y: 3}}},
		projectiles: []Projectile{{ID: 2, Pos: core.Point{X: 11, Y: 4}}},
	}

	s.Tick()

	if s.EnemyCount() != 0 {
		t.Error("Enemy stepping into the shot's cell should be removed")
	}
	if s.ProjectileCount() != 0 {
		t.Error("The connecting shot should be consumed")
	}
}

func TestQuitIsTerminal(t *testing.T) {
	s := NewSession()
	s.Apply(core.ActionFire)

	s.Apply(core.ActionQuit)
	if s.Running() {
		t.Fatal("Session should not be running after quit")
	}

	// No further tick or input mutates the state
	playerBefore := s.PlayerPos()
	enemiesBefore := s.EnemyCount()
	projectileBefore := s.projectiles[0].Pos

	s.Tick()
	s.Apply(core.ActionRight)
	s.Apply(core.ActionFire)
	s.Apply(core.ActionQuit)

	if s.PlayerPos() != playerBefore {
		t.Error("Player moved after termination")
	}
	if s.EnemyCount() != enemiesBefore {
		t.Error("Enemy collection changed after termination")
	}
	if s.ProjectileCount() != 1 || s.projectiles[0].Pos != projectileBefore {
		t.Error("Projectiles changed after termination")
	}
}

func TestOpeningScenario(t *testing.T) {
	s := NewSession()

	before := make(map[int]core.Point, s.EnemyCount())
	for _, e := range s.enemies {
		before[e.ID] = e.Pos
	}

	// Rightmost column starts at x=24, far from the edge: one tick moves
	// every enemy right by one and keeps the direction.
	s.Tick()
	for _, e := range s.enemies {
		want := before[e.ID]
		want.X++
		if e.Pos != want {
			t.Errorf("Enemy %d at %v, expected %v", e.ID, e.Pos, want)
		}
	}
	if s.dir != DirRight {
		t.Errorf("Direction = %v, expected right", s.dir)
	}

	// Fire from (20,19): the projectile spawns at (20,18) and, with no
	// enemy at (20,17), survives the next tick there.
	s.Apply(core.ActionFire)
	if s.projectiles[0].Pos != (core.Point{X: 20, Y: 18}) {
		t.Fatalf("Projectile spawned at %v, expected (20,18)", s.projectiles[0].Pos)
	}

	s.Tick()
	if s.ProjectileCount() != 1 {
		t.Fatalf("Projectile vanished, expected it in flight")
	}
	if s.projectiles[0].Pos != (core.Point{X: 20, Y: 17}) {
		t.Errorf("Projectile at %v, expected (20,17)", s.projectiles[0].Pos)
	}
}
