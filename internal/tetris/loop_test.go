package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestDescentWaitsForInterval(t *testing.T) {
	g := newTestGame(t)
	place(g, KindO, 4, 0)
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name  string
		at    time.Duration
		wantY int
	}{
		{"first poll arms the timer", 0, 0},
		{"exactly one interval", time.Second, 0},
		{"past the interval", time.Second + time.Millisecond, 1},
		{"interval restarts from the firing poll", 1500 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		if !g.Tick(t0.Add(tt.at)) {
			t.Fatalf("%s: Tick stopped", tt.name)
		}
		if y := g.Piece().Y; y != tt.wantY {
			t.Errorf("%s: piece y = %d, want %d", tt.name, y, tt.wantY)
		}
	}
}

func TestDescentDoesNotCatchUp(t *testing.T) {
	g := newTestGame(t)
	place(g, KindO, 4, 0)
	t0 := time.Unix(1000, 0)

	g.Tick(t0)
	g.Tick(t0.Add(10 * time.Second))

	if y := g.Piece().Y; y != 1 {
		t.Errorf("piece y = %d after a late poll, want 1", y)
	}
}

func TestDescentFollowsSpeed(t *testing.T) {
	g := newTestGame(t)
	g.score = 1000
	g.updateLevel()
	place(g, KindO, 4, 0)
	t0 := time.Unix(1000, 0)

	g.Tick(t0)
	g.Tick(t0.Add(501 * time.Millisecond))

	if y := g.Piece().Y; y != 1 {
		t.Errorf("piece y = %d at level 2, want 1", y)
	}
}

func TestDescentHoldsWhilePaused(t *testing.T) {
	g := newTestGame(t)
	place(g, KindO, 4, 0)
	t0 := time.Unix(1000, 0)

	g.Tick(t0)
	g.Step(core.FrameOf(core.ActionPause))
	if !g.Tick(t0.Add(5 * time.Second)) {
		t.Fatal("Tick stopped while paused")
	}
	if y := g.Piece().Y; y != 0 {
		t.Errorf("piece fell while paused: y = %d", y)
	}

	g.Step(core.FrameOf(core.ActionPause))
	g.Tick(t0.Add(5500 * time.Millisecond))
	if y := g.Piece().Y; y != 0 {
		t.Errorf("interval did not restart after unpausing: y = %d", y)
	}
}

func TestDescentStopsOnGameOver(t *testing.T) {
	g := newTestGame(t)
	blockedGrid(g)
	place(g, KindI, 3, 0)
	t0 := time.Unix(1000, 0)

	if !g.Tick(t0) {
		t.Fatal("first Tick stopped")
	}
	if g.Tick(t0.Add(2 * time.Second)) {
		t.Error("the firing poll should end the game")
	}
	if !g.State().GameOver {
		t.Error("game not over")
	}
	if g.Tick(t0.Add(4 * time.Second)) {
		t.Error("Tick continued after game over")
	}
}
