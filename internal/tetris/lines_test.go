package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestPoints(t *testing.T) {
	s := DefaultScoring()

	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 500},
	}

	for _, tt := range tests {
		if got := s.Points(tt.count); got != tt.want {
			t.Errorf("Points(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	s := DefaultScoring()

	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2000, 3},
	}

	for _, tt := range tests {
		if got := s.Level(tt.score); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
	if got := (Scoring{}).Level(5000); got != 1 {
		t.Errorf("zero Scoring Level = %d, want 1", got)
	}
}

func TestSpeedCurve(t *testing.T) {
	c := DefaultRules().Speed

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, time.Second},
		{2, 500 * time.Millisecond},
		{3, 100 * time.Millisecond},
		{10, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := c.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	c.Fixed = true
	if got := c.Interval(10); got != time.Second {
		t.Errorf("fixed Interval(10) = %v, want 1s", got)
	}
}

func TestClearLinesNoCompleteRows(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)
	fillRow(g, 19, core.ColorRed, 0)
	before := g.Clone()

	if n := ClearLines(g); n != 0 {
		t.Errorf("ClearLines = %d, want 0", n)
	}
	if !before.Equal(g) {
		t.Error("grid changed without a complete row")
	}
}

func TestClearLinesIsIdempotent(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)
	fillRow(g, 19, core.ColorRed)
	fillRow(g, 18, core.ColorBlue, 3)
	fillRow(g, 17, core.ColorGreen)

	if n := ClearLines(g); n != 2 {
		t.Fatalf("first ClearLines = %d, want 2", n)
	}
	after := g.Clone()

	if n := ClearLines(g); n != 0 {
		t.Errorf("second ClearLines = %d, want 0", n)
	}
	if !after.Equal(g) {
		t.Error("second ClearLines changed the grid")
	}
}

func TestClearLinesCounts(t *testing.T) {
	for n := 1; n <= 4; n++ {
		g := NewGrid(DefaultRows, DefaultCols)
		for r := 0; r < n; r++ {
			fillRow(g, DefaultRows-1-r, core.ColorCyan)
		}
		g.Set(DefaultRows-1-n, 0, core.ColorRed)

		if got := ClearLines(g); got != n {
			t.Errorf("ClearLines with %d full rows = %d", n, got)
		}
		if g.At(DefaultRows-1, 0) != core.ColorRed {
			t.Errorf("%d rows: survivor did not drop to the floor", n)
		}
		for r := 0; r < DefaultRows-1; r++ {
			for c := 0; c < DefaultCols; c++ {
				if g.Filled(r, c) {
					t.Fatalf("%d rows: cell (%d,%d) still filled", n, r, c)
				}
			}
		}
	}
}

func TestClearLinesNonAdjacentRows(t *testing.T) {
	g := NewGrid(6, 3)
	g.Set(1, 0, core.ColorRed)
	fillRow(g, 2, core.ColorBlue)
	g.Set(3, 1, core.ColorGreen)
	fillRow(g, 4, core.ColorBlue)
	g.Set(5, 2, core.ColorYellow)

	if n := ClearLines(g); n != 2 {
		t.Fatalf("ClearLines = %d, want 2", n)
	}
	if got, want := g.String(), "...\n...\n...\n#..\n.#.\n..#"; got != want {
		t.Errorf("after clear:\n%s\nwant:\n%s", got, want)
	}
	if g.Rows() != 6 {
		t.Errorf("Rows() = %d, want 6", g.Rows())
	}
}
