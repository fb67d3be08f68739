package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fillRow fills every cell of row except the listed columns.
func fillRow(g *Grid, row int, c core.Color, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < g.Cols(); col++ {
		if !skip[col] {
			g.Set(row, col, c)
		}
	}
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)

	if g.Rows() != 20 || g.Cols() != 10 {
		t.Fatalf("NewGrid size = %dx%d, want 20x10", g.Rows(), g.Cols())
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Filled(r, c) {
				t.Fatalf("cell (%d,%d) is filled", r, c)
			}
		}
	}
}

func TestGridOffGridAccess(t *testing.T) {
	g := NewGrid(4, 3)

	g.Set(-1, 0, core.ColorRed)
	g.Set(0, 3, core.ColorRed)
	g.Set(4, 0, core.ColorRed)

	if got, want := g.String(), NewGrid(4, 3).String(); got != want {
		t.Errorf("off-grid Set changed the grid:\n%s", got)
	}
	if got := g.At(-1, 0); got != Empty {
		t.Errorf("At(-1,0) = %v, want Empty", got)
	}
	if g.Filled(0, -1) {
		t.Error("Filled(0,-1) = true, want false")
	}
}

func TestGridRowComplete(t *testing.T) {
	g := NewGrid(4, 3)
	fillRow(g, 3, core.ColorRed)
	fillRow(g, 2, core.ColorRed, 1)

	tests := []struct {
		row  int
		want bool
	}{
		{3, true},
		{2, false},
		{0, false},
		{-1, false},
		{4, false},
	}

	for _, tt := range tests {
		if got := g.RowComplete(tt.row); got != tt.want {
			t.Errorf("RowComplete(%d) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestGridRebuildKeepsOrder(t *testing.T) {
	g := NewGrid(5, 3)
	g.Set(0, 0, core.ColorRed)
	g.Set(1, 1, core.ColorGreen)
	fillRow(g, 2, core.ColorBlue)
	g.Set(3, 2, core.ColorYellow)
	fillRow(g, 4, core.ColorBlue)

	g.Rebuild([]bool{false, false, true, false, true})

	want := "...\n...\n#..\n.#.\n..#"
	if got := g.String(); got != want {
		t.Errorf("after Rebuild:\n%s\nwant:\n%s", got, want)
	}
	if g.At(2, 0) != core.ColorRed || g.At(3, 1) != core.ColorGreen || g.At(4, 2) != core.ColorYellow {
		t.Error("surviving cells lost their colour")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, core.ColorCyan)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from the original")
	}

	c.Set(0, 0, core.ColorRed)
	if g.Filled(0, 0) {
		t.Error("writing the clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Equal should report the difference")
	}
}
