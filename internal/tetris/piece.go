package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Piece is the falling tetromino. X and Y locate the top-left corner of the
// shape's bounding box on the grid.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// Spawn places t horizontally centred on a grid with cols columns, at the top.
func Spawn(t Tetromino, cols int) Piece {
	return Piece{
		Kind:  t.Kind,
		Shape: t.Shape,
		Color: t.Color,
		X:     (cols - t.Shape.Cols()) / 2,
		Y:     0,
	}
}

// Cells calls fn with the grid position of every occupied cell.
func (p Piece) Cells(fn func(row, col int)) {
	for i, line := range p.Shape {
		for j, filled := range line {
			if filled {
				fn(p.Y+i, p.X+j)
			}
		}
	}
}
