package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is a small occupancy matrix. Shapes are never mutated in place;
// rotation builds a new one.
type Shape [][]bool

// Rows returns the shape height.
func (s Shape) Rows() int { return len(s) }

// Cols returns the shape width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise:
// new[i][j] = old[rows-1-j][i], so rows and columns swap.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rotated[i] {
			rotated[i][j] = s[rows-1-j][i]
		}
	}
	return rotated
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i := range s {
		c[i] = append([]bool(nil), s[i]...)
	}
	return c
}

// parseShape builds a shape from rows of '#' and '.'.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, ch := range row {
			s[i][j] = ch == '#'
		}
	}
	return s
}

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindT Kind = iota
	KindO
	KindS
	KindZ
	KindL
	KindJ
	KindI
)

// Tetromino is a catalog entry: a spawn shape and its color.
type Tetromino struct {
	Kind  Kind
	Name  string
	Shape Shape
	Color core.Color
}

var catalog = [...]Tetromino{
	{Kind: KindT, Name: "T", Shape: parseShape("###", ".#."), Color: core.ColorPurple},
	{Kind: KindO, Name: "O", Shape: parseShape("##", "##"), Color: core.ColorYellow},
	{Kind: KindS, Name: "S", Shape: parseShape("##.", ".##"), Color: core.ColorRed},
	{Kind: KindZ, Name: "Z", Shape: parseShape(".##", "##."), Color: core.ColorGreen},
	{Kind: KindL, Name: "L", Shape: parseShape("#..", "###"), Color: core.ColorOrange},
	{Kind: KindJ, Name: "J", Shape: parseShape("..#", "###"), Color: core.ColorPink},
	{Kind: KindI, Name: "I", Shape: parseShape("####"), Color: core.ColorCyan},
}

// CatalogSize is the number of tetrominoes.
const CatalogSize = len(catalog)

// Catalog returns a copy of every tetromino in Kind order.
func Catalog() []Tetromino {
	out := make([]Tetromino, 0, CatalogSize)
	for k := range catalog {
		out = append(out, TetrominoOf(Kind(k)))
	}
	return out
}

// TetrominoOf returns a copy of the catalog entry for k.
func TetrominoOf(k Kind) Tetromino {
	t := catalog[k]
	t.Shape = t.Shape.Clone()
	return t
}

// String returns the single-letter tetromino name.
func (k Kind) String() string {
	if k < 0 || int(k) >= CatalogSize {
		return "?"
	}
	return catalog[k].Name
}
