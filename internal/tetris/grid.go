package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Empty marks a grid cell that holds no block.
const Empty = core.ColorDefault

// Grid is the fixed-size playfield. Cells are stored row-major in a single
// slice; the dimensions never change after NewGrid.
type Grid struct {
	rows  int
	cols  int
	cells []core.Color
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]core.Color, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Inside reports whether (row, col) is on the grid.
func (g *Grid) Inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the color stored at (row, col), or Empty off the grid.
func (g *Grid) At(row, col int) core.Color {
	if !g.Inside(row, col) {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

// Filled reports whether (row, col) holds a block.
func (g *Grid) Filled(row, col int) bool {
	return g.At(row, col) != Empty
}

// Set stores c at (row, col). Off-grid writes are ignored.
func (g *Grid) Set(row, col int, c core.Color) {
	if !g.Inside(row, col) {
		return
	}
	g.cells[row*g.cols+col] = c
}

// row returns the backing slice of one row.
func (g *Grid) row(r int) []core.Color {
	return g.cells[r*g.cols : (r+1)*g.cols]
}

// RowComplete reports whether every cell of row r is filled.
func (g *Grid) RowComplete(r int) bool {
	if r < 0 || r >= g.rows {
		return false
	}
	for _, c := range g.row(r) {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearRow empties row r.
func (g *Grid) ClearRow(r int) {
	if r < 0 || r >= g.rows {
		return
	}
	clear(g.row(r))
}

// Rebuild drops the rows marked in remove and compacts the survivors toward
// the bottom, keeping their top-to-bottom order. The vacated rows at the top
// are emptied, so the grid stays exactly rows x cols.
func (g *Grid) Rebuild(remove []bool) {
	dst := g.rows - 1
	for src := g.rows - 1; src >= 0; src-- {
		if src < len(remove) && remove[src] {
			continue
		}
		if dst != src {
			copy(g.row(dst), g.row(src))
		}
		dst--
	}
	for r := dst; r >= 0; r-- {
		g.ClearRow(r)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]core.Color, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '.' and '#', for tests and debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.row(r) {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
