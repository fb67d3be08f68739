package tetris

// Collides reports whether shape placed with its top-left at (x, y) is an
// invalid placement: an occupied cell left of column 0, right of the last
// column, below the last row, or over a filled cell. Rows above the top are
// only checked against the side walls.
func Collides(g *Grid, shape Shape, x, y int) bool {
	for i, line := range shape {
		for j, filled := range line {
			if !filled {
				continue
			}
			col := x + j
			row := y + i
			if col < 0 || col >= g.Cols() || row >= g.Rows() {
				return true
			}
			if row >= 0 && g.Filled(row, col) {
				return true
			}
		}
	}
	return false
}

// collides is Collides for a whole piece.
func (p Piece) collides(g *Grid) bool {
	return Collides(g, p.Shape, p.X, p.Y)
}
