package tetris

// Scoring maps rows cleared by one lock to points.
type Scoring struct {
	LinePoints      map[int]int
	FallbackPerLine int
	LevelEvery      int
}

// DefaultScoring returns the classic 100/300/500/800 table.
func DefaultScoring() Scoring {
	return Scoring{
		LinePoints:      map[int]int{1: 100, 2: 300, 3: 500, 4: 800},
		FallbackPerLine: 100,
		LevelEvery:      1000,
	}
}

// Points returns the score for clearing count rows at once.
// Counts missing from the table earn FallbackPerLine per row.
func (s Scoring) Points(count int) int {
	if count <= 0 {
		return 0
	}
	if p, ok := s.LinePoints[count]; ok {
		return p
	}
	return count * s.FallbackPerLine
}

// Level returns the level reached at score, starting at 1.
func (s Scoring) Level(score int) int {
	if s.LevelEvery <= 0 {
		return 1
	}
	return score/s.LevelEvery + 1
}

// ClearLines removes every complete row, shifts the rest down and returns
// how many rows were removed. A grid without complete rows is untouched.
func ClearLines(g *Grid) int {
	var complete []bool
	count := 0
	for r := 0; r < g.Rows(); r++ {
		if !g.RowComplete(r) {
			continue
		}
		if complete == nil {
			complete = make([]bool, g.Rows())
		}
		complete[r] = true
		count++
	}
	if count == 0 {
		return 0
	}
	g.Rebuild(complete)
	return count
}
