package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout positions the well and the HUD on a surface. All values are in
// surface units: characters for a terminal, pixels for a window.
type Layout struct {
	CellW, CellH     int // Size of one grid cell
	Inset            int // Gap left at the right/bottom of every block
	OriginX, OriginY int // Top-left of grid cell (0, 0)
	Border           int // Wall thickness on the left, right and bottom; 0 for none
	Gutter           int // Space between the right wall and the HUD
	HUDWidth         int
	LineHeight       int
	TextSize         int
	TitleSize        int
}

// TerminalLayout draws each cell as two characters so blocks look square.
// A character cell cannot be shrunk, so terminal blocks have no inset.
func TerminalLayout() Layout {
	return Layout{
		CellW:      2,
		CellH:      1,
		OriginX:    1,
		Border:     1,
		Gutter:     2,
		HUDWidth:   20,
		LineHeight: 1,
		TextSize:   1,
		TitleSize:  1,
	}
}

// WindowLayout draws square blocks of block pixels with inset pixels of gap.
func WindowLayout(block, inset int) Layout {
	block = max(block, 2)
	inset = core.Clamp(inset, 0, block-1)
	border := max(block/5, 1)
	return Layout{
		CellW:      block,
		CellH:      block,
		Inset:      inset,
		OriginX:    border,
		Border:     border,
		Gutter:     block / 2,
		HUDWidth:   block * 6,
		LineHeight: block,
		TextSize:   block * 2 / 3,
		TitleSize:  block + block/3,
	}
}

// Size returns the surface size needed for a rows x cols grid.
func (l Layout) Size(rows, cols int) (w, h int) {
	w = l.OriginX + cols*l.CellW + l.Border + l.Gutter + l.HUDWidth
	h = l.OriginY + rows*l.CellH + l.Border
	return w, h
}

// CellRect returns the block drawn for grid cell (row, col).
func (l Layout) CellRect(row, col int) core.Rect {
	r := core.NewRect(l.OriginX+col*l.CellW, l.OriginY+row*l.CellH, l.CellW, l.CellH)
	if l.Inset > 0 {
		r = r.Shrink(l.Inset)
	}
	return r
}

// Frame is everything the renderer reads. It is a value so a frame can be
// drawn any number of times with the same result.
type Frame struct {
	Grid  *Grid
	Piece Piece
	State core.GameState
	Extra []string // Additional HUD lines below the readouts
}

// Frame captures the current state for rendering.
func (g *Game) Frame(extra ...string) Frame {
	return Frame{
		Grid:  g.grid,
		Piece: g.Piece(),
		State: g.State(),
		Extra: extra,
	}
}

// Render draws the game onto dst.
func (g *Game) Render(dst core.Surface, l Layout, extra ...string) {
	Render(dst, g.Frame(extra...), l)
}

// Render clears dst and draws the well, the locked blocks, the falling piece
// and the HUD, then an overlay when the game is paused or over.
func Render(dst core.Surface, f Frame, l Layout) {
	dst.Clear()

	renderWell(dst, f.Grid, l)
	renderBlocks(dst, f, l)
	renderHUD(dst, f, l)

	switch {
	case f.State.GameOver:
		renderOverlay(dst, l,
			overlayLine{"Game Over", l.TitleSize, core.ColorBrightRed},
			overlayLine{ScoreText(f.State.Score), l.TextSize, core.ColorBrightWhite},
			overlayLine{LevelText(f.State.Level), l.TextSize, core.ColorBrightWhite},
			overlayLine{"R: rejouer", l.TextSize, core.ColorWhite},
		)
	case f.State.Paused:
		renderOverlay(dst, l,
			overlayLine{"Pause", l.TitleSize, core.ColorBrightYellow},
			overlayLine{"P: reprendre", l.TextSize, core.ColorWhite},
		)
	}
}

func renderWell(dst core.Surface, g *Grid, l Layout) {
	if l.Border <= 0 {
		return
	}
	wellW := g.Cols() * l.CellW
	wellH := g.Rows() * l.CellH
	dst.FillRect(core.NewRect(l.OriginX-l.Border, l.OriginY, l.Border, wellH+l.Border), core.ColorGray)
	dst.FillRect(core.NewRect(l.OriginX+wellW, l.OriginY, l.Border, wellH+l.Border), core.ColorGray)
	dst.FillRect(core.NewRect(l.OriginX, l.OriginY+wellH, wellW, l.Border), core.ColorGray)
}

func renderBlocks(dst core.Surface, f Frame, l Layout) {
	g := f.Grid
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if c := g.At(row, col); c != Empty {
				dst.FillRect(l.CellRect(row, col), c)
			}
		}
	}

	f.Piece.Cells(func(row, col int) {
		if row >= 0 {
			dst.FillRect(l.CellRect(row, col), f.Piece.Color)
		}
	})
}

func renderHUD(dst core.Surface, f Frame, l Layout) {
	x := l.OriginX + f.Grid.Cols()*l.CellW + l.Border + l.Gutter
	y := l.OriginY
	style := core.TextStyle{Size: l.TextSize, Color: core.ColorBrightWhite}

	lines := []string{
		ScoreText(f.State.Score),
		LevelText(f.State.Level),
		LinesText(f.State.Lines),
	}
	if len(f.Extra) > 0 {
		lines = append(lines, "")
		lines = append(lines, f.Extra...)
	}
	for _, line := range lines {
		if line != "" {
			dst.DrawText(x, y, line, style)
		}
		y += l.LineHeight
	}
}

type overlayLine struct {
	text  string
	size  int
	color core.Color
}

// renderOverlay dims the whole surface and centres lines on it.
func renderOverlay(dst core.Surface, l Layout, lines ...overlayLine) {
	w, h := dst.Size()
	dst.FillRect(core.NewRect(0, 0, w, h), core.ColorScrim)

	total := 0
	for _, line := range lines {
		total += max(line.size, l.LineHeight)
	}
	y := (h - total) / 2
	for _, line := range lines {
		dst.DrawText(w/2, y, line.text, core.TextStyle{
			Size:  line.size,
			Align: core.AlignCenter,
			Color: line.color,
		})
		y += max(line.size, l.LineHeight)
	}
}
