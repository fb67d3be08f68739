package core

// Align is the horizontal anchor of a text run relative to its x position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how DrawText renders a string.
// Size is a hint in surface units; cell surfaces ignore it.
type TextStyle struct {
	Size  int
	Align Align
	Color Color
}

// Surface is the drawing target games render onto. A game only ever clears
// it, fills rectangles and draws text; everything else is up to the platform.
type Surface interface {
	// Size returns the surface width and height in surface units.
	Size() (w, h int)

	// Clear wipes the whole surface.
	Clear()

	// FillRect fills r with c. Parts outside the surface are clipped.
	FillRect(r Rect, c Color)

	// DrawText draws text whose top edge is at y, anchored at x per style.Align.
	DrawText(x, y int, text string, style TextStyle)
}
