// Package window runs the game in a desktop window with ebiten. It provides
// a core.Surface over an ebiten image and maps keyboard input to actions.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Background of the window.
var Background = color.RGBA{0, 0, 0, 255}

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {220, 40, 40, 255},
	core.ColorGreen:         {40, 190, 70, 255},
	core.ColorYellow:        {240, 220, 40, 255},
	core.ColorBlue:          {50, 90, 220, 255},
	core.ColorMagenta:       {200, 60, 200, 255},
	core.ColorCyan:          {40, 210, 220, 255},
	core.ColorWhite:         {200, 200, 200, 255},
	core.ColorBrightRed:     {255, 80, 80, 255},
	core.ColorBrightGreen:   {100, 255, 120, 255},
	core.ColorBrightYellow:  {255, 255, 110, 255},
	core.ColorBrightBlue:    {110, 150, 255, 255},
	core.ColorBrightMagenta: {255, 120, 255, 255},
	core.ColorBrightCyan:    {120, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 150, 30, 255},
	core.ColorGray:          {90, 90, 90, 255},
	core.ColorPurple:        {140, 50, 200, 255},
	core.ColorPink:          {255, 130, 190, 255},
	core.ColorScrim:         {0, 0, 0, 180},
}

// RGBA returns the window color for c. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{255, 255, 255, 255}
}

// Fonts caches Go Regular faces by pixel size.
type Fonts struct {
	tt    *opentype.Font
	faces map[int]font.Face
}

// NewFonts parses the embedded Go Regular font.
func NewFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: parse font: %w", err)
	}
	return &Fonts{tt: tt, faces: make(map[int]font.Face)}, nil
}

// Face returns the face for size pixels, creating it on first use.
func (f *Fonts) Face(size int) (font.Face, error) {
	size = max(size, 1)
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("window: font size %d: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Surface draws onto the ebiten image of the current frame. One surface unit
// is one pixel.
type Surface struct {
	img   *ebiten.Image
	fonts *Fonts
}

var _ core.Surface = (*Surface)(nil)

// NewSurface creates a surface that renders text with fonts.
func NewSurface(fonts *Fonts) *Surface {
	return &Surface{fonts: fonts}
}

// Bind sets the image drawn by subsequent calls.
func (s *Surface) Bind(img *ebiten.Image) {
	s.img = img
}

// Size implements core.Surface.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements core.Surface.
func (s *Surface) Clear() {
	s.img.Fill(Background)
}

// FillRect implements core.Surface. ColorScrim blends over what is drawn.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.img,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		RGBA(c), false)
}

// DrawText implements core.Surface. y is the top of the text line.
func (s *Surface) DrawText(x, y int, str string, style core.TextStyle) {
	face, err := s.fonts.Face(style.Size)
	if err != nil {
		return
	}

	switch style.Align {
	case core.AlignCenter:
		x -= text.BoundString(face, str).Dx() / 2
	case core.AlignRight:
		x -= text.BoundString(face, str).Dx()
	}

	text.Draw(s.img, str, face, x, y+face.Metrics().Ascent.Ceil(), RGBA(style.Color))
}
