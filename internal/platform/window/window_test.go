package window

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyArrowUp, core.ActionRotate},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyR, core.ActionRestart},
		{ebiten.KeyM, core.ActionToggleMusic},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyA, core.ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ActionFor(tt.key), tt.key.String())
	}
}

func TestPaletteCoversCatalog(t *testing.T) {
	for _, tm := range tetris.Catalog() {
		_, ok := palette[tm.Color]
		assert.True(t, ok, tm.Name)
	}
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, RGBA(core.ColorDefault))
	assert.Less(t, RGBA(core.ColorScrim).A, uint8(255))
}

func TestFontsCacheFaces(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)

	a, err := fonts.Face(20)
	require.NoError(t, err)
	b, err := fonts.Face(20)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Len(t, fonts.faces, 1)

	_, err = fonts.Face(0)
	require.NoError(t, err)
	assert.Contains(t, fonts.faces, 1)
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	fonts, err := NewFonts()
	require.NoError(t, err)

	rules := tetris.DefaultRules()
	s := session.New(rules, nil, nil, nil)
	s.Start(core.RuntimeConfig{Seed: 5})
	return NewGame(s, rules, tetris.WindowLayout(30, 1), fonts, nil)
}

func TestGameLayoutIsFixed(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 507, w)
	assert.Equal(t, 606, h)
}

func TestPressQuitTerminates(t *testing.T) {
	g := newTestGame(t)

	assert.ErrorIs(t, g.press(core.ActionQuit), ebiten.Termination)
	assert.NoError(t, g.press(core.ActionNone))
}

func TestPressRestartResumesTicking(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 10000; i++ {
		if !g.session.Running() {
			break
		}
		require.NoError(t, g.press(core.ActionDown))
	}
	require.False(t, g.session.Running())

	g.ticking = g.session.Tick(time.Now())
	require.False(t, g.ticking)

	require.NoError(t, g.press(core.ActionRestart))
	assert.True(t, g.ticking)
	assert.True(t, g.session.Running())
}
