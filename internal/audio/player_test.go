package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	playing bool
	plays   int
	pauses  int
}

func (f *fakePlayer) Play()           { f.playing = true; f.plays++ }
func (f *fakePlayer) Pause()          { f.playing = false; f.pauses++ }
func (f *fakePlayer) IsPlaying() bool { return f.playing }

func TestToggleFlipsState(t *testing.T) {
	p := &fakePlayer{}
	tg := NewToggle(p)

	assert.Equal(t, LabelOff, tg.Label())

	assert.Equal(t, LabelOn, tg.Toggle())
	assert.True(t, p.IsPlaying())
	assert.Equal(t, 1, p.plays)

	assert.Equal(t, LabelOff, tg.Toggle())
	assert.False(t, p.IsPlaying())
	assert.Equal(t, 1, p.pauses)
}

func TestToggleFollowsExternalPause(t *testing.T) {
	p := &fakePlayer{}
	tg := NewToggle(p)
	tg.Toggle()

	// The game pauses the track on game over without going through the toggle.
	tg.Pause()

	assert.Equal(t, LabelOff, tg.Label())
	assert.Equal(t, LabelOn, tg.Toggle())
}

func TestNilPlayerIsSilent(t *testing.T) {
	tg := NewToggle(nil)

	assert.False(t, tg.IsPlaying())
	assert.Equal(t, LabelOn, tg.Toggle())
	assert.True(t, tg.IsPlaying())
	assert.Equal(t, LabelOff, tg.Toggle())
}

func TestLoadWithoutTrack(t *testing.T) {
	p := Load("", 0.5, nil)

	_, ok := p.(*Silent)
	assert.True(t, ok)
}

func TestLoadMissingTrackFallsBack(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "missing.ogg"), 0.5, nil)

	_, ok := p.(*Silent)
	assert.True(t, ok)
}

func TestOpenTrackRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	_, err := OpenTrack(path, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
