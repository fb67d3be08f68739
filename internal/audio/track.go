package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate of the shared audio context.
const SampleRate = 44100

// ErrUnsupportedFormat is returned for tracks that are neither .ogg nor .wav.
var ErrUnsupportedFormat = errors.New("audio: unsupported track format")

// Track is a looping background track backed by an ebiten audio player.
type Track struct {
	player *audio.Player
}

var _ Player = (*Track)(nil)

// sharedContext returns the process-wide audio context, creating it on first use.
// Ebiten allows only one context per process.
func sharedContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// OpenTrack decodes the .ogg or .wav file at path into an endlessly looping
// track. volume is clamped to [0, 1]. The track starts paused.
func OpenTrack(path string, volume float64) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: read track: %w", err)
	}

	stream, length, err := decode(filepath.Ext(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}

	player, err := sharedContext().NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("audio: create player: %w", err)
	}
	player.SetVolume(min(max(volume, 0), 1))

	return &Track{player: player}, nil
}

func decode(ext string, r *bytes.Reader) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(ext) {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Play resumes the loop where it was paused.
func (t *Track) Play() { t.player.Play() }

// Pause stops playback.
func (t *Track) Pause() { t.player.Pause() }

// IsPlaying reports whether the loop is playing.
func (t *Track) IsPlaying() bool { return t.player.IsPlaying() }

// Close releases the player.
func (t *Track) Close() error { return t.player.Close() }

// Load opens the track at path. An empty path, or a track that cannot be
// opened, yields a silent player; the failure is logged, not returned.
func Load(path string, volume float64, logger *log.Logger) Player {
	if path == "" {
		return &Silent{}
	}
	track, err := OpenTrack(path, volume)
	if err != nil {
		if logger != nil {
			logger.Warn("music disabled", "track", path, "err", err)
		}
		return &Silent{}
	}
	return track
}
