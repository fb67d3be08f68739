// Package audio plays the background track. The game only sees the Player
// contract; the track itself is decoded and looped by ebiten's audio stack,
// and a silent player stands in when no track is configured.
package audio

// Player is a background track that can be started and stopped.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
}

// Silent is a Player with no sound. It keeps the play/pause state so the
// toggle and its label behave the same with or without a track.
type Silent struct {
	playing bool
}

// Play marks the track as playing.
func (s *Silent) Play() { s.playing = true }

// Pause marks the track as stopped.
func (s *Silent) Pause() { s.playing = false }

// IsPlaying reports the current state.
func (s *Silent) IsPlaying() bool { return s.playing }

// Toggle labels
const (
	LabelOn  = "Musique: ON"
	LabelOff = "Musique: OFF"
)

// Toggle is the music button: it flips the track between playing and paused
// and exposes the label to show for the current state.
type Toggle struct {
	player Player
}

// NewToggle wraps p. A nil player is replaced by a silent one.
func NewToggle(p Player) *Toggle {
	if p == nil {
		p = &Silent{}
	}
	return &Toggle{player: p}
}

// Toggle plays a paused track or pauses a playing one and returns the new
// label.
func (t *Toggle) Toggle() string {
	if t.player.IsPlaying() {
		t.player.Pause()
	} else {
		t.player.Play()
	}
	return t.Label()
}

// Label returns "Musique: ON" while playing and "Musique: OFF" otherwise.
func (t *Toggle) Label() string {
	if t.player.IsPlaying() {
		return LabelOn
	}
	return LabelOff
}

// Play starts the track.
func (t *Toggle) Play() { t.player.Play() }

// Pause stops the track.
func (t *Toggle) Pause() { t.player.Pause() }

// IsPlaying reports whether the track is playing.
func (t *Toggle) IsPlaying() bool { return t.player.IsPlaying() }
