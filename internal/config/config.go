// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Smallest board every tetromino fits on.
const (
	MinRows = 4
	MinCols = 4
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ScoringConfig defines points per lock and level thresholds.
type ScoringConfig struct {
	LinePoints      map[int]int `yaml:"line_points"`       // Rows cleared in one lock -> points
	FallbackPerLine int         `yaml:"fallback_per_line"` // Points per row for counts missing from LinePoints
	LevelEvery      int         `yaml:"level_every"`       // Score needed per level
}

// SpeedConfig defines the automatic descent interval curve, in milliseconds.
type SpeedConfig struct {
	BaseMS      int  `yaml:"base_ms"`
	IncrementMS int  `yaml:"increment_ms"`
	FloorMS     int  `yaml:"floor_ms"`
	Fixed       bool `yaml:"fixed"` // Keep BaseMS regardless of level
}

// DisplayConfig defines platform timing and window geometry.
type DisplayConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Polling rate of the descent timer
	BlockSize int `yaml:"block_size"` // Window pixels per grid cell
	Inset     int `yaml:"inset"`      // Window pixels left empty between blocks
}

// AudioConfig defines the background track.
type AudioConfig struct {
	Track    string  `yaml:"track"` // .ogg or .wav; empty means silence
	Volume   float64 `yaml:"volume"`
	Autoplay bool    `yaml:"autoplay"`
}

// Validate reports the first setting the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinRows || c.Board.Cols < MinCols {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d", MinRows, MinCols, c.Board.Rows, c.Board.Cols))
	}
	if c.Scoring.LevelEvery <= 0 {
		errs = append(errs, fmt.Errorf("scoring.level_every must be positive, got %d", c.Scoring.LevelEvery))
	}
	if c.Scoring.FallbackPerLine < 0 {
		errs = append(errs, fmt.Errorf("scoring.fallback_per_line must not be negative, got %d", c.Scoring.FallbackPerLine))
	}
	for lines, points := range c.Scoring.LinePoints {
		if lines <= 0 || points < 0 {
			errs = append(errs, fmt.Errorf("scoring.line_points has invalid entry %d: %d", lines, points))
		}
	}
	if c.Speed.BaseMS <= 0 || c.Speed.FloorMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.base_ms and speed.floor_ms must be positive"))
	}
	if c.Speed.IncrementMS < 0 {
		errs = append(errs, fmt.Errorf("speed.increment_ms must not be negative, got %d", c.Speed.IncrementMS))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if c.Display.BlockSize <= 0 || c.Display.Inset < 0 || c.Display.Inset >= c.Display.BlockSize {
		errs = append(errs, fmt.Errorf("display.inset must be in [0, block_size)"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
