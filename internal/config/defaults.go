package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Scoring: ScoringConfig{
			LinePoints: map[int]int{
				1: 100,
				2: 300,
				3: 500,
				4: 800,
			},
			FallbackPerLine: 100,
			LevelEvery:      1000,
		},
		Speed: SpeedConfig{
			BaseMS:      1000,
			IncrementMS: 500,
			FloorMS:     100,
		},
		Display: DisplayConfig{
			TickRate:  60,
			BlockSize: 30,
			Inset:     1,
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
