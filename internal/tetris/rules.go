package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Playfield and speed constants of the standard game.
const (
	DefaultRows = 20
	DefaultCols = 10

	BaseSpeed      = 1000 * time.Millisecond
	SpeedIncrement = 500 * time.Millisecond
	FloorSpeed     = 100 * time.Millisecond
)

// Rules holds everything that varies between configurations.
type Rules struct {
	Rows    int
	Cols    int
	Scoring Scoring
	Speed   SpeedCurve
}

// DefaultRules returns the standard 20x10 rules.
func DefaultRules() Rules {
	return Rules{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Scoring: DefaultScoring(),
		Speed: SpeedCurve{
			Base:      BaseSpeed,
			Increment: SpeedIncrement,
			Floor:     FloorSpeed,
		},
	}
}

// RulesFromConfig converts a loaded configuration into game rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	points := make(map[int]int, len(cfg.Scoring.LinePoints))
	for lines, p := range cfg.Scoring.LinePoints {
		points[lines] = p
	}
	return Rules{
		Rows: cfg.Board.Rows,
		Cols: cfg.Board.Cols,
		Scoring: Scoring{
			LinePoints:      points,
			FallbackPerLine: cfg.Scoring.FallbackPerLine,
			LevelEvery:      cfg.Scoring.LevelEvery,
		},
		Speed: SpeedCurve{
			Base:      time.Duration(cfg.Speed.BaseMS) * time.Millisecond,
			Increment: time.Duration(cfg.Speed.IncrementMS) * time.Millisecond,
			Floor:     time.Duration(cfg.Speed.FloorMS) * time.Millisecond,
			Fixed:     cfg.Speed.Fixed,
		},
	}
}
