package tetris

import "time"

// SpeedCurve turns a level into an automatic descent interval.
type SpeedCurve struct {
	Base      time.Duration
	Increment time.Duration
	Floor     time.Duration
	Fixed     bool // Stay at Base for every level
}

// Interval returns max(Base - (level-1)*Increment, Floor).
func (c SpeedCurve) Interval(level int) time.Duration {
	if c.Fixed || level <= 1 {
		return max(c.Base, c.Floor)
	}
	return max(c.Base-time.Duration(level-1)*c.Increment, c.Floor)
}

// updateLevel recomputes level and speed from the score. Calling it without
// a threshold crossing leaves both unchanged. Returns true on a level change.
func (g *Game) updateLevel() bool {
	level := g.rules.Scoring.Level(g.score)
	if level == g.level {
		return false
	}
	g.level = level
	g.speed = g.rules.Speed.Interval(level)
	return true
}
