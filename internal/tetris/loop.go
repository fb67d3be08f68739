package tetris

import "time"

// Descent drives automatic falling. It is polled at the platform's frame
// rate and moves the piece down once more than the current speed has elapsed
// since it last fired. Late polls fire once, they do not catch up.
type Descent struct {
	last  time.Time
	armed bool
}

// Reset disarms the timer; the next poll starts a fresh interval.
func (d *Descent) Reset() {
	d.armed = false
	d.last = time.Time{}
}

// Poll advances g if the interval has elapsed. It reports whether polling
// should continue, which is false exactly once the game is over.
func (d *Descent) Poll(g *Game, now time.Time) bool {
	if g.gameOver {
		return false
	}
	if !d.armed || g.paused {
		d.last = now
		d.armed = true
		return true
	}
	if now.Sub(d.last) > g.speed {
		g.MoveDown()
		d.last = now
	}
	return !g.gameOver
}
