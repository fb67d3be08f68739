package tetris

import "time"

// GameStateType names the controller state.
type GameStateType string

const (
	StateFalling  GameStateType = "falling"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Moves  uint64
	Locks  uint64
	Score  int
	Level  int
	Lines  int
	Speed  time.Duration
	Piece  Kind
	PieceX int
	PieceY int
	Board  string // Grid.String()
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Moves:  g.moves,
		Locks:  g.locks,
		Score:  g.score,
		Level:  g.level,
		Lines:  g.lines,
		Speed:  g.speed,
		Piece:  g.piece.Kind,
		PieceX: g.piece.X,
		PieceY: g.piece.Y,
		Board:  g.grid.String(),
		State:  state,
	}
}
