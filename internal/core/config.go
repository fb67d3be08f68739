package core

// RuntimeConfig is handed to the session when a game starts. Screen size is
// not part of it: each platform sizes its surface from the board layout.
type RuntimeConfig struct {
	TickRate int   // Descent polls per second
	Seed     int64 // 0 picks a seed from the clock
}

// DefaultConfig polls at 60 Hz with a clock seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{TickRate: 60}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 1
	Lines    int  // Total rows cleared this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each handled input.
type StepResult struct {
	State GameState
}
