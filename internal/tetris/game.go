// Package tetris implements the falling-block game: the playfield, the
// tetromino catalog, collision, line clearing, scoring and the controller
// that drives them. It knows nothing about terminals or windows; platforms
// feed it actions and clock readings and hand it a core.Surface to draw on.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Display is a text readout the game overwrites whenever its state changes.
type Display interface {
	SetText(text string)
}

// Music is the background track as seen by the game: it is only ever stopped.
type Music interface {
	Pause()
	IsPlaying() bool
}

// Option configures a Game.
type Option func(*Game)

// WithScoreDisplay sets the readout that receives "Score: N".
func WithScoreDisplay(d Display) Option {
	return func(g *Game) { g.scoreDisplay = d }
}

// WithLevelDisplay sets the readout that receives "Niveau: N".
func WithLevelDisplay(d Display) Option {
	return func(g *Game) { g.levelDisplay = d }
}

// WithMusic sets the track that is stopped on game over.
func WithMusic(m Music) Option {
	return func(g *Game) { g.music = m }
}

// ScoreText formats the score readout.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// LevelText formats the level readout.
func LevelText(level int) string {
	return fmt.Sprintf("Niveau: %d", level)
}

// LinesText formats the cleared-rows readout.
func LinesText(lines int) string {
	return fmt.Sprintf("Lignes: %d", lines)
}

// Game is the controller. It owns the grid, the falling piece and the
// score/level/speed state, and applies one transition per call.
type Game struct {
	rules Rules
	rng   *rand.Rand

	grid  *Grid
	piece Piece

	score int
	level int
	lines int
	speed time.Duration

	gameOver bool
	paused   bool
	moves    uint64 // Accepted commands, for snapshots
	locks    uint64

	descent Descent

	scoreDisplay Display
	levelDisplay Display
	music        Music
}

// New creates a game. Call Reset before playing.
func New(rules Rules, opts ...Option) *Game {
	g := &Game{rules: rules}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session: empty grid, score 0, level 1, a fresh piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = NewGrid(g.rules.Rows, g.rules.Cols)
	g.score = 0
	g.level = 1
	g.lines = 0
	g.speed = g.rules.Speed.Interval(1)
	g.gameOver = false
	g.paused = false
	g.moves = 0
	g.locks = 0
	g.descent.Reset()

	g.spawn()
	g.publish()
}

// spawn replaces the current piece with a random catalog entry at the top.
// A piece that collides where it appears ends the game.
func (g *Game) spawn() {
	g.piece = Spawn(TetrominoOf(Kind(g.rng.Intn(CatalogSize))), g.grid.Cols())
	if g.piece.collides(g.grid) {
		g.endGame()
	}
}

// active reports whether gameplay commands are accepted.
func (g *Game) active() bool {
	return !g.gameOver && !g.paused
}

// MoveLeft shifts the piece one column left unless that collides.
func (g *Game) MoveLeft() {
	g.shift(-1)
}

// MoveRight shifts the piece one column right unless that collides.
func (g *Game) MoveRight() {
	g.shift(1)
}

func (g *Game) shift(dx int) {
	if !g.active() {
		return
	}
	g.piece.X += dx
	if g.piece.collides(g.grid) {
		g.piece.X -= dx
		return
	}
	g.moves++
}

// Rotate turns the piece clockwise in place. A rotation that collides is
// rejected outright; there is no wall kick.
func (g *Game) Rotate() {
	if !g.active() {
		return
	}
	original := g.piece.Shape
	g.piece.Shape = original.Rotate()
	if g.piece.collides(g.grid) {
		g.piece.Shape = original
		return
	}
	g.moves++
}

// MoveDown drops the piece one row. When it cannot descend it is locked into
// the grid, complete rows are cleared and scored, and the next piece spawns.
func (g *Game) MoveDown() {
	if !g.active() {
		return
	}
	g.piece.Y++
	if !g.piece.collides(g.grid) {
		g.moves++
		return
	}
	g.piece.Y--
	g.lock()
	g.clearLines()
	g.spawn()
	g.publish()
}

// lock copies the piece's cells into the grid. Cells above the top are lost.
func (g *Game) lock() {
	color := g.piece.Color
	g.piece.Cells(func(row, col int) {
		if row >= 0 {
			g.grid.Set(row, col, color)
		}
	})
	g.locks++
}

// clearLines removes complete rows and scores them.
func (g *Game) clearLines() int {
	n := ClearLines(g.grid)
	if n == 0 {
		return 0
	}
	g.lines += n
	g.score += g.rules.Scoring.Points(n)
	g.updateLevel()
	return n
}

// endGame is the one-way switch into the terminal state.
func (g *Game) endGame() {
	g.gameOver = true
	if g.music != nil && g.music.IsPlaying() {
		g.music.Pause()
	}
}

// publish pushes the readouts to the injected displays.
func (g *Game) publish() {
	if g.scoreDisplay != nil {
		g.scoreDisplay.SetText(ScoreText(g.score))
	}
	if g.levelDisplay != nil {
		g.levelDisplay.SetText(LevelText(g.level))
	}
}

// Step applies the actions of one input event. Movement keys are ignored
// while paused or after game over; restart is only honoured after game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	switch {
	case in.Has(core.ActionLeft):
		g.MoveLeft()
	case in.Has(core.ActionRight):
		g.MoveRight()
	case in.Has(core.ActionDown):
		g.MoveDown()
	case in.Has(core.ActionRotate):
		g.Rotate()
	}

	return core.StepResult{State: g.State()}
}

// Tick feeds the automatic descent timer a clock reading. It returns false
// once the game is over, after which the platform stops polling.
func (g *Game) Tick(now time.Time) bool {
	return g.descent.Poll(g, now)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid returns the playfield. Callers must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Piece returns a copy of the falling piece.
func (g *Game) Piece() Piece {
	p := g.piece
	p.Shape = p.Shape.Clone()
	return p
}

// Speed returns the current automatic descent interval.
func (g *Game) Speed() time.Duration {
	return g.speed
}
