// Package session runs one player's games: it owns the controller, the music
// toggle and the leaderboard, logs what happens between steps and records
// each finished game exactly once. Platforms drive a Session and draw it;
// they never touch the game directly.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Session is a sequence of games played in one process.
type Session struct {
	name   string
	game   *tetris.Game
	music  *audio.Toggle
	store  *storage.Store
	logger *log.Logger

	scoreLabel *core.Label
	levelLabel *core.Label

	last     core.GameState
	recorded bool
	best     int
}

// New creates a session. store may be nil, in which case nothing is
// recorded; a nil logger discards output.
func New(rules tetris.Rules, music audio.Player, store *storage.Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		name:       petname.Generate(2, "-"),
		music:      audio.NewToggle(music),
		store:      store,
		logger:     logger,
		scoreLabel: core.NewLabel(tetris.ScoreText(0)),
		levelLabel: core.NewLabel(tetris.LevelText(1)),
	}
	s.game = tetris.New(rules,
		tetris.WithScoreDisplay(s.scoreLabel),
		tetris.WithLevelDisplay(s.levelLabel),
		tetris.WithMusic(s.music),
	)
	return s
}

// Start begins the first game. A zero seed is replaced by the clock.
func (s *Session) Start(cfg core.RuntimeConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s.game.Reset(cfg)
	s.last = s.game.State()
	s.recorded = false

	s.logger.Info("session started", "player", s.name, "seed", cfg.Seed, "speed", s.game.Speed())
}

// Handle applies one action. It returns true when the player asked to quit.
func (s *Session) Handle(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		s.logger.Info("quit", "score", s.last.Score)
		return true
	case core.ActionToggleMusic:
		s.logger.Info("music toggled", "music", s.music.Toggle())
		return false
	case core.ActionNone:
		return false
	}

	res := s.game.Step(core.FrameOf(a))
	s.observe(res.State)
	return false
}

// Tick polls the descent timer. It returns false once the game is over.
func (s *Session) Tick(now time.Time) bool {
	keep := s.game.Tick(now)
	s.observe(s.game.State())
	return keep
}

// observe logs what changed since the previous state and records the result
// when a game ends.
func (s *Session) observe(st core.GameState) {
	prev := s.last
	s.last = st

	if prev.GameOver && !st.GameOver {
		s.recorded = false
		s.logger.Info("restart", "player", s.name)
		return
	}
	if st.Lines > prev.Lines {
		s.logger.Debug("lines cleared", "count", st.Lines-prev.Lines, "total", st.Lines, "score", st.Score)
	}
	if st.Level != prev.Level {
		s.logger.Info("level up", "level", st.Level, "speed", s.game.Speed())
	}
	if st.Paused != prev.Paused {
		s.logger.Debug("pause", "paused", st.Paused)
	}
	if st.GameOver && !prev.GameOver {
		s.logger.Info("game over", "score", st.Score, "level", st.Level, "lines", st.Lines)
		s.record(st)
	}
}

// record saves the finished game once. Storage failures are logged and the
// session carries on without them.
func (s *Session) record(st core.GameState) {
	if s.recorded {
		return
	}
	s.recorded = true
	s.best = max(s.best, st.Score)

	if s.store == nil {
		return
	}
	r, err := s.store.SaveResult(s.name, st.Score, st.Level, st.Lines)
	if err != nil {
		s.logger.Warn("result not recorded", "err", err)
		return
	}
	if n, err := s.store.Count(); err == nil {
		s.logger.Debug("result recorded", "id", r.ID, "games", n)
	}
	if best, err := s.store.Best(); err == nil {
		s.best = best
	}
}

// Render draws the game with the music label and best score in the HUD.
func (s *Session) Render(dst core.Surface, l tetris.Layout) {
	s.game.Render(dst, l, s.HUDLines()...)
}

// HUDLines returns the lines shown below the score readouts.
func (s *Session) HUDLines() []string {
	lines := []string{s.music.Label()}
	if s.best > 0 {
		lines = append(lines, BestText(s.best))
	}
	return lines
}

// BestText formats the best score of the session.
func BestText(best int) string {
	return fmt.Sprintf("Record: %d", best)
}

// Leaderboard returns the best n results of the session. It is empty when
// the session has no store.
func (s *Session) Leaderboard(n int) ([]storage.Result, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.TopResults(n)
}

// Title is a one-line summary for window titles and status lines, fed by the
// game's score and level displays.
func (s *Session) Title() string {
	return fmt.Sprintf("%s | %s | %s", s.game.Title(), s.scoreLabel.Text(), s.levelLabel.Text())
}

// Name returns the generated player name.
func (s *Session) Name() string { return s.name }

// State returns the state as of the last action or tick.
func (s *Session) State() core.GameState { return s.game.State() }

// Running reports whether the current game is still in play.
func (s *Session) Running() bool { return !s.game.State().GameOver }

// Music returns the music toggle.
func (s *Session) Music() *audio.Toggle { return s.music }

// Game returns the controller, for rendering and inspection.
func (s *Session) Game() *tetris.Game { return s.game }
