package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// keyActions maps window keys to actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowUp:    core.ActionRotate,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyM:          core.ActionToggleMusic,
	ebiten.KeyEscape:     core.ActionQuit,
}

// ActionFor returns the action bound to k, or ActionNone.
func ActionFor(k ebiten.Key) core.Action {
	return keyActions[k]
}

// Game adapts a session to ebiten's game loop.
type Game struct {
	session *session.Session
	layout  tetris.Layout
	surface *Surface
	width   int
	height  int
	ticking bool
	title   string
	keys    []ebiten.Key
	logger  *log.Logger
	now     func() time.Time
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the window game for s. The session must already be started.
func NewGame(s *session.Session, rules tetris.Rules, layout tetris.Layout, fonts *Fonts, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := layout.Size(rules.Rows, rules.Cols)
	return &Game{
		session: s,
		layout:  layout,
		surface: NewSurface(fonts),
		width:   w,
		height:  h,
		ticking: s.Running(),
		logger:  logger,
		now:     time.Now,
	}
}

// Update applies the keys pressed since the last frame, then polls the
// descent timer. Escape ends the program.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.press(ActionFor(k)); err != nil {
			return err
		}
	}

	if g.ticking {
		g.ticking = g.session.Tick(g.now())
	}

	if title := g.session.Title(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// press handles one action. A restart resumes the descent timer.
func (g *Game) press(a core.Action) error {
	if a == core.ActionNone {
		return nil
	}
	wasRunning := g.session.Running()
	if g.session.Handle(a) {
		return ebiten.Termination
	}
	if !wasRunning && g.session.Running() {
		g.ticking = true
	}
	return nil
}

// Draw renders the session onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.session.Render(g.surface, g.layout)
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(s *session.Session, rules tetris.Rules, cfg core.RuntimeConfig, layout tetris.Layout, logger *log.Logger) error {
	fonts, err := NewFonts()
	if err != nil {
		return err
	}

	s.Start(cfg)
	game := NewGame(s, rules, layout, fonts, logger)

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(s.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	game.logger.Info("window opened", "width", game.width, "height", game.height)
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	return nil
}
