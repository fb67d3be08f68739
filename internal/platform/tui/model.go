package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	session *session.Session
	layout  tetris.Layout
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	ticking  bool // Whether a TickMsg is in flight
	quitting bool

	results []storage.Result
	board   table.Model
}

// NewModel creates a new Bubble Tea model for the session. The screen is
// sized to fit the well and HUD for the given rules.
func NewModel(s *session.Session, rules tetris.Rules, cfg core.RuntimeConfig) Model {
	layout := tetris.TerminalLayout()
	sw, sh := layout.Size(rules.Rows, rules.Cols)

	h := help.New()
	h.ShowAll = false

	return Model{
		session: s,
		layout:  layout,
		screen:  core.NewScreen(sw, sh),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		ticking: true,
	}
}

// RequiredSize returns the terminal size the model needs for rules.
func RequiredSize(rules tetris.Rules) (w, h int) {
	w, h = tetris.TerminalLayout().Size(rules.Rows, rules.Cols)
	return w, h + 2 // Status and help lines
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies the action bound to a key before the next render.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)
	wasRunning := m.session.Running()

	if m.session.Handle(action) {
		m.quitting = true
		return m, tea.Quit
	}

	running := m.session.Running()
	switch {
	case wasRunning && !running:
		m.onGameOver()
	case !wasRunning && running:
		m.keys.SetGameOver(false)
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickRate)
		}
	}

	return m, nil
}

// handleTick polls the descent timer. The loop stops once the game is over
// and is restarted by a restart key.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasRunning := m.session.Running()

	if !m.session.Tick(now) {
		m.ticking = false
		if wasRunning {
			m.onGameOver()
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// onGameOver loads the leaderboard and swaps the bindings.
func (m *Model) onGameOver() {
	m.keys.SetGameOver(true)

	results, err := m.session.Leaderboard(maxResults)
	if err != nil {
		results = nil
	}
	m.results = results

	var latest storage.Result
	for _, r := range results {
		if r.Session == m.session.Name() && r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	m.board = newLeaderboard(results, latest.ID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.screen.Width(), m.screen.Height()+2
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal trop petit: %dx%d requis, %dx%d disponible", needW, needH, m.width, m.height)
	}

	m.session.Render(m.screen, m.layout)
	view := RenderScreen(m.screen)

	if !m.session.Running() && len(m.results) > 0 {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", renderLeaderboard(m.board))
	}

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return lipgloss.JoinVertical(lipgloss.Left,
		view,
		statusStyle.Render(m.session.Title()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for the session.
func Run(s *session.Session, rules tetris.Rules, cfg core.RuntimeConfig) error {
	model := NewModel(s, rules, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
