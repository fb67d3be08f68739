package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Leaderboard layout constants
const (
	maxResults  = 10 // Rows shown on the game over panel
	boardHeight = maxResults + 1
)

// newLeaderboard creates the session leaderboard table. The row of the game
// that just ended is selected so it stands out.
func newLeaderboard(results []storage.Result, latest string) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Joueur", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Niv.", Width: 4},
		{Title: "Lignes", Width: 6},
		{Title: "Heure", Width: 8},
	}

	rows := make([]table.Row, len(results))
	cursor := 0
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Session,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Lines),
			r.CreatedAt.Format("15:04:05"),
		}
		if r.ID == latest {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(boardHeight),
	)
	t.SetCursor(cursor)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// renderLeaderboard renders the table in a titled panel.
func renderLeaderboard(t table.Model) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("MEILLEURS SCORES"),
		t.View(),
	))
}
