package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/H, Right/L   - Move
  Down/J            - Soft drop one row
  Up/K/Space        - Rotate
  P                 - Pause
  R                 - Restart (after game over)
  M                 - Music on/off
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Speed rises half as fast
  normal - 1000ms, -500ms per level, 100ms floor
  hard   - Starts at half the base interval
  fixed  - No speed progression, levels still count

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42 --log-file tetris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The program owns the terminal, so logs only go to --log-file.
	a, err := newApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	needW, needH := tui.RequiredSize(a.rules)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, needW, needH)
	}

	if err := tui.Run(a.session, a.rules, a.runtime); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	printSummary(cmd, a)
	return nil
}

// printSummary lists the session's results after the program exits.
func printSummary(cmd *cobra.Command, a *app) {
	results, err := a.session.Leaderboard(5)
	if err != nil || len(results) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s\n\n", a.session.Name())
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Level", "Lines")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "-----")
	for i, r := range results {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %d\n", i+1, r.Score, r.Level, r.Lines)
	}

	if a.store == nil {
		return
	}
	if stats, err := a.store.Stats(); err == nil {
		fmt.Fprintf(out, "\n%d games, best %d, average %.0f, %d lines\n",
			stats.Games, stats.Best, stats.AvgScore, stats.TotalLines)
	}
}
