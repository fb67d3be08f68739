package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/window"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Arrows   - Move, soft drop (down) and rotate (up)
  P        - Pause
  R        - Restart (after game over)
  M        - Music on/off
  Esc      - Quit

Examples:
  tetris window
  tetris window --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	a, err := newApp(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	layout := tetris.WindowLayout(a.cfg.Display.BlockSize, a.cfg.Display.Inset)
	if err := window.Run(a.session, a.rules, a.runtime, layout, a.logger); err != nil {
		return fmt.Errorf("error running window: %w", err)
	}

	printSummary(cmd, a)
	return nil
}
