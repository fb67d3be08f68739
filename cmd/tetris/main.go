// tetris is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	tetris                   - Play in the terminal
//	tetris play              - Play in the terminal
//	tetris window            - Play in a desktop window
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Override the descent polling rate
//	--seed <value>         - Set RNG seed for reproducible piece order
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks and clear lines",
	Long: `A falling-block puzzle game. Move and rotate the falling piece,
complete rows to clear them and score; every 1000 points the level
rises and pieces fall faster.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris window --seed 42
  tetris config --difficulty easy`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Descent polling rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
