package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// app is everything a play mode needs, built from flags and config.
type app struct {
	cfg     config.TetrisConfig
	rules   tetris.Rules
	runtime core.RuntimeConfig
	session *session.Session
	store   *storage.Store
	logger  *log.Logger
	logFile *os.File
}

// loadConfig reads the configuration and applies the difficulty preset.
func loadConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, preset, nil
}

// newLogger writes to --log-file when set, otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var file *os.File
	if flagLogFile != "" {
		file, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = file
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, file, nil
}

// newApp wires config, logging, music, leaderboard and session. Music and
// leaderboard failures are logged and the game runs without them.
func newApp(logFallback io.Writer) (*app, error) {
	logger, logFile, err := newLogger(logFallback)
	if err != nil {
		return nil, err
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("leaderboard disabled", "err", err)
		store = nil
	}

	rules := tetris.RulesFromConfig(cfg)
	music := audio.Load(cfg.Audio.Track, cfg.Audio.Volume, logger)
	s := session.New(rules, music, store, logger)
	if cfg.Audio.Autoplay {
		s.Music().Play()
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Display.TickRate
	runtime.Seed = flagSeed

	logger.Info("config loaded", "preset", preset, "board", fmt.Sprintf("%dx%d", rules.Rows, rules.Cols), "tick_rate", cfg.Display.TickRate)

	return &app{
		cfg:     cfg,
		rules:   rules,
		runtime: runtime,
		session: s,
		store:   store,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// Close releases the leaderboard and the log file.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
