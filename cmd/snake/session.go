package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// newLogger opens the log destination. The TUI owns the terminal, so logs
// are discarded unless a file is given.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig builds the session config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Seed:       flagSeed,
		Difficulty: flagDifficulty,
	}
}

// loadConfig loads the tuning file and warns about unknown difficulties.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if _, ok := config.ParseDifficulty(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using %dms\n", flagDifficulty, cfg.Speed.DefaultMs)
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", flagDifficulty)
	return cfg, nil
}
