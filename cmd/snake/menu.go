package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start with a difficulty picker.

After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  1/2/3        - Quick pick
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --seed 7`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(rt, cfg.Speed)
		if err != nil {
			return err
		}

		// Update config with any size changes and the chosen difficulty
		rt = result.Config
		if result.Quit {
			return nil
		}

		logger.Info("difficulty selected", "difficulty", result.Difficulty)
		if err := tui.Run(tui.Options{Runtime: rt, Config: cfg, Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Refresh the size, the terminal may have changed during play
		rt.ScreenW, rt.ScreenH = terminalSize()
	}
}
