package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game at the chosen difficulty.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/Enter       - Start, or resume when paused
  P                 - Pause
  R                 - Restart
  1/2/3             - Easy/Medium/Hard (restarts)
  Tab               - Next difficulty (restarts)
  ?                 - Help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 200ms per step
  medium - 120ms per step
  hard   - 60ms per step
Each food eaten makes the snake 5ms faster, down to 50ms.

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --log-file snake.log --debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Runtime: runtimeConfig(),
		Config:  cfg,
		Logger:  logger,
	})
}
