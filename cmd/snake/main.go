// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play at the default difficulty
//	snake play               - Same as above
//	snake menu               - Pick a difficulty, play, return to the menu
//	snake difficulties       - List difficulty presets
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--difficulty <name>  - easy, medium or hard (default: medium)
//	--config <path>      - Custom tuning YAML
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake in the terminal. Steer the snake over a wrap-around board,
eat food to grow and speed up, and avoid biting yourself.

Available commands:
  play          - Start a game (default)
  menu          - Difficulty picker, returns after each game
  difficulties  - Show difficulty presets
  config        - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake menu
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(configCmd)
}
