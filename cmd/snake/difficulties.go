package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and their starting speed from the active configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		printDifficulties(cmd.OutOrStdout(), cfg.Speed)
		return nil
	},
}

func printDifficulties(w io.Writer, speed config.SpeedConfig) {
	fmt.Fprintln(w, "Available difficulties:")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-8s  %s\n", "Name", "Interval")
	fmt.Fprintf(w, "  %-8s  %s\n", "----", "--------")

	for _, d := range config.Difficulties() {
		fmt.Fprintf(w, "  %-8s  %dms\n", d, speed.InitialInterval(d).Milliseconds())
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Each food is %dms faster, down to %dms.\n", speed.DecrementMs, speed.FloorMs)
	fmt.Fprintf(w, "Unknown names play at %dms.\n", speed.DefaultMs)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play --difficulty <name>' to play.")
}
