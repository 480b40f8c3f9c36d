package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Configuration is looked up in this order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Use --defaults to print the commented built-in file, a good starting
point for a custom config.

Examples:
  snake config
  snake config --defaults > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}

		cfg, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}
