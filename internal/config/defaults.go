package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It mirrors
// defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: DefaultSpeedConfig(),
		Grid: GridConfig{
			CellWidth: 2,
			Breakpoints: []Breakpoint{
				{MaxWidth: 60, Columns: 20},
				{MaxWidth: 100, Columns: 30},
				{Columns: 40},
			},
			MinColumns:   8,
			MinRows:      6,
			FoodAttempts: 1000,
		},
	}
}

// DefaultSpeedConfig returns the classic intervals: easy 200ms, medium
// 120ms, hard 60ms, 5ms faster per food down to 50ms.
func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{
		EasyMs:      200,
		MediumMs:    120,
		HardMs:      60,
		DefaultMs:   120,
		DecrementMs: 5,
		FloorMs:     50,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
