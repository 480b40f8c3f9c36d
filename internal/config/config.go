// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	Speed SpeedConfig `yaml:"speed"`
	Grid  GridConfig  `yaml:"grid"`
}

// SpeedConfig defines tick intervals and how they shrink as the score grows.
type SpeedConfig struct {
	EasyMs      int `yaml:"easy_ms"`
	MediumMs    int `yaml:"medium_ms"`
	HardMs      int `yaml:"hard_ms"`
	DefaultMs   int `yaml:"default_ms"`   // Fallback for unrecognized difficulties
	DecrementMs int `yaml:"decrement_ms"` // Interval reduction per food eaten
	FloorMs     int `yaml:"floor_ms"`     // Interval never drops below this
}

// GridConfig defines how the playfield is laid out on the terminal.
type GridConfig struct {
	CellWidth    int          `yaml:"cell_width"` // Terminal columns per cell
	Breakpoints  []Breakpoint `yaml:"breakpoints"`
	MinColumns   int          `yaml:"min_columns"`
	MinRows      int          `yaml:"min_rows"`
	FoodAttempts int          `yaml:"food_attempts"`
}

// Breakpoint picks a column count for terminals up to MaxWidth characters.
// MaxWidth 0 matches any width.
type Breakpoint struct {
	MaxWidth int `yaml:"max_width,omitempty"`
	Columns  int `yaml:"columns"`
}

// Columns returns the column count for the given terminal width.
func (g GridConfig) Columns(width int) int {
	for _, bp := range g.Breakpoints {
		if bp.MaxWidth == 0 || width <= bp.MaxWidth {
			return bp.Columns
		}
	}
	if n := len(g.Breakpoints); n > 0 {
		return g.Breakpoints[n-1].Columns
	}
	return g.MinColumns
}

// Validate reports the first problem that would make the config unplayable.
func (c SnakeConfig) Validate() error {
	s := c.Speed
	intervals := []struct {
		name string
		ms   int
	}{
		{"easy_ms", s.EasyMs},
		{"medium_ms", s.MediumMs},
		{"hard_ms", s.HardMs},
		{"default_ms", s.DefaultMs},
		{"floor_ms", s.FloorMs},
	}
	for _, iv := range intervals {
		if iv.ms <= 0 {
			return fmt.Errorf("config: speed.%s must be positive, got %d", iv.name, iv.ms)
		}
		if iv.ms < s.FloorMs {
			return fmt.Errorf("config: speed.%s (%d) is below floor_ms (%d)", iv.name, iv.ms, s.FloorMs)
		}
	}
	if s.DecrementMs < 0 {
		return fmt.Errorf("config: speed.decrement_ms must not be negative, got %d", s.DecrementMs)
	}

	g := c.Grid
	if g.CellWidth <= 0 {
		return fmt.Errorf("config: grid.cell_width must be positive, got %d", g.CellWidth)
	}
	if len(g.Breakpoints) == 0 {
		return errors.New("config: grid.breakpoints must not be empty")
	}
	for i, bp := range g.Breakpoints {
		if bp.Columns <= 0 {
			return fmt.Errorf("config: grid.breakpoints[%d].columns must be positive, got %d", i, bp.Columns)
		}
	}
	if g.MinColumns <= 0 || g.MinRows <= 0 {
		return fmt.Errorf("config: grid minimum size must be positive, got %dx%d", g.MinColumns, g.MinRows)
	}
	if g.FoodAttempts < 0 {
		return fmt.Errorf("config: grid.food_attempts must not be negative, got %d", g.FoodAttempts)
	}
	return nil
}

// YAML encodes the config in the same layout the loader reads.
func (c SnakeConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
