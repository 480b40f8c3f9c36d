package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the user directory.
const LocalConfigPath = "configs/snake.yaml"

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken optional files are skipped, not fatal
	for _, path := range []string{userConfigPath("snake.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes YAML on top of the hardcoded defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
