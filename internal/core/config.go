package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed for food placement
	Difficulty string // Difficulty preset name (easy, medium, hard)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: "medium",
	}
}
