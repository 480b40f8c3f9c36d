package config

import (
	"strings"
	"time"
)

// Difficulty is a named preset that selects the initial tick interval.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the known presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes a user-supplied name. Unknown names are kept
// as-is so the speed config can fall back to its default interval; ok
// reports whether the name was recognized.
func ParseDifficulty(name string) (d Difficulty, ok bool) {
	d = Difficulty(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	}
	return d, false
}

// Next returns the preset after d, wrapping around. Unknown values move to easy.
func (d Difficulty) Next() Difficulty {
	list := Difficulties()
	for i, v := range list {
		if v == d {
			return list[(i+1)%len(list)]
		}
	}
	return DifficultyEasy
}

// Title returns the display name of the preset.
func (d Difficulty) Title() string {
	if d == "" {
		return "Default"
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// InitialInterval returns the starting tick interval for a difficulty.
func (s SpeedConfig) InitialInterval(d Difficulty) time.Duration {
	ms := s.DefaultMs
	switch d {
	case DifficultyEasy:
		ms = s.EasyMs
	case DifficultyMedium:
		ms = s.MediumMs
	case DifficultyHard:
		ms = s.HardMs
	}
	return time.Duration(ms) * time.Millisecond
}

// NextInterval returns the interval after one food is eaten: shortened by
// the decrement and floored at the configured minimum.
func (s SpeedConfig) NextInterval(current time.Duration) time.Duration {
	next := current - time.Duration(s.DecrementMs)*time.Millisecond
	floor := time.Duration(s.FloorMs) * time.Millisecond
	if next < floor {
		return floor
	}
	return next
}
