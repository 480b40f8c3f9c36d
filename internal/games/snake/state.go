package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate in cell units.
type Cell struct {
	X, Y int
}

// Phase is the lifecycle stage of a game, derived from the state flags.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won"
)

// State is the complete simulation state owned by an Engine.
// Values returned by Engine.State are copies and safe to keep.
type State struct {
	Geometry   Geometry
	Snake      []Cell // Head at index 0
	Direction  Direction
	Pending    Direction // Applied on the next step
	Food       Cell
	HasFood    bool // False only once the board is full
	Score      int
	Interval   time.Duration
	Difficulty config.Difficulty
	Paused     bool
	Running    bool
	Over       bool
	Won        bool
	Ticks      uint64 // Steps that moved the snake
}

// Phase reports the lifecycle stage.
func (s State) Phase() Phase {
	switch {
	case s.Won:
		return PhaseWon
	case s.Over:
		return PhaseGameOver
	case s.Running && s.Paused:
		return PhasePaused
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// Head returns the first segment of the snake.
func (s State) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// IntervalMs returns the tick interval in whole milliseconds.
func (s State) IntervalMs() int {
	return int(s.Interval / time.Millisecond)
}

// Occupies reports whether any snake segment is on c.
func (s State) Occupies(c Cell) bool {
	return slices.Contains(s.Snake, c)
}

// clone returns a deep copy so callers cannot alias the live snake.
func (s State) clone() State {
	s.Snake = slices.Clone(s.Snake)
	return s
}
