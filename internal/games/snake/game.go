// Package snake implements the Snake engine: a toroidal grid, a growing
// snake, food placement and difficulty-driven speed. The engine is pure
// logic; timing, input and drawing are injected collaborators.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Engine owns the game state and advances it one step per tick.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Engine struct {
	state        State
	speed        config.SpeedConfig
	foodAttempts int
	rng          *rand.Rand

	ticker   Ticker
	renderer Renderer
	notifier Notifier
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpeed sets the interval table and progression.
func WithSpeed(s config.SpeedConfig) Option {
	return func(e *Engine) { e.speed = s }
}

// WithTicker sets the tick scheduler.
func WithTicker(t Ticker) Option {
	return func(e *Engine) {
		if t != nil {
			e.ticker = t
		}
	}
}

// WithRenderer sets the state consumer called after every change.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithNotifier sets the UI event sink.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithFoodAttempts bounds the random draws before falling back to a scan.
func WithFoodAttempts(n int) Option {
	return func(e *Engine) { e.foodAttempts = n }
}

// NewEngine creates an engine for the given grid and resets it to the
// medium difficulty. Missing collaborators default to no-ops.
func NewEngine(geom Geometry, opts ...Option) *Engine {
	e := &Engine{
		speed:        config.DefaultSpeedConfig(),
		foodAttempts: 1000,
		ticker:       nopTicker{},
		renderer:     nopRenderer{},
		notifier:     nopNotifier{},
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.state.Geometry = geom
	e.Reset(config.DifficultyMedium)
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Phase returns the current lifecycle stage.
func (e *Engine) Phase() Phase {
	return e.state.Phase()
}

// Geometry returns the current grid.
func (e *Engine) Geometry() Geometry {
	return e.state.Geometry
}

// Reset stops any running ticker and starts a fresh, idle game.
func (e *Engine) Reset(d config.Difficulty) {
	e.ticker.Stop()

	geom := e.state.Geometry
	e.state = State{
		Geometry:   geom,
		Snake:      []Cell{geom.Center()},
		Direction:  DirRight,
		Pending:    DirRight,
		Interval:   e.speed.InitialInterval(d),
		Difficulty: d,
	}
	e.spawnFood()

	e.logger.Debug("game reset",
		"difficulty", d,
		"interval", e.state.Interval,
		"grid", geom.Cols, "rows", geom.Rows,
	)

	e.notifier.ResetUI()
	e.render()
}

// SetDifficulty switches difficulty. Like the difficulty selector of the
// classic game, it restarts from scratch.
func (e *Engine) SetDifficulty(d config.Difficulty) {
	e.Reset(d)
}

// RequestDirection queues a turn for the next step. A request for the
// direct opposite of the direction the snake is currently moving is ignored.
// Later requests before the next step replace earlier ones.
func (e *Engine) RequestDirection(d Direction) {
	if d == e.state.Direction.Opposite() {
		return
	}
	e.state.Pending = d
}

// Start begins ticking. It is a no-op while running or after the game ended.
func (e *Engine) Start() {
	if e.state.Running || e.state.Over || e.state.Won || !e.state.Geometry.Valid() {
		return
	}
	e.state.Running = true
	e.state.Paused = false
	e.ticker.Start(e.state.Interval)

	e.logger.Debug("game started", "interval", e.state.Interval)
	e.render()
}

// Pause suspends movement. Ticks keep arriving and are ignored.
func (e *Engine) Pause() {
	if !e.state.Running || e.state.Paused {
		return
	}
	e.state.Paused = true
	e.render()
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if !e.state.Running || !e.state.Paused {
		return
	}
	e.state.Paused = false
	e.render()
}

// TogglePause flips between running and paused.
func (e *Engine) TogglePause() {
	if e.state.Paused {
		e.Resume()
	} else {
		e.Pause()
	}
}

// Step advances the simulation by one cell.
func (e *Engine) Step() {
	if e.state.Paused || !e.state.Running || !e.state.Geometry.Valid() {
		return
	}

	s := &e.state
	s.Direction = s.Pending

	dx, dy := s.Direction.Delta()
	head := s.Head()
	next := s.Geometry.Wrap(Cell{X: head.X + dx, Y: head.Y + dy})

	// Checked against the whole body, tail included, before moving
	if s.Occupies(next) {
		e.gameOver(next)
		return
	}

	s.Snake = append(s.Snake, Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = next
	s.Ticks++

	if s.HasFood && next == s.Food {
		e.eat()
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	e.render()
}

// eat grows the score and speed after the head reached the food.
func (e *Engine) eat() {
	s := &e.state
	s.Score++
	e.notifier.ScoreChanged(s.Score)

	if next := e.speed.NextInterval(s.Interval); next != s.Interval {
		s.Interval = next
		e.ticker.Reschedule(next)
		e.logger.Debug("speed up", "score", s.Score, "interval", next)
	}

	e.spawnFood()
	if !s.HasFood {
		e.boardCleared()
	}
}

func (e *Engine) gameOver(at Cell) {
	e.state.Running = false
	e.state.Over = true
	e.ticker.Stop()

	e.logger.Info("game over",
		"score", e.state.Score,
		"length", len(e.state.Snake),
		"x", at.X, "y", at.Y,
	)

	e.notifier.GameOver(true)
	e.render()
}

// boardCleared ends the game as a win when no free cell is left for food.
func (e *Engine) boardCleared() {
	e.state.Running = false
	e.state.Won = true
	e.ticker.Stop()

	e.logger.Info("board cleared", "score", e.state.Score)
	e.notifier.BoardCleared(e.state.Score)
}

// Resize applies a new grid. An idle game restarts at the new size; a game
// in progress keeps its snake and food when they still fit, and restarts
// with the same difficulty otherwise.
func (e *Engine) Resize(geom Geometry) {
	old := e.state.Geometry
	if geom == old || !geom.Valid() {
		return
	}

	if e.state.Phase() == PhaseIdle {
		e.state.Geometry = geom
		e.Reset(e.state.Difficulty)
		return
	}

	if e.fits(geom) {
		e.state.Geometry = geom
		e.logger.Debug("grid resized, state kept", "cols", geom.Cols, "rows", geom.Rows)
		e.render()
		return
	}

	e.logger.Info("grid shrank below the snake, restarting",
		"from_cols", old.Cols, "from_rows", old.Rows,
		"cols", geom.Cols, "rows", geom.Rows,
		"score", e.state.Score,
	)
	e.state.Geometry = geom
	e.Reset(e.state.Difficulty)
}

func (e *Engine) fits(geom Geometry) bool {
	for _, c := range e.state.Snake {
		if !geom.Contains(c) {
			return false
		}
	}
	return !e.state.HasFood || geom.Contains(e.state.Food)
}

func (e *Engine) render() {
	e.renderer.Render(e.state.clone())
}
