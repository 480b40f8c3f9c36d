// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, tick scheduling and the
// status line around the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game step. Gen identifies the schedule
// that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// Ticker drives engine steps with tea.Tick. Every Start, Reschedule and
// Stop bumps the generation, so ticks already in flight from an earlier
// schedule are rejected by Accept. At most one tick command is pending at
// any time.
//
// Ticker is not safe for concurrent use; it lives on the Update goroutine.
type Ticker struct {
	gen      uint64
	interval time.Duration
	active   bool
	pending  tea.Cmd
}

// NewTicker creates a stopped ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start begins a new tick stream at the given interval.
func (t *Ticker) Start(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.active = true
	t.pending = t.schedule()
}

// Reschedule replaces the current stream with one at the new interval.
func (t *Ticker) Reschedule(interval time.Duration) {
	t.Start(interval)
}

// Stop cancels the stream. Ticks already queued are dropped on arrival.
func (t *Ticker) Stop() {
	t.gen++
	t.active = false
	t.pending = nil
}

// Accept reports whether msg belongs to the live stream. A live tick
// queues the next one.
func (t *Ticker) Accept(msg TickMsg) bool {
	if !t.active || msg.Gen != t.gen {
		return false
	}
	t.pending = t.schedule()
	return true
}

// Cmd returns the queued tick command, if any, and clears it.
func (t *Ticker) Cmd() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// Active reports whether a stream is running.
func (t *Ticker) Active() bool {
	return t.active
}

// Interval returns the interval of the current or last stream.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Gen returns the current generation.
func (t *Ticker) Gen() uint64 {
	return t.gen
}

func (t *Ticker) schedule() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}
