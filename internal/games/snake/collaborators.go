package snake

import "time"

// Ticker schedules the periodic Step calls. Implementations must guarantee
// that after Start, Reschedule or Stop returns, ticks from any earlier
// schedule are never delivered.
type Ticker interface {
	Start(interval time.Duration)
	Reschedule(interval time.Duration)
	Stop()
}

// Renderer consumes state snapshots. It must not retain or mutate the snake slice
// beyond the call.
type Renderer interface {
	Render(s State)
}

// Notifier receives UI-level events: score text and end-of-game visibility.
type Notifier interface {
	ScoreChanged(score int)
	GameOver(visible bool)
	BoardCleared(score int)
	ResetUI()
}

type nopTicker struct{}

func (nopTicker) Start(time.Duration)      {}
func (nopTicker) Reschedule(time.Duration) {}
func (nopTicker) Stop()                    {}

type nopRenderer struct{}

func (nopRenderer) Render(State) {}

type nopNotifier struct{}

func (nopNotifier) ScoreChanged(int) {}
func (nopNotifier) GameOver(bool)    {}
func (nopNotifier) BoardCleared(int) {}
func (nopNotifier) ResetUI()         {}
