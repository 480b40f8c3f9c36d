package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	statusOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
	statusWonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// phaseLabels are shown in brackets at the end of the status line.
var phaseLabels = map[snake.Phase]string{
	snake.PhaseIdle:     "ready",
	snake.PhaseRunning:  "running",
	snake.PhasePaused:   "paused",
	snake.PhaseGameOver: "game over",
	snake.PhaseWon:      "cleared",
}

// StatusBar is the UI notifier: it keeps the score text, the end-of-game
// flags and the best score of this session. Nothing is persisted.
type StatusBar struct {
	score    int
	best     int
	gameOver bool
	cleared  bool
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// ScoreChanged implements snake.Notifier.
func (s *StatusBar) ScoreChanged(score int) {
	s.score = score
	s.best = max(s.best, score)
}

// GameOver implements snake.Notifier.
func (s *StatusBar) GameOver(visible bool) {
	s.gameOver = visible
}

// BoardCleared implements snake.Notifier.
func (s *StatusBar) BoardCleared(score int) {
	s.cleared = true
	s.ScoreChanged(score)
}

// ResetUI implements snake.Notifier.
func (s *StatusBar) ResetUI() {
	s.score = 0
	s.gameOver = false
	s.cleared = false
}

func (s *StatusBar) Score() int            { return s.score }
func (s *StatusBar) Best() int             { return s.best }
func (s *StatusBar) GameOverVisible() bool { return s.gameOver }
func (s *StatusBar) Cleared() bool         { return s.cleared }

// Text returns the unstyled status line for the given state.
func (s *StatusBar) Text(st snake.State) string {
	return fmt.Sprintf("Score: %d  Best: %d  Speed: %dms  Difficulty: %s  [%s]",
		s.score, s.best, st.IntervalMs(), st.Difficulty.Title(), phaseLabels[st.Phase()])
}

// View renders the status line centered in width.
func (s *StatusBar) View(st snake.State, width int) string {
	style := statusStyle
	switch {
	case s.gameOver:
		style = statusOverStyle
	case s.cleared:
		style = statusWonStyle
	}
	return style.Render(centerText(s.Text(st), width))
}
