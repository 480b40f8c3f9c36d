package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestStatusBarTracksBest(t *testing.T) {
	s := NewStatusBar()

	s.ScoreChanged(1)
	s.ScoreChanged(2)
	s.ResetUI()
	s.ScoreChanged(1)

	if s.Score() != 1 {
		t.Errorf("Score = %d, expected 1", s.Score())
	}
	if s.Best() != 2 {
		t.Errorf("Best = %d, expected 2 from the earlier game", s.Best())
	}
}

func TestStatusBarVisibility(t *testing.T) {
	s := NewStatusBar()

	s.GameOver(true)
	if !s.GameOverVisible() {
		t.Error("Game over should be visible")
	}
	s.ResetUI()
	if s.GameOverVisible() {
		t.Error("ResetUI should hide game over")
	}

	s.BoardCleared(30)
	if !s.Cleared() || s.Best() != 30 {
		t.Errorf("Board cleared: cleared=%v best=%d", s.Cleared(), s.Best())
	}
}

func TestStatusBarText(t *testing.T) {
	s := NewStatusBar()
	s.ScoreChanged(4)

	st := snake.State{
		Interval:   100 * time.Millisecond,
		Difficulty: config.DifficultyHard,
		Running:    true,
		Paused:     true,
	}

	want := "Score: 4  Best: 4  Speed: 100ms  Difficulty: Hard  [paused]"
	if got := s.Text(st); got != want {
		t.Errorf("Text = %q, expected %q", got, want)
	}
	if !strings.Contains(s.View(st, 80), "Score: 4") {
		t.Error("View should contain the status text")
	}
}
