package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runningState() State {
	return State{
		Geometry:  Geometry{Cols: 10, Rows: 5, CellSize: 2},
		Snake:     []Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Direction: DirRight,
		Food:      Cell{X: 7, Y: 3},
		HasFood:   true,
		Running:   true,
	}
}

func TestRenderBoard(t *testing.T) {
	screen := core.NewScreen(40, 20)
	r := NewScreenRenderer(screen)

	r.Render(runningState())

	// 22x7 frame centered in 40x20 starts at (9,6); cells start one inside.
	if got := screen.Get(9, 6); got != '┌' {
		t.Errorf("Frame corner = %q, expected '┌'", got)
	}

	head := screen.GetCell(14, 8)
	if head.Rune != glyphHead || head.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v", head)
	}
	if screen.Get(15, 8) != glyphHead {
		t.Error("Head should fill the whole cell width")
	}
	if got := screen.Get(12, 8); got != glyphBody {
		t.Errorf("Body glyph = %q, expected %q", got, glyphBody)
	}

	food := screen.GetCell(24, 10)
	if food.Rune != glyphFood || food.Color != core.ColorBrightRed {
		t.Errorf("Food cell = %+v", food)
	}
	if screen.Get(25, 10) != ' ' {
		t.Error("Food should be a single glyph")
	}

	if strings.Contains(screen.String(), "Paused") {
		t.Error("Running game should have no overlay")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*State)
		want   string
	}{
		{"idle", func(s *State) { s.Running = false }, "Press Space to start"},
		{"paused", func(s *State) { s.Paused = true }, "Paused"},
		{"game over", func(s *State) { s.Running = false; s.Over = true; s.Score = 12 }, "Score: 12"},
		{"won", func(s *State) { s.Running = false; s.Won = true; s.Score = 48 }, "Board cleared!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(40, 20)
			s := runningState()
			tc.modify(&s)

			NewScreenRenderer(screen).Render(s)

			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("Expected %q in output:\n%s", tc.want, screen.String())
			}
		})
	}
}

func TestRenderGameOverHead(t *testing.T) {
	screen := core.NewScreen(60, 30)
	s := runningState()
	s.Geometry = Geometry{Cols: 20, Rows: 12, CellSize: 2}
	s.Snake = []Cell{{X: 0, Y: 0}}
	s.Running = false
	s.Over = true

	NewScreenRenderer(screen).Render(s)

	// 42x14 frame in 60x30 starts at (9,8); the head sits above the overlay.
	if c := screen.GetCell(10, 9); c.Rune != glyphHead || c.Color != core.ColorRed {
		t.Errorf("Head after game over = %+v, expected red head", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 8)
	r := NewScreenRenderer(screen)

	r.Render(runningState())

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Expected too-small notice, got:\n%s", screen.String())
	}
}
