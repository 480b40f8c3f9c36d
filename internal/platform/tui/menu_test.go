package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestMenu(difficulty string) MenuModel {
	cfg := core.DefaultConfig()
	cfg.Difficulty = difficulty
	return NewMenuModel(cfg, config.DefaultSpeedConfig())
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuCursorStartsOnCurrentDifficulty(t *testing.T) {
	m := newTestMenu("hard")
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().Difficulty != config.DifficultyHard {
		t.Errorf("Expected hard to be selected, got %+v", m.Selected())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestMenu("easy")

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp}) // Already at top
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("Selecting should quit the menu program")
	}
	sel := m.Selected()
	if sel == nil || sel.Difficulty != config.DifficultyMedium || sel.IntervalMs != 120 {
		t.Errorf("Expected medium at 120ms, got %+v", sel)
	}
}

func TestMenuQuickPick(t *testing.T) {
	m := newTestMenu("medium")

	m, _ = menuUpdate(t, m, runeKey('1'))

	if m.Selected() == nil || m.Selected().Difficulty != config.DifficultyEasy {
		t.Errorf("1 should pick easy, got %+v", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := newTestMenu("medium")

	m, cmd := menuUpdate(t, m, runeKey('q'))

	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("Quitting should not select anything")
	}
}

func TestMenuView(t *testing.T) {
	m := newTestMenu("medium")
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{"S N A K E", "Easy", "(200ms)", "> 2. Medium", "Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("Menu view missing %q", want)
		}
	}
	if m.Config().ScreenW != 100 {
		t.Errorf("Resize should update the config width, got %d", m.Config().ScreenW)
	}
}
