package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty config.Difficulty
	IntervalMs int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks a difficulty
}

// NewMenuModel creates a new menu model. The cursor starts on the
// difficulty in cfg when it is a known preset.
func NewMenuModel(cfg core.RuntimeConfig, speed config.SpeedConfig) MenuModel {
	presets := config.Difficulties()
	items := make([]MenuItem, 0, len(presets))
	cursor := 0

	current, _ := config.ParseDifficulty(cfg.Difficulty)
	for i, d := range presets {
		items = append(items, MenuItem{
			Difficulty: d,
			IntervalMs: int(speed.InitialInterval(d).Milliseconds()),
		})
		if d == current {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	// Number keys pick a preset directly
	if action, _ := m.keyMapper.MapKey(msg); action >= core.ActionEasy && action <= core.ActionHard {
		idx := int(action - core.ActionEasy)
		if idx < len(m.items) {
			m.cursor = idx
			selected := m.items[idx]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("S N A K E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %d. %-8s (%dms)", i+1, item.Difficulty.Title(), item.IntervalMs)
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(menuCursorStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Play  |  1-3: Quick pick  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty config.Difficulty
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the difficulty picker and returns the selection.
// The returned Config carries the chosen difficulty and the latest screen size.
func RunMenu(cfg core.RuntimeConfig, speed config.SpeedConfig) (MenuResult, error) {
	model := NewMenuModel(cfg, speed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Difficulty: m.Selected().Difficulty,
		Config:     m.Config(),
	}
	result.Config.Difficulty = string(result.Difficulty)
	return result, nil
}
