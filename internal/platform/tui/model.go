package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Lines around the board: status above, help below.
const chromeLines = 2

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.SnakeConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a snake session.
// The engine, ticker and status bar are shared pointers, so copies of the
// model made by Bubble Tea all drive the same game.
type Model struct {
	engine   *snake.Engine
	ticker   *Ticker
	status   *StatusBar
	screen   *core.Screen
	renderer *snake.ScreenRenderer
	keys     *KeyMapper
	help     help.Model
	grid     config.GridConfig
	logger   *log.Logger

	width    int
	height   int
	showHelp bool
	tooSmall bool
	quitting bool
}

// NewModel creates a model sized for the runtime screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := opts.Config.Validate(); err != nil {
		logger.Warn("invalid game config, using defaults", "error", err)
		opts.Config = config.DefaultSnakeConfig()
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.Difficulty == "" {
		cfg.Difficulty = string(config.DifficultyMedium)
	}
	difficulty, known := config.ParseDifficulty(cfg.Difficulty)
	if !known {
		logger.Warn("unknown difficulty, using default speed",
			"difficulty", cfg.Difficulty,
			"interval_ms", opts.Config.Speed.DefaultMs,
		)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-chromeLines)
	renderer := snake.NewScreenRenderer(screen)
	ticker := NewTicker()
	status := NewStatusBar()

	geom, ok := snake.GeometryFor(cfg.ScreenW, cfg.ScreenH, opts.Config.Grid)
	engine := snake.NewEngine(geom,
		snake.WithSpeed(opts.Config.Speed),
		snake.WithFoodAttempts(opts.Config.Grid.FoodAttempts),
		snake.WithSeed(cfg.Seed),
		snake.WithTicker(ticker),
		snake.WithRenderer(renderer),
		snake.WithNotifier(status),
		snake.WithLogger(logger),
	)
	if difficulty != config.DifficultyMedium {
		engine.SetDifficulty(difficulty)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	logger.Debug("session created",
		"seed", cfg.Seed,
		"difficulty", difficulty,
		"cols", geom.Cols, "rows", geom.Rows,
	)

	return Model{
		engine:   engine,
		ticker:   ticker,
		status:   status,
		screen:   screen,
		renderer: renderer,
		keys:     NewKeyMapper(),
		help:     h,
		grid:     opts.Config.Grid,
		logger:   logger,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		tooSmall: !ok,
	}
}

// Init sets the window title. Ticking starts with the first Start action.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.ticker.Accept(msg) {
			m.engine.Step()
		}
		return m, m.ticker.Cmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.ticker.Stop()
		return m, tea.Quit
	}

	m = m.dispatch(action)
	return m, m.ticker.Cmd()
}

// dispatch applies an action to the engine. It runs on the Update
// goroutine, so it never interleaves with a step.
func (m Model) dispatch(action core.Action) Model {
	st := m.engine.State()

	switch action {
	case core.ActionUp:
		m.engine.RequestDirection(snake.DirUp)
	case core.ActionDown:
		m.engine.RequestDirection(snake.DirDown)
	case core.ActionLeft:
		m.engine.RequestDirection(snake.DirLeft)
	case core.ActionRight:
		m.engine.RequestDirection(snake.DirRight)

	case core.ActionStart:
		if m.tooSmall {
			return m
		}
		m.showHelp = false
		if st.Phase() == snake.PhasePaused {
			m.engine.Resume()
		} else {
			m.engine.Start()
		}

	case core.ActionPause:
		if m.tooSmall {
			return m
		}
		m.engine.TogglePause()

	case core.ActionRestart:
		m.engine.Reset(st.Difficulty)

	case core.ActionEasy:
		m.engine.SetDifficulty(config.DifficultyEasy)
	case core.ActionMedium:
		m.engine.SetDifficulty(config.DifficultyMedium)
	case core.ActionHard:
		m.engine.SetDifficulty(config.DifficultyHard)
	case core.ActionNextDifficulty:
		m.engine.SetDifficulty(st.Difficulty.Next())

	case core.ActionHelp:
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.engine.Pause()
		}
	}

	if action != core.ActionNone && !action.IsDirection() {
		m.logger.Debug("action", "action", action, "phase", m.engine.Phase())
	}
	return m
}

// handleResize recomputes the playfield for the new terminal size.
// Below the minimum size the game is paused until the window grows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-chromeLines, 0))

	geom, ok := snake.GeometryFor(msg.Width, msg.Height, m.grid)
	if !ok {
		if !m.tooSmall {
			m.logger.Info("terminal too small, pausing", "width", msg.Width, "height", msg.Height)
		}
		m.tooSmall = true
		m.engine.Pause()
		return m, m.ticker.Cmd()
	}

	m.tooSmall = false
	m.engine.Resize(geom)
	m.renderer.Render(m.engine.State())
	return m, m.ticker.Cmd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.engine.State()
	var b strings.Builder
	b.WriteString(m.status.View(st, m.width))
	b.WriteString("\n")

	switch {
	case m.tooSmall:
		w, h := snake.MinScreenSize(m.grid)
		notice := alertStyle.Render(fmt.Sprintf("Terminal too small: need at least %dx%d", w, h))
		b.WriteString(lipgloss.Place(m.width, m.screen.Height(), lipgloss.Center, lipgloss.Center, notice))
	case m.showHelp:
		full := m.help.FullHelpView(m.keys.Keys().FullHelp())
		b.WriteString(lipgloss.Place(m.width, m.screen.Height(), lipgloss.Center, lipgloss.Center, full))
	default:
		b.WriteString(RenderScreen(m.screen))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.Keys().ShortHelp())))
	return b.String()
}

// Engine returns the game engine.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Ticker returns the tick scheduler.
func (m Model) Ticker() *Ticker {
	return m.ticker
}

// Status returns the status bar.
func (m Model) Status() *StatusBar {
	return m.status
}

// TooSmall reports whether the terminal is below the minimum size.
func (m Model) TooSmall() bool {
	return m.tooSmall
}

// ShowingHelp reports whether the full help is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok && m.logger != nil {
		m.logger.Info("session ended", "best", m.status.Best())
	}
	return nil
}
