package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/games/lanes"
	"github.com/vovakirdan/lanerunner/internal/runner"
	"github.com/vovakirdan/lanerunner/internal/storage"
)

// helpRows is the space reserved below the track for the key help line.
const helpRows = 1

// Options configures a Model.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil keeps high scores in memory
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running the lane runner.
type Model struct {
	game     *lanes.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	board    *Leaderboard
	log      *log.Logger
	input    core.InputFrame
	hold     int  // Ticks the last steering key stays held
	boarding bool // Leaderboard panel was visible last tick
	quitting bool
}

// NewModel creates a new Bubble Tea model for the lane runner.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var scores runner.HighScoreStore
	if opts.Store != nil {
		scores = opts.Store
	}

	game, err := lanes.New(lanes.Options{
		Config:  opts.Config,
		Runtime: playArea(cfg),
		Store:   scores,
		Logger:  logger,
	})
	if err != nil {
		return Model{}, err
	}

	board := NewLeaderboard(opts.Store, cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:  opts.Store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		board:  &board,
		log:    logger,
		input:  core.NewInputFrame(),
	}, nil
}

// playArea returns cfg with the help line removed from the height.
func playArea(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Game returns the hosted game.
func (m Model) Game() *lanes.Game {
	return m.game
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.game.Panels().Leaderboard {
		m.board.Scroll(msg)
	}

	action, axis := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if axis != 0 {
		// Terminals report key repeats, not key-up, so a press holds for a few ticks.
		m.input.Axis = axis
		m.input.HasPointer = false
		m.hold = max(m.config.TickRate/8, 1)
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}

	return m, nil
}

// handleMouse steers toward the pointer and starts a run on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.SetPointer(m.game.PointerAt(msg.X, msg.Y))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.game.State() == runner.StateMenu && !m.game.Panels().Leaderboard {
		m.input.Set(core.ActionConfirm)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	area := playArea(m.config)
	m.screen.Resize(area.ScreenW, area.ScreenH)
	m.game.Resize(area.ScreenW, area.ScreenH)
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.input)

	// Refresh the board each time it opens so the last run shows up.
	showing := m.game.Panels().Leaderboard
	if showing && !m.boarding {
		m.board.Reload()
	}
	m.boarding = showing

	// Clear input for next frame, keeping a held steering key
	axis := m.input.Axis
	m.input.Clear()
	if m.hold > 0 {
		m.hold--
		if m.hold > 0 {
			m.input.Axis = axis
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".lanerunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", lanes.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.Panels().Leaderboard && m.store != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
