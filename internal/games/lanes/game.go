// Package lanes hosts the runner core in a terminal: it supplies the spawn
// catalog, maps world units to screen cells, detects contacts between the
// player and track objects, and renders everything into a core.Screen.
package lanes

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/registry"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

// ID is recorded with every run in the score history.
const ID = "lanes"

// Title returns the display name.
const Title = "Lane Runner"

// Rows above the track: the HUD and the top wall.
const hudRows = 2

// Options configures a Game.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   runner.HighScoreStore
	Logger  *log.Logger
}

// Game implements runner.Display, runner.Viewport and runner.ContactDetector
// on top of a terminal screen.
type Game struct {
	engine  *runner.Engine
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	panels       runner.Panels
	currentScore string
	finalScore   string
	highScore    string

	touching map[runner.ObjectID]bool // Overlapping the player last tick
	tick     uint64
}

// New creates a game in the menu state.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:      opts.Config,
		runtime:  opts.Runtime,
		log:      logger,
		touching: make(map[runner.ObjectID]bool),
	}

	catalog, err := registry.Catalog(opts.Config.Level.Catalog)
	if err != nil {
		logger.Error("spawn catalog incomplete", "error", err)
	}

	engine, err := runner.New(opts.Config, catalog, runner.Deps{
		Display:  g,
		Store:    opts.Store,
		Viewport: g,
		Detector: g,
		Logger:   logger,
		GameID:   ID,
		Seed:     opts.Runtime.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("lanes: %w", err)
	}
	g.engine = engine
	return g, nil
}

// Engine exposes the runner core.
func (g *Game) Engine() *runner.Engine {
	return g.engine
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) {
	g.tick++
	g.engine.Step(g.runtime.TickSeconds(), in)
}

// Resize adapts to a new screen size. Segments already on the track keep
// their position; new ones spawn past the new right edge.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.engine.RefreshSpawnPoint()
}

// Runtime returns the current runtime configuration.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// State returns the authoritative game state.
func (g *Game) State() runner.GameState {
	return g.engine.Machine.CurrentState()
}

// Panels returns the panels the core asked to show.
func (g *Game) Panels() runner.Panels {
	return g.panels
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.engine.Scores.CurrentScore()
}

// ShowPanels implements runner.Display.
func (g *Game) ShowPanels(p runner.Panels) {
	g.panels = p
}

// ShowCurrentScore implements runner.Display.
func (g *Game) ShowCurrentScore(text string) {
	g.currentScore = text
}

// ShowFinalScore implements runner.Display.
func (g *Game) ShowFinalScore(text string) {
	g.finalScore = text
}

// ShowHighScore implements runner.Display.
func (g *Game) ShowHighScore(text string) {
	g.highScore = text
}

// RightEdge implements runner.Viewport. The terminal view is orthographic,
// so depth does not matter.
func (g *Game) RightEdge(float64) float64 {
	return float64(g.runtime.ScreenW) / g.cfg.Display.CellsPerUnit
}

// trackRows is the height of the playable area in rows.
func (g *Game) trackRows() int {
	return int((g.cfg.Player.TopBound - g.cfg.Player.BottomBound) * g.cfg.Display.RowsPerUnit)
}

// toCell maps a world position to a screen cell.
func (g *Game) toCell(p core.Vec2) (int, int) {
	x := int(p.X * g.cfg.Display.CellsPerUnit)
	y := hudRows + int((g.cfg.Player.TopBound-p.Y)*g.cfg.Display.RowsPerUnit)
	return x, y
}

// PointerAt maps a screen cell (e.g. a mouse position) to world space.
func (g *Game) PointerAt(col, row int) core.Vec2 {
	x := float64(col) / g.cfg.Display.CellsPerUnit
	y := g.cfg.Player.TopBound - (float64(row-hudRows)+0.5)/g.cfg.Display.RowsPerUnit
	return core.V2(x, y)
}
