package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
)

// Deps are the collaborators supplied by the host.
type Deps struct {
	Display  Display
	Store    HighScoreStore
	Viewport Viewport
	Detector ContactDetector
	Logger   *log.Logger
	GameID   string
	Seed     int64
}

// Engine wires every core component together.
type Engine struct {
	Machine  *StateMachine
	Level    *LevelGenerator
	Player   *Player
	World    *World
	Scores   *ScoreTracker
	Resolver *CollisionResolver
	Contacts *ContactQueue
	Gate     *TimeGate
	Loop     *Loop

	cfg      config.RunnerConfig
	viewport Viewport
}

// New builds an engine from cfg. Invalid configuration values are returned
// as an error; missing references (catalog, spawn point, viewport) leave
// the level generator inert and are reported by Err.
func New(cfg config.RunnerConfig, catalog []SegmentKind, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	logger := orDiscard(deps.Logger)

	e := &Engine{
		cfg:      cfg,
		viewport: deps.Viewport,
		World:    NewWorld(logger),
		Contacts: &ContactQueue{},
		Gate:     &TimeGate{},
	}

	e.Level = NewLevelGenerator(e.World, LevelOptions{
		Catalog:    catalog,
		SpawnPoint: e.spawnPoint(),
		Viewport:   deps.Viewport,
		Landmark:   cfg.Level.Landmark,
		DefaultTTL: cfg.Level.DestroyDelay,
		MoveSpeed:  cfg.Level.MoveSpeed,
		Seed:       deps.Seed,
		Logger:     logger.WithPrefix("level"),
	})

	e.Player = NewPlayer(PlayerOptions{
		Spawn:       core.V2(cfg.Player.SpawnX, cfg.Player.SpawnY),
		TopBound:    cfg.Player.TopBound,
		BottomBound: cfg.Player.BottomBound,
		Offset:      cfg.Player.Offset,
		AxisSpeed:   cfg.Player.AxisSpeed,
		Logger:      logger,
	})

	e.Scores = NewScoreTracker(deps.Store, cfg.Scoring.HighScoreKey, logger)

	e.Machine = NewStateMachine(MachineOptions{
		Display:      deps.Display,
		Scores:       e.Scores,
		Level:        e.Level,
		Player:       e.Player,
		World:        e.World,
		Gate:         e.Gate,
		GameID:       deps.GameID,
		TickInterval: cfg.Scoring.TickInterval,
		TickPoints:   cfg.Scoring.TickPoints,
		Logger:       logger.WithPrefix("state"),
	})
	e.Player.Attach(e.Machine)

	e.Resolver = NewCollisionResolver(ResolverOptions{
		Game:       e.Machine,
		Speed:      e.Level,
		Score:      e.Scores,
		Bodies:     e.World,
		Player:     e.Player,
		CoinPoints: cfg.Scoring.CoinPoints,
		MultStep:   cfg.Scoring.MultiplierStep,
		PushForce:  cfg.Collision.PushForce,
		Logger:     logger.WithPrefix("collision"),
	})

	e.Loop = &Loop{
		Machine:  e.Machine,
		Level:    e.Level,
		Player:   e.Player,
		World:    e.World,
		Resolver: e.Resolver,
		Contacts: e.Contacts,
		Gate:     e.Gate,
		Detector: deps.Detector,
	}

	e.Machine.ShowHome()
	return e, nil
}

// spawnPoint resolves the configured spawn point against the viewport.
func (e *Engine) spawnPoint() *SpawnPoint {
	sp := e.cfg.Level.SpawnPoint
	if sp == nil || e.viewport == nil {
		return nil
	}
	x := e.viewport.RightEdge(sp.Depth) + sp.Ahead
	return &SpawnPoint{Position: core.V2(x, sp.Y), Depth: sp.Depth}
}

// RefreshSpawnPoint recomputes the spawn point after the viewport changed.
func (e *Engine) RefreshSpawnPoint() {
	if sp := e.spawnPoint(); sp != nil {
		e.Level.SetSpawnPoint(*sp)
	}
}

// Err reports a configuration error that left part of the engine inert.
func (e *Engine) Err() error {
	return e.Level.Err()
}

// Step advances the engine by one tick.
func (e *Engine) Step(dt float64, in core.InputFrame) {
	e.Loop.Step(dt, in)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}
