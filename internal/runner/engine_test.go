package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Level.MoveSpeed = 0

	_, err := New(cfg, []SegmentKind{straightKind("a", 8, 0)}, Deps{Viewport: fixedViewport(20)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move_speed")
}

func TestNewKeepsRunningWithoutSpawnPoint(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Level.SpawnPoint = nil

	e, err := New(cfg, []SegmentKind{straightKind("a", 8, 0)}, Deps{Viewport: fixedViewport(20)})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Err(), ErrNoSpawnPoint)

	e.Machine.StartGame()
	e.Step(1, core.NewInputFrame())
	assert.Equal(t, StateInGame, e.Machine.CurrentState())
	assert.Equal(t, 1, e.Scores.CurrentScore())
	assert.Equal(t, ObjectID(0), e.Level.ActiveSegment())
}

func TestNewWithoutCatalog(t *testing.T) {
	e, err := New(config.DefaultRunnerConfig(), nil, Deps{Viewport: fixedViewport(20)})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Err(), ErrEmptyCatalog)
}

func TestSpawnPointFollowsViewport(t *testing.T) {
	vp := &movableViewport{edge: 20}
	e, err := New(config.DefaultRunnerConfig(), []SegmentKind{straightKind("a", 8, 0)}, Deps{Viewport: vp})
	require.NoError(t, err)

	e.Machine.StartGame()
	pos, _ := e.World.Position(e.Level.ActiveSegment())
	assert.Equal(t, core.V2(22, 0), pos)

	vp.edge = 40
	e.RefreshSpawnPoint()
	id, _ := e.Level.SpawnPrefab()
	pos, _ = e.World.Position(id)
	assert.Equal(t, core.V2(42, 0), pos)
}

type movableViewport struct{ edge float64 }

func (v *movableViewport) RightEdge(float64) float64 {
	return v.edge
}

func TestStartGameSpeedFollowsPreset(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		speed  float64
	}{
		{"", DefaultMoveSpeed},
		{config.DifficultyNormal, DefaultMoveSpeed},
		{config.DifficultyEasy, 1.5},
		{config.DifficultyHard, 3.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			config.ApplyPreset(&cfg, tc.preset)
			e, err := New(cfg, []SegmentKind{straightKind("a", 8, 0)}, Deps{Viewport: fixedViewport(20)})
			require.NoError(t, err)

			e.Machine.StartGame()
			assert.InDelta(t, tc.speed, e.Level.MoveSpeed(), 1e-9)
			assert.Equal(t, DefaultMoveSpeedMultiplier, e.Level.SpeedMultiplier())

			e.Level.SetSpeedMultiplier(2)
			e.Level.UpdateSpeed()
			e.Machine.RestartGame()
			assert.InDelta(t, tc.speed, e.Level.MoveSpeed(), 1e-9)
		})
	}
}
