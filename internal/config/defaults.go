package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Level: LevelConfig{
			MoveSpeed:    2.0,
			DestroyDelay: 30,
			Landmark:     "Landmark",
			SpawnPoint: &SpawnPoint{
				Ahead: 2,
				Y:     0,
				Depth: 10,
			},
			Catalog: []SegmentKindCfg{
				{Name: "Level 1", TTL: 26},
				{Name: "Level 2", TTL: 31.2},
				{Name: "Level 3"},
			},
		},
		Scoring: ScoringConfig{
			TickInterval:   1.0,
			TickPoints:     1,
			CoinPoints:     5,
			MultiplierStep: 0.2,
			HighScoreKey:   "HighScore",
		},
		Player: PlayerConfig{
			SpawnX:      3,
			SpawnY:      0,
			TopBound:    4,
			BottomBound: -4,
			Offset:      0.6,
			AxisSpeed:   8,
		},
		Collision: CollisionConfig{
			PushForce: 20,
		},
		Display: DisplayConfig{
			CellsPerUnit: 4,
			RowsPerUnit:  2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
