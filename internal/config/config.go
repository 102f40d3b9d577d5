// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

// RunnerConfig contains all tunables for the lane runner.
type RunnerConfig struct {
	Level     LevelConfig     `yaml:"level"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Display   DisplayConfig   `yaml:"display"`
}

// LevelConfig defines the procedural level generator.
type LevelConfig struct {
	MoveSpeed    float64          `yaml:"move_speed"`    // Base segment speed in world units per second
	DestroyDelay float64          `yaml:"destroy_delay"` // Default segment lifetime in seconds
	Landmark     string           `yaml:"landmark"`      // Name of the child that triggers the next spawn
	SpawnPoint   *SpawnPoint      `yaml:"spawn_point"`   // nil means unassigned
	Catalog      []SegmentKindCfg `yaml:"catalog"`
}

// SpawnPoint places new segments relative to the visible area.
type SpawnPoint struct {
	Ahead float64 `yaml:"ahead"` // Distance past the right edge of the viewport
	Y     float64 `yaml:"y"`
	Depth float64 `yaml:"depth"`
}

// SegmentKindCfg selects a registered segment blueprint and its lifetime.
type SegmentKindCfg struct {
	Name string  `yaml:"name"`
	TTL  float64 `yaml:"ttl,omitempty"` // 0 means use destroy_delay
}

// ScoringConfig defines passive and pickup scoring.
type ScoringConfig struct {
	TickInterval   float64 `yaml:"tick_interval"`   // Seconds between passive points
	TickPoints     int     `yaml:"tick_points"`     // Points per passive tick
	CoinPoints     int     `yaml:"coin_points"`     // Points per coin
	MultiplierStep float64 `yaml:"multiplier_step"` // Added per score multiplier pickup
	HighScoreKey   string  `yaml:"high_score_key"`  // Name of the persisted high score
}

// PlayerConfig defines the avatar's movement envelope.
type PlayerConfig struct {
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	TopBound    float64 `yaml:"top_bound"`
	BottomBound float64 `yaml:"bottom_bound"`
	Offset      float64 `yaml:"offset"`     // Kept between the avatar and each bound
	AxisSpeed   float64 `yaml:"axis_speed"` // Units per second when steering with keys
}

// CollisionConfig defines contact resolution.
type CollisionConfig struct {
	PushForce float64 `yaml:"push_force"` // Impulse magnitude for non-obstacle solids
}

// DisplayConfig maps world units to terminal cells.
type DisplayConfig struct {
	CellsPerUnit float64 `yaml:"cells_per_unit"`
	RowsPerUnit  float64 `yaml:"rows_per_unit"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SpeedFactorForPreset returns the base move speed factor for a preset.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
