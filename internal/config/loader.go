package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.lanerunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func Load(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// A custom path is explicit, so failures are reported instead of falling back
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", "configs", filename)
}

// ApplyPreset scales the base move speed for a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Level.MoveSpeed *= SpeedFactorForPreset(preset)
}

// Validate reports every value that would leave a component unusable.
// Structural problems (empty catalog, missing spawn point) are left to the
// engine, which reports them and keeps the affected component inert.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Level.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("level.move_speed must be positive, got %v", c.Level.MoveSpeed))
	}
	if c.Level.DestroyDelay <= 0 {
		errs = append(errs, fmt.Errorf("level.destroy_delay must be positive, got %v", c.Level.DestroyDelay))
	}
	if c.Level.Landmark == "" {
		errs = append(errs, errors.New("level.landmark must be set"))
	}
	if c.Scoring.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("scoring.tick_interval must be positive, got %v", c.Scoring.TickInterval))
	}
	if c.Scoring.HighScoreKey == "" {
		errs = append(errs, errors.New("scoring.high_score_key must be set"))
	}
	if c.Player.TopBound-c.Player.Offset < c.Player.BottomBound+c.Player.Offset {
		errs = append(errs, fmt.Errorf("player bounds [%v, %v] leave no room for offset %v",
			c.Player.BottomBound, c.Player.TopBound, c.Player.Offset))
	}
	if c.Display.CellsPerUnit <= 0 || c.Display.RowsPerUnit <= 0 {
		errs = append(errs, errors.New("display scale must be positive"))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
