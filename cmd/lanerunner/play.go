package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/platform/tui"
	"github.com/vovakirdan/lanerunner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the lane runner on the home panel.

Controls:
  Up/W, Down/S  - Change lane
  Mouse         - Steer toward the pointer, click to start
  Enter         - Start a run
  P/Esc         - Pause / resume
  T             - Hold the current lane
  R             - Restart (paused or after game over)
  M             - Back to the home panel
  L             - Leaderboard
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Difficulty options scale the base track speed:
  easy   - 0.75x
  normal - 1x
  hard   - 1.5x

Examples:
  lanerunner play
  lanerunner play --difficulty easy
  lanerunner play --seed 42
  lanerunner play --config ./my-runner.yaml --log-file run.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
