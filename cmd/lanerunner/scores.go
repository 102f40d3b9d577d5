package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanerunner/internal/games/lanes"
	"github.com/vovakirdan/lanerunner/internal/platform/tui"
	"github.com/vovakirdan/lanerunner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best (or most recent) recorded runs and overall statistics.

Examples:
  lanerunner scores
  lanerunner scores --recent --limit 20
  lanerunner scores --tui
  lanerunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and reset the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(store)
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.RunEntry
	if flagScoresRecent {
		runs, err = store.RecentRuns(lanes.ID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(lanes.ID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	heading := "Best Runs"
	if flagScoresRecent {
		heading = "Recent Runs"
	}
	fmt.Printf("%s - %s\n", heading, lanes.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lanerunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(r.Score)), humanize.Time(r.CreatedAt))
	}

	stats, err := store.Stats(lanes.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %s  Best: %s  Average: %s  Total: %s\n",
		humanize.Comma(int64(stats.RunsCount)),
		humanize.Comma(int64(stats.BestScore)),
		humanize.CommafWithDigits(stats.AvgScore, 1),
		humanize.Comma(stats.TotalScore),
	)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", humanize.Time(stats.LastPlayed))
	}
	return nil
}

func clearScores(store *storage.Store) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	if err := store.ClearRuns(lanes.ID); err != nil {
		return err
	}
	if err := store.ResetHighScore(cfg.Scoring.HighScoreKey); err != nil {
		return err
	}
	fmt.Println("Run history cleared.")
	return nil
}
