package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerunner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the configuration a run would use, after --config and --difficulty.

Redirect the output to ~/.lanerunner/configs/runner.yaml to start customizing.

Examples:
  lanerunner config
  lanerunner config --difficulty hard
  lanerunner config --defaults > ~/.lanerunner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
