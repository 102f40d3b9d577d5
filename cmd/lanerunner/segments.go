package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerunner/internal/registry"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "List the registered track segments",
	Long: `Shows every segment blueprint that a config catalog can name.

Catalog entries in runner.yaml refer to these names.`,
	Args: cobra.NoArgs,
	Run:  runSegments,
}

func runSegments(_ *cobra.Command, _ []string) {
	blueprints := registry.List()

	if len(blueprints) == 0 {
		fmt.Println("No segments registered.")
		return
	}

	fmt.Println("Registered segments:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range blueprints {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Length", "Objects")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-------")

	for _, b := range blueprints {
		fmt.Printf("  %-*s  %-6.1f  %d\n", maxNameLen, b.Name, b.Length, b.Children)
	}

	fmt.Println()
	fmt.Println("Reference them by name under level.catalog in your config.")
}
