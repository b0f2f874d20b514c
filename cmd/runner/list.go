package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can run in.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --frontend <id>' to play.")
}
