package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoris/internal/registry"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List all registered scenes",
	Long:  `Shows the scenes the game can switch between.`,
	Args:  cobra.NoArgs,
	Run:   runScenes,
}

func runScenes(_ *cobra.Command, _ []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range scenes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}
}
