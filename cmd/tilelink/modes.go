package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilelink/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all board modes",
	Long:    `Shows every board mode from the loaded configuration.`,
	Run:     runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Tiles")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, g := range games {
		size, tiles := "?", "?"
		if m, err := appConfig.Mode(g.ID); err == nil {
			size = fmt.Sprintf("%dx%d", m.Rows, m.Columns)
			tiles = strings.Join(m.Types, ", ")
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, g.ID, size, tiles)
	}

	fmt.Println()
	fmt.Println("Run 'tilelink play <id>' to play a mode.")
}
