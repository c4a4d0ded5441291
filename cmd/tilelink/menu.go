package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilelink/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Tilelink in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press Esc in a game to return to the menu.

Examples:
  tilelink menu
  tilelink menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := tui.RunSession(runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
