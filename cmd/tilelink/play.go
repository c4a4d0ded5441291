package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tilelink/internal/core"
	"github.com/vovakirdan/tui-tilelink/internal/platform/tui"
	"github.com/vovakirdan/tui-tilelink/internal/registry"
)

const defaultMode = "classic"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: classic).

Controls:
  Mouse           - Press, drag through tiles, release
  Arrows/WASD     - Move the cursor
  Space/Enter     - Grab at the cursor, press again to release
  P               - Pause
  R               - New board
  ?               - All keys
  Esc/Q/Ctrl+C    - Quit

Examples:
  tilelink play
  tilelink play grand
  tilelink play classic --seed 42
  tilelink play --config ./my-tilelink.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := defaultMode
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'tilelink modes' to see available modes)", modeID)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	appLogger.Info("starting game", "mode", modeID, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
