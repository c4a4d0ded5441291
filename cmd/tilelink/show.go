package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

var flagDrag string

var showCmd = &cobra.Command{
	Use:   "show [mode]",
	Short: "Print a seeded board without a terminal UI",
	Long: `Deals a board and prints it with one letter per tile. With --drag the
given cells are pressed, dragged through in order and released, then all
cascades are settled and the board is printed again.

Cells are written as row,col with row 0 at the top.

Examples:
  tilelink show
  tilelink show grand --seed 3
  tilelink show classic --seed 7 --drag "4,0 4,1 3,2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagDrag, "drag", "", `Cells to drag through, e.g. "0,0 0,1 1,2"`)
}

func runShow(cmd *cobra.Command, args []string) error {
	modeID := defaultMode
	if len(args) > 0 {
		modeID = args[0]
	}

	path, err := tilelink.ParseDrag(flagDrag)
	if err != nil {
		return err
	}

	settings, err := appConfig.Resolve(modeID)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	settings.Rand = rand.New(rand.NewSource(seed))
	settings.Logger = appLogger.With("mode", modeID)

	ctrl, err := board.NewController(settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (seed %d)\n%s\n", modeID, seed, tilelink.ASCII(ctrl))
	if len(path) == 0 {
		return nil
	}

	res := tilelink.ApplyDrag(ctrl, path)
	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = fmt.Sprintf("%v %s", path[i], s)
	}
	fmt.Fprintf(out, "\ndrag: %s\n", strings.Join(steps, ", "))

	if res.Cleared == nil {
		fmt.Fprintln(out, "nothing cleared")
		return nil
	}
	settled := ctrl.Cascades().Flush()
	fmt.Fprintf(out, "cleared columns %v, %d settle steps\n%s\n", res.Cleared, settled, tilelink.ASCII(ctrl))
	return nil
}
