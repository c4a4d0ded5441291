package tilelink

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

// StateType is the coarse game state reported in snapshots.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateSettling    StateType = "settling"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
	StateBroken      StateType = "broken"
)

// Snapshot captures the game state for determinism tests and the show command.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Rows    int
	Cols    int
	Types   [][]board.TileType
	Chain   []board.Pos
	Cursor  board.Pos
	Holding bool
	Pending int
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Mode:    g.mode.ID,
		Cursor:  g.cursor,
		Holding: g.holding,
		State:   StatePlaying,
	}

	if g.ctrl == nil {
		snap.State = StateBroken
		return snap
	}

	grid := g.ctrl.Grid()
	snap.Rows = grid.Rows()
	snap.Cols = grid.Cols()
	snap.Types = grid.Types()
	snap.Chain = g.ctrl.Chain().Positions()
	snap.Pending = g.ctrl.Cascades().Pending()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.ctrl.Cascades().Busy():
		snap.State = StateSettling
	}
	return snap
}

// ASCII renders a controller's board with one character per tile.
// Tiles in the current chain are lowercase; empty tiles are dots.
func ASCII(c *board.Controller) string {
	grid := c.Grid()
	chain := c.Chain()

	var sb strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < grid.Cols(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			ch := grid.At(r, col).Type().Char()
			if chain.Contains(board.P(r, col)) {
				ch = unicode.ToLower(ch)
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
