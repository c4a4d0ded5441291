package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

var testPalette = []board.PaletteEntry{
	{Type: board.TypeBlue, Color: "33"},
	{Type: board.TypeBrown, Color: "#8B4513"},
	{Type: board.TypeRed, Color: "196"},
}

// seqSource returns scripted values modulo n.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func mustPalette(t *testing.T) *board.Palette {
	t.Helper()
	p, err := board.NewPalette(testPalette...)
	require.NoError(t, err)
	return p
}

func typeOf(ch rune) board.TileType {
	switch ch {
	case 'B':
		return board.TypeBlue
	case 'N':
		return board.TypeBrown
	case 'R':
		return board.TypeRed
	default:
		return board.TypeNone
	}
}

// gridFrom builds a grid from rows of B/N/R characters; '.' is empty.
func gridFrom(t *testing.T, rows ...string) *board.Grid {
	t.Helper()
	g, err := board.NewGrid(len(rows), len(rows[0]))
	require.NoError(t, err)
	p := mustPalette(t)
	for r, line := range rows {
		for c, ch := range line {
			typ := typeOf(ch)
			if typ == board.TypeNone {
				continue
			}
			require.NoError(t, g.Set(r, c, board.TileData{Type: typ, Color: p.ColorOf(typ)}))
		}
	}
	return g
}

func tileAt(t *testing.T, g *board.Grid, row, col int) *board.Tile {
	t.Helper()
	tile, err := g.Get(row, col)
	require.NoError(t, err)
	return tile
}

// recorder is an Observer that counts notifications.
type recorder struct {
	on      []board.Direction
	off     int
	cleared int
	placed  int
	resets  int
}

func (r *recorder) IndicatorOn(_ board.Pos, d board.Direction) { r.on = append(r.on, d) }
func (r *recorder) IndicatorOff(board.Pos, board.Direction)     { r.off++ }
func (r *recorder) IndicatorsCleared(board.Pos)                 { r.cleared++ }
func (r *recorder) Placed(board.Pos, board.TileData)            { r.placed++ }
func (r *recorder) Cleared(board.Pos)                           { r.resets++ }
