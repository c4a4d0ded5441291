package tilelink

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tilelink/internal/core"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

// Glyph returns the center character drawn for a tile type. Types differ
// in shape as well as color.
func Glyph(t board.TileType) rune {
	switch t {
	case board.TypeBlue:
		return '●'
	case board.TypeBrown:
		return '■'
	case board.TypeRed:
		return '▲'
	case board.TypeGreen:
		return '◆'
	case board.TypeYellow:
		return '★'
	case board.TypePurple:
		return '♥'
	default:
		return '·'
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	if g.paused {
		g.renderPaused(dst)
	}
}

// renderHUD draws the title and the chain status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "T I L E L I N K", core.ColorAccent)
	dst.DrawTextCentered(1, g.statusLine(), core.ColorMuted)
}

func (g *Game) statusLine() string {
	parts := []string{g.Title()}

	chain := g.ctrl.Chain()
	if chain.Len() > 0 {
		parts = append(parts, fmt.Sprintf("chain %d %s", chain.Len(), chain.Anchor()))
	}
	if pending := g.ctrl.Cascades().Pending(); pending > 0 {
		parts = append(parts, fmt.Sprintf("settling %d", pending))
	}
	return strings.Join(parts, " · ")
}

// renderBoard draws every tile box with its indicators and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.ctrl.Grid()
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			g.renderTile(dst, grid.At(r, c))
		}
	}

	cell := g.layout.CellRect(g.cursor)
	cursorColor := core.ColorHighlight
	if g.holding {
		cursorColor = core.ColorWarning
	}
	dst.SetCell(cell.X+CellW/2-1, cell.Y+CellH/2, '[', cursorColor)
	dst.SetCell(cell.X+CellW/2+1, cell.Y+CellH/2, ']', cursorColor)
}

func (g *Game) renderTile(dst *core.Screen, t *board.Tile) {
	cell := g.layout.CellRect(t.Pos())
	cx, cy := cell.X+CellW/2, cell.Y+CellH/2

	if t.Empty() {
		dst.SetCell(cx, cy, Glyph(board.TypeNone), core.ColorDim)
	} else {
		dst.SetCell(cx, cy, Glyph(t.Type()), core.Color(t.Color()))
	}

	for _, d := range t.Indicators().List() {
		dx, dy := indicatorOffset(d)
		dst.SetCell(cell.X+dx, cell.Y+dy, d.Glyph(), core.ColorBright)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	need := fmt.Sprintf("Need %dx%d", g.layout.Board.W, g.layout.Board.Bottom())
	dst.DrawTextCentered(y+1, need, core.ColorMuted)
}

// renderError shows why the mode could not start.
func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Cannot start "+g.Title(), core.ColorWarning)
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error(), core.ColorMuted)
	}
}

// renderPaused draws a boxed PAUSED banner over the board center.
func (g *Game) renderPaused(dst *core.Screen) {
	const text = " PAUSED "
	w := len(text) + 2
	cx, cy := g.layout.Board.Center()
	box := core.NewRect(cx-w/2, cy-1, w, 3)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBright)
	dst.DrawTextColor(box.X+1, box.Y+1, text, core.ColorHighlight)
}
