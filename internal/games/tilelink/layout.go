package tilelink

import (
	"github.com/vovakirdan/tui-tilelink/internal/core"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

// Tile box dimensions in terminal cells. The center holds the tile glyph;
// the eight surrounding positions hold direction indicators, so indicators
// of neighbouring tiles meet across the shared edge.
const (
	CellW = 5
	CellH = 3

	hudHeight = 2 // Title and status lines above the board
)

// Layout places a board on the screen and maps screen cells back to grid cells.
type Layout struct {
	Board   core.Rect // Screen area covered by tiles
	ScreenW int
	ScreenH int
	Rows    int
	Cols    int
}

// NewLayout centers a rows x cols board below the HUD.
func NewLayout(screenW, screenH, rows, cols int) Layout {
	w := cols * CellW
	h := rows * CellH

	x := (screenW - w) / 2
	y := hudHeight + core.Max(0, (screenH-hudHeight-h)/2)

	return Layout{
		Board:   core.NewRect(core.Max(x, 0), y, w, h),
		ScreenW: screenW,
		ScreenH: screenH,
		Rows:    rows,
		Cols:    cols,
	}
}

// Fits reports whether the whole board and HUD are visible.
func (l Layout) Fits() bool {
	return l.Board.W <= l.ScreenW && l.Board.Bottom() <= l.ScreenH
}

// CellAt returns the grid cell under the screen position (x, y).
func (l Layout) CellAt(x, y int) (board.Pos, bool) {
	if l.Rows == 0 || l.Cols == 0 || !l.Board.Contains(x, y) {
		return board.Pos{}, false
	}
	return board.P((y-l.Board.Y)/CellH, (x-l.Board.X)/CellW), true
}

// CellRect returns the screen area of the grid cell p.
func (l Layout) CellRect(p board.Pos) core.Rect {
	return core.NewRect(l.Board.X+p.Col*CellW, l.Board.Y+p.Row*CellH, CellW, CellH)
}

// indicatorOffset returns where the indicator for d sits inside a tile box.
func indicatorOffset(d board.Direction) (dx, dy int) {
	dRow, dCol := d.Delta()
	return CellW/2 + dCol*(CellW/2), CellH/2 + dRow*(CellH/2)
}
