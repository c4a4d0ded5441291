package tilelink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

// ParseDrag parses a scripted drag such as "0,0 0,1 1,1" into grid positions.
func ParseDrag(s string) ([]board.Pos, error) {
	fields := strings.Fields(s)
	path := make([]board.Pos, 0, len(fields))
	for _, f := range fields {
		row, col, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("drag step %q: expected row,col", f)
		}
		r, err := strconv.Atoi(row)
		if err != nil {
			return nil, fmt.Errorf("drag step %q: bad row: %w", f, err)
		}
		c, err := strconv.Atoi(col)
		if err != nil {
			return nil, fmt.Errorf("drag step %q: bad column: %w", f, err)
		}
		path = append(path, board.P(r, c))
	}
	return path, nil
}

// DragResult reports what a scripted drag did.
type DragResult struct {
	Steps   []board.ExtendResult // One result per path position
	Cleared []int                // Columns cleared on release, nil if none
}

// ApplyDrag presses on the first position, drags through the rest and
// releases.
func ApplyDrag(c *board.Controller, path []board.Pos) DragResult {
	var res DragResult
	if len(path) == 0 {
		return res
	}

	res.Steps = append(res.Steps, c.Handle(board.Down(path[0])))
	for _, p := range path[1:] {
		res.Steps = append(res.Steps, c.Handle(board.Move(p)))
	}
	c.Handle(board.Up())
	res.Cleared = c.LastCommit()
	return res
}
