package board

import "fmt"

// Grid is a fixed rows x cols arena of tiles stored in row-major order.
// Every slot holds a tile for the grid's lifetime; empty is a tile state.
type Grid struct {
	rows     int
	cols     int
	tiles    []Tile
	observer Observer
}

// NewGrid creates an initialized grid.
func NewGrid(rows, cols int) (*Grid, error) {
	g := &Grid{}
	if err := g.Init(rows, cols); err != nil {
		return nil, err
	}
	return g, nil
}

// Init allocates rows x cols empty tiles, discarding any previous state.
func (g *Grid) Init(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("grid size %dx%d: %w", rows, cols, ErrInvalidConfiguration)
	}
	g.rows = rows
	g.cols = cols
	g.tiles = make([]Tile, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.tiles[r*cols+c] = Tile{
				row:   r,
				col:   c,
				color: ColorNeutral,
				grid:  g,
			}
		}
	}
	return nil
}

// SetObserver installs the observer notified of tile changes. Nil disables notifications.
func (g *Grid) SetObserver(o Observer) {
	g.observer = o
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the tile at (row, col).
func (g *Grid) Get(row, col int) (*Tile, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}
	return &g.tiles[row*g.cols+col], nil
}

// Set places data on the tile at (row, col).
func (g *Grid) Set(row, col int, data TileData) error {
	t, err := g.Get(row, col)
	if err != nil {
		return err
	}
	t.Place(data)
	return nil
}

// Lookup returns the tile at p, or false when p is outside the grid.
func (g *Grid) Lookup(p Pos) (*Tile, bool) {
	if !g.InBounds(p.Row, p.Col) {
		return nil, false
	}
	return &g.tiles[p.Row*g.cols+p.Col], true
}

// At returns the tile at (row, col) without error reporting.
// Callers must stay in bounds.
func (g *Grid) At(row, col int) *Tile {
	return &g.tiles[row*g.cols+col]
}

// EmptyRows returns the empty rows of col, scanned from the bottom row up.
func (g *Grid) EmptyRows(col int) ([]int, error) {
	if col < 0 || col >= g.cols {
		return nil, fmt.Errorf("empty rows of column %d on %dx%d grid: %w", col, g.rows, g.cols, ErrOutOfRange)
	}
	var rows []int
	for r := g.rows - 1; r >= 0; r-- {
		if g.At(r, col).Empty() {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// Fill places a random tile on every slot.
func (g *Grid) Fill(src *TileSource) {
	for i := range g.tiles {
		g.tiles[i].Place(src.Next())
	}
}

// EmptyCount returns the number of empty tiles.
func (g *Grid) EmptyCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Empty() {
			n++
		}
	}
	return n
}

// Types returns a row-major snapshot of tile types.
func (g *Grid) Types() [][]TileType {
	out := make([][]TileType, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]TileType, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = g.At(r, c).typ
		}
	}
	return out
}

// String renders the grid with one character per tile.
func (g *Grid) String() string {
	buf := make([]rune, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, g.At(r, c).typ.Char())
		}
		if r < g.rows-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
