package board

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// EventKind is the kind of pointer event fed to a Controller.
type EventKind uint8

const (
	EventDown EventKind = iota
	EventMove
	EventUp
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventDown:
		return "down"
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a resolved pointer event. Cell is nil when the pointer is not
// over a grid cell.
type Event struct {
	Kind EventKind
	Cell *Pos
}

// Down returns a press event over p.
func Down(p Pos) Event { return Event{Kind: EventDown, Cell: &p} }

// Move returns a drag event over p.
func Move(p Pos) Event { return Event{Kind: EventMove, Cell: &p} }

// MoveOff returns a drag event outside the grid.
func MoveOff() Event { return Event{Kind: EventMove} }

// Up returns a release event.
func Up() Event { return Event{Kind: EventUp} }

// Settings configures a Controller.
type Settings struct {
	Rows     int
	Cols     int
	Palette  []PaletteEntry
	Types    []TileType
	Rand     Source
	Logger   *log.Logger
	Observer Observer
}

// Controller owns a board and turns pointer events into chain and cascade
// operations. It is not safe for concurrent use.
type Controller struct {
	settings Settings
	palette  *Palette
	source   *TileSource
	grid     *Grid
	chain    *Chain
	cascades *CascadeEngine
	logger   *log.Logger

	lastCommit []int
}

// NewController validates settings and builds a filled board.
func NewController(s Settings) (*Controller, error) {
	palette, err := NewPalette(s.Palette...)
	if err != nil {
		return nil, err
	}
	source, err := NewTileSource(palette, s.Types, s.Rand)
	if err != nil {
		return nil, err
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return nil, fmt.Errorf("board size %dx%d: %w", s.Rows, s.Cols, ErrInvalidConfiguration)
	}

	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		settings: s,
		palette:  palette,
		source:   source,
		logger:   logger,
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) build() error {
	grid := &Grid{}
	grid.SetObserver(c.settings.Observer)
	if err := grid.Init(c.settings.Rows, c.settings.Cols); err != nil {
		return err
	}
	grid.Fill(c.source)

	c.grid = grid
	c.chain = NewChain(grid)
	c.cascades = NewCascadeEngine(grid, c.source, c.logger)
	c.lastCommit = nil
	return nil
}

// Reset replaces the board with a freshly filled one. Pending cascades
// and the current chain are dropped.
func (c *Controller) Reset() {
	// Settings were validated by NewController.
	_ = c.build()
}

// Handle applies one pointer event.
func (c *Controller) Handle(ev Event) ExtendResult {
	switch ev.Kind {
	case EventDown:
		if c.chain.Len() > 0 {
			// The release of the previous drag was lost.
			c.chain.End()
		}
		if c.chain.Begin(c.resolve(ev.Cell)) {
			return ExtendBegun
		}
		return ExtendIgnored

	case EventMove:
		return c.chain.TryExtend(c.resolve(ev.Cell))

	case EventUp:
		length := c.chain.Len()
		cols := c.chain.Commit(c.cascades)
		c.chain.End()
		c.lastCommit = cols
		if cols != nil {
			c.logger.Debug("chain committed", "length", length, "columns", cols)
		}
		return ExtendIgnored
	}
	return ExtendIgnored
}

// resolve returns the selectable tile under p. Tiles in settling columns
// are not selectable.
func (c *Controller) resolve(p *Pos) *Tile {
	if p == nil {
		return nil
	}
	t, ok := c.grid.Lookup(*p)
	if !ok || c.cascades.ColumnBusy(p.Col) {
		return nil
	}
	return t
}

// Advance moves cascades forward by dt and returns the settle steps run.
func (c *Controller) Advance(dt time.Duration) int {
	return c.cascades.Advance(dt)
}

// Grid returns the board.
func (c *Controller) Grid() *Grid { return c.grid }

// Chain returns the current selection.
func (c *Controller) Chain() *Chain { return c.chain }

// Cascades returns the cascade engine.
func (c *Controller) Cascades() *CascadeEngine { return c.cascades }

// Palette returns the validated palette.
func (c *Controller) Palette() *Palette { return c.palette }

// LastCommit returns the columns cleared by the most recent release,
// or nil when it cleared nothing.
func (c *Controller) LastCommit() []int { return c.lastCommit }
