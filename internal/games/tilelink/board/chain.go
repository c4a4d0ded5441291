package board

// MinChainLength is the shortest chain that clears on commit.
const MinChainLength = 3

// ExtendResult describes what TryExtend did.
type ExtendResult uint8

const (
	ExtendIgnored ExtendResult = iota
	ExtendBegun
	ExtendAppended
	ExtendTruncated
)

// String returns the string representation of the result.
func (r ExtendResult) String() string {
	switch r {
	case ExtendIgnored:
		return "ignored"
	case ExtendBegun:
		return "begun"
	case ExtendAppended:
		return "appended"
	case ExtendTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Cascader refills a column after its tiles were cleared.
type Cascader interface {
	Cascade(col int)
}

// Chain is the ordered selection the player is dragging.
// It stores grid positions and the type captured when the chain began.
// Every tile has the anchor type, each tile was adjacent to its
// predecessor when appended, and no position appears twice.
type Chain struct {
	grid      *Grid
	positions []Pos
	anchor    TileType
}

// NewChain creates an empty chain over g.
func NewChain(g *Grid) *Chain {
	return &Chain{grid: g}
}

// Len returns the number of tiles in the chain.
func (c *Chain) Len() int { return len(c.positions) }

// Anchor returns the type the chain was started with, or TypeNone when empty.
func (c *Chain) Anchor() TileType { return c.anchor }

// Positions returns a copy of the chain positions in selection order.
func (c *Chain) Positions() []Pos {
	out := make([]Pos, len(c.positions))
	copy(out, c.positions)
	return out
}

// Tiles returns the chain tiles in selection order.
func (c *Chain) Tiles() []*Tile {
	out := make([]*Tile, 0, len(c.positions))
	for _, p := range c.positions {
		if t, ok := c.grid.Lookup(p); ok {
			out = append(out, t)
		}
	}
	return out
}

// Last returns the most recently added tile, or nil when the chain is empty.
func (c *Chain) Last() *Tile {
	if len(c.positions) == 0 {
		return nil
	}
	t, _ := c.grid.Lookup(c.positions[len(c.positions)-1])
	return t
}

// Contains reports whether p is part of the chain.
func (c *Chain) Contains(p Pos) bool {
	return c.indexOf(p) >= 0
}

// Begin starts a chain at t. It fails when a chain is already in progress
// or t is nil or empty.
func (c *Chain) Begin(t *Tile) bool {
	if len(c.positions) > 0 || t == nil || t.Empty() {
		return false
	}
	c.positions = append(c.positions, t.Pos())
	c.anchor = t.Type()
	return true
}

// TryExtend applies a pointer move over t.
//
// An empty chain begins at t. A tile of another type, or the current last
// tile, is ignored. Revisiting a tile already in the chain truncates the
// chain back to it. A tile adjacent to the last one is appended and the
// indicators between the two are turned on.
func (c *Chain) TryExtend(t *Tile) ExtendResult {
	if len(c.positions) == 0 {
		if c.Begin(t) {
			return ExtendBegun
		}
		return ExtendIgnored
	}
	if t == nil || t.Type() != c.anchor {
		return ExtendIgnored
	}

	last := c.Last()
	if last == t {
		return ExtendIgnored
	}

	if idx := c.indexOf(t.Pos()); idx >= 0 {
		c.truncate(idx)
		return ExtendTruncated
	}

	if !t.IsAdjacent(last) {
		return ExtendIgnored
	}

	d := last.DirectionTo(t)
	last.Activate(d)
	t.Activate(d.Reverse())
	c.positions = append(c.positions, t.Pos())
	return ExtendAppended
}

// truncate drops every tile after idx and restores the indicator that
// points from the tile at idx back to its predecessor.
func (c *Chain) truncate(idx int) {
	for i := len(c.positions) - 1; i > idx; i-- {
		if t, ok := c.grid.Lookup(c.positions[i]); ok {
			t.DeactivateAll()
		}
	}
	c.positions = c.positions[:idx+1]

	matched, _ := c.grid.Lookup(c.positions[idx])
	matched.DeactivateAll()
	if idx > 0 {
		prev, _ := c.grid.Lookup(c.positions[idx-1])
		matched.Activate(prev.DirectionTo(matched).Reverse())
	}
}

// Commit clears the chain tiles when the chain is long enough and asks
// cascader to refill each touched column once, in first-occurrence order.
// It returns the touched columns, or nil when the chain was too short.
// The chain itself is left in place; call End afterwards.
func (c *Chain) Commit(cascader Cascader) []int {
	if len(c.positions) < MinChainLength {
		return nil
	}

	var cols []int
	seen := make(map[int]bool, len(c.positions))
	for _, p := range c.positions {
		t, ok := c.grid.Lookup(p)
		if !ok {
			continue
		}
		t.Reset()
		if !seen[p.Col] {
			seen[p.Col] = true
			cols = append(cols, p.Col)
		}
	}

	if cascader != nil {
		for _, col := range cols {
			cascader.Cascade(col)
		}
	}
	return cols
}

// End turns off the indicators of every chain tile and empties the chain.
func (c *Chain) End() {
	for _, t := range c.Tiles() {
		t.DeactivateAll()
	}
	c.positions = c.positions[:0]
	c.anchor = TypeNone
}

func (c *Chain) indexOf(p Pos) int {
	for i, q := range c.positions {
		if q == p {
			return i
		}
	}
	return -1
}
