package board

// Observer receives tile state changes. The grid forwards every indicator
// and placement change of its tiles to the observer set with SetObserver.
type Observer interface {
	IndicatorOn(p Pos, d Direction)
	IndicatorOff(p Pos, d Direction)
	IndicatorsCleared(p Pos)
	Placed(p Pos, data TileData)
	Cleared(p Pos)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) IndicatorOn(Pos, Direction) {}
func (NopObserver) IndicatorOff(Pos, Direction) {}
func (NopObserver) IndicatorsCleared(Pos)       {}
func (NopObserver) Placed(Pos, TileData)        {}
func (NopObserver) Cleared(Pos)                 {}

// Tile is one addressable cell of a Grid.
// Its coordinates are fixed when the grid is initialized.
type Tile struct {
	row, col   int
	typ        TileType
	color      Color
	active     bool
	indicators DirectionSet
	grid       *Grid
}

// Row returns the tile's row index.
func (t *Tile) Row() int { return t.row }

// Col returns the tile's column index.
func (t *Tile) Col() int { return t.col }

// Pos returns the tile's grid position.
func (t *Tile) Pos() Pos { return Pos{Row: t.row, Col: t.col} }

// Type returns the tile type.
func (t *Tile) Type() TileType { return t.typ }

// Color returns the tile color.
func (t *Tile) Color() Color { return t.color }

// Active reports whether the tile currently holds a piece.
func (t *Tile) Active() bool { return t.active }

// Empty reports whether the tile is in the empty state.
func (t *Tile) Empty() bool { return t.typ == TypeNone && !t.active }

// Indicators returns the set of active direction indicators.
func (t *Tile) Indicators() DirectionSet { return t.indicators }

// Data returns the tile's movable data.
func (t *Tile) Data() TileData {
	return TileData{Type: t.typ, Color: t.color}
}

// IsAdjacent reports whether other is within one step in each axis.
// A tile is adjacent to itself.
func (t *Tile) IsAdjacent(other *Tile) bool {
	if other == nil {
		return false
	}
	return abs(t.row-other.row) <= 1 && abs(t.col-other.col) <= 1
}

// DirectionTo returns the direction from t toward other.
// Offsets that are neither cardinal nor diagonal yield DirRight.
func (t *Tile) DirectionTo(other *Tile) Direction {
	if other == nil {
		return DirRight
	}
	return directionOf(other.row-t.row, other.col-t.col)
}

// Reset empties the tile and turns off all indicators.
func (t *Tile) Reset() {
	t.DeactivateAll()
	t.typ = TypeNone
	t.color = ColorNeutral
	t.active = false
	t.observer().Cleared(t.Pos())
}

// Place puts a piece on the tile. Placing TypeNone is the same as Reset.
func (t *Tile) Place(data TileData) {
	if data.Type == TypeNone {
		t.Reset()
		return
	}
	t.typ = data.Type
	t.color = data.Color
	t.active = true
	t.observer().Placed(t.Pos(), data)
}

// Activate turns on the indicator for d.
func (t *Tile) Activate(d Direction) {
	if d >= dirCount || t.indicators.Has(d) {
		return
	}
	t.indicators = t.indicators.With(d)
	t.observer().IndicatorOn(t.Pos(), d)
}

// Deactivate turns off the indicator for d.
func (t *Tile) Deactivate(d Direction) {
	if !t.indicators.Has(d) {
		return
	}
	t.indicators = t.indicators.Without(d)
	t.observer().IndicatorOff(t.Pos(), d)
}

// DeactivateAll turns off every indicator.
func (t *Tile) DeactivateAll() {
	if t.indicators.Empty() {
		return
	}
	t.indicators = 0
	t.observer().IndicatorsCleared(t.Pos())
}

func (t *Tile) observer() Observer {
	if t.grid == nil || t.grid.observer == nil {
		return NopObserver{}
	}
	return t.grid.observer
}
