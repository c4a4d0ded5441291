package board

// Direction is one of the eight neighbour directions on the grid.
// Up decreases the row, Down increases it.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
	dirCount
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUpLeft:
		return "UpLeft"
	case DirUpRight:
		return "UpRight"
	case DirDownLeft:
		return "DownLeft"
	case DirDownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return -1, 1
	case DirDownLeft:
		return 1, -1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction.
// Unknown values map to DirRight, mirroring the DirectionTo fallback.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUpLeft:
		return DirDownRight
	case DirUpRight:
		return DirDownLeft
	case DirDownLeft:
		return DirUpRight
	case DirDownRight:
		return DirUpLeft
	default:
		return DirRight
	}
}

// Glyph returns the indicator character drawn on the side of a tile.
func (d Direction) Glyph() rune {
	switch d {
	case DirUp, DirDown:
		return '│'
	case DirLeft, DirRight:
		return '─'
	case DirUpLeft, DirDownRight:
		return '╲'
	case DirUpRight, DirDownLeft:
		return '╱'
	default:
		return ' '
	}
}

// AllDirections returns the eight directions in declaration order.
func AllDirections() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight, DirUpLeft, DirUpRight, DirDownLeft, DirDownRight}
}

// directionOf classifies a relative offset.
// Anything that is not a pure cardinal or an equal-magnitude diagonal,
// including the zero offset, falls back to DirRight.
func directionOf(dRow, dCol int) Direction {
	switch {
	case dRow == 0 && dCol > 0:
		return DirRight
	case dRow == 0 && dCol < 0:
		return DirLeft
	case dRow > 0 && dCol == 0:
		return DirDown
	case dRow < 0 && dCol == 0:
		return DirUp
	}

	if abs(dRow) != abs(dCol) {
		return DirRight
	}

	switch {
	case dRow > 0 && dCol > 0:
		return DirDownRight
	case dRow > 0 && dCol < 0:
		return DirDownLeft
	case dRow < 0 && dCol > 0:
		return DirUpRight
	default:
		return DirUpLeft
	}
}

// DirectionSet is a bitmask of active direction indicators.
type DirectionSet uint8

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return d < dirCount && s&(1<<d) != 0
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	if d >= dirCount {
		return s
	}
	return s | 1<<d
}

// Without returns the set with d removed.
func (s DirectionSet) Without(d Direction) DirectionSet {
	if d >= dirCount {
		return s
	}
	return s &^ (1 << d)
}

// Empty reports whether no direction is set.
func (s DirectionSet) Empty() bool {
	return s == 0
}

// List returns the directions in the set in declaration order.
func (s DirectionSet) List() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
