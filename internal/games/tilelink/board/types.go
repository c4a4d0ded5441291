// Package board provides the grid state machine for Tilelink: tiles, the
// selection chain a player drags across them, and the column cascade that
// refills cleared cells.
//
// This package is UI-agnostic and deterministic for a given random source.
package board

import (
	"fmt"
	"strings"
)

// TileType identifies the kind of a tile. TypeNone marks an empty cell.
type TileType uint8

const (
	TypeNone TileType = iota
	TypeBlue
	TypeBrown
	TypeRed
	TypeGreen
	TypeYellow
	TypePurple
	typeCount // Sentinel value for iteration
)

// String returns the lowercase name of the type.
func (t TileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeBlue:
		return "blue"
	case TypeBrown:
		return "brown"
	case TypeRed:
		return "red"
	case TypeGreen:
		return "green"
	case TypeYellow:
		return "yellow"
	case TypePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII rendering.
func (t TileType) Char() rune {
	switch t {
	case TypeNone:
		return '.'
	case TypeBlue:
		return 'B'
	case TypeBrown:
		return 'N'
	case TypeRed:
		return 'R'
	case TypeGreen:
		return 'G'
	case TypeYellow:
		return 'Y'
	case TypePurple:
		return 'P'
	default:
		return '?'
	}
}

// Playable reports whether the type can appear on a filled tile.
func (t TileType) Playable() bool {
	return t > TypeNone && t < typeCount
}

// ParseTileType converts a name to a TileType.
// Returns TypeNone and false if the name is not a playable type.
func ParseTileType(s string) (TileType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return TypeBlue, true
	case "brown":
		return TypeBrown, true
	case "red":
		return TypeRed, true
	case "green":
		return TypeGreen, true
	case "yellow":
		return TypeYellow, true
	case "purple":
		return TypePurple, true
	default:
		return TypeNone, false
	}
}

// AllTypes returns every playable type in declaration order.
func AllTypes() []TileType {
	types := make([]TileType, 0, typeCount-1)
	for t := TypeNone + 1; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Color is a terminal color: an ANSI index ("33") or a hex value ("#8B4513").
type Color string

// ColorNeutral is used for empty tiles and for types missing from a palette.
const ColorNeutral Color = "15"

// TileData is the movable part of a tile: what it is and how it is drawn.
type TileData struct {
	Type  TileType
	Color Color
}

// Pos addresses a grid slot. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
