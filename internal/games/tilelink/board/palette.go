package board

import "fmt"

// Source is the random source used for tile generation.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// PaletteEntry maps one tile type to its color.
type PaletteEntry struct {
	Type  TileType
	Color Color
}

// Palette is an immutable type to color table.
type Palette struct {
	entries []PaletteEntry
	colors  map[TileType]Color
}

// NewPalette builds a palette. Each playable type may appear at most once;
// TypeNone entries are rejected.
func NewPalette(entries ...PaletteEntry) (*Palette, error) {
	p := &Palette{
		entries: make([]PaletteEntry, 0, len(entries)),
		colors:  make(map[TileType]Color, len(entries)),
	}
	for _, e := range entries {
		if !e.Type.Playable() {
			return nil, fmt.Errorf("palette entry %q: %w", e.Type, ErrInvalidConfiguration)
		}
		if _, dup := p.colors[e.Type]; dup {
			return nil, fmt.Errorf("duplicate palette entry %q: %w", e.Type, ErrInvalidConfiguration)
		}
		p.colors[e.Type] = e.Color
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// Entries returns a copy of the palette entries in declaration order.
func (p *Palette) Entries() []PaletteEntry {
	if p == nil {
		return nil
	}
	out := make([]PaletteEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// ColorOf returns the color for t, or ColorNeutral when t is not mapped.
func (p *Palette) ColorOf(t TileType) Color {
	if p == nil {
		return ColorNeutral
	}
	if c, ok := p.colors[t]; ok {
		return c
	}
	return ColorNeutral
}

// RandomTileData picks a type uniformly from allowed and pairs it with its color.
func (p *Palette) RandomTileData(rng Source, allowed []TileType) (TileData, error) {
	if err := validateAllowed(allowed); err != nil {
		return TileData{}, err
	}
	if rng == nil {
		return TileData{}, fmt.Errorf("nil random source: %w", ErrInvalidConfiguration)
	}
	t := allowed[rng.Intn(len(allowed))]
	return TileData{Type: t, Color: p.ColorOf(t)}, nil
}

func validateAllowed(allowed []TileType) error {
	if len(allowed) == 0 {
		return fmt.Errorf("empty allowed type set: %w", ErrInvalidConfiguration)
	}
	for _, t := range allowed {
		if !t.Playable() {
			return fmt.Errorf("allowed type %q: %w", t, ErrInvalidConfiguration)
		}
	}
	return nil
}

// TileSource produces random tiles from a validated palette and type set.
type TileSource struct {
	palette *Palette
	allowed []TileType
	rng     Source
}

// NewTileSource validates the allowed set and random source once so that
// Next cannot fail later.
func NewTileSource(p *Palette, allowed []TileType, rng Source) (*TileSource, error) {
	if err := validateAllowed(allowed); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrInvalidConfiguration)
	}
	types := make([]TileType, len(allowed))
	copy(types, allowed)
	return &TileSource{palette: p, allowed: types, rng: rng}, nil
}

// Next returns a random tile.
func (s *TileSource) Next() TileData {
	t := s.allowed[s.rng.Intn(len(s.allowed))]
	return TileData{Type: t, Color: s.palette.ColorOf(t)}
}

// Palette returns the source palette.
func (s *TileSource) Palette() *Palette {
	return s.palette
}

// Allowed returns a copy of the allowed types.
func (s *TileSource) Allowed() []TileType {
	out := make([]TileType, len(s.allowed))
	copy(out, s.allowed)
	return out
}
