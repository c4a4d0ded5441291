// Package config provides YAML-based configuration for Tilelink: the tile
// palette and the playable board modes.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

// ErrUnknownMode is returned when a mode ID is not configured.
var ErrUnknownMode = errors.New("config: unknown mode")

// Config is the full Tilelink configuration.
type Config struct {
	Palette []PaletteEntry `yaml:"palette"`
	Modes   []Mode         `yaml:"modes"`
}

// PaletteEntry maps a tile type name to a terminal color.
type PaletteEntry struct {
	Type  string `yaml:"type"`
	Color string `yaml:"color"` // ANSI 256 index ("33") or hex ("#8B4513")
}

// Mode describes one playable board.
type Mode struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Rows        int      `yaml:"rows"`
	Columns     int      `yaml:"columns"`
	Types       []string `yaml:"types"` // Tile types generated on this board
}

// Validate checks that the palette and every mode can build a board.
// Errors wrap board.ErrInvalidConfiguration.
func (c Config) Validate() error {
	palette, err := c.palette()
	if err != nil {
		return err
	}
	if len(c.Modes) == 0 {
		return fmt.Errorf("no modes configured: %w", board.ErrInvalidConfiguration)
	}

	seen := make(map[string]bool, len(c.Modes))
	for _, m := range c.Modes {
		if m.ID == "" {
			return fmt.Errorf("mode without id: %w", board.ErrInvalidConfiguration)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate mode %q: %w", m.ID, board.ErrInvalidConfiguration)
		}
		seen[m.ID] = true

		if m.Rows <= 0 || m.Columns <= 0 {
			return fmt.Errorf("mode %q size %dx%d: %w", m.ID, m.Rows, m.Columns, board.ErrInvalidConfiguration)
		}
		types, err := parseTypes(m.Types)
		if err != nil {
			return fmt.Errorf("mode %q: %w", m.ID, err)
		}
		for _, t := range types {
			if !hasEntry(palette, t) {
				return fmt.Errorf("mode %q: type %q has no palette color: %w", m.ID, t, board.ErrInvalidConfiguration)
			}
		}
	}
	return nil
}

// Mode returns the mode with the given ID.
func (c Config) Mode(id string) (Mode, error) {
	for _, m := range c.Modes {
		if m.ID == id {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w %q", ErrUnknownMode, id)
}

// Resolve converts a mode into board settings. The caller supplies the
// random source, logger and observer.
func (c Config) Resolve(modeID string) (board.Settings, error) {
	m, err := c.Mode(modeID)
	if err != nil {
		return board.Settings{}, err
	}
	palette, err := c.palette()
	if err != nil {
		return board.Settings{}, err
	}
	types, err := parseTypes(m.Types)
	if err != nil {
		return board.Settings{}, fmt.Errorf("mode %q: %w", m.ID, err)
	}

	return board.Settings{
		Rows:    m.Rows,
		Cols:    m.Columns,
		Palette: palette.Entries(),
		Types:   types,
	}, nil
}

func (c Config) palette() (*board.Palette, error) {
	entries := make([]board.PaletteEntry, 0, len(c.Palette))
	for _, e := range c.Palette {
		t, ok := board.ParseTileType(e.Type)
		if !ok {
			return nil, fmt.Errorf("palette type %q: %w", e.Type, board.ErrInvalidConfiguration)
		}
		if e.Color == "" {
			return nil, fmt.Errorf("palette type %q has no color: %w", e.Type, board.ErrInvalidConfiguration)
		}
		entries = append(entries, board.PaletteEntry{Type: t, Color: board.Color(e.Color)})
	}
	return board.NewPalette(entries...)
}

func parseTypes(names []string) ([]board.TileType, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no tile types: %w", board.ErrInvalidConfiguration)
	}
	types := make([]board.TileType, 0, len(names))
	for _, name := range names {
		t, ok := board.ParseTileType(name)
		if !ok {
			return nil, fmt.Errorf("tile type %q: %w", name, board.ErrInvalidConfiguration)
		}
		types = append(types, t)
	}
	return types, nil
}

func hasEntry(p *board.Palette, t board.TileType) bool {
	for _, e := range p.Entries() {
		if e.Type == t {
			return true
		}
	}
	return false
}
