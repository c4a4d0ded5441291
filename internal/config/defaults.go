package config

import (
	_ "embed"
)

//go:embed defaults/tilelink.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches the embedded
// YAML and is used when that fails to parse.
func Default() Config {
	return Config{
		Palette: []PaletteEntry{
			{Type: "blue", Color: "33"},
			{Type: "brown", Color: "#8B4513"},
			{Type: "red", Color: "196"},
			{Type: "green", Color: "46"},
			{Type: "yellow", Color: "226"},
			{Type: "purple", Color: "135"},
		},
		Modes: []Mode{
			{
				ID:          "classic",
				Title:       "Classic",
				Description: "5x5 board, two tile types",
				Rows:        5,
				Columns:     5,
				Types:       []string{"blue", "brown"},
			},
			{
				ID:          "spectrum",
				Title:       "Spectrum",
				Description: "7x7 board, four tile types",
				Rows:        7,
				Columns:     7,
				Types:       []string{"blue", "brown", "red", "green"},
			},
			{
				ID:          "grand",
				Title:       "Grand",
				Description: "9x9 board, six tile types",
				Rows:        9,
				Columns:     9,
				Types:       []string{"blue", "brown", "red", "green", "yellow", "purple"},
			},
		},
	}
}
