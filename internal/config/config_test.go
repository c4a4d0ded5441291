package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestResolveClassic(t *testing.T) {
	s, err := Default().Resolve("classic")
	require.NoError(t, err)
	require.Equal(t, 5, s.Rows)
	require.Equal(t, 5, s.Cols)
	require.Equal(t, []board.TileType{board.TypeBlue, board.TypeBrown}, s.Types)
	require.Len(t, s.Palette, 6)
	require.Equal(t, board.PaletteEntry{Type: board.TypeBrown, Color: "#8B4513"}, s.Palette[1])

	_, err = Default().Resolve("missing")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown palette type", func(c *Config) { c.Palette[0].Type = "teal" }},
		{"duplicate palette type", func(c *Config) { c.Palette[1].Type = "blue" }},
		{"empty color", func(c *Config) { c.Palette[0].Color = "" }},
		{"no modes", func(c *Config) { c.Modes = nil }},
		{"duplicate mode", func(c *Config) { c.Modes[1].ID = "classic" }},
		{"zero rows", func(c *Config) { c.Modes[0].Rows = 0 }},
		{"no types", func(c *Config) { c.Modes[0].Types = nil }},
		{"none type", func(c *Config) { c.Modes[0].Types = []string{"none"} }},
		{"type without color", func(c *Config) { c.Palette = c.Palette[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), board.ErrInvalidConfiguration)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	custom := `
palette:
  - type: red
    color: "9"
  - type: green
    color: "#00ff00"
modes:
  - id: tiny
    title: Tiny
    rows: 3
    columns: 4
    types: [red, green]
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Modes, 1)

	s, err := cfg.Resolve("tiny")
	require.NoError(t, err)
	require.Equal(t, 3, s.Rows)
	require.Equal(t, 4, s.Cols)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("palette: [\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("modes: []\n"), 0o600))
	_, err = Load(invalid)
	require.ErrorIs(t, err, board.ErrInvalidConfiguration)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	// Local ./configs wins over the embedded file.
	local := Default()
	local.Modes = local.Modes[:1]
	writeConfig(t, filepath.Join(work, "configs", FileName), local)
	cfg, err = Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Modes, 1)

	// The user directory wins over ./configs.
	user := Default()
	user.Modes = user.Modes[:2]
	writeConfig(t, filepath.Join(home, ".tilelink", "configs", FileName), user)
	cfg, err = Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Modes, 2)
}

func writeConfig(t *testing.T, path string, cfg Config) {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
