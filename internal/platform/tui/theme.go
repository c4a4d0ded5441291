package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the board itself. Tile colors
// come from the palette and are applied by ScreenRenderer.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuSize        lipgloss.Style

	// Help footer styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// NewTheme builds the default theme for a renderer. SSH sessions pass a
// renderer bound to the client's terminal.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		MenuTitle:       r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    r.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  r.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		MenuSize:        r.NewStyle().Foreground(lipgloss.Color("240")),

		HelpKey:       r.NewStyle().Foreground(lipgloss.Color("250")),
		HelpDesc:      r.NewStyle().Foreground(lipgloss.Color("242")),
		HelpSeparator: r.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// HelpModel returns a help view styled with the theme.
func (t Theme) HelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = t.HelpKey
	h.Styles.ShortDesc = t.HelpDesc
	h.Styles.ShortSeparator = t.HelpSeparator
	h.Styles.FullKey = t.HelpKey
	h.Styles.FullDesc = t.HelpDesc
	h.Styles.FullSeparator = t.HelpSeparator
	h.Styles.Ellipsis = t.HelpSeparator
	return h
}
