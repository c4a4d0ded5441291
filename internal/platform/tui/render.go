package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tilelink/internal/core"
)

// ScreenRenderer converts Screen buffers into styled strings. Styles are
// created on first use of a color and cached; palette colors are ANSI 256
// codes or hex strings, both understood by lipgloss.Color.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// process-wide default.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen renders s with the process-wide default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}
