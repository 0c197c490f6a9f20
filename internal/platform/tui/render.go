package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer into styled terminal output.
// Styles are cached per colour pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.fg != core.ColorNone {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorNone {
		s = s.Background(lipgloss.Color(k.bg))
	}
	r.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			key := styleKey{fg: start.FG, bg: start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
