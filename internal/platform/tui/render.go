package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

type styleKey struct {
	color core.Color
	attr  core.Attr
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and attributes to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen, p theme.Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)
	styleFor := func(k styleKey) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = p.Style(k.color, k.attr)
			styles[k] = st
		}
		return st
	}

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			k := styleKey{color: first.Color, attr: first.Attr}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != k.color || cell.Attr != k.attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(k).Render(run.String()))
		}
	}
	return sb.String()
}
