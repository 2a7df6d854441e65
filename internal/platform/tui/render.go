package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vforge/bubblestorm/internal/core"
)

// styleCache maps hex color strings to lipgloss styles. The game emits a
// bounded palette per frame (bubble hues are quantized by Hex), so the cache
// stays small across a session.
var styleCache = map[string]lipgloss.Style{}

var plainStyle = lipgloss.NewStyle()

func styleFor(c core.Color) lipgloss.Style {
	if c == (core.Color{}) {
		return plainStyle
	}
	hex := c.Hex()
	if s, ok := styleCache[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	styleCache[hex] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with the same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
