package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to ANSI colors. ColorDefault has no entry and
// keeps the terminal's own color.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightRed:   lipgloss.Color("9"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorBrightBlue:  lipgloss.Color("12"),
	core.ColorGray:        lipgloss.Color("245"),
}

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

func newStyle(c cellColors) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := palette[c.fg]; ok {
		style = style.Foreground(fg)
	}
	if bg, ok := palette[c.bg]; ok {
		style = style.Background(bg)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[cellColors]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellColors{fg: cell.Color, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.Color, bg: cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = newStyle(key)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
