package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorGold:          "220",
	core.ColorSilver:        "250",
	core.ColorSkyBlue:       "74",
	core.ColorForest:        "22",
	core.ColorDarkRed:       "52",
	core.ColorLavender:      "189",
	core.ColorBrown:         "130",
	core.ColorNightBlue:     "17",
	core.ColorBlack:         "0",
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
var styles = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		s = s.Background(c)
	}
	styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
