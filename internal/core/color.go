package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold      // Normal coins (255,215,0)
	ColorSilver    // Silver coins (192,192,192)
	ColorSkyBlue   // Default background
	ColorForest    // Forest background (34,139,34)
	ColorDarkRed   // Danger background (139,0,0)
	ColorLavender  // Jump dust (200,200,255)
	ColorBrown     // Moving platforms (200,100,50)
	ColorNightBlue // Menu background
	ColorBlack
)

// String returns the color name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorGold:
		return "gold"
	case ColorSilver:
		return "silver"
	case ColorSkyBlue:
		return "sky"
	case ColorForest:
		return "forest"
	case ColorDarkRed:
		return "dark-red"
	case ColorLavender:
		return "lavender"
	case ColorBrown:
		return "brown"
	case ColorNightBlue:
		return "night"
	case ColorBlack:
		return "black"
	default:
		return "bright"
	}
}
