package core

// Color represents a foreground color for a screen cell.
// ColorDefault doubles as the "empty" marker in game grids.
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
	ColorOrange
	ColorGray
)

// String returns the color name.
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
	default:
		return "unknown"
	}
}
