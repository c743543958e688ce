package core

// Color represents a foreground or background color for a buffer cell.
// Values map onto the 16 standard ANSI colors; ColorDefault leaves the
// terminal's own color in place.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorDarkGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorWhite
)

// ANSI returns the 0-15 ANSI palette index for the color.
// The second return value is false for ColorDefault.
func (c Color) ANSI() (int, bool) {
	switch c {
	case ColorBlack:
		return 0, true
	case ColorRed:
		return 1, true
	case ColorGreen:
		return 2, true
	case ColorYellow:
		return 3, true
	case ColorBlue:
		return 4, true
	case ColorMagenta:
		return 5, true
	case ColorCyan:
		return 6, true
	case ColorGray:
		return 7, true
	case ColorDarkGray:
		return 8, true
	case ColorBrightRed:
		return 9, true
	case ColorBrightGreen:
		return 10, true
	case ColorBrightYellow:
		return 11, true
	case ColorBrightBlue:
		return 12, true
	case ColorBrightMagenta:
		return 13, true
	case ColorBrightCyan:
		return 14, true
	case ColorWhite:
		return 15, true
	default:
		return 0, false
	}
}
