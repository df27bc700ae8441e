package core

// Color is a terminal color expressed as an ANSI 256-color code.
// ColorDefault leaves the terminal's own color in place.
type Color int16

// Predefined colors for game elements.
const (
	ColorDefault Color = -1

	ColorBlack         Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
)

// Valid reports whether c is the default color or a code in the 256-color range.
func (c Color) Valid() bool {
	return c == ColorDefault || (c >= 0 && c <= 255)
}
