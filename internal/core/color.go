package core

// Color is a foreground or background color for a screen cell. The
// platform layer decides how each one looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // hazard point
	ColorGreen         // snake body
	ColorYellow        // score
	ColorBlue          // food, borders
	ColorMagenta       // slowdown status
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen // snake head
	ColorBrightBlue
	ColorGray // secondary text, empty progress track
)
