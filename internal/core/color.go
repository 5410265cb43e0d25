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
)

// pieceColors maps the seven tetromino color tags (1..7) to screen colors.
// Tag 0 (empty) maps to the default color.
var pieceColors = [8]Color{
	ColorDefault,
	ColorBrightCyan,    // I
	ColorBrightYellow,  // O
	ColorBrightMagenta, // T
	ColorBrightGreen,   // S
	ColorBrightRed,     // Z
	ColorBrightBlue,    // J
	ColorOrange,        // L
}

// PieceColor returns the screen color for a board cell tag.
func PieceColor(tag int) Color {
	if tag < 0 || tag >= len(pieceColors) {
		return ColorDefault
	}
	return pieceColors[tag]
}
