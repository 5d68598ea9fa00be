package core

// Color represents a foreground color for a screen cell.
// The platform maps each value onto a palette entry of the active theme.
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

// SymbolColors is the rotation used to tint token symbols.
var SymbolColors = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
}

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrUnderline
	AttrFaint
)

// Has reports whether all bits of b are set.
func (a Attr) Has(b Attr) bool {
	return a&b == b
}
