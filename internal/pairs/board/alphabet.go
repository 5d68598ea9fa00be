package board

// Alphabet is a pool of distinct symbols to draw from when dealing a board.
type Alphabet []Symbol

// defaultRunes are single-width glyphs that render cleanly in a terminal cell.
const defaultRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"ΓΔΘΛΞΠΣΦΨΩ" +
	"αβγδεζηθλμξπσφψω" +
	"@#$%&*+?="

// DefaultAlphabet returns the built-in symbol pool.
func DefaultAlphabet() Alphabet {
	runes := []rune(defaultRunes)
	a := make(Alphabet, len(runes))
	for i, r := range runes {
		a[i] = Symbol(r)
	}
	return a
}

// Index returns the position of s in the alphabet, or -1.
// Renderers use it to derive a stable color per symbol.
func (a Alphabet) Index(s Symbol) int {
	for i, sym := range a {
		if sym == s {
			return i
		}
	}
	return -1
}
