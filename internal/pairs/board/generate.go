package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// CopiesPerSymbol is how many tokens carry each symbol on a fresh board.
const CopiesPerSymbol = 4

var (
	// ErrConfig marks stage definitions that cannot produce a board.
	ErrConfig = errors.New("board: invalid configuration")

	// ErrIndivisibleLayout is returned when the active cell count is not a
	// multiple of CopiesPerSymbol.
	ErrIndivisibleLayout = fmt.Errorf("%w: active cells not divisible by %d", ErrConfig, CopiesPerSymbol)

	// ErrAlphabetTooSmall is returned when the stage needs more distinct
	// symbols than the alphabet holds.
	ErrAlphabetTooSmall = fmt.Errorf("%w: not enough symbols", ErrConfig)
)

// Generate deals one token per active cell of the shape.
// A random subset of the alphabet is chosen (one symbol per four cells), each
// chosen symbol is placed exactly four times and the placement is shuffled.
// Token IDs follow the row-major order of the active cells.
func Generate(rng *rand.Rand, shape Shape, alphabet Alphabet) ([]Token, error) {
	cells := shape.ActiveCells()
	total := len(cells)

	if total%CopiesPerSymbol != 0 {
		return nil, fmt.Errorf("%w (have %d)", ErrIndivisibleLayout, total)
	}

	kinds := total / CopiesPerSymbol
	if kinds > len(alphabet) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrAlphabetTooSmall, kinds, len(alphabet))
	}

	// Shuffle the pool, then take the first kinds symbols for variety
	pool := make([]Symbol, len(alphabet))
	copy(pool, alphabet)
	shuffleSymbols(rng, pool)

	symbols := make([]Symbol, 0, total)
	for _, s := range pool[:kinds] {
		for range CopiesPerSymbol {
			symbols = append(symbols, s)
		}
	}
	shuffleSymbols(rng, symbols)

	tokens := make([]Token, total)
	for i, pos := range cells {
		tokens[i] = Token{
			ID:     i,
			Symbol: symbols[i],
			Pos:    pos,
		}
	}
	return tokens, nil
}

// shuffleSymbols performs an in-place Fisher-Yates shuffle.
func shuffleSymbols(rng *rand.Rand, s []Symbol) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
