package board

import "math/rand"

// Match is a connectable pair of equal tokens and the path joining them.
type Match struct {
	A    Token
	B    Token
	Path []Position
}

// FindAnyMatch returns the first connectable pair on the board.
// Live tokens are visited in slice order (ascending ID for generated boards);
// the outer loop picks A, the inner loop picks a later B with the same
// symbol. The ordering is part of the contract: hints and liveness checks
// are reproducible for identical boards.
func FindAnyMatch(tokens []Token, rows, cols int) (Match, bool) {
	g := BuildGrid(tokens, rows, cols)

	live := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Removed {
			live = append(live, t)
		}
	}

	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			if live[i].Symbol != live[j].Symbol {
				continue
			}
			if path := FindPath(g, live[i].Pos, live[j].Pos); path != nil {
				return Match{A: live[i], B: live[j], Path: path}, true
			}
		}
	}
	return Match{}, false
}

// HasMatch reports whether at least one connectable pair exists.
func HasMatch(tokens []Token, rows, cols int) bool {
	_, ok := FindAnyMatch(tokens, rows, cols)
	return ok
}

// ShuffleRemaining permutes the symbols of the live tokens in place.
// Positions and removed flags are untouched; the multiset of live symbols is
// preserved and only the symbol-to-position binding changes.
func ShuffleRemaining(rng *rand.Rand, tokens []Token) {
	idx := make([]int, 0, len(tokens))
	symbols := make([]Symbol, 0, len(tokens))
	for i, t := range tokens {
		if !t.Removed {
			idx = append(idx, i)
			symbols = append(symbols, t.Symbol)
		}
	}

	shuffleSymbols(rng, symbols)

	for k, i := range idx {
		tokens[i].Symbol = symbols[k]
	}
}
