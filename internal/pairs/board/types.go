// Package board provides the pure board logic for Pairs: token generation,
// occupancy grids, bounded-bend path search, match finding and shuffling.
// This package is UI-agnostic and deterministic for a given RNG.
package board

import "fmt"

// Position is a (row, column) cell on the board.
// Rows grow downward, columns grow to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Symbol is the face value of a token. Tokens match when symbols are equal.
type Symbol rune

// String returns the symbol as a one-rune string.
func (s Symbol) String() string {
	return string(rune(s))
}

// Token is a single placed piece. Its position never changes; Removed only
// ever flips from false to true.
type Token struct {
	ID      int
	Symbol  Symbol
	Pos     Position
	Removed bool
}

// Shape describes the playable area of a stage: its size and the mask of
// cells that hold tokens. Inactive cells are always passable.
type Shape struct {
	Rows   int
	Cols   int
	Active [][]bool
}

// ActiveCells returns the active cells in row-major order.
func (s Shape) ActiveCells() []Position {
	cells := make([]Position, 0, s.Rows*s.Cols)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if r < len(s.Active) && c < len(s.Active[r]) && s.Active[r][c] {
				cells = append(cells, P(r, c))
			}
		}
	}
	return cells
}

// FullShape returns a shape with every cell active.
func FullShape(rows, cols int) Shape {
	active := make([][]bool, rows)
	for r := range active {
		active[r] = make([]bool, cols)
		for c := range active[r] {
			active[r][c] = true
		}
	}
	return Shape{Rows: rows, Cols: cols, Active: active}
}

// Remaining returns the number of tokens not yet removed.
func Remaining(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if !t.Removed {
			n++
		}
	}
	return n
}

// Clone returns a copy of the token slice.
func Clone(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
