package board

// free marks an unoccupied cell in the grid.
const free = -1

// Grid is a transient occupancy view over a token set.
// Cells are stored in row-major order: index = row*Cols + col.
// It is rebuilt before every search and never maintained incrementally.
type Grid struct {
	Rows  int
	Cols  int
	cells []int // token ID or free
}

// BuildGrid projects the non-removed tokens onto a rows x cols grid.
// Removed tokens and inactive cells are free.
func BuildGrid(tokens []Token, rows, cols int) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]int, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = free
	}
	for _, t := range tokens {
		if t.Removed || !g.InBounds(t.Pos) {
			continue
		}
		g.cells[g.index(t.Pos)] = t.ID
	}
	return g
}

// index converts a position to a flat array index.
func (g *Grid) index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// InBounds returns true if the position is on the playable board.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// InRing returns true if the position is on the board or on the one-cell
// border ring around it.
func (g *Grid) InRing(p Position) bool {
	return p.Row >= -1 && p.Row <= g.Rows && p.Col >= -1 && p.Col <= g.Cols
}

// Blocked reports whether a live token occupies the cell.
// Anything outside the board is free, which allows routing around the edges.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[g.index(p)] != free
}

// At returns the ID of the token occupying the cell, if any.
func (g *Grid) At(p Position) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	id := g.cells[g.index(p)]
	if id == free {
		return 0, false
	}
	return id, true
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, id := range g.cells {
		if id != free {
			n++
		}
	}
	return n
}
