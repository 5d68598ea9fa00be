package board

// MaxBends is the largest number of right-angle turns a connection may take.
const MaxBends = 2

// FindPath looks for a connection between p1 and p2 with at most two bends.
// It returns the waypoints including both endpoints, or nil when the cells
// cannot be connected. Candidates are tried in a fixed order (straight line,
// one corner, two corners via a column, two corners via a row) and the first
// that fits wins, so the result is deterministic for a given grid.
// Paths may leave the board through the one-cell ring around it.
func FindPath(g *Grid, p1, p2 Position) []Position {
	if p1 == p2 {
		return nil
	}

	// 0 bends: straight line
	if (p1.Row == p2.Row || p1.Col == p2.Col) && g.lineClear(p1, p2) {
		return []Position{p1, p2}
	}

	// 1 bend: two segments meeting at a corner
	corners := [2]Position{
		{Row: p1.Row, Col: p2.Col},
		{Row: p2.Row, Col: p1.Col},
	}
	for _, corner := range corners {
		if !g.Blocked(corner) && g.lineClear(p1, corner) && g.lineClear(corner, p2) {
			return []Position{p1, corner, p2}
		}
	}

	// 2 bends: three segments through a shared column
	for c := -1; c <= g.Cols; c++ {
		m1 := Position{Row: p1.Row, Col: c}
		m2 := Position{Row: p2.Row, Col: c}
		if g.routeClear(p1, m1, m2, p2) {
			return []Position{p1, m1, m2, p2}
		}
	}

	// 2 bends: three segments through a shared row
	for r := -1; r <= g.Rows; r++ {
		m1 := Position{Row: r, Col: p1.Col}
		m2 := Position{Row: r, Col: p2.Col}
		if g.routeClear(p1, m1, m2, p2) {
			return []Position{p1, m1, m2, p2}
		}
	}

	return nil
}

// routeClear checks a three-segment route p1 -> m1 -> m2 -> p2.
func (g *Grid) routeClear(p1, m1, m2, p2 Position) bool {
	return !g.Blocked(m1) &&
		!g.Blocked(m2) &&
		g.lineClear(p1, m1) &&
		g.lineClear(m1, m2) &&
		g.lineClear(m2, p2)
}

// lineClear reports whether every cell strictly between a and b is free.
// a and b must share a row or a column; diagonal pairs are never clear.
func (g *Grid) lineClear(a, b Position) bool {
	switch {
	case a.Row == b.Row:
		lo, hi := minmax(a.Col, b.Col)
		for c := lo + 1; c < hi; c++ {
			if g.Blocked(Position{Row: a.Row, Col: c}) {
				return false
			}
		}
		return true
	case a.Col == b.Col:
		lo, hi := minmax(a.Row, b.Row)
		for r := lo + 1; r < hi; r++ {
			if g.Blocked(Position{Row: r, Col: a.Col}) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Bends counts the direction changes along a waypoint path.
// Degenerate waypoints (a midpoint equal to an endpoint) are not counted.
func Bends(path []Position) int {
	bends := 0
	prevH, prevSet := false, false
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a == b {
			continue
		}
		horizontal := a.Row == b.Row
		if prevSet && horizontal != prevH {
			bends++
		}
		prevH, prevSet = horizontal, true
	}
	return bends
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
