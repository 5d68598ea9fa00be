package pairs

import (
	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
)

const (
	cellWidth  = 4 // Width of each board cell, including the gap
	cellHeight = 1 // Height of each board cell
	hudHeight  = 2 // Title and counters above the board
)

// boardLayout maps board cells, including the off-board ring, to screen
// coordinates.
type boardLayout struct {
	originX int // screen x of ring column -1
	originY int // screen y of ring row -1
	rows    int
	cols    int
}

// layout centers the board and its ring below the HUD.
func (g *Game) layout(snap session.Snapshot) boardLayout {
	rows, cols := snap.Definition.Rows, snap.Definition.Cols
	w := (cols + 2) * cellWidth
	h := (rows + 2) * cellHeight
	area := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	r := area.Centered(w, h)
	return boardLayout{
		originX: max(r.X, 0),
		originY: max(r.Y, hudHeight),
		rows:    rows,
		cols:    cols,
	}
}

// minSize returns the smallest screen that fits the board and HUD.
func minSize(rows, cols int) (int, int) {
	return (cols + 2) * cellWidth, (rows+2)*cellHeight + hudHeight
}

// cellX returns the left edge of a cell's three-character span.
func (l boardLayout) cellX(col int) int {
	return l.originX + (col+1)*cellWidth
}

// cellY returns the row of a cell.
func (l boardLayout) cellY(row int) int {
	return l.originY + (row+1)*cellHeight
}

// center returns the screen point a path passes through for p.
func (l boardLayout) center(p board.Position) core.Point {
	return core.Point{X: l.cellX(p.Col) + 1, Y: l.cellY(p.Row)}
}

// cellAt returns the on-board cell covering screen point (x, y).
func (l boardLayout) cellAt(x, y int) (board.Position, bool) {
	dx := x - l.originX - cellWidth
	dy := y - l.originY - cellHeight
	if dx < 0 || dy < 0 {
		return board.Position{}, false
	}
	p := board.P(dy/cellHeight, dx/cellWidth)
	if p.Row >= l.rows || p.Col >= l.cols {
		return board.Position{}, false
	}
	return p, true
}
