package pairs

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}
	if g.sess == nil {
		return
	}

	snap := g.sess.Snapshot()
	minW, minH := minSize(snap.Definition.Rows, snap.Definition.Cols)
	if g.screenW < minW || g.screenH < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	l := g.layout(snap)
	g.renderHUD(dst, snap)
	g.renderCells(dst, l, snap)
	g.renderPath(dst, l, snap.Path)
	g.renderTokens(dst, l, snap)
	g.renderOverlay(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderError shows why the game could not start.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH/2 - 1
	dst.DrawTextCenteredWithColor(y, "Could not load stages", core.ColorRed)
	dst.DrawTextCentered(y+1, g.err.Error())
	dst.DrawTextCenteredWithColor(y+3, "Q: quit", core.ColorGray)
}

// renderHUD draws the stage title and the counters.
func (g *Game) renderHUD(dst *core.Screen, snap session.Snapshot) {
	title := fmt.Sprintf("PAIRS  %s  %s", g.stageLabel(snap.Stage), snap.Definition.Title())
	dst.DrawStyledText(1, 0, title, core.ColorBrightCyan, core.AttrBold)

	timeColor := core.ColorDefault
	if snap.TimeLeft <= 10*time.Second {
		timeColor = core.ColorBrightRed
	}
	clock := "Time " + formatClock(snap.TimeLeft)
	counters := fmt.Sprintf("Hints %d  Shuffles %d  Left %d", snap.Hints, snap.Shuffles, snap.Remaining)

	dst.DrawTextWithColor(1, 1, clock, timeColor)
	x := g.screenW - len(counters) - 1
	dst.DrawTextWithColor(max(x, len(clock)+3), 1, counters, core.ColorGray)
}

// formatClock renders a countdown as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderCells marks active cells whose tokens are gone.
func (g *Game) renderCells(dst *core.Screen, l boardLayout, snap session.Snapshot) {
	for r, row := range snap.Definition.Layout {
		for c, on := range row {
			if on {
				dst.SetCell(l.cellX(c)+1, l.cellY(r), core.Cell{Rune: '·', Color: core.ColorGray, Attr: core.AttrFaint})
			}
		}
	}
}

// renderPath draws the connection of the latest match.
func (g *Game) renderPath(dst *core.Screen, l boardLayout, path []board.Position) {
	if len(path) < 2 {
		return
	}
	const c = core.ColorBrightYellow

	for i := 1; i < len(path); i++ {
		a, b := l.center(path[i-1]), l.center(path[i])
		switch {
		case a.Y == b.Y:
			lo, hi := min(a.X, b.X), max(a.X, b.X)
			for x := lo + 1; x < hi; x++ {
				dst.SetWithColor(x, a.Y, '─', c)
			}
		case a.X == b.X:
			lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
			for y := lo + 1; y < hi; y++ {
				dst.SetWithColor(a.X, y, '│', c)
			}
		}
	}

	for i := 1; i < len(path)-1; i++ {
		if r, ok := cornerRune(path[i-1], path[i], path[i+1]); ok {
			p := l.center(path[i])
			dst.SetWithColor(p.X, p.Y, r, c)
		}
	}
}

// cornerRune picks the box-drawing corner joining prev -> cur -> next.
func cornerRune(prev, cur, next board.Position) (rune, bool) {
	up := prev.Row < cur.Row || next.Row < cur.Row
	down := prev.Row > cur.Row || next.Row > cur.Row
	left := prev.Col < cur.Col || next.Col < cur.Col
	right := prev.Col > cur.Col || next.Col > cur.Col

	switch {
	case down && right:
		return '┌', true
	case down && left:
		return '┐', true
	case up && right:
		return '└', true
	case up && left:
		return '┘', true
	default:
		return 0, false
	}
}

// renderTokens draws every live or pending token with its markers.
func (g *Game) renderTokens(dst *core.Screen, l boardLayout, snap session.Snapshot) {
	alphabet := board.DefaultAlphabet()
	playing := snap.Status == session.StatusPlaying

	for _, t := range snap.Tokens {
		if t.Removed {
			continue
		}
		x, y := l.cellX(t.Pos.Col), l.cellY(t.Pos.Row)

		sym := core.Cell{Rune: rune(t.Symbol), Color: symbolColor(alphabet.Index(t.Symbol)), Attr: core.AttrBold}
		left, right := core.Cell{Rune: ' '}, core.Cell{Rune: ' '}

		switch {
		case snap.IsPending(t.ID):
			sym.Attr = core.AttrFaint
			left = core.Cell{Rune: '(', Color: core.ColorBrightYellow}
			right = core.Cell{Rune: ')', Color: core.ColorBrightYellow}
		case snap.IsSelected(t.ID):
			sym.Attr |= core.AttrUnderline
			left = core.Cell{Rune: '[', Color: core.ColorBrightGreen, Attr: core.AttrBold}
			right = core.Cell{Rune: ']', Color: core.ColorBrightGreen, Attr: core.AttrBold}
		case snap.IsHinted(t.ID):
			left = core.Cell{Rune: '<', Color: core.ColorBrightMagenta, Attr: core.AttrBold}
			right = core.Cell{Rune: '>', Color: core.ColorBrightMagenta, Attr: core.AttrBold}
		}

		dst.SetCell(x, y, left)
		dst.SetCell(x+1, y, sym)
		dst.SetCell(x+2, y, right)
	}

	if playing {
		x, y := l.cellX(g.cursor.Col), l.cellY(g.cursor.Row)
		for i := 0; i < 3; i++ {
			c := dst.GetCell(x+i, y)
			c.Attr |= core.AttrReverse
			dst.SetCell(x+i, y, c)
		}
	}
}

// symbolColor tints a symbol by its alphabet index.
func symbolColor(idx int) core.Color {
	if idx < 0 {
		return core.ColorDefault
	}
	return core.SymbolColors[idx%len(core.SymbolColors)]
}

// renderOverlay draws the status box for paused and finished states.
func (g *Game) renderOverlay(dst *core.Screen, snap session.Snapshot) {
	var lines []string
	color := core.ColorBrightWhite

	switch snap.Status {
	case session.StatusStageClear:
		color = core.ColorBrightGreen
		lines = []string{"STAGE CLEAR", fmt.Sprintf("%s left on the clock", formatClock(snap.TimeLeft)), "Enter/N: next stage"}
	case session.StatusGameClear:
		color = core.ColorBrightGreen
		lines = []string{"ALL STAGES CLEARED", "R: play again  Q: quit"}
	case session.StatusGameOver:
		color = core.ColorBrightRed
		reason := "TIME'S UP"
		if snap.TimeLeft > 0 {
			reason = "NO MOVES LEFT"
		}
		lines = []string{reason, fmt.Sprintf("Reached %s", g.stageLabel(snap.Stage)), "R: restart  Q: quit"}
	case session.StatusNoMatches:
		color = core.ColorBrightYellow
		lines = []string{"NO MATCHES", fmt.Sprintf("Enter/X: shuffle (%d left)", snap.Shuffles)}
	default:
		return
	}

	w := 0
	for _, s := range lines {
		w = max(w, len([]rune(s)))
	}
	box := dst.Bounds().Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)
	for i, s := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredWithColor(box.Y+1+i, s, c)
	}
}
