package pairs

import (
	"context"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
)

// handleInput maps one frame of actions onto the session.
func (g *Game) handleInput(in core.InputFrame) {
	ctx := context.Background()
	snap := g.sess.Snapshot()

	g.moveCursor(in, snap)

	if in.Has(core.ActionRestart) {
		g.check(g.sess.RestartGame(ctx))
		return
	}
	if g.debug && in.Has(core.ActionDebugSkip) {
		g.sess.ForceStageClear()
		return
	}

	if p, ok := in.Click(); ok {
		if g.handleClick(ctx, p, snap) {
			return
		}
	}

	switch snap.Status {
	case session.StatusPlaying:
		if in.Has(core.ActionConfirm) {
			if id, ok := g.sess.TokenAt(g.cursor); ok {
				g.sess.Select(id)
			}
		}
		if in.Has(core.ActionHint) {
			g.sess.UseHint()
		}
		if in.Has(core.ActionShuffle) {
			g.sess.UseShuffle()
		}
	case session.StatusNoMatches:
		if in.Has(core.ActionShuffle) || in.Has(core.ActionConfirm) {
			g.sess.UseShuffle()
		}
	case session.StatusStageClear:
		if in.Has(core.ActionNext) || in.Has(core.ActionConfirm) {
			g.check(g.sess.NextStage(ctx))
		}
	case session.StatusGameOver, session.StatusGameClear:
		if in.Has(core.ActionConfirm) {
			g.check(g.sess.RestartGame(ctx))
		}
	}
}

// moveCursor steps the cursor one cell, staying on the board.
func (g *Game) moveCursor(in core.InputFrame, snap session.Snapshot) {
	rows, cols := snap.Definition.Rows, snap.Definition.Cols
	if rows == 0 || cols == 0 {
		return
	}
	c := g.cursor
	if in.Has(core.ActionUp) {
		c.Row--
	}
	if in.Has(core.ActionDown) {
		c.Row++
	}
	if in.Has(core.ActionLeft) {
		c.Col--
	}
	if in.Has(core.ActionRight) {
		c.Col++
	}
	g.cursor = board.P(core.Clamp(c.Row, 0, rows-1), core.Clamp(c.Col, 0, cols-1))
}

// handleClick selects the token under a pointer press. On the stage-clear
// and no-matches overlays a click anywhere acts as the overlay's button and
// consumes the frame, which it reports by returning true.
func (g *Game) handleClick(ctx context.Context, p core.Point, snap session.Snapshot) bool {
	switch snap.Status {
	case session.StatusPlaying:
		pos, ok := g.layout(snap).cellAt(p.X, p.Y)
		if !ok {
			return false
		}
		g.cursor = pos
		if id, ok := g.sess.TokenAt(pos); ok {
			g.sess.Select(id)
		}
	case session.StatusStageClear:
		g.check(g.sess.NextStage(ctx))
		return true
	case session.StatusNoMatches:
		g.sess.UseShuffle()
		return true
	}
	return false
}

// check records a failed stage transition so it is shown on screen.
func (g *Game) check(err error) {
	if err != nil {
		g.fail(err)
	}
}
