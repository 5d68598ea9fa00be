// Package pairs adapts the Pairs session to the registry.Game contract:
// it owns the cursor, maps platform actions onto session calls, advances the
// session clock once per tick and renders the board into a core.Screen.
package pairs

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

// Registered game IDs.
const (
	IDCatalog = "pairs"
	IDDynamic = "pairs_dynamic"
)

// Game is the Pairs game for the terminal platform.
type Game struct {
	mode     session.Mode
	settings Settings

	sess   *session.Session
	total  int   // stage count in catalog mode, 0 when unknown
	err    error // stage loading failure shown instead of the board
	debug  bool
	tickDT time.Duration

	cursor    board.Position
	lastStage int

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game in the given mode using the current settings.
func New(mode session.Mode) *Game {
	return NewWithSettings(mode, CurrentSettings())
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(mode session.Mode, s Settings) *Game {
	return &Game{mode: mode, settings: s}
}

func init() {
	registry.Register(IDCatalog, func() registry.Game {
		return New(session.ModeCatalog)
	})
	registry.Register(IDDynamic, func() registry.Game {
		return New(session.ModeDynamic)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == session.ModeDynamic {
		return IDDynamic
	}
	return IDCatalog
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == session.ModeDynamic {
		return "Pairs (Stage Loader)"
	}
	return "Pairs"
}

// Reset builds a new session and starts the first (or requested) stage.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	ctx := context.Background()

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.debug = cfg.Debug
	g.err = nil
	g.total = 0
	g.lastStage = 0

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tickDT = time.Second / time.Duration(rate)

	source, err := g.source(ctx)
	if err != nil {
		g.fail(err)
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.sess = session.New(source,
		session.WithMode(g.mode),
		session.WithSeed(seed),
		session.WithRules(g.settings.Rules),
		session.WithTimeScale(g.settings.TimeScale),
		session.WithLogger(g.settings.logger()),
	)

	if cfg.StartAt > 1 {
		err = g.sess.JumpToStage(ctx, cfg.StartAt)
	} else {
		err = g.sess.StartGame(ctx)
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.syncCursor()
}

// source builds the stage source for the game's mode.
func (g *Game) source(ctx context.Context) (stages.Source, error) {
	fsys := g.settings.stageFS()
	if g.mode == session.ModeDynamic {
		return stages.NewLoader(fsys), nil
	}
	cat, err := stages.LoadCatalog(ctx, fsys)
	if err != nil {
		return nil, err
	}
	g.total = cat.Len()
	return cat, nil
}

func (g *Game) fail(err error) {
	g.err = err
	g.settings.logger().Error("cannot start game", "mode", g.mode, "error", err)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Snapshot exposes the session state; ok is false if no session is running.
func (g *Game) Snapshot() (session.Snapshot, bool) {
	if g.sess == nil {
		return session.Snapshot{}, false
	}
	return g.sess.Snapshot(), true
}

// Cursor returns the board cell under the keyboard cursor.
func (g *Game) Cursor() board.Position {
	return g.cursor
}

// Step applies this tick's input, then advances the session clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sess == nil {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.sess.Advance(g.tickDT)
	g.syncCursor()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	st := g.sess.Status()
	return core.GameState{
		Stage:    g.sess.Snapshot().Stage,
		GameOver: st.Finished(),
		Won:      st == session.StatusGameClear,
		Paused:   st == session.StatusStageClear || st == session.StatusNoMatches,
	}
}

// syncCursor moves the cursor to the first live token when a stage begins.
func (g *Game) syncCursor() {
	snap := g.sess.Snapshot()
	if snap.Stage == g.lastStage && g.inBoard(snap, g.cursor) {
		return
	}
	g.lastStage = snap.Stage
	g.cursor = board.P(0, 0)
	for _, t := range snap.Tokens {
		if !t.Removed {
			g.cursor = t.Pos
			return
		}
	}
}

func (g *Game) inBoard(snap session.Snapshot, p board.Position) bool {
	return p.Row >= 0 && p.Row < snap.Definition.Rows && p.Col >= 0 && p.Col < snap.Definition.Cols
}

// stageLabel returns "Stage n/total" or "Stage n".
func (g *Game) stageLabel(n int) string {
	if g.total > 0 {
		return fmt.Sprintf("Stage %d/%d", n, g.total)
	}
	return fmt.Sprintf("Stage %d", n)
}
