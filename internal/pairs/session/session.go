// Package session implements the Pairs game session: the state machine that
// owns the board, the countdown, resources and deferred match resolution.
// It is UI-agnostic; a presentation layer drives it with Advance and reads
// it back through Snapshot.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
)

// Session is a single player's game. It is not safe for concurrent use;
// every mutation happens on the caller's goroutine.
type Session struct {
	source    stages.Source
	mode      Mode
	rules     Rules
	log       *log.Logger
	rng       *rand.Rand
	alphabet  board.Alphabet
	timeScale float64

	// stage instance
	stageNum   int
	stage      stages.Definition
	next       *stages.Definition // looked-ahead stage stageNum+1
	lastStage  bool
	generation int
	tokens     []board.Token
	pending    map[int]bool
	selected   []int
	hinted     []int
	path       []board.Position
	pathMatch  int
	matches    int
	locked     bool

	status   Status
	timeLeft time.Duration
	hints    int
	shuffles int

	// clock
	now      time.Duration
	timerOn  bool
	nextTick time.Duration
	tasks    []task
	seq      int
}

// New creates a session in StatusReady that reads stages from source.
func New(source stages.Source, opts ...Option) *Session {
	s := &Session{
		source:    source,
		rules:     DefaultRules(),
		log:       discardLogger(),
		alphabet:  board.DefaultAlphabet(),
		timeScale: 1,
		status:    StatusReady,
		pending:   make(map[int]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Mode returns the lifecycle variant of the session.
func (s *Session) Mode() Mode {
	return s.mode
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.status
}

// StartGame resets resources and enters stage 1.
func (s *Session) StartGame(ctx context.Context) error {
	st, err := s.prepareStage(ctx, 1)
	if err != nil {
		return err
	}
	s.hints = s.rules.StartHints
	s.shuffles = s.rules.StartShuffles
	s.enterStage(st)
	s.log.Info("game started", "mode", s.mode, "stage", 1)
	return nil
}

// RestartGame starts over from stage 1.
func (s *Session) RestartGame(ctx context.Context) error {
	return s.StartGame(ctx)
}

// NextStage moves from stage-clear to the following stage and grants one
// extra hint and shuffle, capped at Rules.ResourceCap.
// It does nothing unless the current stage has been cleared.
func (s *Session) NextStage(ctx context.Context) error {
	if s.status != StatusStageClear {
		return nil
	}
	st, err := s.prepareStage(ctx, s.stageNum+1)
	if err != nil {
		return err
	}
	s.hints = min(s.hints+1, s.rules.ResourceCap)
	s.shuffles = min(s.shuffles+1, s.rules.ResourceCap)
	s.enterStage(st)
	return nil
}

// JumpToStage starts stage n directly, keeping the current resources.
func (s *Session) JumpToStage(ctx context.Context, n int) error {
	st, err := s.prepareStage(ctx, n)
	if err != nil {
		return err
	}
	if s.status == StatusReady {
		s.hints = s.rules.StartHints
		s.shuffles = s.rules.StartShuffles
	}
	s.enterStage(st)
	s.log.Debug("jumped to stage", "stage", n)
	return nil
}

// ForceStageClear removes every token and clears the stage immediately.
func (s *Session) ForceStageClear() {
	if s.status != StatusPlaying && s.status != StatusNoMatches {
		return
	}
	for i := range s.tokens {
		s.tokens[i].Removed = true
	}
	s.generation++
	s.resetMarkers()
	s.stageClear()
}

// Select handles a click on token id.
// Clicks are ignored while not playing, while input is locked, and on tokens
// that are removed or about to be removed.
func (s *Session) Select(id int) {
	if s.status != StatusPlaying || s.locked {
		return
	}
	if id < 0 || id >= len(s.tokens) || s.tokens[id].Removed || s.pending[id] {
		return
	}

	s.hinted = nil

	if len(s.selected) == 1 && s.selected[0] == id {
		s.selected = nil
		return
	}
	if len(s.selected) == 0 {
		s.selected = []int{id}
		return
	}

	first := s.selected[0]
	s.selected = []int{first, id}

	a, b := s.tokens[first], s.tokens[id]
	if a.Symbol == b.Symbol {
		g := board.BuildGrid(s.view(), s.stage.Rows, s.stage.Cols)
		if path := board.FindPath(g, a.Pos, b.Pos); path != nil {
			s.resolveMatch(first, id, path)
			return
		}
	}

	s.locked = true
	s.schedule(s.rules.MismatchDelay, func() {
		s.selected = nil
		s.locked = false
	})
}

// UseHint marks the first connectable pair and spends a hint.
// It reports whether a hint was shown.
func (s *Session) UseHint() bool {
	if s.hints <= 0 || s.status != StatusPlaying || s.locked {
		return false
	}
	m, ok := board.FindAnyMatch(s.view(), s.stage.Rows, s.stage.Cols)
	if !ok {
		return false
	}
	s.hints--
	s.hinted = []int{m.A.ID, m.B.ID}
	s.log.Debug("hint used", "a", m.A.ID, "b", m.B.ID, "left", s.hints)
	return true
}

// UseShuffle spends a shuffle to permute the remaining symbols.
// In dynamic mode it is also the way out of StatusNoMatches, which resumes
// the countdown. It reports whether a shuffle happened.
func (s *Session) UseShuffle() bool {
	if s.shuffles <= 0 {
		return false
	}
	switch s.status {
	case StatusPlaying:
		if s.locked {
			return false
		}
	case StatusNoMatches:
	default:
		return false
	}

	s.shuffles--
	s.selected = nil
	s.hinted = nil
	s.shuffleLive()
	s.log.Debug("shuffle used", "left", s.shuffles)

	if s.status == StatusNoMatches {
		s.status = StatusPlaying
		s.startTimer()
	}
	s.ensureLive()
	return true
}

// TokenAt returns the id of the live token at p.
func (s *Session) TokenAt(p board.Position) (int, bool) {
	for _, t := range s.tokens {
		if t.Pos == p && !t.Removed && !s.pending[t.ID] {
			return t.ID, true
		}
	}
	return 0, false
}

// stageInstance is a loaded and dealt stage ready to be entered.
type stageInstance struct {
	number    int
	def       stages.Definition
	tokens    []board.Token
	next      *stages.Definition
	lastStage bool
}

// prepareStage loads stage n, deals its board and looks ahead at n+1.
// Nothing in the session changes until enterStage.
func (s *Session) prepareStage(ctx context.Context, n int) (stageInstance, error) {
	var def stages.Definition
	if s.next != nil && s.stageNum == n-1 {
		def = *s.next
	} else {
		d, err := s.source.Stage(ctx, n)
		if err != nil {
			return stageInstance{}, fmt.Errorf("session: loading stage %d: %w", n, err)
		}
		def = d
	}

	tokens, err := board.Generate(s.rng, def.Shape(), s.alphabet)
	if err != nil {
		return stageInstance{}, fmt.Errorf("session: dealing stage %d: %w", n, err)
	}

	st := stageInstance{number: n, def: def, tokens: tokens}

	// Any failure to load the next stage means this one is the last.
	nextDef, err := s.source.Stage(ctx, n+1)
	switch {
	case err == nil:
		st.next = &nextDef
	case errors.Is(err, stages.ErrStageNotFound):
		st.lastStage = true
	default:
		s.log.Warn("could not load next stage", "stage", n+1, "error", err)
		st.lastStage = true
	}

	return st, nil
}

// enterStage makes st the current stage and starts playing it.
func (s *Session) enterStage(st stageInstance) {
	s.generation++
	s.stageNum = st.number
	s.stage = st.def
	s.next = st.next
	s.lastStage = st.lastStage
	s.tokens = st.tokens
	s.resetMarkers()
	s.timeLeft = s.scaledLimit(st.def.TimeLimit)
	s.status = StatusPlaying
	s.startTimer()

	s.log.Debug("stage started",
		"stage", st.number,
		"size", fmt.Sprintf("%dx%d", st.def.Rows, st.def.Cols),
		"tokens", len(st.tokens),
		"time", s.timeLeft,
	)

	s.ensureLive()
}

// resetMarkers clears selection, hint, path and pending state.
func (s *Session) resetMarkers() {
	s.selected = nil
	s.hinted = nil
	s.path = nil
	s.pathMatch = 0
	s.pending = make(map[int]bool)
	s.locked = false
}

// scaledLimit applies the time scale, rounded to whole seconds.
func (s *Session) scaledLimit(d time.Duration) time.Duration {
	secs := math.Round(d.Seconds() * s.timeScale)
	if secs < 1 {
		secs = 1
	}
	return time.Duration(secs) * time.Second
}

// resolveMatch starts the removal of a connected pair.
func (s *Session) resolveMatch(a, b int, path []board.Position) {
	s.matches++
	m := s.matches
	s.path = path
	s.pathMatch = m
	s.timeLeft += s.rules.MatchBonus
	s.pending[a] = true
	s.pending[b] = true
	s.selected = nil
	if s.rules.BlockInputDuringRemoval {
		s.locked = true
	}

	s.schedule(s.rules.MatchDelay, func() {
		s.tokens[a].Removed = true
		s.tokens[b].Removed = true
		delete(s.pending, a)
		delete(s.pending, b)
		if s.pathMatch == m {
			s.path = nil
			s.pathMatch = 0
		}
		if s.rules.BlockInputDuringRemoval {
			s.locked = false
		}

		if s.status != StatusPlaying {
			return
		}
		if board.Remaining(s.tokens) == 0 {
			s.stageClear()
			return
		}
		s.ensureLive()
	})
}

// view returns the tokens with pending removals already marked removed.
func (s *Session) view() []board.Token {
	v := board.Clone(s.tokens)
	for id := range s.pending {
		v[id].Removed = true
	}
	return v
}

// shuffleLive permutes the symbols of tokens that are neither removed nor
// pending removal.
func (s *Session) shuffleLive() {
	v := s.view()
	board.ShuffleRemaining(s.rng, v)
	for i := range v {
		if !v[i].Removed {
			s.tokens[i].Symbol = v[i].Symbol
		}
	}
}

// ensureLive applies the mode's policy when no match exists.
func (s *Session) ensureLive() {
	rows, cols := s.stage.Rows, s.stage.Cols
	if board.Remaining(s.view()) == 0 {
		return
	}
	if board.HasMatch(s.view(), rows, cols) {
		return
	}

	if s.mode == ModeDynamic {
		s.enterNoMatches()
		return
	}

	for attempt := 1; attempt <= s.rules.ReshuffleAttempts; attempt++ {
		s.shuffleLive()
		if board.HasMatch(s.view(), rows, cols) {
			s.log.Debug("board reshuffled", "attempts", attempt)
			return
		}
	}
	s.log.Warn("no match after reshuffling", "stage", s.stageNum, "attempts", s.rules.ReshuffleAttempts)
}

// enterNoMatches pauses the stage until the player shuffles.
// Without shuffles left there is no way forward and the game is lost.
func (s *Session) enterNoMatches() {
	s.stopTimer()
	s.selected = nil
	s.hinted = nil
	if s.shuffles <= 0 {
		s.log.Debug("no matches and no shuffles left", "stage", s.stageNum)
		s.status = StatusGameOver
		return
	}
	s.status = StatusNoMatches
	s.log.Debug("no matches", "stage", s.stageNum)
}

func (s *Session) stageClear() {
	s.stopTimer()
	if s.lastStage {
		s.status = StatusGameClear
		s.log.Info("game clear", "stage", s.stageNum)
		return
	}
	s.status = StatusStageClear
	s.log.Debug("stage clear", "stage", s.stageNum, "time_left", s.timeLeft)
}

func (s *Session) gameOver() {
	s.stopTimer()
	s.status = StatusGameOver
	s.log.Info("game over", "stage", s.stageNum)
}
