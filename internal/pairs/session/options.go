package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
)

// Rules holds the tunable numbers of a session.
type Rules struct {
	StartHints        int           // hints at game start
	StartShuffles     int           // shuffles at game start
	ResourceCap       int           // upper bound after the per-stage +1
	ReshuffleAttempts int           // catalog mode auto-reshuffle limit
	MatchBonus        time.Duration // added to the countdown per match
	MatchDelay        time.Duration // match shown before tokens are removed
	MismatchDelay     time.Duration // mismatch shown before selection clears

	// BlockInputDuringRemoval keeps input locked until a matched pair has
	// been removed. When false the player may keep selecting right away.
	BlockInputDuringRemoval bool
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		StartHints:        3,
		StartShuffles:     3,
		ResourceCap:       3,
		ReshuffleAttempts: 20,
		MatchBonus:        time.Second,
		MatchDelay:        500 * time.Millisecond,
		MismatchDelay:     400 * time.Millisecond,
	}
}

// Option configures a Session.
type Option func(*Session)

// WithMode sets the stage lifecycle variant.
func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// WithSeed makes board generation and shuffles reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRules replaces the default rule set.
func WithRules(r Rules) Option {
	return func(s *Session) { s.rules = r }
}

// WithLogger routes state transition logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAlphabet sets the symbol pool boards are dealt from.
func WithAlphabet(a board.Alphabet) Option {
	return func(s *Session) { s.alphabet = a }
}

// WithTimeScale multiplies every stage time limit by f.
func WithTimeScale(f float64) Option {
	return func(s *Session) {
		if f > 0 {
			s.timeScale = f
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
