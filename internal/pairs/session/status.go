package session

import "fmt"

// Status is the lifecycle state of a session. Exactly one is active.
type Status string

const (
	StatusReady      Status = "ready"
	StatusPlaying    Status = "playing"
	StatusStageClear Status = "stage-clear"
	StatusGameClear  Status = "game-clear"
	StatusGameOver   Status = "game-over"
	StatusNoMatches  Status = "no-matches"
)

// Finished reports whether the game has ended, won or lost.
func (s Status) Finished() bool {
	return s == StatusGameClear || s == StatusGameOver
}

// Mode selects how stages are sourced and how a dead board is handled.
type Mode int

const (
	// ModeCatalog plays a fixed list of stages and silently reshuffles a
	// board that has no match.
	ModeCatalog Mode = iota
	// ModeDynamic loads stages by number until one is missing and pauses in
	// StatusNoMatches until the player shuffles.
	ModeDynamic
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCatalog:
		return "catalog"
	case ModeDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a config name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "catalog", "":
		return ModeCatalog, nil
	case "dynamic":
		return ModeDynamic, nil
	default:
		return ModeCatalog, fmt.Errorf("session: unknown mode %q", s)
	}
}
