package session

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
)

// Snapshot is a read-only copy of everything a presentation layer needs.
type Snapshot struct {
	Mode       Mode
	Stage      int
	Definition stages.Definition
	LastStage  bool
	Tokens     []board.Token
	Selected   []int
	Hinted     []int
	Pending    []int
	Path       []board.Position
	TimeLeft   time.Duration
	Status     Status
	Hints      int
	Shuffles   int
	Locked     bool
	TimerOn    bool
	Remaining  int
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:       s.mode,
		Stage:      s.stageNum,
		Definition: s.stage,
		LastStage:  s.lastStage,
		Tokens:     board.Clone(s.tokens),
		Selected:   append([]int(nil), s.selected...),
		Hinted:     append([]int(nil), s.hinted...),
		Path:       append([]board.Position(nil), s.path...),
		TimeLeft:   s.timeLeft,
		Status:     s.status,
		Hints:      s.hints,
		Shuffles:   s.shuffles,
		Locked:     s.locked,
		TimerOn:    s.timerOn,
		Remaining:  board.Remaining(s.view()),
	}
	for id := range s.pending {
		snap.Pending = append(snap.Pending, id)
	}
	sort.Ints(snap.Pending)
	return snap
}

// Seconds returns the countdown in whole seconds.
func (s Snapshot) Seconds() int {
	return int(s.TimeLeft / time.Second)
}

// IsSelected reports whether token id is selected.
func (s Snapshot) IsSelected(id int) bool {
	return contains(s.Selected, id)
}

// IsHinted reports whether token id is part of the hinted pair.
func (s Snapshot) IsHinted(id int) bool {
	return contains(s.Hinted, id)
}

// IsPending reports whether token id is about to be removed.
func (s Snapshot) IsPending(id int) bool {
	return contains(s.Pending, id)
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
