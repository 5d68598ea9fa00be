package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionHint) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionHint)
	f.SetClick(4, 7)

	if !f.Has(ActionHint) || f.Has(ActionShuffle) {
		t.Error("Has() reports the wrong actions")
	}
	if p, ok := f.Click(); !ok || p != (Point{X: 4, Y: 7}) {
		t.Errorf("Click() = %v, %v", p, ok)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop actions and click")
	}
	if !clone.Has(ActionHint) {
		t.Error("clone should be independent of the original")
	}
	if _, ok := clone.Click(); !ok {
		t.Error("clone should keep the click")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionLeft:      "Left",
		ActionShuffle:   "Shuffle",
		ActionDebugSkip: "DebugSkip",
		Action(99):      "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), a.String(), want)
		}
	}
}
