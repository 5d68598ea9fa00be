package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - select token or confirm overlay
	ActionHint           // ? key - show a connectable pair
	ActionShuffle        // X key - shuffle remaining tokens
	ActionNext           // N key - next stage after clear
	ActionRestart        // R key - restart game
	ActionTheme          // T key - toggle light/dark theme
	ActionDebugSkip      // F9 - clear stage immediately (debug builds)
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionHint:
		return "Hint"
	case ActionShuffle:
		return "Shuffle"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionTheme:
		return "Theme"
	case ActionDebugSkip:
		return "DebugSkip"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and the
// last pointer click, if any.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	click   Point
	clicked bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer press at screen cell (x, y).
// A later click in the same frame replaces the earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.clicked = true
}

// Click returns the pointer press of this frame, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.clicked
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	if f.clicked {
		return false
	}
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.clicked = f.clicked
	return clone
}
