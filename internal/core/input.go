package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move cursor up
	ActionDown               // Down arrow, j - move cursor down
	ActionLeft               // Left arrow, h - move cursor left
	ActionRight              // Right arrow, l - move cursor right
	ActionShiftUp            // Shift+Up, K - rotate cursor column up
	ActionShiftDown          // Shift+Down, J - rotate cursor column down
	ActionShiftLeft          // Shift+Left, H - rotate cursor row left
	ActionShiftRight         // Shift+Right, L - rotate cursor row right
	ActionPeek               // Space - toggle peek at the target
	ActionConfirm            // Enter - confirm tutorial dialog
	ActionSkip               // Tab - skip tutorial
	ActionRestart            // R - reset the current level
	ActionEnd                // X, Esc - end the shift (session)
	ActionQuit               // Q, Ctrl+C - exit program
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
	case ActionShiftUp:
		return "ShiftUp"
	case ActionShiftDown:
		return "ShiftDown"
	case ActionShiftLeft:
		return "ShiftLeft"
	case ActionShiftRight:
		return "ShiftRight"
	case ActionPeek:
		return "Peek"
	case ActionConfirm:
		return "Confirm"
	case ActionSkip:
		return "Skip"
	case ActionRestart:
		return "Restart"
	case ActionEnd:
		return "End"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// PointerKind distinguishes the phases of a mouse or touch gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a platform-neutral pointer sample in screen cells.
// Pointer events are delivered immediately rather than batched per frame
// because drag tracking needs every intermediate position.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}
