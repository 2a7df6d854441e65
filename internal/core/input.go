package core

// Action represents a semantic game action, abstracted from physical input.
// The platform maps keys and mouse buttons onto actions; the game only ever
// sees per-tick held booleans.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust up
	ActionDown           // S, Down arrow - thrust down
	ActionLeft           // A, Left arrow - thrust left
	ActionRight          // D, Right arrow - thrust right
	ActionFire           // Left mouse button, Space, F - fire bubbles
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - replay after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick: the set
// of held actions plus the most recent cursor position in screen cells.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// CursorX/CursorY hold the last known cursor cell. HasCursor is false
	// until the first pointer event is seen; the game then aims at a
	// defined default instead.
	CursorX   int
	CursorY   int
	HasCursor bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetCursor records the cursor position in screen cells.
func (f *InputFrame) SetCursor(x, y int) {
	f.CursorX = x
	f.CursorY = y
	f.HasCursor = true
}

// Clear resets all actions for the next frame. The cursor position is kept:
// pointers do not "release" their location between frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.CursorX = f.CursorX
	clone.CursorY = f.CursorY
	clone.HasCursor = f.HasCursor
	return clone
}
