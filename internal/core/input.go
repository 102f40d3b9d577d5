package core

// Action represents a discrete game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // P, Escape - toggle pause
	ActionTrace              // Space - toggle pointer tracing
	ActionConfirm            // Enter - start a run from the home panel
	ActionRestart            // R - restart after game over
	ActionBack               // B - return to the home panel
	ActionLeaderboard        // L - show the leaderboard panel
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionTrace:
		return "Trace"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the input source reports for one simulation tick:
// edge-triggered actions plus continuous movement data.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Axis is the keyboard lateral axis in [-1, 1]. Zero when no key is held.
	Axis float64

	// Pointer is the pointer position in world units. Only meaningful when HasPointer is set.
	Pointer    Vec2
	HasPointer bool
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

// SetPointer records the pointer position for this frame.
func (f *InputFrame) SetPointer(p Vec2) {
	f.Pointer = p
	f.HasPointer = true
}

// Movement returns the normalized movement intent for this frame.
// The keyboard axis has priority; otherwise the pointer's offset from the
// camera is eased in by dt.
func (f InputFrame) Movement(cameraY, dt float64) Vec2 {
	if f.Axis != 0 {
		return Vec2{Y: ClampF(f.Axis, -1, 1)}
	}
	if !f.HasPointer {
		return Vec2{}
	}
	return Vec2{Y: Lerp(0, f.Pointer.Y-cameraY, dt)}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Axis = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Axis = f.Axis
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
