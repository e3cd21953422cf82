package core

// Action represents a semantic viewer action, abstracted from physical key presses.
// This allows backends to map keyboards, mice and SSH sessions onto the same intents.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow
	ActionBackward           // S, Down arrow
	ActionStrafeLeft         // A
	ActionStrafeRight        // D
	ActionTurnLeft           // Left arrow, Q-less turn for terminals without mouse motion
	ActionTurnRight          // Right arrow
	ActionSaveWaypoint       // M - store the current pose
	ActionNextWaypoint       // N - jump to the next stored pose
	ActionScreenshot         // Ctrl+S
	ActionToggleHelp         // ?
	ActionQuit               // Q, Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionSaveWaypoint:
		return "SaveWaypoint"
	case ActionNextWaypoint:
		return "NextWaypoint"
	case ActionScreenshot:
		return "Screenshot"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input for a single tick: the set of actions held
// or triggered, plus the accumulated horizontal mouse delta.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// MouseDX is the summed horizontal pointer motion since the last tick.
	MouseDX float64
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

// AddMouse accumulates horizontal pointer motion.
func (f *InputFrame) AddMouse(dx float64) {
	f.MouseDX += dx
}

// Movement derives the held-direction intent from the movement actions.
func (f InputFrame) Movement() Movement {
	var m Movement
	if f.Has(ActionStrafeRight) {
		m.Strafe++
	}
	if f.Has(ActionStrafeLeft) {
		m.Strafe--
	}
	if f.Has(ActionForward) {
		m.Advance++
	}
	if f.Has(ActionBackward) {
		m.Advance--
	}
	return m
}

// TurnDX converts held turn keys into an equivalent mouse delta of
// keyStep units per tick, added to the real pointer motion.
func (f InputFrame) TurnDX(keyStep float64) float64 {
	dx := f.MouseDX
	if f.Has(ActionTurnRight) {
		dx += keyStep
	}
	if f.Has(ActionTurnLeft) {
		dx -= keyStep
	}
	return dx
}

// Clear resets all actions and the mouse delta for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MouseDX = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MouseDX = f.MouseDX
	return clone
}
