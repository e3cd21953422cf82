package viewer

import "github.com/vovakirdan/tui-raycaster/internal/core"

// DefaultHoldTicks covers the gap between terminal key auto-repeats.
const DefaultHoldTicks = 8

// Continuous reports whether a acts every tick while held, as opposed to
// firing once per press.
func Continuous(a core.Action) bool {
	switch a {
	case core.ActionForward, core.ActionBackward,
		core.ActionStrafeLeft, core.ActionStrafeRight,
		core.ActionTurnLeft, core.ActionTurnRight:
		return true
	}
	return false
}

// Holds emulates held keys for terminals, which report presses and
// auto-repeats but never releases. A press keeps its action active for a
// fixed number of ticks.
type Holds struct {
	ticks int
	left  map[core.Action]int
}

// NewHolds creates a tracker that keeps each press for ticks ticks.
func NewHolds(ticks int) *Holds {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &Holds{ticks: ticks, left: make(map[core.Action]int)}
}

// Press (re)starts the hold of a.
func (h *Holds) Press(a core.Action) {
	h.left[a] = h.ticks
}

// Apply marks every held action in in and counts one tick down.
func (h *Holds) Apply(in *core.InputFrame) {
	for a, left := range h.left {
		in.Set(a)
		if left <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = left - 1
		}
	}
}

// Release drops every hold.
func (h *Holds) Release() {
	clear(h.left)
}
