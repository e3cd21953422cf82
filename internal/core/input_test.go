package core

import "testing"

func TestInputFrameMovement(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Movement
	}{
		{"nothing", nil, Movement{}},
		{"forward", []Action{ActionForward}, Movement{Advance: 1}},
		{"opposites cancel", []Action{ActionForward, ActionBackward}, Movement{}},
		{"diagonal", []Action{ActionBackward, ActionStrafeLeft}, Movement{Strafe: -1, Advance: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Movement(); got != tc.expected {
				t.Errorf("Movement() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameTurnDX(t *testing.T) {
	f := NewInputFrame()
	f.AddMouse(3)
	f.AddMouse(2)
	if got := f.TurnDX(4); got != 5 {
		t.Errorf("TurnDX with mouse only = %v, expected 5", got)
	}

	f.Set(ActionTurnLeft)
	if got := f.TurnDX(4); got != 1 {
		t.Errorf("TurnDX with left key = %v, expected 1", got)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionForward)
	f.AddMouse(7)

	c := f.Clone()
	f.Clear()

	if f.Has(ActionForward) || f.MouseDX != 0 {
		t.Error("Clear should drop actions and mouse delta")
	}
	if !c.Has(ActionForward) || c.MouseDX != 7 {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero InputFrame should have no actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionSaveWaypoint.String() != "SaveWaypoint" {
		t.Errorf("String() = %q", ActionSaveWaypoint.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
