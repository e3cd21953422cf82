package viewer

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

func newWalker(t *testing.T, withStore bool) (*Walker, *storage.Store) {
	t.Helper()
	sess := Session{
		Level:  world.ReferenceLevel(),
		Config: config.Default(),
	}
	if withStore {
		store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("storage.Open() failed: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		sess.Store = store
	}
	return NewWalker(sess), sess.Store
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestWalkerStep(t *testing.T) {
	w, _ := newWalker(t, false)

	state := w.Step(frame(core.ActionForward, core.ActionStrafeRight))
	want := core.V(0.05, 0.05)
	if !state.Camera.Position.ApproxEqual(want, 1e-12) {
		t.Errorf("Position = %v, expected %v", state.Camera.Position, want)
	}
	if state.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", state.Ticks)
	}
	if math.Abs(w.Distance()-0.05*math.Sqrt2) > 1e-12 {
		t.Errorf("Distance() = %v, expected %v", w.Distance(), 0.05*math.Sqrt2)
	}

	in := frame(core.ActionTurnLeft)
	in.AddMouse(3)
	w.Step(in)
	// turn_speed 4 to the left plus 3 units of mouse to the right.
	if math.Abs(w.Camera().Angle-0.01) > 1e-12 {
		t.Errorf("Angle = %v, expected 0.01", w.Camera().Angle)
	}
}

func TestWalkerRenderCountsHits(t *testing.T) {
	w, _ := newWalker(t, false)
	fb := core.NewFramebuffer(64, 36)
	stats := w.Render(fb)
	if stats.Hits != 64 || w.State().HitCount != 64 {
		t.Errorf("hits = %d / %d, expected every column inside the reference loop", stats.Hits, w.State().HitCount)
	}
}

func TestWalkerWaypointsWithoutStore(t *testing.T) {
	w, _ := newWalker(t, false)
	w.SaveWaypoint()
	if w.Status() == "" || len(w.Waypoints()) != 0 {
		t.Error("saving without a store should only report it")
	}
	w.NextWaypoint()
	if w.Camera() != w.Level().Spawn {
		t.Error("NextWaypoint without waypoints must not move the camera")
	}
}

func TestWalkerWaypointCycle(t *testing.T) {
	w, store := newWalker(t, true)

	poses := []core.Camera{
		core.NewCamera(core.V(1, 1), 0.5),
		core.NewCamera(core.V(-1, 2), -0.5),
	}
	for _, p := range poses {
		w.SetCamera(p)
		w.Step(frame(core.ActionSaveWaypoint))
	}
	if len(w.Waypoints()) != 2 {
		t.Fatalf("Waypoints() = %d, expected 2", len(w.Waypoints()))
	}

	// The last save is current, so the cycle starts over at the first.
	for _, want := range []core.Camera{poses[0], poses[1], poses[0]} {
		w.Step(frame(core.ActionNextWaypoint))
		if w.Camera() != want {
			t.Errorf("Camera() = %+v, expected %+v", w.Camera(), want)
		}
	}

	// A new walker picks up the stored poses.
	again := NewWalker(Session{Level: world.ReferenceLevel(), Config: config.Default(), Store: store})
	if len(again.Waypoints()) != 2 {
		t.Errorf("reloaded %d waypoints, expected 2", len(again.Waypoints()))
	}
}

func TestWalkerStatusExpires(t *testing.T) {
	w, _ := newWalker(t, false)
	w.Notify("hello %d", 1)
	if w.Status() != "hello 1" {
		t.Fatalf("Status() = %q", w.Status())
	}
	for range StatusTicks {
		w.Step(frame())
	}
	if w.Status() != "" {
		t.Errorf("Status() = %q after %d ticks, expected empty", w.Status(), StatusTicks)
	}
}

func TestWalkerScreenshot(t *testing.T) {
	dir := t.TempDir()
	w := NewWalker(Session{Level: world.ReferenceLevel(), Config: config.Default(), ScreenshotDir: dir})

	path := w.Screenshot(core.NewFramebuffer(16, 9))
	if path == "" {
		t.Fatalf("Screenshot() failed: %s", w.Status())
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Screenshot() = %q, expected a file in %q", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}

	disabled, _ := newWalker(t, false)
	if disabled.Screenshot(core.NewFramebuffer(4, 4)) != "" {
		t.Error("Screenshot() without a directory should write nothing")
	}
}

func TestScreenshotPath(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := ScreenshotPath("/tmp/shots", "box", at)
	if got != filepath.Join("/tmp/shots", "box_20240102_030405.png") {
		t.Errorf("ScreenshotPath() = %q", got)
	}
}

func TestWalkerFinishOnce(t *testing.T) {
	w, store := newWalker(t, true)

	w.Finish()
	w.Step(frame(core.ActionForward))
	w.Finish()
	w.Finish()

	stats, err := store.GetLevelStats(world.ReferenceID)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Sessions != 1 || stats.TotalTicks != 1 {
		t.Errorf("stats = %+v, expected one session of one tick", stats)
	}
}

func TestHolds(t *testing.T) {
	h := NewHolds(3)
	h.Press(core.ActionForward)

	var held []bool
	for range 5 {
		in := core.NewInputFrame()
		h.Apply(&in)
		held = append(held, in.Has(core.ActionForward))
	}
	want := []bool{true, true, true, false, false}
	for i := range want {
		if held[i] != want[i] {
			t.Errorf("tick %d held = %v, expected %v", i, held[i], want[i])
		}
	}

	h.Press(core.ActionTurnLeft)
	h.Release()
	in := core.NewInputFrame()
	h.Apply(&in)
	if in.Has(core.ActionTurnLeft) {
		t.Error("Release() should drop holds")
	}
}

func TestContinuous(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected bool
	}{
		{core.ActionForward, true},
		{core.ActionTurnRight, true},
		{core.ActionSaveWaypoint, false},
		{core.ActionQuit, false},
	}
	for _, tt := range tests {
		if got := Continuous(tt.action); got != tt.expected {
			t.Errorf("Continuous(%v) = %v, expected %v", tt.action, got, tt.expected)
		}
	}
}
