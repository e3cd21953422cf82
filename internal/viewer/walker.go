// Package viewer holds the backend-independent part of a viewing session:
// the camera, per-tick input handling, waypoints, screenshots and session
// statistics. Backends feed it an InputFrame per tick and present the
// framebuffer it renders.
package viewer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/texture"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// StatusTicks is how long a status message stays visible.
const StatusTicks = 120

// Session bundles what a viewer needs. Store and Logger are optional.
type Session struct {
	Level   world.Level
	Texture texture.Sampler // nil uses the generated rock texture
	Config  config.Config
	Store   *storage.Store
	Logger  *log.Logger

	// ScreenshotDir receives captures; empty disables them.
	ScreenshotDir string
}

// Walker owns the camera of one session.
type Walker struct {
	sess     Session
	renderer *raycast.Renderer
	tuning   core.Tuning
	turnStep float64

	camera    core.Camera
	waypoints []storage.Waypoint
	wpIndex   int

	status     string
	statusLeft int
	ticks      int
	hits       int
	distance   float64
	finished   bool
}

// NewWalker places a camera at the level spawn.
func NewWalker(sess Session) *Walker {
	bg, err := sess.Config.BackgroundColor()
	if err != nil {
		bg = core.Black
	}
	if sess.Texture == nil {
		sess.Texture = texture.Rock(sess.Config.Render.TextureSeed)
	}

	w := &Walker{
		sess:     sess,
		renderer: raycast.NewRenderer(sess.Config.FOV(), bg, sess.Config.Render.Workers),
		tuning:   sess.Config.Tuning(),
		turnStep: sess.Config.Camera.TurnSpeed,
		camera:   sess.Level.Spawn,
		wpIndex:  -1,
	}
	w.loadWaypoints()
	return w
}

// Level returns the level being walked.
func (w *Walker) Level() world.Level {
	return w.sess.Level
}

// Camera returns the current pose.
func (w *Walker) Camera() core.Camera {
	return w.camera
}

// SetCamera moves the camera to cam.
func (w *Walker) SetCamera(cam core.Camera) {
	w.camera = cam
}

// Waypoints returns the saved poses of the level.
func (w *Walker) Waypoints() []storage.Waypoint {
	return w.waypoints
}

// Status returns the current status message, or "".
func (w *Walker) Status() string {
	return w.status
}

// State reports the session state.
func (w *Walker) State() core.ViewerState {
	return core.ViewerState{Camera: w.camera, Ticks: w.ticks, HitCount: w.hits}
}

// Distance returns the world units walked so far.
func (w *Walker) Distance() float64 {
	return w.distance
}

// Step advances one tick: held movement and turn actions plus the mouse
// delta move the camera, one-shot actions are triggered.
func (w *Walker) Step(in core.InputFrame) core.ViewerState {
	before := w.camera.Position
	w.camera.Update(in.TurnDX(w.turnStep), in.Movement(), w.tuning)
	w.distance += w.camera.Position.Sub(before).Len()
	w.ticks++

	if in.Has(core.ActionSaveWaypoint) {
		w.SaveWaypoint()
	}
	if in.Has(core.ActionNextWaypoint) {
		w.NextWaypoint()
	}

	if w.statusLeft > 0 {
		w.statusLeft--
		if w.statusLeft == 0 {
			w.status = ""
		}
	}
	return w.State()
}

// Render draws the current view into fb.
func (w *Walker) Render(fb *core.Framebuffer) raycast.Stats {
	stats := w.renderer.Render(w.camera, w.sess.Level.Geometry, w.sess.Texture, fb)
	w.hits = stats.Hits
	return stats
}

// Notify shows a status message for StatusTicks ticks.
func (w *Walker) Notify(format string, args ...any) {
	w.status = fmt.Sprintf(format, args...)
	w.statusLeft = StatusTicks
}

func (w *Walker) loadWaypoints() {
	if w.sess.Store == nil {
		return
	}
	wps, err := w.sess.Store.Waypoints(w.sess.Level.ID)
	if err != nil {
		w.warn("could not load waypoints", "error", err)
		return
	}
	w.waypoints = wps
}

// SaveWaypoint stores the current pose.
func (w *Walker) SaveWaypoint() {
	if w.sess.Store == nil {
		w.Notify("no database, waypoint not saved")
		return
	}
	name := fmt.Sprintf("wp%d", len(w.waypoints)+1)
	if _, err := w.sess.Store.SaveWaypoint(w.sess.Level.ID, name, w.camera); err != nil {
		w.warn("could not save waypoint", "error", err)
		w.Notify("waypoint not saved")
		return
	}
	w.loadWaypoints()
	w.wpIndex = len(w.waypoints) - 1
	w.Notify("saved %s", name)
}

// NextWaypoint jumps to the next saved pose, wrapping around.
func (w *Walker) NextWaypoint() {
	if len(w.waypoints) == 0 {
		w.Notify("no waypoints")
		return
	}
	w.wpIndex = (w.wpIndex + 1) % len(w.waypoints)
	wp := w.waypoints[w.wpIndex]
	w.camera = wp.Camera
	w.Notify("at %s (%d/%d)", wp.Name, w.wpIndex+1, len(w.waypoints))
}

// Screenshot renders the current view into fb and writes it as a PNG.
// It returns the file path, or "" when nothing was written.
func (w *Walker) Screenshot(fb *core.Framebuffer) string {
	if w.sess.ScreenshotDir == "" {
		w.Notify("screenshots disabled")
		return ""
	}
	w.Render(fb)
	path := ScreenshotPath(w.sess.ScreenshotDir, w.sess.Level.ID, time.Now())
	if err := texture.SavePNG(path, fb); err != nil {
		w.warn("could not save screenshot", "error", err)
		w.Notify("screenshot failed")
		return ""
	}
	w.Notify("saved %s", filepath.Base(path))
	return path
}

// Finish records the session once. Sessions without ticks are not stored.
func (w *Walker) Finish() {
	if w.finished || w.sess.Store == nil || w.ticks == 0 {
		return
	}
	w.finished = true
	if _, err := w.sess.Store.SaveSession(w.sess.Level.ID, w.ticks, w.distance); err != nil {
		w.warn("could not save session", "error", err)
	}
}

func (w *Walker) warn(msg string, kv ...any) {
	if w.sess.Logger != nil {
		w.sess.Logger.Warn(msg, kv...)
	}
}

// ScreenshotPath names a capture of level taken at t.
func ScreenshotPath(dir, levelID string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", levelID, t.Format("20060102_150405")))
}
