// Package window shows the raycaster in a desktop window through ebiten.
// The framebuffer is uploaded once per frame and scaled to the window; the
// mouse is captured and its horizontal motion turns the camera.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/viewer"
)

// Game implements ebiten.Game for one level.
type Game struct {
	walker   *viewer.Walker
	keys     bindings
	fb       *core.Framebuffer
	img      *ebiten.Image
	input    core.InputFrame
	title    string
	mouseX   int
	mouseSet bool
	showHelp bool
}

// NewGame creates the window game for sess rendering at width x height
// framebuffer pixels.
func NewGame(sess viewer.Session, width, height int) *Game {
	keys, errs := newBindings(sess.Config.Keys)
	if sess.Logger != nil {
		for _, err := range errs {
			sess.Logger.Warn("ignoring key binding", "error", err)
		}
	}

	return &Game{
		walker: viewer.NewWalker(sess),
		keys:   keys,
		fb:     core.NewFramebuffer(width, height),
		img:    ebiten.NewImage(width, height),
		input:  core.NewInputFrame(),
		title:  sess.Level.Name,
	}
}

// Walker exposes the session state.
func (g *Game) Walker() *viewer.Walker {
	return g.walker
}

func (g *Game) pressed(a core.Action, just bool) bool {
	for _, k := range g.keys[a] {
		if k.ctrl != ebiten.IsKeyPressed(ebiten.KeyControl) {
			continue
		}
		if k.shift && !ebiten.IsKeyPressed(ebiten.KeyShift) {
			continue
		}
		if just && inpututil.IsKeyJustPressed(k.key) {
			return true
		}
		if !just && ebiten.IsKeyPressed(k.key) {
			return true
		}
	}
	return false
}

// Update runs one tick. ebiten calls it TPS times per second.
func (g *Game) Update() error {
	if g.pressed(core.ActionQuit, true) {
		g.walker.Finish()
		return ebiten.Termination
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		g.mouseSet = false
	}
	x, _ := ebiten.CursorPosition()
	if g.mouseSet {
		g.input.AddMouse(float64(x - g.mouseX))
	}
	g.mouseX = x
	g.mouseSet = true

	for a := range g.keys {
		switch {
		case viewer.Continuous(a):
			if g.pressed(a, false) {
				g.input.Set(a)
			}
		case a == core.ActionScreenshot:
			if g.pressed(a, true) {
				g.walker.Screenshot(g.fb)
			}
		case a == core.ActionToggleHelp:
			if g.pressed(a, true) {
				g.showHelp = !g.showHelp
			}
		case a != core.ActionQuit:
			if g.pressed(a, true) {
				g.input.Set(a)
			}
		}
	}

	g.walker.Step(g.input)
	g.input.Clear()
	return nil
}

// Draw renders the current view and uploads it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.walker.Render(g.fb)
	g.img.WritePixels(g.fb.Pix)
	screen.DrawImage(g.img, nil)

	if g.showHelp {
		cam := g.walker.Camera()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"%s\nx %.2f y %.2f  %.0f deg\nwaypoints %d  FPS %.0f\nWASD move, mouse turn, m save, n next, ctrl+s shot",
			g.title, cam.Position.X, cam.Position.Y, core.Degrees(cam.Angle),
			len(g.walker.Waypoints()), ebiten.ActualFPS()))
	} else if status := g.walker.Status(); status != "" {
		ebitenutil.DebugPrint(screen, status)
	}
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.fb.Width, g.fb.Height
}

// Options configures the window.
type Options struct {
	Width    int // framebuffer pixels
	Height   int
	Scale    int // window pixels per framebuffer pixel
	TickRate int
}

// Run opens the window and blocks until it is closed.
func Run(sess viewer.Session, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}
	scale := max(opts.Scale, 1)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	ebiten.SetWindowSize(opts.Width*scale, opts.Height*scale)
	ebiten.SetWindowTitle("raycaster - " + sess.Level.Name)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	err := ebiten.RunGame(NewGame(sess, opts.Width, opts.Height))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
