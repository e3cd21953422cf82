// Package term runs the raycaster full screen on a tcell terminal. It is a
// lighter alternative to the Bubble Tea viewer: frames go straight into the
// tcell cell buffer and only changed cells are written out.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/viewer"
)

// mouseCellScale converts one cell of mouse motion into mouse units.
const mouseCellScale = 8

// Viewer drives one level on a tcell screen.
type Viewer struct {
	screen   tcell.Screen
	walker   *viewer.Walker
	holds    *viewer.Holds
	keys     keyMap
	cells    *core.Screen
	fb       *core.Framebuffer
	input    core.InputFrame
	logger   *log.Logger
	tickRate int
	mouseX   int
	mouseSet bool
	showHelp bool
	quitting bool
}

// NewViewer wraps an initialised screen.
func NewViewer(screen tcell.Screen, sess viewer.Session) *Viewer {
	logger := sess.Logger
	if logger == nil {
		logger = log.Default()
	}
	v := &Viewer{
		screen:   screen,
		walker:   viewer.NewWalker(sess),
		holds:    viewer.NewHolds(viewer.DefaultHoldTicks),
		keys:     newKeyMap(sess.Config.Keys),
		input:    core.NewInputFrame(),
		logger:   logger,
		tickRate: sess.Config.Render.TickRate,
	}
	if v.tickRate <= 0 {
		v.tickRate = 60
	}
	v.resize()
	return v
}

// Walker exposes the session state.
func (v *Viewer) Walker() *viewer.Walker {
	return v.walker
}

// IsQuitting reports whether a quit key was pressed.
func (v *Viewer) IsQuitting() bool {
	return v.quitting
}

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	w = core.Max(w, 1)
	h = core.Max(h, 2)
	if v.cells == nil {
		v.cells = core.NewScreen(w, h)
	} else {
		v.cells.Resize(w, h)
	}
	// The last row holds the footer.
	v.fb = core.NewFramebuffer(w, 2*(h-1))
	v.screen.Clear()
}

// HandleEvent applies one terminal event. It returns false once the
// viewer should stop.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := v.keys.lookup(ev)
		if !ok {
			return true
		}
		switch {
		case a == core.ActionQuit:
			v.walker.Finish()
			v.quitting = true
			return false
		case viewer.Continuous(a):
			v.holds.Press(a)
		case a == core.ActionScreenshot:
			v.walker.Screenshot(v.fb)
		case a == core.ActionToggleHelp:
			v.showHelp = !v.showHelp
		case a == core.ActionNextWaypoint:
			v.holds.Release()
			v.input.Set(a)
		default:
			v.input.Set(a)
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		if v.mouseSet {
			v.input.AddMouse(float64((x - v.mouseX) * mouseCellScale))
		}
		v.mouseX = x
		v.mouseSet = true

	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

// Tick advances the walker by one step.
func (v *Viewer) Tick() {
	v.holds.Apply(&v.input)
	v.walker.Step(v.input)
	v.input.Clear()
}

// Draw renders the current view into the tcell buffer and shows it.
func (v *Viewer) Draw() {
	v.walker.Render(v.fb)
	v.cells.DrawFramebuffer(v.fb)

	last := v.cells.Height() - 1
	v.cells.DrawTextColored(0, last, strings.Repeat(" ", v.cells.Width()), 0, 0)
	v.cells.DrawText(0, last, v.footer())

	footer := tcell.StyleDefault.Dim(true)
	for y := 0; y <= last; y++ {
		for x := 0; x < v.cells.Width(); x++ {
			c := v.cells.GetCell(x, y)
			style := cellStyle(c)
			if y == last {
				style = footer
			}
			v.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	v.screen.Show()
}

func (v *Viewer) footer() string {
	if v.showHelp {
		return "wasd move  arrows turn  mouse look  m save  n next  ctrl+s shot  ? help  q quit"
	}
	cam := v.walker.Camera()
	s := fmt.Sprintf("%s  x %.2f y %.2f  %.0f°  wp %d",
		v.walker.Level().Name, cam.Position.X, cam.Position.Y,
		core.Degrees(cam.Angle), len(v.walker.Waypoints()))
	if status := v.walker.Status(); status != "" {
		s += "  " + status
	}
	return s + "  ? help"
}

// cellStyle maps a half-block cell onto a tcell style. Zero colors keep
// the terminal default.
func cellStyle(c core.Cell) tcell.Style {
	style := tcell.StyleDefault
	if c.FG != 0 {
		style = style.Foreground(rgb(c.FG))
	}
	if c.BG != 0 {
		style = style.Background(rgb(c.BG))
	}
	return style
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// Loop pumps events and ticks until ctx is done or a quit key is pressed.
func (v *Viewer) Loop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(v.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			v.walker.Finish()
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}

// Run opens the terminal, shows the level and restores the terminal on
// return.
func Run(ctx context.Context, sess viewer.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	v := NewViewer(screen, sess)
	v.logger.Debug("terminal viewer started", "level", sess.Level.ID)
	return v.Loop(ctx)
}
