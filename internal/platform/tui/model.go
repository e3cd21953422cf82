package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/viewer"
)

// mouseCellScale converts one cell of pointer motion into window pixels,
// so the configured sensitivity feels the same as in the window backend.
const mouseCellScale = 8

// Session is a viewer session plus the lipgloss renderer that styles it.
type Session struct {
	viewer.Session
	Renderer *lipgloss.Renderer // nil uses the default renderer
}

// Model is the Bubble Tea model for walking through a level.
type Model struct {
	id       int64
	sess     Session
	walker   *viewer.Walker
	holds    *viewer.Holds
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	fb       *core.Framebuffer
	tickRate int

	input  core.InputFrame
	mouseX int
	mouse  bool

	showHelp   bool
	inMenu     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a viewer for sess sized for a width x height cell terminal.
func NewModel(sess Session, width, height int) Model {
	if sess.Renderer == nil {
		sess.Renderer = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		id:       nextViewerID(),
		sess:     sess,
		walker:   viewer.NewWalker(sess.Session),
		holds:    viewer.NewHolds(viewer.DefaultHoldTicks),
		keys:     NewKeyMap(sess.Config.Keys),
		help:     h,
		tickRate: sess.Config.Render.TickRate,
		input:    core.NewInputFrame(),
	}
	m.resize(width, height)
	return m
}

// WithCamera starts the viewer at cam instead of the level spawn.
func (m Model) WithCamera(cam core.Camera) Model {
	m.walker.SetCamera(cam)
	return m
}

// InMenu makes esc return to the level menu instead of quitting.
func (m Model) InMenu() Model {
	m.inMenu = true
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement and turning keys are held
// for a few ticks; the others fire once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Lookup(msg)
	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionQuit:
		m.walker.Finish()
		if m.inMenu && msg.String() == "esc" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case viewer.Continuous(action):
		m.holds.Press(action)

	case action == core.ActionScreenshot:
		m.walker.Screenshot(m.fb)

	case action == core.ActionToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case action == core.ActionNextWaypoint:
		// Arrive standing still.
		m.holds.Release()
		m.input.Set(action)

	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleMouse turns the camera with horizontal pointer motion.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.mouse {
		m.input.AddMouse(float64(msg.X-m.mouseX) * mouseCellScale)
	}
	m.mouseX = msg.X
	m.mouse = true
	return m, nil
}

// handleTick advances the camera by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.input)
	m.walker.Step(m.input)
	m.input.Clear()
	return m, tickCmd(m.id, m.tickRate)
}

// resize fits the framebuffer to the terminal, keeping one row for the footer.
func (m *Model) resize(width, height int) {
	width = core.Max(width, 1)
	rows := core.Max(height-1, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(width, rows)
	} else {
		m.screen.Resize(width, rows)
	}
	pw, ph := m.screen.PixelSize()
	m.fb = core.NewFramebuffer(pw, ph)
	m.help.Width = width
}

// View renders the current frame and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.walker.Render(m.fb)
	m.screen.DrawFramebuffer(m.fb)

	return RenderScreen(m.sess.Renderer, m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	cam := m.walker.Camera()
	text := fmt.Sprintf("%s  x %.2f  y %.2f  %3.0f°  waypoints %d",
		m.walker.Level().Name, cam.Position.X, cam.Position.Y,
		core.Degrees(cam.Angle), len(m.walker.Waypoints()))
	if status := m.walker.Status(); status != "" {
		text += "  | " + status
	}
	text += "  | ? help"
	return m.sess.Renderer.NewStyle().Faint(true).MaxWidth(m.screen.Width()).Render(text)
}

// Camera returns the current pose.
func (m Model) Camera() core.Camera {
	return m.walker.Camera()
}

// State reports the viewer state.
func (m Model) State() core.ViewerState {
	return m.walker.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea viewer for one level.
func Run(sess Session, width, height int) error {
	model := NewModel(sess, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion turns the camera
	)

	_, err := p.Run()
	return err
}
