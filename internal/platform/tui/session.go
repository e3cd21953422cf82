package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeWaypoints
	modeViewer
)

// SessionModel manages the full flow: menu -> waypoints -> viewer -> menu.
// This is the top-level model used by the menu command and SSH sessions.
type SessionModel struct {
	base      Session // everything but the level
	catalog   *registry.Catalog
	width     int
	height    int
	mode      sessionMode
	menu      MenuModel
	waypoints WaypointsModel
	viewer    Model
	err       error
	quitting  bool
}

// NewSessionModel creates a session that starts at the level menu.
func NewSessionModel(base Session, cat *registry.Catalog, width, height int) SessionModel {
	return SessionModel{
		base:    base,
		catalog: cat,
		width:   width,
		height:  height,
		menu:    NewMenuModel(cat, base.Store, base.Renderer, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.mode {
	case modeViewer:
		return m.updateViewer(msg)
	case modeWaypoints:
		return m.updateWaypoints(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if item := m.menu.WantsWaypoints(); item != nil {
		m.waypoints = NewWaypointsModel(m.base.Store, item.ID, item.Title, m.base.Renderer, m.width, m.height)
		m.mode = modeWaypoints
		return m, m.waypoints.Init()
	}

	if item := m.menu.Selected(); item != nil {
		return m.startViewer(item.ID, nil)
	}

	return m, cmd
}

// updateWaypoints handles updates when the waypoint list is shown.
func (m SessionModel) updateWaypoints(msg tea.Msg) (tea.Model, tea.Cmd) {
	newList, cmd := m.waypoints.Update(msg)
	if list, ok := newList.(WaypointsModel); ok {
		m.waypoints = list
	}

	switch {
	case m.waypoints.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.waypoints.IsGoingBack():
		return m.backToMenu()

	case m.waypoints.Chosen() != nil:
		cam := m.waypoints.Chosen().Camera
		return m.startViewer(m.waypoints.levelID, &cam)
	}

	return m, cmd
}

// updateViewer handles updates when walking a level.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newViewer, cmd := m.viewer.Update(msg)
	if viewer, ok := newViewer.(Model); ok {
		m.viewer = viewer
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.viewer.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// startViewer resolves levelID and opens it, at cam when given.
func (m SessionModel) startViewer(levelID string, cam *core.Camera) (tea.Model, tea.Cmd) {
	lvl, err := m.catalog.Resolve(levelID)
	if err != nil {
		m.err = err
		return m.backToMenu()
	}

	sess := m.base
	sess.Level = lvl
	viewer := NewModel(sess, m.width, m.height).InMenu()
	if cam != nil {
		viewer = viewer.WithCamera(*cam)
	}

	m.viewer = viewer
	m.mode = modeViewer
	m.err = nil
	return m, m.viewer.Init()
}

// backToMenu rebuilds the menu so the statistics are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.catalog, m.base.Store, m.base.Renderer, m.width, m.height)
	if m.err != nil && m.menu.err == nil {
		m.menu.err = m.err
	}
	m.mode = modeMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeViewer:
		return m.viewer.View()
	case modeWaypoints:
		return m.waypoints.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven flow in the local terminal.
func RunSession(base Session, cat *registry.Catalog, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(base, cat, width, height),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
