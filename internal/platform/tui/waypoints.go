package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// WaypointsKeyMap defines the key bindings for the waypoint list.
type WaypointsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WaypointsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k WaypointsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultWaypointsKeyMap returns default key bindings.
func DefaultWaypointsKeyMap() WaypointsKeyMap {
	return WaypointsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "walk from here"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WaypointsModel lists the saved poses of one level.
type WaypointsModel struct {
	levelID   string
	title     string
	store     *storage.Store
	waypoints []storage.Waypoint
	table     table.Model
	help      help.Model
	keys      WaypointsKeyMap
	renderer  *lipgloss.Renderer
	width     int
	height    int
	err       error
	chosen    *storage.Waypoint
	quitting  bool
	goingBack bool
}

// NewWaypointsModel creates the list for levelID. store may be nil.
func NewWaypointsModel(store *storage.Store, levelID, title string, r *lipgloss.Renderer, width, height int) WaypointsModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := WaypointsModel{
		levelID:  levelID,
		title:    title,
		store:    store,
		keys:     DefaultWaypointsKeyMap(),
		help:     help.New(),
		renderer: r,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *WaypointsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 12},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "Angle", Width: 7},
		{Title: "Saved", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the waypoints from the store.
func (m *WaypointsModel) load() {
	m.waypoints = nil
	m.err = nil
	if m.store != nil {
		m.waypoints, m.err = m.store.Waypoints(m.levelID)
	}

	rows := make([]table.Row, len(m.waypoints))
	for i, w := range m.waypoints {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			w.Name,
			fmt.Sprintf("%.2f", w.Camera.Position.X),
			fmt.Sprintf("%.2f", w.Camera.Position.Y),
			fmt.Sprintf("%.0f°", core.Degrees(w.Camera.Angle)),
			w.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoBottom()
	}
}

// Init initializes the waypoint list.
func (m WaypointsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the waypoint list.
func (m WaypointsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.waypoints) {
				wp := m.waypoints[i]
				m.chosen = &wp
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); m.store != nil && i >= 0 && i < len(m.waypoints) {
				m.err = m.store.DeleteWaypoint(m.waypoints[i].ID)
				if m.err == nil {
					m.load()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the waypoint list.
func (m WaypointsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("WAYPOINTS - "+m.title, m.width)))
	b.WriteString("\n\n")

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.renderer.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m WaypointsModel) renderTableContent() string {
	if len(m.waypoints) == 0 {
		emptyStyle := m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("No database open.")
		}
		return emptyStyle.Render("No waypoints saved yet.\nPress m while walking to save one.")
	}

	return m.table.View()
}

// Chosen returns the waypoint to start from, or nil.
func (m WaypointsModel) Chosen() *storage.Waypoint {
	return m.chosen
}

// IsGoingBack returns true if user wants to go back to menu.
func (m WaypointsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m WaypointsModel) IsQuitting() bool {
	return m.quitting
}
