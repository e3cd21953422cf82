package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	registry.LevelInfo
	Sessions  int
	Waypoints int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	renderer  *lipgloss.Renderer
	err       error
	quitting  bool
	selected  *MenuItem // Set when user selects a level
	waypoints *MenuItem // Set when user asks for the waypoint list
}

// NewMenuModel lists the catalog levels with their stored statistics.
// store may be nil.
func NewMenuModel(cat *registry.Catalog, store *storage.Store, r *lipgloss.Renderer, width, height int) MenuModel {
	infos, err := cat.List()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		item := MenuItem{LevelInfo: info}
		if store != nil {
			if stats, statsErr := store.GetLevelStats(info.ID); statsErr == nil {
				item.Sessions = stats.Sessions
				item.Waypoints = stats.Waypoints
			}
		}
		items = append(items, item)
	}

	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return MenuModel{
		items:    items,
		width:    width,
		height:   height,
		renderer: r,
		err:      err,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionWaypoints:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.waypoints = &item
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("R A Y C A S T E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(centerText(dimStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		line := fmt.Sprintf("%-24s %3d walls", item.Title, item.Walls)
		if item.Sessions > 0 || item.Waypoints > 0 {
			line += fmt.Sprintf("  %d visits  %d waypoints", item.Sessions, item.Waypoints)
		}
		if i == m.cursor {
			cursor = "> "
			b.WriteString(centerText(activeStyle.Render(cursor+line), m.width))
		} else {
			b.WriteString(centerText(cursor+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Walk  |  Tab: Waypoints  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// WantsWaypoints returns the level whose waypoints should be listed.
func (m MenuModel) WantsWaypoints() *MenuItem {
	return m.waypoints
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within width, ignoring escape codes.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
