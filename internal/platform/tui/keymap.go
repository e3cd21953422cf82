package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// actionOrder fixes lookup and help order.
var actionOrder = []core.Action{
	core.ActionForward,
	core.ActionBackward,
	core.ActionStrafeLeft,
	core.ActionStrafeRight,
	core.ActionTurnLeft,
	core.ActionTurnRight,
	core.ActionSaveWaypoint,
	core.ActionNextWaypoint,
	core.ActionScreenshot,
	core.ActionToggleHelp,
	core.ActionQuit,
}

var actionHelp = map[core.Action]string{
	core.ActionForward:      "forward",
	core.ActionBackward:     "back",
	core.ActionStrafeLeft:   "strafe left",
	core.ActionStrafeRight:  "strafe right",
	core.ActionTurnLeft:     "turn left",
	core.ActionTurnRight:    "turn right",
	core.ActionSaveWaypoint: "save waypoint",
	core.ActionNextWaypoint: "next waypoint",
	core.ActionScreenshot:   "screenshot",
	core.ActionToggleHelp:   "help",
	core.ActionQuit:         "quit",
}

// KeyMap translates Bubble Tea key messages to viewer actions.
// It implements help.KeyMap so the footer can list the active bindings.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// NewKeyMap builds bindings from the configured key names. Actions without
// keys are disabled and hidden from help.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	names := keys.Bindings()
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(actionOrder))}
	for _, a := range actionOrder {
		ks := names[a]
		if len(ks) == 0 {
			km.bindings[a] = key.NewBinding(key.WithDisabled())
			continue
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), actionHelp[a]),
		)
	}
	return km
}

// DefaultKeyMap returns the bindings of the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// Binding returns the binding for an action.
func (k KeyMap) Binding(a core.Action) key.Binding {
	return k.bindings[a]
}

// Lookup returns the action bound to msg, or ActionNone.
// Earlier actions win when a key is bound twice.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Action {
	for _, a := range actionOrder {
		if key.Matches(msg, k.bindings[a]) {
			return a
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.bindings[core.ActionForward],
		k.bindings[core.ActionTurnLeft],
		k.bindings[core.ActionTurnRight],
		k.bindings[core.ActionSaveWaypoint],
		k.bindings[core.ActionNextWaypoint],
		k.bindings[core.ActionToggleHelp],
		k.bindings[core.ActionQuit],
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	col := func(actions ...core.Action) []key.Binding {
		out := make([]key.Binding, len(actions))
		for i, a := range actions {
			out[i] = k.bindings[a]
		}
		return out
	}
	return [][]key.Binding{
		col(core.ActionForward, core.ActionBackward, core.ActionStrafeLeft, core.ActionStrafeRight),
		col(core.ActionTurnLeft, core.ActionTurnRight),
		col(core.ActionSaveWaypoint, core.ActionNextWaypoint, core.ActionScreenshot),
		col(core.ActionToggleHelp, core.ActionQuit),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionWaypoints
	MenuActionDelete
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionWaypoints
	case "x", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
