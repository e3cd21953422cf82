package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// specialKeys lists tcell keys that have their own name. They are checked
// before the ctrl+letter range because tcell aliases enter, tab and
// backspace onto ctrl codes.
var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyEscape:     "esc",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
}

// keyName renders a tcell key event the way Bubble Tea names keys, so
// the same configuration drives both terminal backends.
func keyName(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if name, ok := specialKeys[ev.Key()]; ok {
		if mods&tcell.ModCtrl != 0 && ev.Key() != tcell.KeyBackspace {
			name = "ctrl+" + name
		}
		if mods&tcell.ModAlt != 0 {
			name = "alt+" + name
		}
		return name
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}

	if ev.Key() != tcell.KeyRune {
		return strings.ToLower(ev.Name())
	}

	name := string(ev.Rune())
	if mods&tcell.ModCtrl != 0 {
		name = "ctrl+" + strings.ToLower(name)
	}
	if mods&tcell.ModAlt != 0 {
		name = "alt+" + name
	}
	return name
}

// keyMap resolves key names to actions.
type keyMap map[string]core.Action

// newKeyMap indexes the configured keys. A key bound twice keeps the
// first action in core.Action order.
func newKeyMap(keys config.KeysConfig) keyMap {
	m := make(keyMap)
	bindings := keys.Bindings()
	for a := core.ActionForward; a <= core.ActionQuit; a++ {
		for _, name := range bindings[a] {
			if name == "space" {
				name = " "
			}
			if _, taken := m[name]; !taken {
				m[name] = a
			}
		}
	}
	return m
}

// lookup returns the action bound to ev.
func (m keyMap) lookup(ev *tcell.EventKey) (core.Action, bool) {
	a, ok := m[keyName(ev)]
	return a, ok
}
