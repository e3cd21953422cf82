package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// keySpec is one configured key: a physical key plus required modifiers.
type keySpec struct {
	key   ebiten.Key
	ctrl  bool
	shift bool
}

var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// namedKeys covers the Bubble Tea key names used in configuration.
var namedKeys = map[string]keySpec{
	"up":        {key: ebiten.KeyArrowUp},
	"down":      {key: ebiten.KeyArrowDown},
	"left":      {key: ebiten.KeyArrowLeft},
	"right":     {key: ebiten.KeyArrowRight},
	"esc":       {key: ebiten.KeyEscape},
	"enter":     {key: ebiten.KeyEnter},
	"tab":       {key: ebiten.KeyTab},
	"space":     {key: ebiten.KeySpace},
	" ":         {key: ebiten.KeySpace},
	"backspace": {key: ebiten.KeyBackspace},
	"delete":    {key: ebiten.KeyDelete},
	"/":         {key: ebiten.KeySlash},
	"?":         {key: ebiten.KeySlash, shift: true},
	",":         {key: ebiten.KeyComma},
	".":         {key: ebiten.KeyPeriod},
	"-":         {key: ebiten.KeyMinus},
	"=":         {key: ebiten.KeyEqual},
}

// parseKey converts a Bubble Tea style key name ("w", "up", "ctrl+s",
// "shift+tab", "?") into a keySpec.
func parseKey(name string) (keySpec, error) {
	var spec keySpec
	rest := name
	for {
		switch {
		case strings.HasPrefix(rest, "ctrl+") && len(rest) > len("ctrl+"):
			spec.ctrl = true
			rest = rest[len("ctrl+"):]
			continue
		case strings.HasPrefix(rest, "shift+") && len(rest) > len("shift+"):
			spec.shift = true
			rest = rest[len("shift+"):]
			continue
		}
		break
	}

	if named, ok := namedKeys[rest]; ok {
		named.ctrl = named.ctrl || spec.ctrl
		named.shift = named.shift || spec.shift
		return named, nil
	}

	if len(rest) == 1 {
		c := rest[0]
		switch {
		case c >= 'a' && c <= 'z':
			spec.key = letterKeys[c-'a']
			return spec, nil
		case c >= 'A' && c <= 'Z':
			spec.key = letterKeys[c-'A']
			spec.shift = true
			return spec, nil
		case c >= '0' && c <= '9':
			spec.key = digitKeys[c-'0']
			return spec, nil
		}
	}

	return keySpec{}, fmt.Errorf("window: unsupported key %q", name)
}

// bindings maps actions to the keys that trigger them.
type bindings map[core.Action][]keySpec

// newBindings parses the configured keys. Unsupported names are skipped
// and reported together.
func newBindings(keys config.KeysConfig) (bindings, []error) {
	b := make(bindings)
	var errs []error
	for action, names := range keys.Bindings() {
		for _, name := range names {
			spec, err := parseKey(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			b[action] = append(b[action], spec)
		}
	}
	return b, errs
}
