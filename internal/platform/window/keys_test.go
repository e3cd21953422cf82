package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected keySpec
	}{
		{"w", keySpec{key: ebiten.KeyW}},
		{"z", keySpec{key: ebiten.KeyZ}},
		{"W", keySpec{key: ebiten.KeyW, shift: true}},
		{"7", keySpec{key: ebiten.KeyDigit7}},
		{"up", keySpec{key: ebiten.KeyArrowUp}},
		{"esc", keySpec{key: ebiten.KeyEscape}},
		{"?", keySpec{key: ebiten.KeySlash, shift: true}},
		{"ctrl+s", keySpec{key: ebiten.KeyS, ctrl: true}},
		{"ctrl+c", keySpec{key: ebiten.KeyC, ctrl: true}},
		{"shift+tab", keySpec{key: ebiten.KeyTab, shift: true}},
		{"ctrl+shift+up", keySpec{key: ebiten.KeyArrowUp, ctrl: true, shift: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKey(tt.name)
			if err != nil {
				t.Fatalf("parseKey(%q) failed: %v", tt.name, err)
			}
			if got != tt.expected {
				t.Errorf("parseKey(%q) = %+v, expected %+v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseKeyRejects(t *testing.T) {
	for _, name := range []string{"", "ctrl+", "f13", "pgup", "é"} {
		if _, err := parseKey(name); err == nil {
			t.Errorf("parseKey(%q) should fail", name)
		}
	}
}

func TestDefaultBindings(t *testing.T) {
	b, errs := newBindings(config.Default().Keys)
	if len(errs) != 0 {
		t.Fatalf("default keys should all parse: %v", errs)
	}
	for _, a := range []core.Action{core.ActionForward, core.ActionTurnLeft, core.ActionScreenshot, core.ActionQuit} {
		if len(b[a]) == 0 {
			t.Errorf("no window key for %v", a)
		}
	}

	keys := config.Default().Keys
	keys.Help = []string{"f13", "h"}
	b, errs = newBindings(keys)
	if len(errs) != 1 || len(b[core.ActionToggleHelp]) != 1 {
		t.Errorf("expected one skipped key, got %v and %d bindings", errs, len(b[core.ActionToggleHelp]))
	}
}
