package config

import (
	_ "embed"
)

//go:embed defaults/raycaster.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, used when no file can be
// read at all.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  320,
			Height: 180,
			Scale:  4,
		},
		Render: RenderConfig{
			FOVDegrees:  90,
			Background:  "#000000ff",
			TextureSeed: 1,
			Workers:     1,
			TickRate:    60,
		},
		Camera: CameraConfig{
			MoveSpeed:        0.05,
			MouseSensitivity: 0.01,
			TurnSpeed:        4,
		},
		Levels: LevelsConfig{
			Dir:     "~/.raycaster/levels",
			Default: "reference",
		},
		Storage: StorageConfig{
			DB: "~/.raycaster/raycaster.db",
		},
		Keys: KeysConfig{
			Forward:      []string{"w", "up"},
			Backward:     []string{"s", "down"},
			StrafeLeft:   []string{"a"},
			StrafeRight:  []string{"d"},
			TurnLeft:     []string{"left"},
			TurnRight:    []string{"right"},
			SaveWaypoint: []string{"m"},
			NextWaypoint: []string{"n"},
			Screenshot:   []string{"ctrl+s"},
			Help:         []string{"?"},
			Quit:         []string{"q", "esc", "ctrl+c"},
		},
	}
}
