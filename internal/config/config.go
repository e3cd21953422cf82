// Package config provides YAML-based configuration for the raycaster:
// render resolution, camera tuning, texture and level locations, and key
// bindings.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Config is the full application configuration.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Keys    KeysConfig    `yaml:"keys"`
}

// ScreenConfig is the render target size in pixels. Terminal backends
// derive it from the terminal when width or height is 0.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // window pixels per framebuffer pixel
}

// RenderConfig controls how frames are drawn.
type RenderConfig struct {
	FOVDegrees  float64 `yaml:"fov_degrees"`
	Background  string  `yaml:"background"`   // #rrggbb or #rrggbbaa
	Texture     string  `yaml:"texture"`      // image file; empty uses the generated rock texture
	TextureSeed uint64  `yaml:"texture_seed"` // seed for the generated texture
	Workers     int     `yaml:"workers"`      // parallel column bands
	TickRate    int     `yaml:"tick_rate"`
}

// CameraConfig holds per-tick movement constants.
type CameraConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	TurnSpeed        float64 `yaml:"turn_speed"` // mouse units per tick while a turn key is held
}

// LevelsConfig points at level files.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// StorageConfig locates the waypoint database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// KeysConfig maps actions to key names as Bubble Tea reports them
// ("w", "up", "ctrl+s", ...).
type KeysConfig struct {
	Forward      []string `yaml:"forward"`
	Backward     []string `yaml:"backward"`
	StrafeLeft   []string `yaml:"strafe_left"`
	StrafeRight  []string `yaml:"strafe_right"`
	TurnLeft     []string `yaml:"turn_left"`
	TurnRight    []string `yaml:"turn_right"`
	SaveWaypoint []string `yaml:"save_waypoint"`
	NextWaypoint []string `yaml:"next_waypoint"`
	Screenshot   []string `yaml:"screenshot"`
	Help         []string `yaml:"help"`
	Quit         []string `yaml:"quit"`
}

// Bindings returns the key lists indexed by action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionForward:      k.Forward,
		core.ActionBackward:     k.Backward,
		core.ActionStrafeLeft:   k.StrafeLeft,
		core.ActionStrafeRight:  k.StrafeRight,
		core.ActionTurnLeft:     k.TurnLeft,
		core.ActionTurnRight:    k.TurnRight,
		core.ActionSaveWaypoint: k.SaveWaypoint,
		core.ActionNextWaypoint: k.NextWaypoint,
		core.ActionScreenshot:   k.Screenshot,
		core.ActionToggleHelp:   k.Help,
		core.ActionQuit:         k.Quit,
	}
}

// FOV returns the field of view in radians.
func (c Config) FOV() float64 {
	return c.Render.FOVDegrees * math.Pi / 180
}

// BackgroundColor parses Render.Background.
func (c Config) BackgroundColor() (core.Color, error) {
	return ParseColor(c.Render.Background)
}

// Tuning returns the camera constants.
func (c Config) Tuning() core.Tuning {
	return core.Tuning{
		MoveSpeed:        c.Camera.MoveSpeed,
		MouseSensitivity: c.Camera.MouseSensitivity,
	}
}

// Runtime builds the per-session parameters for a render target of
// width x height pixels.
func (c Config) Runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: c.Render.TickRate,
		FOV:      c.FOV(),
		Workers:  c.Render.Workers,
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d is negative", c.Screen.Width, c.Screen.Height))
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_degrees %v must be in (0, 180)", c.Render.FOVDegrees))
	}
	if c.Render.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.Render.TickRate))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
