package config

import "fmt"

// QualityPreset is a named render resolution.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityNormal QualityPreset = "normal"
	QualityHigh   QualityPreset = "high"
	QualityNative QualityPreset = "native"
)

// Presets lists the quality presets from cheapest to most expensive.
func Presets() []QualityPreset {
	return []QualityPreset{QualityLow, QualityNormal, QualityHigh, QualityNative}
}

// ResolutionForPreset returns the framebuffer size and window scale for a
// preset. Every preset fills a 1280x720 window.
func ResolutionForPreset(preset QualityPreset) (width, height, scale int, ok bool) {
	switch preset {
	case QualityLow:
		return 160, 90, 8, true
	case QualityNormal:
		return 320, 180, 4, true
	case QualityHigh:
		return 640, 360, 2, true
	case QualityNative:
		return 1280, 720, 1, true
	default:
		return 0, 0, 0, false
	}
}

// ApplyQualityPreset sets the screen size from a preset. An empty preset
// leaves cfg unchanged.
func ApplyQualityPreset(cfg *Config, preset QualityPreset) error {
	if preset == "" {
		return nil
	}
	w, h, scale, ok := ResolutionForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown quality preset %q (want one of %v)", preset, Presets())
	}
	cfg.Screen.Width = w
	cfg.Screen.Height = h
	cfg.Screen.Scale = scale

	// Higher resolutions split columns across more bands.
	if preset == QualityHigh || preset == QualityNative {
		cfg.Render.Workers = max(cfg.Render.Workers, 4)
	}
	return nil
}
