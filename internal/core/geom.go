// Package core provides the pure building blocks of the raycaster: vectors,
// the camera, packed colors, the RGBA framebuffer writer and the terminal
// cell buffer. It has no external dependencies so everything above it stays
// testable without a window or terminal.
package core

import "math"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Degrees converts a heading in radians to degrees in [0, 360).
func Degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
