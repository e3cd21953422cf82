package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		rad      float64
		expected float64
	}{
		{0, 0},
		{math.Pi / 2, 90},
		{-math.Pi / 2, 270},
		{5 * math.Pi, 180},
	}
	for _, tc := range tests {
		if got := Degrees(tc.rad); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Degrees(%v) = %v, expected %v", tc.rad, got, tc.expected)
		}
	}
}
