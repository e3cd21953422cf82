package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub = %v, expected (-2, 6)", got)
	}
	if got := a.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale = %v, expected (2.5, 5)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	// 1*(-4) - 2*3
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, expected -10", got)
	}
}

func TestVecCrossAntisymmetric(t *testing.T) {
	a := V(0.3, 1.7)
	b := V(-2.2, 0.4)
	if a.Cross(b) != -b.Cross(a) {
		t.Errorf("Cross should be antisymmetric: %v vs %v", a.Cross(b), b.Cross(a))
	}
	if a.Cross(a.Scale(3)) != 0 {
		t.Error("Cross of parallel vectors should be zero")
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"quarter turn of right", Right, math.Pi / 2, Forward},
		{"quarter turn of forward", Forward, math.Pi / 2, Left},
		{"half turn", V(2, 1), math.Pi, V(-2, -1)},
		{"negative quarter", Forward, -math.Pi / 2, Right},
		{"zero angle", V(3, 4), 0, V(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !got.ApproxEqual(tc.expected, eps) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVecRotatePreservesLength(t *testing.T) {
	v := V(3, 4)
	for _, a := range []float64{0.1, 1, 2.5, -3} {
		if got := v.Rotate(a).Len(); math.Abs(got-5) > eps {
			t.Errorf("Rotate(%v) changed length to %v", a, got)
		}
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !n.ApproxEqual(V(0.6, 0.8), eps) {
		t.Errorf("Normalize = %v, expected (0.6, 0.8)", n)
	}
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Normalized length = %v, expected 1", n.Len())
	}
}

func TestFromAngle(t *testing.T) {
	if !FromAngle(0).ApproxEqual(Right, eps) {
		t.Errorf("FromAngle(0) = %v", FromAngle(0))
	}
	if !FromAngle(math.Pi / 2).ApproxEqual(Forward, eps) {
		t.Errorf("FromAngle(pi/2) = %v", FromAngle(math.Pi/2))
	}
}
