package core

import "math"

// Vec2 is a 2D vector in world or camera space.
type Vec2 struct {
	X, Y float64
}

// Direction constants. Forward is +Y, which is the axis every camera-space
// ray points along.
var (
	Zero    = Vec2{0, 0}
	Forward = Vec2{0, 1}
	Back    = Vec2{0, -1}
	Right   = Vec2{1, 0}
	Left    = Vec2{-1, 0}
)

// V creates a new Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector (cos a, sin a).
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product, a.X*b.Y - a.Y*b.X.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rotate rotates the vector counter-clockwise by angle radians.
func (a Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// Len returns the Euclidean length.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns the unit vector pointing along a.
// The zero vector has no direction; callers must not pass it.
func (a Vec2) Normalize() Vec2 {
	return a.Scale(1 / a.Len())
}

// ApproxEqual reports whether both components differ by at most eps.
func (a Vec2) ApproxEqual(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
