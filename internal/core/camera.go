package core

// Movement is the held-direction intent for one tick.
// Each axis is -1, 0 or +1. The vector is deliberately not normalised, so
// diagonal movement covers more ground than straight movement.
type Movement struct {
	Strafe  int // +1 right, -1 left
	Advance int // +1 forward, -1 back
}

// Vector returns the camera-space movement vector.
func (m Movement) Vector() Vec2 {
	return Vec2{float64(sign(m.Strafe)), float64(sign(m.Advance))}
}

// IsZero reports whether no direction is held.
func (m Movement) IsZero() bool {
	return m.Strafe == 0 && m.Advance == 0
}

// Tuning holds the per-tick camera constants.
type Tuning struct {
	MoveSpeed        float64 // world units per tick at full intent
	MouseSensitivity float64 // radians per unit of mouse delta
}

// DefaultTuning matches a 60 tick/s update loop.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:        0.05,
		MouseSensitivity: 0.01,
	}
}

// Camera is the viewer's position and facing angle in world space.
// Angle 0 faces world +Y.
type Camera struct {
	Position Vec2
	Angle    float64
}

// NewCamera creates a camera at pos facing angle.
func NewCamera(pos Vec2, angle float64) Camera {
	return Camera{Position: pos, Angle: angle}
}

// Update applies one tick of input. The angle is updated first and the
// movement is rotated by the new angle.
func (c *Camera) Update(mouseDX float64, m Movement, t Tuning) {
	c.Angle -= mouseDX * t.MouseSensitivity
	step := m.Vector().Rotate(c.Angle).Scale(t.MoveSpeed)
	c.Position = c.Position.Add(step)
}

// ToCamera transforms a world-space point into camera space.
func (c Camera) ToCamera(p Vec2) Vec2 {
	return p.Sub(c.Position).Rotate(-c.Angle)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
