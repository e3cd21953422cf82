package world

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// TexelsPerUnit rounds derived texture lengths to a tenth of a world unit,
// the precision of the reference level's ranges.
const TexelsPerUnit = 10

// DeriveU returns the texture span of a wall from p0 to p1 that continues
// from u0: the next range is [u0, u0+length].
func DeriveU(u0 float64, p0, p1 core.Vec2) (float64, float64) {
	l := math.Round(p1.Sub(p0).Len()*TexelsPerUnit) / TexelsPerUnit
	return u0, u0 + l
}

// Builder assembles geometry from closed loops and open chains. Texture
// coordinates continue from one wall to the next across the whole build.
type Builder struct {
	vertices []core.Vec2
	segments []Segment
	u        float64
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Loop adds a closed polygon through points.
func (b *Builder) Loop(points ...core.Vec2) *Builder {
	return b.add(points, true)
}

// Chain adds an open polyline through points.
func (b *Builder) Chain(points ...core.Vec2) *Builder {
	return b.add(points, false)
}

func (b *Builder) add(points []core.Vec2, closed bool) *Builder {
	if len(points) < 2 {
		return b
	}
	base := len(b.vertices)
	b.vertices = append(b.vertices, points...)

	n := len(points)
	last := n - 1
	if closed {
		last = n
	}
	for k := 0; k < last; k++ {
		i, j := base+k, base+(k+1)%n
		u0, u1 := DeriveU(b.u, b.vertices[i], b.vertices[j])
		b.segments = append(b.segments, Segment{I: i, J: j, U0: u0, U1: u1})
		b.u = u1
	}
	return b
}

// Build validates and returns the geometry.
func (b *Builder) Build() (*Geometry, error) {
	return NewGeometry(b.vertices, b.segments)
}
