// Package world holds the static level geometry: vertices, wall segments
// and their texture ranges, plus level files on disk.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// ErrInvalidSegment is returned when a segment references a vertex that
// does not exist.
var ErrInvalidSegment = errors.New("world: invalid segment")

// Segment is a wall between vertices I and J. The texture's horizontal
// coordinate runs from U0 at I to U1 at J and may exceed 1; it wraps when
// sampled.
type Segment struct {
	I, J   int
	U0, U1 float64
}

// Geometry is an immutable set of vertices and the wall segments between
// them. Segment order matters: on equal distance the earlier segment wins.
type Geometry struct {
	vertices []core.Vec2
	segments []Segment
}

// NewGeometry validates segment indices and copies the inputs.
func NewGeometry(vertices []core.Vec2, segments []Segment) (*Geometry, error) {
	n := len(vertices)
	for k, s := range segments {
		if s.I < 0 || s.I >= n || s.J < 0 || s.J >= n {
			return nil, fmt.Errorf("%w: segment %d is (%d, %d) but there are %d vertices",
				ErrInvalidSegment, k, s.I, s.J, n)
		}
	}

	g := &Geometry{
		vertices: make([]core.Vec2, n),
		segments: make([]Segment, len(segments)),
	}
	copy(g.vertices, vertices)
	copy(g.segments, segments)
	return g, nil
}

// MustGeometry is NewGeometry for literals known to be valid.
func MustGeometry(vertices []core.Vec2, segments []Segment) *Geometry {
	g, err := NewGeometry(vertices, segments)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of wall segments.
func (g *Geometry) Len() int {
	return len(g.segments)
}

// NumVertices returns the number of vertices.
func (g *Geometry) NumVertices() int {
	return len(g.vertices)
}

// Vertex returns vertex i.
func (g *Geometry) Vertex(i int) core.Vec2 {
	return g.vertices[i]
}

// Segment returns segment k.
func (g *Geometry) Segment(k int) Segment {
	return g.segments[k]
}

// Endpoints returns the world-space endpoints of segment k.
func (g *Geometry) Endpoints(k int) (p0, p1 core.Vec2) {
	s := g.segments[k]
	return g.vertices[s.I], g.vertices[s.J]
}

// Vertices returns a copy of the vertex list.
func (g *Geometry) Vertices() []core.Vec2 {
	out := make([]core.Vec2, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Segments returns a copy of the segment list.
func (g *Geometry) Segments() []Segment {
	out := make([]Segment, len(g.segments))
	copy(out, g.segments)
	return out
}

// Each calls fn for every segment in order.
func (g *Geometry) Each(fn func(k int, p0, p1 core.Vec2, s Segment)) {
	for k, s := range g.segments {
		fn(k, g.vertices[s.I], g.vertices[s.J], s)
	}
}

// Bounds returns the axis-aligned box around all vertices.
func (g *Geometry) Bounds() (lo, hi core.Vec2) {
	if len(g.vertices) == 0 {
		return core.Zero, core.Zero
	}
	lo, hi = g.vertices[0], g.vertices[0]
	for _, v := range g.vertices[1:] {
		lo.X, lo.Y = min(lo.X, v.X), min(lo.Y, v.Y)
		hi.X, hi.Y = max(hi.X, v.X), max(hi.Y, v.Y)
	}
	return lo, hi
}
