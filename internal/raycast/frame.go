package raycast

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Frame holds every wall already transformed into camera space for one
// camera pose. It is read-only once prepared, so columns may be cast from
// several goroutines.
type Frame struct {
	p0, p1 []core.Vec2
	segs   []world.Segment
}

// Prepare transforms geo into the camera space of cam.
func Prepare(cam core.Camera, geo *world.Geometry) *Frame {
	f := &Frame{}
	f.Reset(cam, geo)
	return f
}

// Reset re-prepares the frame in place, reusing its storage.
func (f *Frame) Reset(cam core.Camera, geo *world.Geometry) {
	n := geo.Len()
	f.p0 = f.p0[:0]
	f.p1 = f.p1[:0]
	f.segs = f.segs[:0]
	if cap(f.p0) < n {
		f.p0 = make([]core.Vec2, 0, n)
		f.p1 = make([]core.Vec2, 0, n)
		f.segs = make([]world.Segment, 0, n)
	}
	geo.Each(func(_ int, p0, p1 core.Vec2, s world.Segment) {
		f.p0 = append(f.p0, cam.ToCamera(p0))
		f.p1 = append(f.p1, cam.ToCamera(p1))
		f.segs = append(f.segs, s)
	})
}

// Len returns the number of walls in the frame.
func (f *Frame) Len() int {
	return len(f.segs)
}

// Cast returns the nearest hit along dir. On equal t the earlier segment
// wins.
func (f *Frame) Cast(dir core.Vec2) (Hit, bool) {
	var best Hit
	found := false
	for k := range f.segs {
		t, u, ok := Intersect(dir, f.p0[k], f.p1[k])
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = Hit{T: t, U: u, UTex: TexU(u, f.segs[k]), Segment: k}
			found = true
		}
	}
	return best, found
}

// CastColumn casts the ray for column x against the prepared frame.
func CastColumn(f *Frame, x, width int, near float64) (Hit, bool) {
	return f.Cast(RayDirection(x, width, near))
}
