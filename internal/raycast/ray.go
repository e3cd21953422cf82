// Package raycast renders a first-person view of world geometry one screen
// column at a time: each column casts a ray, keeps the nearest wall hit and
// draws a texture-mapped vertical strip scaled by inverse distance.
//
// All work happens in camera space, where the viewer sits at the origin
// looking along +Y.
package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Hit is the nearest wall intersection for one column.
type Hit struct {
	T       float64 // ray parameter; distance-like, not Euclidean
	U       float64 // position along the segment, 0 at I and 1 at J
	UTex    float64 // U mapped into the segment's texture range
	Segment int     // index into the geometry's segments
}

// Near returns the projection-plane distance for a screen width and
// horizontal field of view in radians. width/2 is integer division.
func Near(width int, fov float64) float64 {
	return float64(width/2) / math.Tan(fov/2)
}

// RayDirection returns the camera-space direction for column x. It is not
// normalised: the Y component is always 1.
func RayDirection(x, width int, near float64) core.Vec2 {
	return core.V(float64(x-width/2)/near, 1)
}

// Intersect solves origin + t*dir = p0 + u*(p1-p0) for a ray from the
// camera-space origin. It reports false when the ray and segment are
// parallel or the hit lies outside 0 <= u <= 1, t > 0.
func Intersect(dir, p0, p1 core.Vec2) (t, u float64, ok bool) {
	diff := p1.Sub(p0)
	s := dir.Cross(diff)
	if s == 0 {
		return 0, 0, false
	}
	t = p0.Cross(diff) / s
	u = p0.Cross(dir) / s
	if u < 0 || u > 1 || t <= 0 {
		return 0, 0, false
	}
	return t, u, true
}

// TexU maps a segment parameter into the segment's texture range.
func TexU(u float64, s world.Segment) float64 {
	return u*(s.U1-s.U0) + s.U0
}

// CastColumnNaive casts the ray for column x, transforming every segment
// into camera space as it goes.
func CastColumnNaive(cam core.Camera, geo *world.Geometry, x, width int, near float64) (Hit, bool) {
	dir := RayDirection(x, width, near)

	var best Hit
	found := false
	geo.Each(func(k int, p0, p1 core.Vec2, s world.Segment) {
		t, u, ok := Intersect(dir, cam.ToCamera(p0), cam.ToCamera(p1))
		if !ok {
			return
		}
		if !found || t < best.T {
			best = Hit{T: t, U: u, UTex: TexU(u, s), Segment: k}
			found = true
		}
	})
	return best, found
}
