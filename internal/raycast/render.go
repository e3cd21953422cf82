package raycast

import (
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/texture"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Stats summarises one rendered frame.
type Stats struct {
	Hits int // columns that hit a wall
}

// Renderer draws full frames. A Renderer reuses its prepared Frame between
// calls and must not be used from several goroutines at once.
type Renderer struct {
	FOV        float64    // horizontal field of view in radians
	Background core.Color // color of columns without a wall
	Workers    int        // column bands rendered concurrently; <= 1 is sequential
	Naive      bool       // re-transform every wall for every column

	frame Frame
}

// NewRenderer creates a renderer.
func NewRenderer(fov float64, background core.Color, workers int) *Renderer {
	return &Renderer{FOV: fov, Background: background, Workers: workers}
}

// Render clears fb to the background and draws every column for cam.
// fb is only written during the call.
func (r *Renderer) Render(cam core.Camera, geo *world.Geometry, tex texture.Sampler, fb *core.Framebuffer) Stats {
	fb.Clear(r.Background)
	near := Near(fb.Width, r.FOV)

	if r.Naive {
		hits := 0
		for x := 0; x < fb.Width; x++ {
			if hit, ok := CastColumnNaive(cam, geo, x, fb.Width, near); ok {
				DrawStrip(fb, x, Project(hit.T, near, fb.Height), hit.UTex, tex)
				hits++
			}
		}
		return Stats{Hits: hits}
	}

	r.frame.Reset(cam, geo)
	bands := max(1, min(r.Workers, fb.Width))
	if bands == 1 {
		return Stats{Hits: r.renderBand(fb, tex, near, 0, fb.Width)}
	}

	// Each band owns a contiguous run of columns, so no two goroutines
	// write the same bytes.
	counts := make([]int, bands)
	var g errgroup.Group
	g.SetLimit(bands)
	for b := 0; b < bands; b++ {
		x0 := b * fb.Width / bands
		x1 := (b + 1) * fb.Width / bands
		g.Go(func() error {
			counts[b] = r.renderBand(fb, tex, near, x0, x1)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return Stats{Hits: total}
}

func (r *Renderer) renderBand(fb *core.Framebuffer, tex texture.Sampler, near float64, x0, x1 int) int {
	hits := 0
	for x := x0; x < x1; x++ {
		hit, ok := CastColumn(&r.frame, x, fb.Width, near)
		if !ok {
			continue
		}
		DrawStrip(fb, x, Project(hit.T, near, fb.Height), hit.UTex, tex)
		hits++
	}
	return hits
}
