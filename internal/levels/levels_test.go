package levels

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/texture"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"reference", "box", "pillars"} {
		if !registry.Exists(id) {
			t.Errorf("level %q not registered", id)
		}
	}
}

// Every built-in spawn is enclosed, so every column of the first frame
// hits a wall. An 80 degree view keeps the edge rays off room corners.
func TestBuiltinsEnclosed(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			lvl, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			fb := core.NewFramebuffer(80, 45)
			r := raycast.NewRenderer(80*math.Pi/180, core.Black, 2)
			for _, turn := range []float64{0, 0.5, 2, -1.3} {
				cam := lvl.Spawn
				cam.Angle += turn
				stats := r.Render(cam, lvl.Geometry, texture.Rock(1), fb)
				if stats.Hits != fb.Width {
					t.Errorf("turn %v: %d of %d columns hit", turn, stats.Hits, fb.Width)
				}
			}
		})
	}
}

func TestPillarsBlocksView(t *testing.T) {
	lvl := Pillars()
	// Looking north from the spawn the diamond at (0, 3) is the nearest wall.
	f := raycast.Prepare(lvl.Spawn, lvl.Geometry)
	hit, ok := f.Cast(core.Forward)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-7) > 1e-9 {
		t.Errorf("T = %v, expected 7 to the diamond tip", hit.T)
	}
}
