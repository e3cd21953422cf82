// Package levels registers the built-in levels. Import it for its side
// effects.
package levels

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

func init() {
	registry.Register(world.ReferenceID, world.ReferenceLevel)
	registry.Register("box", Box)
	registry.Register("pillars", Pillars)
}

// Box is a plain 8x8 room with the camera in the middle.
func Box() world.Level {
	geo, err := world.NewBuilder().
		Loop(core.V(-4, -4), core.V(4, -4), core.V(4, 4), core.V(-4, 4)).
		Build()
	if err != nil {
		panic(err)
	}
	return world.Level{
		ID:       "box",
		Name:     "Box room",
		Spawn:    core.NewCamera(core.Zero, 0),
		Geometry: geo,
	}
}

// Pillars is a 12x12 hall with four square pillars and a diamond in the
// north half. The spawn sits in the south, facing the diamond.
func Pillars() world.Level {
	b := world.NewBuilder().
		Loop(core.V(-6, -6), core.V(6, -6), core.V(6, 6), core.V(-6, 6))

	for _, c := range []core.Vec2{{X: -3, Y: -1}, {X: 3, Y: -1}, {X: -3, Y: 3}, {X: 3, Y: 3}} {
		b.Loop(square(c, 0.5)...)
	}
	b.Loop(core.V(0, 3), core.V(1, 4), core.V(0, 5), core.V(-1, 4))

	geo, err := b.Build()
	if err != nil {
		panic(err)
	}
	return world.Level{
		ID:       "pillars",
		Name:     "Pillared hall",
		Spawn:    core.NewCamera(core.V(0, -4), 0),
		Geometry: geo,
	}
}

// square returns the corners of an axis-aligned square, counter-clockwise.
func square(center core.Vec2, half float64) []core.Vec2 {
	return []core.Vec2{
		center.Add(core.V(-half, -half)),
		center.Add(core.V(half, -half)),
		center.Add(core.V(half, half)),
		center.Add(core.V(-half, half)),
	}
}
