package world

import "github.com/vovakirdan/tui-raycaster/internal/core"

// ReferenceID is the ID of the built-in reference level.
const ReferenceID = "reference"

// Reference returns the default level: a closed ten-wall loop with a notch
// cut into its west side. The camera starts at the origin facing +Y.
func Reference() *Geometry {
	return MustGeometry(
		[]core.Vec2{
			{X: 0, Y: 4},
			{X: 3, Y: 2},
			{X: 5, Y: -2},
			{X: 1, Y: -4},
			{X: -3, Y: -2},
			{X: -3, Y: 0},
			{X: -1, Y: 0},
			{X: -1, Y: 2},
			{X: -3, Y: 2},
			{X: -2, Y: 4},
		},
		[]Segment{
			{I: 0, J: 1, U0: 0.0, U1: 3.6},
			{I: 1, J: 2, U0: 3.6, U1: 8.1},
			{I: 2, J: 3, U0: 8.1, U1: 12.6},
			{I: 3, J: 4, U0: 12.6, U1: 17.1},
			{I: 4, J: 5, U0: 17.1, U1: 19.1},
			{I: 5, J: 6, U0: 19.1, U1: 21.1},
			{I: 6, J: 7, U0: 21.1, U1: 23.1},
			{I: 7, J: 8, U0: 23.1, U1: 25.1},
			{I: 8, J: 9, U0: 25.1, U1: 27.3},
			{I: 9, J: 0, U0: 27.3, U1: 29.3},
		},
	)
}

// ReferenceLevel wraps Reference with its spawn pose.
func ReferenceLevel() Level {
	return Level{
		ID:       ReferenceID,
		Name:     "Reference loop",
		Spawn:    core.NewCamera(core.Zero, 0),
		Geometry: Reference(),
	}
}
