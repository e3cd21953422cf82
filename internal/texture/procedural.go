package texture

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Checker builds a two-color checkerboard of size x size texels with
// square cells of the given edge.
func Checker(size, cell int, a, b core.Color) *Texture {
	if size <= 0 {
		size = 1
	}
	if cell <= 0 {
		cell = 1
	}
	texels := make([]core.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			texels[x+y*size] = c
		}
	}
	return &Texture{width: size, height: size, texels: texels}
}

const (
	rockSize    = 64
	rockLattice = 8
)

// Rock generates a tileable grey-brown stone texture from seed. It stands in
// for a wall image when none is configured or the file cannot be read.
func Rock(seed uint64) *Texture {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// Random brightness on a coarse lattice that wraps at the edges.
	var grid [rockLattice][rockLattice]float64
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = rng.Float64()
		}
	}

	const step = rockSize / rockLattice
	texels := make([]core.Color, rockSize*rockSize)
	for y := 0; y < rockSize; y++ {
		gy, fy := y/step, float64(y%step)/step
		for x := 0; x < rockSize; x++ {
			gx, fx := x/step, float64(x%step)/step

			a := grid[gy][gx]
			b := grid[gy][(gx+1)%rockLattice]
			c := grid[(gy+1)%rockLattice][gx]
			d := grid[(gy+1)%rockLattice][(gx+1)%rockLattice]
			top := a + (b-a)*smooth(fx)
			bottom := c + (d-c)*smooth(fx)
			n := top + (bottom-top)*smooth(fy)

			// Grain so neighbouring texels differ.
			n = 0.8*n + 0.2*rng.Float64()

			l := 70 + n*110
			texels[x+y*rockSize] = core.RGBA(uint8(l), uint8(l*0.9), uint8(l*0.78), 0xff)
		}
	}
	return &Texture{width: rockSize, height: rockSize, texels: texels}
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}
