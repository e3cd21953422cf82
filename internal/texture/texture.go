// Package texture decodes wall textures and samples them with
// nearest-neighbour lookup.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Sampler returns the color at normalised texture coordinates.
// u and v are expected in [0, 1); u grows right, v grows down the image.
type Sampler interface {
	Sample(u, v float64) core.Color
	Size() (width, height int)
}

// ErrEmpty is returned for zero-sized textures.
var ErrEmpty = errors.New("texture: empty image")

// Texture is a row-major grid of packed texels, row 0 at the top.
type Texture struct {
	width  int
	height int
	texels []core.Color
}

// New creates a texture from texels. len(texels) must equal width*height.
func New(width, height int, texels []core.Color) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}
	if len(texels) != width*height {
		return nil, fmt.Errorf("texture: %d texels for %dx%d", len(texels), width, height)
	}
	return &Texture{width: width, height: height, texels: texels}, nil
}

// FromImage converts any decoded image into a Texture. Every pixel goes
// through the NRGBA model, so the result does not depend on the source
// image's channel order or premultiplication.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmpty
	}

	texels := make([]core.Color, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			texels = append(texels, core.RGBA(c.R, c.G, c.B, c.A))
		}
	}
	return &Texture{width: w, height: h, texels: texels}, nil
}

// Load decodes a PNG, BMP or WebP file.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	t, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s (%s): %w", path, format, err)
	}
	return t, nil
}

// Size returns the texture dimensions in texels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// At returns the texel at integer coordinates.
func (t *Texture) At(x, y int) core.Color {
	return t.texels[x+y*t.width]
}

// Sample performs a nearest-neighbour lookup. Coordinates outside [0, 1)
// are clamped to the edge texels.
func (t *Texture) Sample(u, v float64) core.Color {
	x := core.Clamp(int(math.Floor(u*float64(t.width))), 0, t.width-1)
	y := core.Clamp(int(math.Floor(v*float64(t.height))), 0, t.height-1)
	return t.texels[x+y*t.width]
}
