package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/texture"
)

// maxHeight caps projected heights so a wall touching the camera cannot
// overflow int. Anything this tall is clamped to the screen anyway.
const maxHeight = 1 << 30

// Span is the vertical extent of one projected wall strip.
type Span struct {
	Height int     // unclamped projected height in pixels
	Y0, Y1 int     // drawn rows [Y0, Y1), clamped to the screen
	V0c    float64 // texture v cropped off each end when the wall overflows
}

// Empty reports whether the strip has no rows to draw.
func (s Span) Empty() bool {
	return s.Height == 0
}

// Project computes the strip for a wall at ray parameter t.
func Project(t, near float64, screenHeight int) Span {
	hf := math.Round(2 * near / t)
	if hf > maxHeight || math.IsNaN(hf) {
		hf = maxHeight
	}
	h := int(hf)
	if h <= 0 {
		return Span{}
	}

	visible := min(h, screenHeight)
	return Span{
		Height: h,
		Y0:     (screenHeight - visible) / 2,
		Y1:     (screenHeight + visible) / 2,
		V0c:    0.5 - math.Min(float64(screenHeight)/float64(h), 1)*0.5,
	}
}

// wrap reduces a texture coordinate into [0, 1). Negative inputs wrap
// upward rather than mirroring.
func wrap(x float64) float64 {
	return x - math.Floor(x)
}

// DrawStrip draws column x of fb for span, sampling tex at horizontal
// coordinate uTex. v runs from 1-V0c at the bottom row to V0c at the top.
func DrawStrip(fb *core.Framebuffer, x int, span Span, uTex float64, tex texture.Sampler) {
	if span.Empty() {
		return
	}
	u := wrap(uTex)
	v0 := 1 - span.V0c
	v1 := span.V0c
	rows := float64(span.Y1 - span.Y0)
	for y := span.Y0; y < span.Y1; y++ {
		v := (float64(y-span.Y0)/rows)*(v1-v0) + v0
		fb.SetPixel(x, y, tex.Sample(u, wrap(v)))
	}
}
