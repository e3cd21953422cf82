package core

import "fmt"

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Framebuffer writes packed colors into a flat RGBA8 byte slice.
//
// Memory rows are stored top to bottom, but logical y grows upward: the
// pixel at logical (x, 0) lives in the last memory row. The slice is
// borrowed from the caller and never resized.
type Framebuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFramebuffer allocates a zeroed framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// WrapFramebuffer wraps an existing slice. It must be exactly
// width*height*4 bytes long.
func WrapFramebuffer(pix []byte, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer: invalid size %dx%d", width, height)
	}
	if want := width * height * BytesPerPixel; len(pix) != want {
		return nil, fmt.Errorf("framebuffer: buffer is %d bytes, want %d for %dx%d", len(pix), want, width, height)
	}
	return &Framebuffer{Pix: pix, Width: width, Height: height}, nil
}

// offset returns the byte offset of logical pixel (x, y).
func (f *Framebuffer) offset(x, y int) int {
	return (x + (f.Height-1-y)*f.Width) * BytesPerPixel
}

// SetPixel writes c at logical (x, y) as the bytes [R, G, B, A].
// Coordinates must be inside the buffer.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	i := f.offset(x, y)
	p := f.Pix[i : i+4 : i+4]
	p[0] = byte(c >> 24)
	p[1] = byte(c >> 16)
	p[2] = byte(c >> 8)
	p[3] = byte(c)
}

// At reads the color at logical (x, y).
func (f *Framebuffer) At(x, y int) Color {
	i := f.offset(x, y)
	return RGBA(f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3])
}

// Clear fills the whole buffer with c.
func (f *Framebuffer) Clear(c Color) {
	if len(f.Pix) < BytesPerPixel {
		return
	}
	r, g, b, a := c.Channels()
	f.Pix[0], f.Pix[1], f.Pix[2], f.Pix[3] = r, g, b, a
	// Doubling copy fills the rest from the first pixel.
	for n := BytesPerPixel; n < len(f.Pix); n *= 2 {
		copy(f.Pix[n:], f.Pix[:n])
	}
}
