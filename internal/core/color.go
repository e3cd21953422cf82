package core

import "fmt"

// Color is a packed 8-bit-per-channel RGBA color.
// Red occupies bits 24-31 and alpha bits 0-7. Colors are always built and
// read with shifts so the layout does not depend on host byte order.
type Color uint32

// Commonly used colors.
const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Transparent Color = 0x00000000
)

// RGBA packs four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Channels unpacks the color into its red, green, blue and alpha bytes.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// Hex formats the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
