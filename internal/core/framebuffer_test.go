package core

import (
	"bytes"
	"testing"
)

func TestColorPacking(t *testing.T) {
	c := RGBA(0xAA, 0xBB, 0xCC, 0xDD)
	if c != 0xAABBCCDD {
		t.Fatalf("RGBA packed to %v, expected 0xAABBCCDD", c)
	}

	r, g, b, a := c.Channels()
	if r != 0xAA || g != 0xBB || b != 0xCC || a != 0xDD {
		t.Errorf("Channels() = %x %x %x %x", r, g, b, a)
	}
	if c.R() != 0xAA || c.G() != 0xBB || c.B() != 0xCC || c.A() != 0xDD {
		t.Error("single-channel accessors disagree with Channels()")
	}
	if c.Hex() != "#aabbcc" {
		t.Errorf("Hex() = %q", c.Hex())
	}
}

func TestFramebufferSetPixelFlipsRows(t *testing.T) {
	fb := NewFramebuffer(4, 10)
	fb.SetPixel(0, 0, 0xAABBCCDD)

	// Logical row 0 is memory row 9.
	off := (0 + 9*4) * 4
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	if got := fb.Pix[off : off+4]; !bytes.Equal(got, want) {
		t.Errorf("bytes at row 9 = %x, expected %x", got, want)
	}

	// Nothing else was touched.
	for i, b := range fb.Pix {
		if i >= off && i < off+4 {
			continue
		}
		if b != 0 {
			t.Fatalf("unexpected write at byte %d", i)
		}
	}
}

func TestFramebufferAtRoundTrip(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetPixel(2, 1, 0x11223344)
	if got := fb.At(2, 1); got != 0x11223344 {
		t.Errorf("At(2, 1) = %v", got)
	}
	// Top-left on screen is logical (0, H-1), memory offset 0.
	fb.SetPixel(0, 2, 0x01020304)
	if !bytes.Equal(fb.Pix[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("logical top row should be first in memory, got %x", fb.Pix[:4])
	}
}

func TestFramebufferClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {7, 2}, {16, 9}} {
		fb := NewFramebuffer(size[0], size[1])
		fb.Clear(0x10203040)
		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				if got := fb.At(x, y); got != 0x10203040 {
					t.Fatalf("%dx%d: At(%d, %d) = %v after Clear", size[0], size[1], x, y, got)
				}
			}
		}
	}
}

func TestWrapFramebuffer(t *testing.T) {
	pix := make([]byte, 8*6*4)
	fb, err := WrapFramebuffer(pix, 8, 6)
	if err != nil {
		t.Fatalf("WrapFramebuffer() failed: %v", err)
	}
	fb.SetPixel(1, 1, White)
	if &fb.Pix[0] != &pix[0] {
		t.Error("WrapFramebuffer should borrow the caller's slice")
	}

	if _, err := WrapFramebuffer(pix, 8, 5); err == nil {
		t.Error("expected error for size mismatch")
	}
	if _, err := WrapFramebuffer(nil, 0, 5); err == nil {
		t.Error("expected error for zero width")
	}
}
