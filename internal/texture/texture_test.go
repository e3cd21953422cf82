package texture

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func quadImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	return img
}

func TestFromImage(t *testing.T) {
	tex, err := FromImage(quadImage())
	if err != nil {
		t.Fatalf("FromImage() failed: %v", err)
	}
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Fatalf("Size() = %dx%d, expected 2x2", w, h)
	}

	tests := []struct {
		x, y     int
		expected core.Color
	}{
		{0, 0, 0xff0000ff},
		{1, 0, 0x00ff00ff},
		{0, 1, 0x0000ffff},
		{1, 1, 0x0a141e80},
	}
	for _, tc := range tests {
		if got := tex.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestFromImageIgnoresChannelOrder(t *testing.T) {
	// Same opaque colors stored as RGBA and as NRGBA decode identically.
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	rgba.Set(1, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	nrgba.Set(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	a, _ := FromImage(rgba)
	b, _ := FromImage(nrgba)
	for x := 0; x < 2; x++ {
		if a.At(x, 0) != b.At(x, 0) {
			t.Errorf("texel %d differs: %v vs %v", x, a.At(x, 0), b.At(x, 0))
		}
	}
}

func TestFromImageEmpty(t *testing.T) {
	if _, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestSample(t *testing.T) {
	tex, _ := FromImage(quadImage())

	tests := []struct {
		name     string
		u, v     float64
		expected core.Color
	}{
		{"origin", 0, 0, 0xff0000ff},
		{"just below half", 0.49, 0.49, 0xff0000ff},
		{"half", 0.5, 0, 0x00ff00ff},
		{"bottom left", 0.1, 0.9, 0x0000ffff},
		{"one clamps to last texel", 1, 1, 0x0a141e80},
		{"negative clamps to first texel", -0.2, -3, 0xff0000ff},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.Sample(tc.u, tc.v); got != tc.expected {
				t.Errorf("Sample(%v, %v) = %v, expected %v", tc.u, tc.v, got, tc.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New(2, 2, make([]core.Color, 3)); err == nil {
		t.Error("expected error for texel count mismatch")
	}
	if _, err := New(0, 2, nil); err == nil {
		t.Error("expected error for zero width")
	}
	tex, err := New(1, 1, []core.Color{core.White})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if tex.Sample(0.5, 0.5) != core.White {
		t.Error("1x1 texture should sample its only texel")
	}
}

func TestLoadPNGRoundTrip(t *testing.T) {
	fb := core.NewFramebuffer(3, 2)
	fb.Clear(core.Black)
	fb.SetPixel(0, 1, 0x112233ff) // top-left on screen

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := SavePNG(path, fb); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if w, h := tex.Size(); w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, expected 3x2", w, h)
	}
	if got := tex.At(0, 0); got != 0x112233ff {
		t.Errorf("top-left texel = %v, expected 0x112233FF", got)
	}
	if got := tex.At(2, 1); got != core.Black {
		t.Errorf("bottom-right texel = %v, expected black", got)
	}
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := tex.At(1, 1); got != 0x090807ff {
		t.Errorf("At(1, 1) = %v, expected 0x090807FF", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestChecker(t *testing.T) {
	tex := Checker(4, 2, core.White, core.Black)
	if tex.At(0, 0) != core.White || tex.At(1, 1) != core.White {
		t.Error("first cell should be color a")
	}
	if tex.At(2, 0) != core.Black || tex.At(0, 2) != core.Black {
		t.Error("neighbouring cells should be color b")
	}
	if tex.At(3, 3) != core.White {
		t.Error("diagonal cell should be color a")
	}
}

func TestRockDeterministic(t *testing.T) {
	a := Rock(42)
	b := Rock(42)
	c := Rock(7)

	w, h := a.Size()
	if w != rockSize || h != rockSize {
		t.Fatalf("Size() = %dx%d", w, h)
	}

	same, differ := true, false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
			}
			if a.At(x, y) != c.At(x, y) {
				differ = true
			}
			if a.At(x, y).A() != 0xff {
				t.Fatalf("texel (%d, %d) not opaque", x, y)
			}
		}
	}
	if !same {
		t.Error("same seed should produce the same texture")
	}
	if !differ {
		t.Error("different seeds should produce different textures")
	}
}
