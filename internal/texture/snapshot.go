package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Image copies a framebuffer into an NRGBA image. Memory rows already run
// top to bottom, so the bytes are copied as-is.
func Image(fb *core.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}

// SavePNG writes fb to path, creating parent directories as needed.
func SavePNG(path string, fb *core.Framebuffer) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("texture: create dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	if err := png.Encode(f, Image(fb)); err != nil {
		f.Close()
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}
	return f.Close()
}
