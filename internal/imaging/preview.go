package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// SavePNG writes img as PNG, enlarged by an integer scale factor with
// nearest-neighbour sampling so that cell edges stay sharp. Parent
// directories are created as needed.
func SavePNG(path string, img image.Image, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid preview scale %d", scale)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	out := img
	if scale > 1 {
		b := img.Bounds()
		out = transform.Resize(img, b.Dx()*scale, b.Dy()*scale, transform.NearestNeighbor)
	}

	if err := imgio.Save(path, out, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}
