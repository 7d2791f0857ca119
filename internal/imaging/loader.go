package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrImageOpen is returned when an image file cannot be read or decoded.
var ErrImageOpen = errors.New("cannot open image")

// Load reads and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. Palette based files (GIF, indexed PNG)
//     decode to *image.Paletted so that palette indices stay available to
//     the Sampler.
//   - error: Wraps ErrImageOpen if the file cannot be opened or decoded.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrImageOpen, filepath.Base(path), err)
	}
	return img, nil
}

// ListImages returns all files in dir whose extension matches ext
// (case-insensitive, with or without the leading dot), sorted by name.
//
// Subdirectories are not searched.
func ListImages(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ImageInfo contains metadata about a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Paletted is true for indexed-colour images.
	Paletted bool `json:"paletted"`

	// PaletteSize is the number of palette entries, 0 for non-paletted images.
	PaletteSize int `json:"palette_size"`
}

// Info describes an already decoded image.
func Info(img image.Image) ImageInfo {
	bounds := img.Bounds()
	info := ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	if p, ok := img.(*image.Paletted); ok {
		info.Paletted = true
		info.PaletteSize = len(p.Palette)
	}
	return info
}
