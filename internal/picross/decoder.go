// Package picross reads puzzle solutions from handheld Picross screenshots.
//
// Screenshots are 160x144 pixel captures of a solved 15x15 puzzle. Each cell
// is 6 pixels wide; the centre pixel of cell (i, j) is at (61+6i, 54+6j) and
// is either RGB(176,176,176) for an empty cell or RGB(80,80,80) for a filled
// one. Any other colour means the screenshot is not a solved puzzle.
package picross

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/nonoconv/internal/nonogram"
)

var (
	// ErrUnexpectedImageSize is returned for images that are not 160x144.
	ErrUnexpectedImageSize = errors.New("wrong image size")

	// ErrUnexpectedPixelFormat is returned when a cell pixel is neither the
	// empty nor the filled colour.
	ErrUnexpectedPixelFormat = errors.New("wrong image format")
)

// Screen layout.
const (
	ScreenWidth  = 160
	ScreenHeight = 144

	Size   = 15
	Pitch  = 6
	FirstX = 61
	FirstY = 54
)

var (
	EmptyColor  = color.RGBA{176, 176, 176, 255}
	FilledColor = color.RGBA{80, 80, 80, 255}
)

// Decoder converts screenshots into nonograms.
type Decoder struct {
	Description string
}

// Convert implements the batch converter interface.
func (d *Decoder) Convert(img image.Image, name string) (*nonogram.Nonogram, error) {
	n, err := Decode(img, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	n.Description = d.Description
	return n, nil
}

// Decode reads the 15x15 solution shown in img.
func Decode(img image.Image, name string) (*nonogram.Nonogram, error) {
	b := img.Bounds()
	if b.Dx() != ScreenWidth || b.Dy() != ScreenHeight {
		return nil, fmt.Errorf("%w: %dx%d, want %dx%d", ErrUnexpectedImageSize, b.Dx(), b.Dy(), ScreenWidth, ScreenHeight)
	}

	n, err := nonogram.New(name, Size, Size)
	if err != nil {
		return nil, err
	}

	for j := 0; j < Size; j++ {
		for i := 0; i < Size; i++ {
			x, y := FirstX+Pitch*i, FirstY+Pitch*j
			c := rgb(img.At(b.Min.X+x, b.Min.Y+y))
			switch c {
			case EmptyColor:
			case FilledColor:
				n.Set(i, j, true)
			default:
				cf, _ := colorful.MakeColor(c)
				return nil, fmt.Errorf("%w: pixel (%d,%d) is %s", ErrUnexpectedPixelFormat, x, y, cf.Hex())
			}
		}
	}
	return n, nil
}

// rgb reduces c to opaque 8-bit RGB.
func rgb(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, 255}
}
