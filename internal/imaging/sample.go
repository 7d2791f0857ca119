package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SampleMode selects how a pixel is reduced to a single integer sample.
type SampleMode string

const (
	// SampleAuto uses palette indices for paletted images and luma otherwise.
	SampleAuto SampleMode = "auto"

	// SampleIndex uses the palette index. Non-paletted images fall back to luma.
	SampleIndex SampleMode = "index"

	// SampleLuma uses the 8-bit gray value from color.GrayModel (ITU-R BT.601).
	SampleLuma SampleMode = "luma"

	// SampleLightness uses CIE L* scaled to 0-255.
	SampleLightness SampleMode = "lightness"
)

// ParseSampleMode validates a sample mode name. The empty string means auto.
func ParseSampleMode(s string) (SampleMode, error) {
	switch m := SampleMode(s); m {
	case "":
		return SampleAuto, nil
	case SampleAuto, SampleIndex, SampleLuma, SampleLightness:
		return m, nil
	default:
		return "", fmt.Errorf("unknown sample mode %q (want auto, index, luma or lightness)", s)
	}
}

// Sampler reads integer samples from an image.
//
// Coordinates are relative to the image origin: (0,0) is always the top-left
// pixel, whatever img.Bounds().Min is.
type Sampler struct {
	img      image.Image
	paletted *image.Paletted
	mode     SampleMode
	min      image.Point
	width    int
	height   int
}

// NewSampler creates a sampler for img.
func NewSampler(img image.Image, mode SampleMode) *Sampler {
	if mode == "" {
		mode = SampleAuto
	}
	bounds := img.Bounds()
	s := &Sampler{
		img:    img,
		mode:   mode,
		min:    bounds.Min,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	if p, ok := img.(*image.Paletted); ok && (mode == SampleAuto || mode == SampleIndex) {
		s.paletted = p
	}
	return s
}

// Width returns the image width in pixels.
func (s *Sampler) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *Sampler) Height() int { return s.height }

// In reports whether (x, y) lies inside the image.
func (s *Sampler) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// At returns the sample at (x, y). Out of range coordinates return 0.
func (s *Sampler) At(x, y int) int {
	if !s.In(x, y) {
		return 0
	}
	px, py := x+s.min.X, y+s.min.Y

	if s.paletted != nil {
		return int(s.paletted.ColorIndexAt(px, py))
	}

	c := s.img.At(px, py)
	switch s.mode {
	case SampleLightness:
		return lightness(c)
	default:
		return int(color.GrayModel.Convert(c).(color.Gray).Y)
	}
}

// lightness returns CIE L* of c in the range 0-255.
func lightness(c color.Color) int {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	v := int(math.Round(l * 255))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Hex formats the pixel at (x, y) as "#RRGGBB". Fully transparent pixels
// cannot be represented and yield "#000000".
func (s *Sampler) Hex(x, y int) string {
	if !s.In(x, y) {
		return ""
	}
	cf, ok := colorful.MakeColor(s.img.At(x+s.min.X, y+s.min.Y))
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
