package detection

import (
	"fmt"
	"image"

	"github.com/ironsheep/nonoconv/internal/imaging"
	"github.com/ironsheep/nonoconv/internal/nonogram"
)

// FillPolicy decides whether a cell sample means "filled".
type FillPolicy func(sample, threshold int) bool

// DarkFilled treats samples below the threshold as filled. Puzzle sheets
// print filled cells dark on a light background.
func DarkFilled(sample, threshold int) bool {
	return sample < threshold
}

// LightFilled treats samples at or above the threshold as filled, for
// inverted sheets.
func LightFilled(sample, threshold int) bool {
	return sample >= threshold
}

// ParseFillPolicy maps "dark" (or "") and "light" to a FillPolicy.
func ParseFillPolicy(name string) (FillPolicy, error) {
	switch name {
	case "", "dark":
		return DarkFilled, nil
	case "light":
		return LightFilled, nil
	default:
		return nil, fmt.Errorf("unknown fill policy %q (want dark or light)", name)
	}
}

// Threshold returns half the spread between the smallest and the largest
// sample over all playing field cells: (max - min) / 2.
func Threshold(img image.Image, g *Geometry, opts Options) int {
	opts = opts.withDefaults()
	s := imaging.NewSampler(img, opts.SampleMode)

	lo, hi := 0, 0
	first := true
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			v := s.At(g.CellPoint(col, row))
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return (hi - lo) / 2
}

// Classify reads every playing field cell and returns the puzzle.
//
// Each cell is sampled at its sample point (see Geometry.CellPoint) and
// judged by opts.Policy against threshold.
func Classify(img image.Image, g *Geometry, threshold int, name string, opts Options) (*nonogram.Nonogram, error) {
	opts = opts.withDefaults()
	s := imaging.NewSampler(img, opts.SampleMode)

	n, err := nonogram.New(name, g.Width, g.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometryDetection, err)
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			x, y := g.CellPoint(col, row)
			if !s.In(x, y) {
				return nil, fmt.Errorf("%w: cell (%d,%d) outside image", ErrGeometryDetection, col, row)
			}
			n.Set(col, row, opts.Policy(s.At(x, y), threshold))
		}
	}
	return n, nil
}
