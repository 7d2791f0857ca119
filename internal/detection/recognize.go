package detection

import (
	"fmt"
	"image"

	"github.com/ironsheep/nonoconv/internal/nonogram"
)

// Result bundles the intermediate values of one recognition run.
type Result struct {
	Geometry  *Geometry
	Threshold int
	Nonogram  *nonogram.Nonogram
}

// Recognize runs geometry detection, threshold estimation and cell
// classification on one puzzle sheet.
func Recognize(img image.Image, name string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	g, err := DetectGeometry(img, opts)
	if err != nil {
		return nil, err
	}
	threshold := Threshold(img, g, opts)
	n, err := Classify(img, g, threshold, name, opts)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("Nonogram recognized", "name", name, "threshold", threshold, "filled", n.FilledCount())
	return &Result{Geometry: g, Threshold: threshold, Nonogram: n}, nil
}

// Recognizer converts puzzle sheet images with fixed options.
type Recognizer struct {
	Options Options

	// Description is stored in the "desc" attribute of every level.
	Description string
}

// Convert recognizes img and names the resulting level.
func (r *Recognizer) Convert(img image.Image, name string) (*nonogram.Nonogram, error) {
	res, err := Recognize(img, name, r.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res.Nonogram.Description = r.Description
	return res.Nonogram, nil
}
