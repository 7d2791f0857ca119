package detection

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/nonoconv/internal/imaging"
)

// ErrGeometryDetection is returned when no usable grid is found in an image.
var ErrGeometryDetection = errors.New("grid detection failed")

// Default probe parameters.
const (
	// DefaultProbeOffset is the pixel offset of the probe scanline and of
	// every sample point inside a cell.
	DefaultProbeOffset = 7

	// DefaultMaxProbe bounds the pitch probe, in pixels.
	DefaultMaxProbe = 50

	// DefaultMaxPlayable is the largest accepted playing field side, in cells.
	DefaultMaxPlayable = 50
)

// Options configures recognition. The zero value selects all defaults.
type Options struct {
	ProbeOffset int `yaml:"probe_offset"`
	MaxProbe    int `yaml:"max_probe"`
	MaxPlayable int `yaml:"max_playable"`

	// IndependentAxes probes column ProbeOffset for the vertical pitch
	// instead of reusing the horizontal probe.
	IndependentAxes bool `yaml:"independent_axes"`

	SampleMode imaging.SampleMode `yaml:"sample_mode"`

	// Policy decides filled/empty per cell. Nil means DarkFilled.
	Policy FillPolicy `yaml:"-"`

	// Logger receives warnings and debug output. Nil means slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

func (o Options) withDefaults() Options {
	if o.ProbeOffset <= 0 {
		o.ProbeOffset = DefaultProbeOffset
	}
	if o.MaxProbe <= 0 {
		o.MaxProbe = DefaultMaxProbe
	}
	if o.MaxPlayable <= 0 {
		o.MaxPlayable = DefaultMaxPlayable
	}
	if o.SampleMode == "" {
		o.SampleMode = imaging.SampleAuto
	}
	if o.Policy == nil {
		o.Policy = DarkFilled
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Geometry describes the grid found in a puzzle sheet.
type Geometry struct {
	// CellWidth and CellHeight are the grid pitch in pixels.
	CellWidth  int `json:"cell_width" yaml:"cell_width"`
	CellHeight int `json:"cell_height" yaml:"cell_height"`

	// MarginTop and MarginLeft are the header rows and columns, in cells.
	MarginTop  int `json:"margin_top" yaml:"margin_top"`
	MarginLeft int `json:"margin_left" yaml:"margin_left"`

	// Width and Height are the playing field size, in cells.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// OriginX and OriginY locate the sample point of the top-left header cell.
	OriginX int `json:"origin_x" yaml:"origin_x"`
	OriginY int `json:"origin_y" yaml:"origin_y"`

	// MarginColor is the sample value of blank header cells.
	MarginColor int `json:"margin_color" yaml:"margin_color"`
}

// CellPoint returns the sample point of playing field cell (col, row).
func (g *Geometry) CellPoint(col, row int) (x, y int) {
	x = g.OriginX + (g.MarginLeft+col)*g.CellWidth
	y = g.OriginY + (g.MarginTop+row)*g.CellHeight
	return x, y
}

// DetectGeometry finds the cell grid of a puzzle sheet.
//
// # Algorithm
//
//  1. Pitch: walk row ProbeOffset from x=0 for at most MaxProbe pixels,
//     counting non-zero samples. The walk stops at the first change of value
//     after a non-zero run; the changed pixel is still counted when it is
//     non-zero. On sheets whose blank corner is closed by a grid line, the
//     count is exactly the pitch.
//  2. The vertical pitch repeats the same probe, or probes column
//     ProbeOffset when IndependentAxes is set. Differing pitches are logged
//     and both are kept.
//  3. The sample at (ProbeOffset, ProbeOffset) is the margin colour.
//  4. Left margin: for every grid row, count the cells matching the margin
//     colour. Rows where more than half of all columns match are header
//     rows and are skipped; the largest remaining count is the left margin.
//     The top margin is found the same way over grid columns.
//  5. Playing field: whole cells along each axis minus the margin.
//
// Returns an error wrapping ErrGeometryDetection if no pitch is found, if the
// playing field is empty or larger than MaxPlayable, or if playing field
// sample points fall outside the image.
func DetectGeometry(img image.Image, opts Options) (*Geometry, error) {
	opts = opts.withDefaults()
	s := imaging.NewSampler(img, opts.SampleMode)
	width, height := s.Width(), s.Height()
	offset := opts.ProbeOffset

	if offset >= width || offset >= height {
		return nil, fmt.Errorf("%w: image %dx%d smaller than probe offset %d", ErrGeometryDetection, width, height, offset)
	}

	cellWidth := probePitch(min(opts.MaxProbe, width), func(i int) int { return s.At(i, offset) })
	cellHeight := cellWidth
	if opts.IndependentAxes {
		cellHeight = probePitch(min(opts.MaxProbe, height), func(i int) int { return s.At(offset, i) })
	}
	if cellWidth == 0 || cellHeight == 0 {
		return nil, fmt.Errorf("%w: no grid pitch found within %d pixels", ErrGeometryDetection, opts.MaxProbe)
	}
	if cellWidth != cellHeight {
		opts.Logger.Warn("Grid width and grid height differ", "cell_width", cellWidth, "cell_height", cellHeight)
	}

	g := &Geometry{
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
		OriginX:     offset,
		OriginY:     offset,
		MarginColor: s.At(offset, offset),
	}
	opts.Logger.Debug("Grid pitch detected",
		"cell_width", cellWidth, "cell_height", cellHeight, "margin_color", s.Hex(offset, offset))

	columns := float64(width) / float64(cellWidth)
	rows := float64(height) / float64(cellHeight)

	for y := g.OriginY; y < height; y += cellHeight {
		count := 0
		for x := g.OriginX; x < width; x += cellWidth {
			if s.At(x, y) == g.MarginColor {
				count++
			}
		}
		if float64(count) > columns/2 {
			continue
		}
		g.MarginLeft = max(g.MarginLeft, count)
	}

	for x := g.OriginX; x < width; x += cellWidth {
		count := 0
		for y := g.OriginY; y < height; y += cellHeight {
			if s.At(x, y) == g.MarginColor {
				count++
			}
		}
		if float64(count) > rows/2 {
			continue
		}
		g.MarginTop = max(g.MarginTop, count)
	}

	g.Width = width/cellWidth - g.MarginLeft
	g.Height = height/cellHeight - g.MarginTop
	opts.Logger.Debug("Grid margins detected",
		"margin_left", g.MarginLeft, "margin_top", g.MarginTop, "width", g.Width, "height", g.Height)

	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: empty playing field (%d, %d)", ErrGeometryDetection, g.Width, g.Height)
	}
	if g.Width > opts.MaxPlayable || g.Height > opts.MaxPlayable {
		return nil, fmt.Errorf("%w: width or height is too big: (%d, %d)", ErrGeometryDetection, g.Width, g.Height)
	}
	if lx, ly := g.CellPoint(g.Width-1, g.Height-1); !s.In(lx, ly) {
		return nil, fmt.Errorf("%w: cell sample point (%d,%d) outside image", ErrGeometryDetection, lx, ly)
	}

	return g, nil
}

// probePitch walks n samples and returns the length of the first non-zero
// run, including the pixel that ends it if that pixel is non-zero.
func probePitch(n int, at func(i int) int) int {
	count := 0
	last := 0
	for i := 0; i < n; i++ {
		v := at(i)
		if v > 0 {
			count++
		}
		if last > 0 && v != last {
			break
		}
		last = v
	}
	return count
}
