package nonogram

import (
	"fmt"
	"strings"
)

// Cell tokens used inside <line> elements.
const (
	FilledToken = 'x'
	EmptyToken  = '_'
)

// Nonogram is a single puzzle level.
//
// Cells is indexed [row][column] and always has Height rows of Width cells.
type Nonogram struct {
	Name        string
	Description string
	ID          string

	// Difficulty is the level's difficulty ordinal as stored in the XML
	// "difficulty" attribute. Converted levels use 0 (undefined).
	Difficulty int

	Width  int
	Height int
	Cells  [][]bool
}

// New creates an empty nonogram of the given size.
func New(name string, width, height int) (*Nonogram, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid nonogram size %dx%d", width, height)
	}
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}
	return &Nonogram{
		Name:   name,
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// Set marks the cell at column x, row y.
func (n *Nonogram) Set(x, y int, filled bool) {
	n.Cells[y][x] = filled
}

// Filled reports whether the cell at column x, row y is filled.
func (n *Nonogram) Filled(x, y int) bool {
	return n.Cells[y][x]
}

// MaxDimension returns the larger of width and height.
func (n *Nonogram) MaxDimension() int {
	return max(n.Width, n.Height)
}

// FilledCount returns the number of filled cells.
func (n *Nonogram) FilledCount() int {
	count := 0
	for _, row := range n.Cells {
		for _, c := range row {
			if c {
				count++
			}
		}
	}
	return count
}

// Line renders row y in the <line> text format, e.g. " x _ x ".
func (n *Nonogram) Line(y int) string {
	var sb strings.Builder
	sb.Grow(2*n.Width + 1)
	sb.WriteByte(' ')
	for _, c := range n.Cells[y] {
		if c {
			sb.WriteByte(FilledToken)
		} else {
			sb.WriteByte(EmptyToken)
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// String draws the grid with one text line per row, for debug output.
func (n *Nonogram) String() string {
	var sb strings.Builder
	for _, row := range n.Cells {
		for _, c := range row {
			if c {
				sb.WriteString("XX")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// parseLine parses the text of a <line> element into a row of cells.
func parseLine(text string, width int) ([]bool, error) {
	tokens := strings.Fields(text)
	if len(tokens) != width {
		return nil, fmt.Errorf("line has %d columns, want %d", len(tokens), width)
	}
	row := make([]bool, width)
	for i, tok := range tokens {
		if len(tok) != 1 {
			return nil, fmt.Errorf("invalid cell token %q", tok)
		}
		switch tok[0] {
		case FilledToken:
			row[i] = true
		case EmptyToken:
			row[i] = false
		default:
			return nil, fmt.Errorf("invalid cell token %q", tok)
		}
	}
	return row, nil
}
