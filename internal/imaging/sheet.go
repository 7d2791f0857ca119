package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/ironsheep/nonoconv/internal/nonogram"
)

// Palette indices of rendered puzzle sheets.
const (
	SheetFilled uint8 = iota // filled playable cell
	SheetBlank               // header corner without clues
	SheetGrid                // grid lines
	SheetEmpty               // empty playable cell
	SheetClue                // clue cell background
	SheetDigit               // clue digits
)

// SheetPalette is the palette of rendered sheets. Index order keeps filled
// cells darker than empty ones both by index and by luma.
var SheetPalette = color.Palette{
	color.RGBA{0, 0, 0, 255},
	color.RGBA{255, 255, 255, 255},
	color.RGBA{128, 128, 128, 255},
	color.RGBA{240, 240, 240, 255},
	color.RGBA{208, 208, 208, 255},
	color.RGBA{64, 64, 64, 255},
}

// DefaultCellSize is the cell pitch used when SheetLayout.CellSize is 0.
const DefaultCellSize = 16

// SheetLayout controls how RenderSheet lays out a puzzle.
type SheetLayout struct {
	// CellSize is the pitch in pixels, including the one pixel grid line at
	// the right and bottom edge of every cell.
	CellSize int

	// CellHeight overrides the vertical pitch. Zero means square cells.
	CellHeight int

	// MarginTop and MarginLeft are the number of header rows and columns.
	// Zero means "as many as the longest clue list needs", at least one.
	MarginTop  int
	MarginLeft int
}

// RenderSheet draws n the way printed puzzle sheets look: a blank corner,
// clue bands above and left of the playing field, and the solved field with
// one pixel grid lines.
//
// The returned image uses SheetPalette. The sheet is
// (MarginLeft+Width)*CellSize by (MarginTop+Height)*CellHeight pixels.
// Clues that do not fit into the margins are dropped; digits are only drawn
// when the cell is large enough to hold them.
func RenderSheet(n *nonogram.Nonogram, layout SheetLayout) (*image.Paletted, error) {
	pitch := layout.CellSize
	if pitch == 0 {
		pitch = DefaultCellSize
	}
	vpitch := layout.CellHeight
	if vpitch == 0 {
		vpitch = pitch
	}
	if pitch < 3 || vpitch < 3 {
		return nil, fmt.Errorf("cell size %dx%d too small", pitch, vpitch)
	}
	mt := layout.MarginTop
	if mt == 0 {
		mt = max(1, n.ColumnCaptionHeight())
	}
	ml := layout.MarginLeft
	if ml == 0 {
		ml = max(1, n.RowCaptionWidth())
	}
	if mt < 0 || ml < 0 {
		return nil, fmt.Errorf("invalid margins %d,%d", mt, ml)
	}

	cols := ml + n.Width
	rows := mt + n.Height
	img := image.NewPaletted(image.Rect(0, 0, cols*pitch, rows*vpitch), SheetPalette)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var fill uint8
			switch {
			case cx < ml && cy < mt:
				fill = SheetBlank
			case cx < ml || cy < mt:
				fill = SheetClue
			case n.Filled(cx-ml, cy-mt):
				fill = SheetFilled
			default:
				fill = SheetEmpty
			}
			fillCell(img, cx*pitch, cy*vpitch, pitch, vpitch, fill)
		}
	}

	// Row clues are right-aligned in the left band.
	for y := 0; y < n.Height; y++ {
		clues := n.RowClues(y)
		for k := len(clues) - 1; k >= 0; k-- {
			cx := ml - (len(clues) - k)
			if cx < 0 {
				break
			}
			drawNumber(img, cx*pitch, (mt+y)*vpitch, pitch, vpitch, clues[k])
		}
	}

	// Column clues are bottom-aligned in the top band.
	for x := 0; x < n.Width; x++ {
		clues := n.ColumnClues(x)
		for k := len(clues) - 1; k >= 0; k-- {
			cy := mt - (len(clues) - k)
			if cy < 0 {
				break
			}
			drawNumber(img, (ml+x)*pitch, cy*vpitch, pitch, vpitch, clues[k])
		}
	}

	return img, nil
}

// fillCell paints one cell whose top-left pixel is (x0, y0). The last
// column and row of the cell are grid line.
func fillCell(img *image.Paletted, x0, y0, w, h int, fill uint8) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			idx := fill
			if dx == w-1 || dy == h-1 {
				idx = SheetGrid
			}
			img.SetColorIndex(x0+dx, y0+dy, idx)
		}
	}
}

// glyphs is a 3x5 pixel font for clue digits.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawNumber centres value inside the cell at (x0, y0), scaling the font up
// as far as the cell allows. Nothing is drawn if the digits do not fit.
func drawNumber(img *image.Paletted, x0, y0, w, h, value int) {
	text := strconv.Itoa(value)
	const charWidth = 4
	innerW, innerH := w-1, h-1

	textWidth := len(text)*charWidth - 1
	scale := min((innerW-2)/textWidth, (innerH-2)/5)
	if scale < 1 {
		return
	}

	x := x0 + (innerW-textWidth*scale)/2
	y := y0 + (innerH-5*scale)/2
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						img.SetColorIndex(x+col*scale+sx, y+row*scale+sy, SheetDigit)
					}
				}
			}
		}
		x += charWidth * scale
	}
}
