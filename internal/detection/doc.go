// Package detection recognizes nonogram puzzle sheets in raster images.
//
// The input is a scanned or rendered puzzle sheet: a header corner, clue
// bands above and left of the playing field, and a playing field whose cells
// are either dark (filled) or light (empty). The output is the solved grid as
// a nonogram.Nonogram.
//
// # Pipeline
//
// Recognition runs in three steps:
//
//  1. DetectGeometry: find the cell pitch along one probe scanline, then the
//     number of header rows and columns, and from those the playing field size.
//  2. Threshold: sample one representative pixel of every playing field cell
//     and take half the spread between the darkest and lightest sample.
//  3. Classify: decide filled/empty for every cell with a FillPolicy.
//
// Recognize chains the three steps.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Cell (col, row) of the playing field is sampled at
// (Origin + (Margin + index) * Pitch) on each axis.
//
// # Probe Parameters
//
// The detector needs no per-image configuration. Its fixed parameters are
// collected in Options:
//   - ProbeOffset (7): row of the pitch probe and offset of every sample point
//     inside its cell. It must fall inside the first header cell and clear of
//     grid lines, which holds for the puzzle corpus where cells are at least
//     nine pixels wide.
//   - MaxProbe (50): the pitch probe gives up after this many pixels, so
//     images without a grid fail quickly instead of scanning a whole row.
//   - MaxPlayable (50): the largest playing field side accepted. Larger
//     results come from misdetected pitches.
//
// # Limitations
//
// The detector assumes axis-aligned, unscaled, non-antialiased sheets with a
// blank header corner. By default the vertical pitch is taken from the same
// horizontal probe as the horizontal pitch, which is only correct for square
// cells; set IndependentAxes to probe a column as well.
package detection
