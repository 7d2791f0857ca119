// Package imaging provides the raster access used by the converters.
//
// This package loads images from disk, reduces pixels to integer samples for
// the grid detector, and renders nonograms back into puzzle sheet images for
// previews. All operations use a coordinate system where (0,0) is at the
// top-left corner, X increases rightward, and Y increases downward.
//
// # Samples
//
// The detector compares pixels as plain integers. A Sampler produces them in
// one of several modes:
//   - Palette index for indexed-colour images (GIF). The source puzzle corpus
//     is GIF, and its palettes order entries from dark to light.
//   - Luma: 8-bit gray from the standard BT.601 weights.
//   - Lightness: CIE L* scaled to 0-255, for colour renderings where luma
//     misorders hues.
//
// # Sheets
//
// RenderSheet draws a puzzle the way the scanned sheets look: a blank corner,
// clue bands with digits, and the playing field with one pixel grid lines
// closing every cell at its right and bottom edge. The detector reads these
// sheets back exactly, which the tests rely on.
//
// # Error Handling
//
// Load wraps ErrImageOpen for unreadable or undecodable files. Sampling never
// fails; coordinates outside the image read as 0.
package imaging
