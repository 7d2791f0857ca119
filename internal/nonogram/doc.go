// Package nonogram holds the level model produced by the converters and its
// on-disk representation.
//
// A Nonogram is a rectangular grid of filled/empty cells. It is serialized to
// the FreeNono XML level format:
//
//	<?xml version="1.0" encoding="UTF-8" standalone="no"?>
//	<FreeNono>
//	  <Nonograms>
//	    <Nonogram desc="..." difficulty="0" id="" name="NAME" height="H" width="W">
//	      <line> x _ x </line>
//	    </Nonogram>
//	  </Nonograms>
//	</FreeNono>
//
// Each <line> element holds one row as single-character tokens separated by
// spaces: "x" for a filled cell and "_" for an empty one.
//
// # Difficulty Tiers
//
// Converted levels are sorted into output subdirectories by their largest
// dimension (see ClassifyTier). A Histogram accumulates how many levels of
// each size a batch run produced.
package nonogram
