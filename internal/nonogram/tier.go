package nonogram

import (
	"fmt"
	"io"
	"sort"
)

// Tier is a coarse size class used to pick an output subdirectory.
type Tier string

const (
	TierSmall        Tier = "small"
	TierMedium       Tier = "medium"
	TierLarge        Tier = "large"
	TierUnclassified Tier = ""
)

// Tier breakpoints on the largest puzzle dimension.
const (
	smallLimit  = 20
	mediumLimit = 30
	largeLimit  = 50
)

// ClassifyTier maps the largest dimension of a puzzle to its tier.
func ClassifyTier(maxDimension int) Tier {
	switch {
	case maxDimension < smallLimit:
		return TierSmall
	case maxDimension < mediumLimit:
		return TierMedium
	case maxDimension < largeLimit:
		return TierLarge
	default:
		return TierUnclassified
	}
}

// Histogram counts converted puzzles by their largest dimension.
//
// It is a plain value owned by whoever runs a batch; the zero value is not
// usable, create one with NewHistogram.
type Histogram struct {
	counts map[int]int
}

// Bucket is one histogram entry.
type Bucket struct {
	Size  int `yaml:"size" json:"size"`
	Count int `yaml:"count" json:"count"`
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[int]int)}
}

// Add records one puzzle and returns its tier.
func (h *Histogram) Add(maxDimension int) Tier {
	h.counts[maxDimension]++
	return ClassifyTier(maxDimension)
}

// Count returns the number of puzzles recorded for a dimension.
func (h *Histogram) Count(maxDimension int) int {
	return h.counts[maxDimension]
}

// Total returns the number of recorded puzzles.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Buckets returns all entries sorted by size.
func (h *Histogram) Buckets() []Bucket {
	buckets := make([]Bucket, 0, len(h.counts))
	for size, count := range h.counts {
		buckets = append(buckets, Bucket{Size: size, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Size < buckets[j].Size
	})
	return buckets
}

// WriteTo prints one "size: count" line per bucket.
func (h *Histogram) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, b := range h.Buckets() {
		n, err := fmt.Fprintf(w, "%d: %d\n", b.Size, b.Count)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
