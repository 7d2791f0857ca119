package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClues(t *testing.T) {
	n := mustPattern(t, "c",
		"##.#.",
		".....",
		"#####",
		"#...#",
	)

	assert.Equal(t, []int{2, 1}, n.RowClues(0))
	assert.Equal(t, []int{0}, n.RowClues(1))
	assert.Equal(t, []int{5}, n.RowClues(2))
	assert.Equal(t, []int{1, 1}, n.RowClues(3))

	assert.Equal(t, []int{1, 2}, n.ColumnClues(0))
	assert.Equal(t, []int{1, 1}, n.ColumnClues(1))
	assert.Equal(t, []int{1}, n.ColumnClues(2))
	assert.Equal(t, []int{1, 1}, n.ColumnClues(3))
	assert.Equal(t, []int{2}, n.ColumnClues(4))

	assert.Equal(t, 2, n.RowCaptionWidth())
	assert.Equal(t, 2, n.ColumnCaptionHeight())
}
