package nonogram

// RowClues returns the run lengths of filled cells in row y, left to right.
// A row without filled cells has the single clue 0.
func (n *Nonogram) RowClues(y int) []int {
	return runs(n.Width, func(i int) bool { return n.Cells[y][i] })
}

// ColumnClues returns the run lengths of filled cells in column x, top to
// bottom. A column without filled cells has the single clue 0.
func (n *Nonogram) ColumnClues(x int) []int {
	return runs(n.Height, func(i int) bool { return n.Cells[i][x] })
}

// RowCaptionWidth is the largest number of clues of any row.
func (n *Nonogram) RowCaptionWidth() int {
	widest := 0
	for y := 0; y < n.Height; y++ {
		widest = max(widest, len(n.RowClues(y)))
	}
	return widest
}

// ColumnCaptionHeight is the largest number of clues of any column.
func (n *Nonogram) ColumnCaptionHeight() int {
	tallest := 0
	for x := 0; x < n.Width; x++ {
		tallest = max(tallest, len(n.ColumnClues(x)))
	}
	return tallest
}

func runs(length int, filled func(int) bool) []int {
	var result []int
	run := 0
	for i := 0; i < length; i++ {
		if filled(i) {
			run++
			continue
		}
		if run > 0 {
			result = append(result, run)
			run = 0
		}
	}
	if run > 0 {
		result = append(result, run)
	}
	if len(result) == 0 {
		return []int{0}
	}
	return result
}
