package gridtable

const (
	// DefaultSize is the number of rows and columns of a table
	// constructed without explicit dimensions
	DefaultSize = 4

	// none marks a lookup slot whose cell holds no value
	none = -1
)

// flatten computes the 1d cell id of a 2d position
func (t *Table[V]) flatten(row, col int) int {
	return row*t.cols + col
}

// unflatten recovers the 2d position encoded by a cell id
func (t *Table[V]) unflatten(id int) (row, col int) {
	return id / t.cols, id % t.cols
}

// inBounds reports whether the position lies inside the table bounds
func (t *Table[V]) inBounds(row, col int) bool {
	return row >= 0 && row < t.rows && col >= 0 && col < t.cols
}
