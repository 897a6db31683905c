package gridtable

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	// ErrOutOfRange is returned when a position lies outside the table bounds
	ErrOutOfRange = errors.New("gridtable: position out of range")

	// ErrNotFound is returned when an in-bounds cell holds no value
	ErrNotFound = errors.New("gridtable: no value at position")
)

type (
	// Position is the (row, column) coordinate of a table cell
	Position struct {
		Row, Col int
	}

	// Table is a sparse two dimensional container mapping (row, column)
	// positions to values of type V. Lookup, insertion and erasure are O(1);
	// iteration visits only the populated cells. Values are kept in a dense
	// store with no gaps, so erasing a cell may relocate another cell's value
	// internally.
	//
	// A Table is not safe for concurrent use; callers needing shared access
	// must synchronize externally.
	Table[V any] struct {
		cells    []V   // dense store of present values, in arbitrary order
		backRefs []int // backRefs[i] is the flattened cell id owning cells[i]
		lookup   []int // cell id -> index into cells, or none
		rows     int
		cols     int
	}
)

// New returns an empty table with an optional size
//
//	New[V]()     -> DefaultSize x DefaultSize
//	New[V](n)    -> n x n
//	New[V](r, c) -> r x c
//
// New panics if a dimension is negative or more than two are given.
func New[V any](dims ...int) *Table[V] {
	rows, cols := DefaultSize, DefaultSize
	switch len(dims) {
	case 0:
	case 1:
		rows, cols = dims[0], dims[0]
	case 2:
		rows, cols = dims[0], dims[1]
	default:
		panic("gridtable: New takes at most two dimensions")
	}
	return newTable[V](rows, cols)
}

func newTable[V any](rows, cols int) *Table[V] {
	if rows < 0 || cols < 0 {
		panic("gridtable: negative table dimensions")
	}
	t := &Table[V]{
		rows:   rows,
		cols:   cols,
		lookup: make([]int, rows*cols),
	}
	for i := range t.lookup {
		t.lookup[i] = none
	}
	return t
}

// Size returns the total number of cells of the table, rows * cols
func (t *Table[V]) Size() int {
	return t.rows * t.cols
}

// Dimensions returns the dimensions of the table, (rows, cols)
func (t *Table[V]) Dimensions() (rows, cols int) {
	return t.rows, t.cols
}

// Count returns the number of values stored in the table
func (t *Table[V]) Count() int {
	return len(t.cells)
}

// Empty reports whether the table stores no values
func (t *Table[V]) Empty() bool {
	return len(t.cells) == 0
}

// Contains reports whether the cell at the given position holds a value
// Positions outside the table bounds are reported as not contained
func (t *Table[V]) Contains(row, col int) bool {
	return t.inBounds(row, col) && t.lookup[t.flatten(row, col)] != none
}

// Get returns a pointer to the value at the given position, or nil if the
// cell is empty or the position lies outside the table bounds
// The pointer is valid only until the next mutating call on the table
func (t *Table[V]) Get(row, col int) *V {
	if !t.inBounds(row, col) {
		return nil
	}
	i := t.lookup[t.flatten(row, col)]
	if i == none {
		return nil
	}
	return &t.cells[i]
}

// At returns the value at the given position
// It returns ErrNotFound for an empty cell and ErrOutOfRange for a position
// outside the table bounds
func (t *Table[V]) At(row, col int) (V, error) {
	var zero V
	if !t.inBounds(row, col) {
		return zero, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	i := t.lookup[t.flatten(row, col)]
	if i == none {
		return zero, fmt.Errorf("%w: (%d, %d)", ErrNotFound, row, col)
	}
	return t.cells[i], nil
}

// AtElse returns the value at the given position, or the fallback if the
// cell is empty. An empty cell is never an error; a position outside the
// table bounds still returns ErrOutOfRange
func (t *Table[V]) AtElse(row, col int, fallback V) (V, error) {
	if !t.inBounds(row, col) {
		return fallback, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	i := t.lookup[t.flatten(row, col)]
	if i == none {
		return fallback, nil
	}
	return t.cells[i], nil
}

// Set stores a value in the cell at the given position, overwriting any
// value already present, and returns a pointer to the stored value
// Overwriting never grows the dense store
// The pointer is valid only until the next mutating call on the table
func (t *Table[V]) Set(row, col int, value V) (*V, error) {
	if !t.inBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return t.put(t.flatten(row, col), value), nil
}

// Emplace stores the value produced by the given constructor in the cell at
// the given position. The constructor is called exactly once. When the cell
// is already populated the constructed value is assigned into the existing
// slot; the previous value is discarded, not reused
// The returned pointer is valid only until the next mutating call
func (t *Table[V]) Emplace(row, col int, construct func() V) (*V, error) {
	if !t.inBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return t.put(t.flatten(row, col), construct()), nil
}

// put stores a value for a flattened cell id, which must be in bounds
func (t *Table[V]) put(id int, value V) *V {
	if i := t.lookup[id]; i != none {
		t.cells[i] = value
		return &t.cells[i]
	}
	t.lookup[id] = len(t.cells)
	t.cells = append(t.cells, value)
	t.backRefs = append(t.backRefs, id)
	return &t.cells[len(t.cells)-1]
}

// Erase removes the value stored in the cell at the given position
// It returns ErrNotFound if the cell is already empty and ErrOutOfRange for
// a position outside the table bounds
func (t *Table[V]) Erase(row, col int) error {
	if !t.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	id := t.flatten(row, col)
	i := t.lookup[id]
	if i == none {
		return fmt.Errorf("%w: (%d, %d)", ErrNotFound, row, col)
	}

	moved := t.swapAndErase(i)
	t.lookup[id] = none
	if moved != none {
		t.lookup[moved] = i
	}
	return nil
}

// swapAndErase removes dense slot i by moving the last element into it and
// shrinking the store by one, keeping cells and backRefs in lockstep
// It returns the cell id of the element moved into slot i, or none when i
// was the last slot
func (t *Table[V]) swapAndErase(i int) int {
	last := len(t.cells) - 1
	t.cells[i] = t.cells[last]
	t.backRefs[i] = t.backRefs[last]

	var zero V
	t.cells[last] = zero // let the backing array drop its reference
	t.cells = t.cells[:last]
	t.backRefs = t.backRefs[:last]

	if i == last {
		return none
	}
	return t.backRefs[i]
}

// SetSize changes the dimensions of the table, keeping every stored value
// whose position lies inside the new bounds and silently dropping the rest
// The cost is linear in Count(), not in Size()
// SetSize panics if a dimension is negative
func (t *Table[V]) SetSize(rows, cols int) {
	fresh := newTable[V](rows, cols)
	for i, id := range t.backRefs {
		row, col := t.unflatten(id)
		if row < rows && col < cols {
			fresh.put(fresh.flatten(row, col), t.cells[i])
		}
	}
	*t = *fresh
}

// Reset discards every stored value, keeping the current dimensions
func (t *Table[V]) Reset() {
	*t = *newTable[V](t.rows, t.cols)
}

// Data returns a copy of the stored values, in unspecified order
func (t *Table[V]) Data() []V {
	return slices.Clone(t.cells)
}

// ForEach iterates over position-value pairs and executes the lambda
// provided for each such pair
// lambda must return `true` to continue iteration and `false` to break iteration
func (t *Table[V]) ForEach(lambda func(Position, V) bool) {
	for i, id := range t.backRefs {
		row, col := t.unflatten(id)
		if !lambda(Position{Row: row, Col: col}, t.cells[i]) {
			return
		}
	}
}
