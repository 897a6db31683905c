//go:build go1.23
// +build go1.23

package gridtable

import "iter"

// Iterator yields every populated cell as a position-value pair, in
// unspecified order. The sequence is restartable and stable until the next
// mutating call on the table
func (t *Table[V]) Iterator() iter.Seq2[Position, V] {
	return func(yield func(pos Position, value V) bool) {
		for i, id := range t.backRefs {
			row, col := t.unflatten(id)
			if !yield(Position{Row: row, Col: col}, t.cells[i]) {
				return
			}
		}
	}
}

// Values yields every stored value, in unspecified order
func (t *Table[V]) Values() iter.Seq[V] {
	return func(yield func(value V) bool) {
		for i := range t.cells {
			if !yield(t.cells[i]) {
				return
			}
		}
	}
}
