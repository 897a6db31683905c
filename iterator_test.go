//go:build go1.23
// +build go1.23

package gridtable

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestIterators(t *testing.T) {
	table := New[int](4, 4)

	itemCount := 16
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			table.Set(row, col, row*4+col)
		}
	}

	t.Run("iterator", func(t *testing.T) {
		counter := 0
		for pos, value := range table.Iterator() {
			if !table.Contains(pos.Row, pos.Col) {
				t.Errorf("yielded position (%d, %d) is not populated.", pos.Row, pos.Col)
			} else if value != pos.Row*4+pos.Col {
				t.Error("incorrect position/value pairs.")
			}
			counter++
		}

		if counter != itemCount {
			t.Error("iterated item count did not match.")
		}
	})

	t.Run("values", func(t *testing.T) {
		collected := make([]int, 0, itemCount)
		for value := range table.Values() {
			collected = append(collected, value)
		}

		want := make([]int, 0, itemCount)
		for i := 0; i < itemCount; i++ {
			want = append(want, i)
		}
		slices.Sort(collected)
		if !slices.Equal(collected, want) {
			t.Errorf("iterated values do not match the stored values: %v.", collected)
		}
	})

	t.Run("early_stop", func(t *testing.T) {
		counter := 0
		for range table.Values() {
			counter++
			break
		}
		if counter != 1 {
			t.Error("breaking out of the range loop should stop the iteration.")
		}
	})

	t.Run("restart", func(t *testing.T) {
		seq := table.Values()
		for _, pass := range []string{"first", "second"} {
			counter := 0
			for range seq {
				counter++
			}
			if counter != itemCount {
				t.Errorf("%s pass visited %d items.", pass, counter)
			}
		}
	})
}
