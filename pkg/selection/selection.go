// Package selection provides Selection, an ordered collection of distinct row
// indices used to filter and reorder columns.
//
// A Selection is not tied to any column: bounds are checked by the column
// the selection is applied to.
package selection

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Selection is an ordered collection of distinct row indices. The zero value
// is an empty selection.
type Selection struct {
	rows  []int
	index map[int]struct{} // built lazily for Contains
}

// With returns a selection holding the given indices in order. Repeated
// indices are kept only at their first position.
func With(indices ...int) *Selection {
	s := &Selection{
		rows:  make([]int, 0, len(indices)),
		index: make(map[int]struct{}, len(indices)),
	}
	for _, i := range indices {
		if _, ok := s.index[i]; ok {
			continue
		}
		s.index[i] = struct{}{}
		s.rows = append(s.rows, i)
	}
	return s
}

// WithRange returns the contiguous selection [start, end). An empty selection
// is returned when end <= start.
func WithRange(start, end int) *Selection {
	if end <= start {
		return &Selection{}
	}
	rows := make([]int, end-start)
	for i := range rows {
		rows[i] = start + i
	}
	return &Selection{rows: rows}
}

// SelectNRowsAtRandom returns n distinct indices drawn uniformly without
// replacement from [0, size), using the process-wide random source.
// The indices are in draw order, not sorted.
func SelectNRowsAtRandom(n, size int) *Selection {
	return sample(rand.IntN, n, size)
}

// SelectNRowsAtRandomFrom is SelectNRowsAtRandom with an explicit source.
// A nil r falls back to the process-wide source.
func SelectNRowsAtRandomFrom(r *rand.Rand, n, size int) *Selection {
	if r == nil {
		return SelectNRowsAtRandom(n, size)
	}
	return sample(r.IntN, n, size)
}

// sample runs a partial Fisher-Yates shuffle over [0, size) that only
// materialises the positions it touches, so the cost is O(n) not O(size).
func sample(intn func(int) int, n, size int) *Selection {
	if n > size {
		n = size
	}
	if n <= 0 {
		return &Selection{}
	}
	swapped := make(map[int]int, n)
	rows := make([]int, n)
	for i := 0; i < n; i++ {
		j := i + intn(size-i)
		vj, ok := swapped[j]
		if !ok {
			vj = j
		}
		vi, ok := swapped[i]
		if !ok {
			vi = i
		}
		swapped[j] = vi
		rows[i] = vj
	}
	return &Selection{rows: rows}
}

// Len returns the number of indices in the selection.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// IsEmpty reports whether the selection holds no indices.
func (s *Selection) IsEmpty() bool { return s.Len() == 0 }

// Get returns the i-th index of the selection. Like slice indexing it panics
// when i is outside [0, Len()), so every call on a nil selection panics.
func (s *Selection) Get(i int) int {
	if s == nil {
		panic(fmt.Sprintf("selection: index %d out of range [0:0]", i))
	}
	return s.rows[i]
}

// Rows returns a copy of the indices in selection order.
func (s *Selection) Rows() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.rows))
	copy(out, s.rows)
	return out
}

// Values iterates over the indices in selection order.
func (s *Selection) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s == nil {
			return
		}
		for _, r := range s.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Contains reports whether row is a member of the selection.
func (s *Selection) Contains(row int) bool {
	if s == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[int]struct{}, len(s.rows))
		for _, r := range s.rows {
			s.index[r] = struct{}{}
		}
	}
	_, ok := s.index[row]
	return ok
}

// Max returns the largest index in the selection and false when the
// selection is empty.
func (s *Selection) Max() (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	m := s.rows[0]
	for _, r := range s.rows[1:] {
		if r > m {
			m = r
		}
	}
	return m, true
}

// Min returns the smallest index in the selection and false when the
// selection is empty.
func (s *Selection) Min() (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	m := s.rows[0]
	for _, r := range s.rows[1:] {
		if r < m {
			m = r
		}
	}
	return m, true
}
