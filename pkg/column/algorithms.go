package column

import (
	"iter"
	"slices"

	"github.com/mesh-intelligence/tabula/pkg/selection"
)

// Lag returns a column of the same size where row i holds row i-n of c, and
// rows with no source are missing. n may be negative or exceed the size.
// O(Size).
func Lag[T any](c Column[T], n int) Column[T] {
	size := c.Size()
	n = max(-size, min(n, size))
	out := c.EmptyCopyN(size)
	for i := range size {
		j := i - n
		if j < 0 || j >= size || c.IsMissing(j) {
			out.AppendMissing()
			continue
		}
		out.Append(c.Get(j))
	}
	return out
}

// Lead is Lag(c, -n).
func Lead[T any](c Column[T], n int) Column[T] {
	return Lag(c, -n)
}

// Min returns the element-wise minimum of c and other under c's Ordering.
// A row missing in either operand is missing in the result; ties keep c's
// value. O(Size).
func Min[T any](c, other Column[T]) (Column[T], error) {
	return pick(c, other, func(cmp int) bool { return cmp <= 0 })
}

// Max returns the element-wise maximum of c and other; see Min.
func Max[T any](c, other Column[T]) (Column[T], error) {
	return pick(c, other, func(cmp int) bool { return cmp >= 0 })
}

func pick[T any](c, other Column[T], keepOwn func(int) bool) (Column[T], error) {
	if c.Size() != other.Size() {
		return nil, argumentError("column sizes differ: %d and %d", c.Size(), other.Size())
	}
	order := c.Ordering()
	out := c.EmptyCopyN(c.Size())
	for i := range c.Size() {
		if c.IsMissing(i) || other.IsMissing(i) {
			out.AppendMissing()
			continue
		}
		a, b := c.Get(i), other.Get(i)
		if keepOwn(order(a, b)) {
			out.Append(a)
		} else {
			out.Append(b)
		}
	}
	return out, nil
}

// FillMissingFrom returns a copy of c whose missing rows take the unformatted
// string of the same row in other. Every row goes through AppendCell, so the
// result is parsed exactly as text input would be. Sizes must match.
func FillMissingFrom[T any](c, other Column[T]) (Column[T], error) {
	if c.Size() != other.Size() {
		return nil, argumentError("column sizes differ: %d and %d", c.Size(), other.Size())
	}
	out := c.EmptyCopyN(c.Size())
	for i := range c.Size() {
		src := c
		if c.IsMissing(i) {
			src = other
		}
		if err := out.AppendCell(src.GetUnformattedString(i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FillMissing returns a copy of c with every missing row replaced by v.
func FillMissing[T any](c Column[T], v T) (Column[T], error) {
	out := c.EmptyCopyN(c.Size())
	for i := range c.Size() {
		if c.IsMissing(i) {
			out.Append(v)
			continue
		}
		if err := out.AppendCell(c.GetUnformattedString(i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RemoveMissing returns the non-missing rows of c, in order.
func RemoveMissing[T any](c Column[T]) Column[T] {
	return gather(c, c.NonMissingRows().Rows())
}

// Unique returns each distinct value of c once; all missing rows count as a
// single value. The result keeps first-appearance order, though callers must
// not rely on it. O(Size log Size).
func Unique[T any](c Column[T]) Column[T] {
	rc := c.RowComparator()
	rows := identity(c.Size())
	slices.SortStableFunc(rows, rc)
	keep := make([]int, 0, len(rows))
	for k, row := range rows {
		if k == 0 || rc(rows[k-1], row) != 0 {
			keep = append(keep, row)
		}
	}
	slices.Sort(keep)
	return gather(c, keep)
}

// Sort reorders c in place by rc with a stable sort. The sorted rows are
// built first, so c is replaced in one step.
func Sort[T any](c Column[T], rc RowComparator) {
	rows := identity(c.Size())
	slices.SortStableFunc(rows, rc)
	sorted := gather(c, rows)
	c.Clear()
	c.AppendColumn(sorted)
}

// Copy returns an independent copy of c built through AppendColumn.
func Copy[T any](c Column[T]) Column[T] {
	out := c.EmptyCopyN(c.Size())
	out.AppendColumn(c)
	return out
}

// Contains reports whether a non-missing row of c equals v under c's
// Ordering. Linear scan.
func Contains[T any](c Column[T], v T) bool {
	order := c.Ordering()
	for i := range c.Size() {
		if !c.IsMissing(i) && order(v, c.Get(i)) == 0 {
			return true
		}
	}
	return false
}

// ContainsCell is Contains for a cell; a missing cell matches any missing row.
func ContainsCell[T any](c Column[T], cell Cell[T]) bool {
	if !cell.Valid {
		return c.CountMissing() > 0
	}
	return Contains(c, cell.Value)
}

// All iterates over every row of c, yielding Get(i), missing rows included.
func All[T any](c Column[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range c.Size() {
			if !yield(i, c.Get(i)) {
				return
			}
		}
	}
}

// AsList returns every row as a Cell.
func AsList[T any](c Column[T]) []Cell[T] {
	out := make([]Cell[T], c.Size())
	for i := range out {
		if !c.IsMissing(i) {
			out[i] = Some(c.Get(i))
		}
	}
	return out
}

// MissingRows returns the rows of c that are missing.
func MissingRows(c Any) *selection.Selection {
	return rowsWhere(c, true)
}

// NonMissingRows returns the rows of c that hold a value.
func NonMissingRows(c Any) *selection.Selection {
	return rowsWhere(c, false)
}

func rowsWhere(c Any, missing bool) *selection.Selection {
	rows := make([]int, 0)
	for i := range c.Size() {
		if c.IsMissing(i) == missing {
			rows = append(rows, i)
		}
	}
	return selection.With(rows...)
}

// CountMissing counts the missing rows of c. O(Size).
func CountMissing(c Any) int {
	n := 0
	for i := range c.Size() {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// AsObjectArray boxes every row of c, nil for missing rows.
func AsObjectArray[T any](c Column[T]) []any {
	out := make([]any, c.Size())
	for i := range out {
		if !c.IsMissing(i) {
			out[i] = c.Get(i)
		}
	}
	return out
}

// AsDoubleArray returns GetDouble for every row of c.
func AsDoubleArray(c Any) []float64 {
	out := make([]float64, c.Size())
	for i := range out {
		out[i] = c.GetDouble(i)
	}
	return out
}

func identity(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}
