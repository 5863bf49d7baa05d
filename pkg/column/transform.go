package column

import (
	"math"
	"math/rand/v2"

	"github.com/mesh-intelligence/tabula/pkg/selection"
)

// Subset is the type-agnostic Where: it appends the display string of every
// selected row to an empty copy, re-parsing each one. O(len(sel)) parses, and
// lossy for families whose display form drops detail; concrete columns
// override Where with a direct copy.
func Subset[T any](c Column[T], sel *selection.Selection) (Column[T], error) {
	if err := checkSelection(sel, c.Size()); err != nil {
		return nil, err
	}
	out := c.EmptyCopyN(sel.Len())
	for row := range sel.Values() {
		if err := out.AppendCell(c.GetString(row)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CheckSelection returns an *IndexError for the first selected row outside
// [0, size). Concrete Where overrides call it before copying.
func CheckSelection(sel *selection.Selection, size int) error {
	return checkSelection(sel, size)
}

func checkSelection(sel *selection.Selection, size int) error {
	for row := range sel.Values() {
		if err := CheckRow(row, size); err != nil {
			return err
		}
	}
	return nil
}

// gather copies the given rows into an empty copy of c through Append and
// AppendMissing. The rows must be in range.
func gather[T any](c Column[T], rows []int) Column[T] {
	out := c.EmptyCopyN(len(rows))
	for _, row := range rows {
		if c.IsMissing(row) {
			out.AppendMissing()
			continue
		}
		out.Append(c.Get(row))
	}
	return out
}

// InRange returns rows [start, end). A reversed or empty range is an
// ErrArgument; bounds outside the column are an *IndexError.
func InRange[T any](c Column[T], start, end int) (Column[T], error) {
	if start >= end {
		return nil, argumentError("range start %d must be less than end %d", start, end)
	}
	if start < 0 {
		return nil, &IndexError{Row: start, Size: c.Size()}
	}
	if end > c.Size() {
		return nil, &IndexError{Row: end - 1, Size: c.Size()}
	}
	return c.Where(selection.WithRange(start, end))
}

// Rows returns the rows at the given indices, in the given order. Repeated
// indices are kept once.
func Rows[T any](c Column[T], indices ...int) (Column[T], error) {
	for _, i := range indices {
		if err := CheckRow(i, c.Size()); err != nil {
			return nil, err
		}
	}
	return c.Where(selection.With(indices...))
}

// First returns the first n rows, n clamped to the column size.
func First[T any](c Column[T], n int) (Column[T], error) {
	return c.InRange(0, min(n, c.Size()))
}

// Last returns the last n rows, n clamped to the column size.
func Last[T any](c Column[T], n int) (Column[T], error) {
	size := c.Size()
	n = min(n, size)
	return c.InRange(size-n, size)
}

// SampleNWith returns n rows drawn without replacement using r, in draw
// order. n must satisfy 0 < n < Size. A nil r uses the process-wide source.
func SampleNWith[T any](c Column[T], r *rand.Rand, n int) (Column[T], error) {
	if n <= 0 || n >= c.Size() {
		return nil, argumentError("sample size %d must be greater than 0 and less than %d", n, c.Size())
	}
	return c.Where(selection.SelectNRowsAtRandomFrom(r, n, c.Size()))
}

// SampleXWith samples round(Size*proportion) rows using r. The proportion
// must be within [0, 1]; a sample of zero rows is an empty column.
func SampleXWith[T any](c Column[T], r *rand.Rand, proportion float64) (Column[T], error) {
	if math.IsNaN(proportion) || proportion < 0 || proportion > 1 {
		return nil, argumentError("sample proportion %v must be between 0 and 1", proportion)
	}
	n := int(math.Round(float64(c.Size()) * proportion))
	return c.Where(selection.SelectNRowsAtRandomFrom(r, n, c.Size()))
}
