package column

// Ordering is a total order over T. It returns a negative number when a < b,
// a positive number when a > b and zero when they are equal.
type Ordering[T any] func(a, b T) int

// Reverse returns the inverse order.
func (o Ordering[T]) Reverse() Ordering[T] {
	return func(a, b T) int { return o(b, a) }
}

// RowComparator compares two rows of one column by position, so a sort can
// permute row indices without materialising values.
type RowComparator func(i, j int) int

// Reverse returns the inverse comparator.
func (rc RowComparator) Reverse() RowComparator {
	return func(i, j int) int { return rc(j, i) }
}

// NewRowComparator returns the comparator used by Base: a missing row orders
// before every value, two missing rows are equal, otherwise c's Ordering
// decides.
func NewRowComparator[T any](c Column[T]) RowComparator {
	order := c.Ordering()
	return func(i, j int) int {
		mi, mj := c.IsMissing(i), c.IsMissing(j)
		switch {
		case mi && mj:
			return 0
		case mi:
			return -1
		case mj:
			return 1
		}
		return order(c.Get(i), c.Get(j))
	}
}
