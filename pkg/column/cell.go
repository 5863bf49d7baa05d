package column

import "fmt"

// Cell is a value that may be missing. Valid is false for a missing cell, in
// which case Value holds the zero value of T.
type Cell[T any] struct {
	Value T
	Valid bool
}

// Some returns a present cell holding v.
func Some[T any](v T) Cell[T] {
	return Cell[T]{Value: v, Valid: true}
}

// None returns a missing cell.
func None[T any]() Cell[T] {
	return Cell[T]{}
}

// String renders the cell, "NA" when missing.
func (c Cell[T]) String() string {
	if !c.Valid {
		return "NA"
	}
	return fmt.Sprint(c.Value)
}
