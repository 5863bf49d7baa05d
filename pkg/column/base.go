package column

import (
	"iter"

	"github.com/mesh-intelligence/tabula/pkg/rolling"
	"github.com/mesh-intelligence/tabula/pkg/selection"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

// Base supplies the default algorithms of Column to a concrete column that
// embeds it. Create it with NewBase, passing the outer column, so that every
// default calls back into the outer column's overrides:
//
//	type MyColumn struct {
//		column.Base[int]
//		...
//	}
//
//	func NewMyColumn(name string) *MyColumn {
//		c := &MyColumn{...}
//		c.Base = column.NewBase[int](c)
//		return c
//	}
//
// The zero Base is not usable.
type Base[T any] struct {
	self Column[T]
}

// NewBase returns a Base bound to self.
func NewBase[T any](self Column[T]) Base[T] {
	return Base[T]{self: self}
}

func (b Base[T]) IsEmpty() bool { return b.self.Size() == 0 }

func (b Base[T]) ByteSize() int { return b.self.Type().ByteSize() }

func (b Base[T]) MissingRows() *selection.Selection { return MissingRows(b.self) }

func (b Base[T]) NonMissingRows() *selection.Selection { return NonMissingRows(b.self) }

func (b Base[T]) CountMissing() int { return CountMissing(b.self) }

// CountUnique is Unique().Size().
func (b Base[T]) CountUnique() int { return b.self.Unique().Size() }

func (b Base[T]) AsObjectArray() []any { return AsObjectArray(b.self) }

func (b Base[T]) AsDoubleArray() []float64 { return AsDoubleArray(b.self) }

func (b Base[T]) Title() string { return Title(b.self) }

func (b Base[T]) ColumnWidth() int { return ColumnWidth(b.self) }

func (b Base[T]) Print() string { return Print(b.self) }

func (b Base[T]) Copy() Column[T] { return Copy(b.self) }

func (b Base[T]) RowComparator() RowComparator { return NewRowComparator(b.self) }

// Where defaults to Subset.
func (b Base[T]) Where(sel *selection.Selection) (Column[T], error) { return Subset(b.self, sel) }

func (b Base[T]) Subset(sel *selection.Selection) (Column[T], error) { return Subset(b.self, sel) }

func (b Base[T]) RemoveMissing() Column[T] { return RemoveMissing(b.self) }

func (b Base[T]) Unique() Column[T] { return Unique(b.self) }

func (b Base[T]) Lag(n int) Column[T] { return Lag(b.self, n) }

func (b Base[T]) Lead(n int) Column[T] { return Lead(b.self, n) }

func (b Base[T]) InRange(start, end int) (Column[T], error) { return InRange(b.self, start, end) }

func (b Base[T]) Rows(indices ...int) (Column[T], error) { return Rows(b.self, indices...) }

func (b Base[T]) First(n int) (Column[T], error) { return First(b.self, n) }

func (b Base[T]) Last(n int) (Column[T], error) { return Last(b.self, n) }

func (b Base[T]) SampleN(n int) (Column[T], error) { return SampleNWith(b.self, nil, n) }

func (b Base[T]) SampleX(proportion float64) (Column[T], error) {
	return SampleXWith(b.self, nil, proportion)
}

func (b Base[T]) Min(other Column[T]) (Column[T], error) { return Min(b.self, other) }

func (b Base[T]) Max(other Column[T]) (Column[T], error) { return Max(b.self, other) }

func (b Base[T]) FillMissing(v T) (Column[T], error) { return FillMissing(b.self, v) }

func (b Base[T]) FillMissingFrom(other Column[T]) (Column[T], error) {
	return FillMissingFrom(b.self, other)
}

func (b Base[T]) SortAscending() { Sort(b.self, b.self.RowComparator()) }

func (b Base[T]) SortDescending() { Sort(b.self, b.self.RowComparator().Reverse()) }

func (b Base[T]) Contains(v T) bool { return Contains(b.self, v) }

func (b Base[T]) ContainsCell(c Cell[T]) bool { return ContainsCell(b.self, c) }

// DoWithEach calls fn with Get(i) for every row, missing rows included.
func (b Base[T]) DoWithEach(fn func(T)) {
	for _, v := range All(b.self) {
		fn(v)
	}
}

func (b Base[T]) All() iter.Seq2[int, T] { return All(b.self) }

func (b Base[T]) AsList() []Cell[T] { return AsList(b.self) }

func (b Base[T]) Rolling(window int) *rolling.Column { return Rolling(b.self, window) }

func (b Base[T]) Summary() *table.Table { return Summary(b.self) }
