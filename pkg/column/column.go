package column

import (
	"iter"

	"github.com/mesh-intelligence/tabula/pkg/rolling"
	"github.com/mesh-intelligence/tabula/pkg/selection"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

// ColumnType is the immutable type tag of a column family.
type ColumnType interface {
	// Name returns the registry name of the family, for example "INT".
	Name() string

	// ByteSize returns the width in bytes of one cell as produced by AsBytes.
	ByteSize() int

	// Numeric reports whether GetDouble yields the value itself rather than
	// a code or rank, which decides whether numeric statistics make sense.
	Numeric() bool
}

// Factory creates empty columns of one concrete family.
type Factory[T any] interface {
	ColumnType

	// Create returns an empty column with the given name.
	Create(name string) Column[T]

	// Parser returns the family's default string parser.
	Parser() Parser[T]
}

// AnyFactory creates empty columns without naming their element type.
// Used where the family is only known at run time.
type AnyFactory interface {
	ColumnType
	CreateAny(name string) Any
}

// Create returns an empty column of the family described by f.
func Create[T any](name string, f Factory[T]) Column[T] {
	return f.Create(name)
}

// Any is the part of the column contract that does not mention the element
// type. Heterogeneous containers and run-time dispatch work against it.
type Any interface {
	Name() string
	SetName(name string)
	Type() ColumnType

	// Size returns the number of rows, missing ones included.
	Size() int
	IsEmpty() bool

	// Clear removes every row. Name and type are kept.
	Clear()

	// IsMissing reports whether row holds no value. It panics with an
	// *IndexError when row is out of range.
	IsMissing(row int) bool

	// MissingRows returns the rows for which IsMissing holds.
	MissingRows() *selection.Selection

	// NonMissingRows returns the complement of MissingRows.
	NonMissingRows() *selection.Selection

	CountMissing() int
	CountUnique() int

	AppendMissing()

	// AppendCell parses s with the family's default parser and appends the
	// result. A missing token appends a missing row. On failure it returns a
	// *ParseError and the column is unchanged.
	AppendCell(s string) error

	// GetString returns the display form of row, "" when missing.
	GetString(row int) string

	// GetUnformattedString returns a form of row that AppendCell parses back
	// to an equal value, "" when missing.
	GetUnformattedString(row int) string

	// GetDouble returns a numeric projection of row: the value for numeric
	// families, a code or rank otherwise, NaN when no projection exists.
	GetDouble(row int) float64

	// AsBytes returns the binary form of row, ByteSize bytes wide.
	AsBytes(row int) []byte
	ByteSize() int

	// AsObjectArray returns every row boxed, nil for missing rows.
	AsObjectArray() []any
	AsDoubleArray() []float64

	Title() string
	ColumnWidth() int
	Print() string
}

// Column is the contract every concrete column family implements. Embed Base
// to inherit the default algorithms and implement the primitives.
type Column[T any] interface {
	Any

	// Get returns the value of row, or the family's sentinel when the row is
	// missing. It panics with an *IndexError when row is out of range.
	Get(row int) T

	// Set replaces the value of row. Out-of-range rows return an
	// *IndexError and leave the column unchanged.
	Set(row int, v T) error

	Append(v T)

	// AppendColumn appends every row of other, in order.
	AppendColumn(other Column[T])

	// AppendCellWith is AppendCell with an explicit parser.
	AppendCellWith(s string, p Parser[T]) error

	// EmptyCopy returns a column with the same name and type and no rows.
	EmptyCopy() Column[T]

	// EmptyCopyN is EmptyCopy with storage sized for rowSize rows.
	EmptyCopyN(rowSize int) Column[T]

	// Copy returns an independent deep copy.
	Copy() Column[T]

	// Ordering returns the total order the family defines over T.
	Ordering() Ordering[T]

	// RowComparator compares rows by position: missing rows first, then
	// by Ordering.
	RowComparator() RowComparator

	Where(sel *selection.Selection) (Column[T], error)
	Subset(sel *selection.Selection) (Column[T], error)
	RemoveMissing() Column[T]
	Unique() Column[T]

	Lag(n int) Column[T]
	Lead(n int) Column[T]

	InRange(start, end int) (Column[T], error)
	Rows(indices ...int) (Column[T], error)
	First(n int) (Column[T], error)
	Last(n int) (Column[T], error)

	SampleN(n int) (Column[T], error)
	SampleX(proportion float64) (Column[T], error)

	Min(other Column[T]) (Column[T], error)
	Max(other Column[T]) (Column[T], error)

	FillMissing(v T) (Column[T], error)
	FillMissingFrom(other Column[T]) (Column[T], error)

	SortAscending()
	SortDescending()

	Contains(v T) bool
	ContainsCell(c Cell[T]) bool
	DoWithEach(fn func(T))
	All() iter.Seq2[int, T]
	AsList() []Cell[T]

	Rolling(window int) *rolling.Column
	Summary() *table.Table
}
