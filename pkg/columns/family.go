package columns

import (
	"github.com/mesh-intelligence/tabula/pkg/column"
)

// Family describes one column family: how its values order, print, parse
// and project. A Family is immutable and safe to share between columns.
type Family[T any] struct {
	name     string
	byteSize int
	numeric  bool

	// sentinel is what Get returns for a missing row.
	sentinel T
	// isSentinel, when set, marks values that Append stores as missing.
	isSentinel func(T) bool

	compare  column.Ordering[T]
	format   func(T) string // display form
	unformat func(T) string // round-trippable form
	parse    func(string) (T, error)
	double   func(T) float64
	bytes    func(T) []byte

	// missing lists the strings the default parser reads as missing;
	// empty means column.DefaultMissingValues.
	missing    []string
	parser     column.Parser[T]
	categories []string
}

func (f *Family[T]) init() *Family[T] {
	if f.unformat == nil {
		f.unformat = f.format
	}
	f.parser = column.NewParser(f.parse, f.missing...)
	return f
}

// Name returns the registry name of the family.
func (f *Family[T]) Name() string { return f.name }

// ByteSize returns the width of AsBytes.
func (f *Family[T]) ByteSize() int { return f.byteSize }

// Numeric reports whether GetDouble yields the value itself.
func (f *Family[T]) Numeric() bool { return f.numeric }

// String returns the family name.
func (f *Family[T]) String() string { return f.name }

// Ordering returns the family's total order.
func (f *Family[T]) Ordering() column.Ordering[T] { return f.compare }

// Parser returns the default parser: the family's conversion with
// column.DefaultMissingValues as missing tokens. Text families (STRING and
// CATEGORY) read only "" as missing, so every stored value parses back to
// itself.
func (f *Family[T]) Parser() column.Parser[T] { return f.parser }

// ParserWith returns a parser that treats the given strings as missing.
func (f *Family[T]) ParserWith(missing ...string) column.Parser[T] {
	return column.NewParser(f.parse, missing...)
}

// Categories returns the configured categories of a CATEGORY family, in
// order, and nil for every other family.
func (f *Family[T]) Categories() []string {
	return append([]string(nil), f.categories...)
}

// Create returns an empty column of this family.
func (f *Family[T]) Create(name string) column.Column[T] {
	return newDense(f, name, 0)
}

// CreateAny is Create without the element type.
func (f *Family[T]) CreateAny(name string) column.Any {
	return newDense(f, name, 0)
}

// New returns a column holding values. Values equal to the family's
// missing sentinel are stored as missing.
func (f *Family[T]) New(name string, values ...T) *Dense[T] {
	d := newDense(f, name, len(values))
	for _, v := range values {
		d.Append(v)
	}
	return d
}

// Parse returns a column built from string cells with the default parser.
func (f *Family[T]) Parse(name string, cells ...string) (*Dense[T], error) {
	d := newDense(f, name, len(cells))
	for _, s := range cells {
		if err := d.AppendCell(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (f *Family[T]) missingValue(v T) bool {
	return f.isSentinel != nil && f.isSentinel(v)
}
