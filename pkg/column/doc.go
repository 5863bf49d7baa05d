// Package column defines the generic column contract and the library of
// type-agnostic algorithms built on top of it.
//
// A column is a named, typed, ordered sequence of rows, each holding either a
// value of T or an explicit missing marker. Concrete families (see package
// columns) own the storage and the ordering; everything else in this package
// is written once against a small set of primitives:
//
//	Size, Get, IsMissing, Ordering, EmptyCopy, Append, AppendMissing, AppendCell
//
// The algorithms are exposed both as free functions (Lag, Min, FillMissing, ...)
// and as methods of Base, which concrete columns embed. A concrete column
// overrides a default simply by declaring the method itself; overrides are
// expected to change cost, never results.
//
// Columns are not safe for concurrent mutation. Every transformation returns
// a column with its own storage.
package column
