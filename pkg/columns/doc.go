// Package columns provides the concrete column families: a single
// storage-owning implementation, Dense, parameterised by a Family that
// supplies ordering, formatting, parsing and projections for one element
// type.
//
// Built-in families:
//
//	STRING    string            lexicographic
//	INT       int64             numeric, missing sentinel math.MinInt64
//	FLOAT     float64           numeric, missing sentinel NaN
//	BOOL      bool              false < true
//	DATETIME  time.Time         chronological
//	DECIMAL   decimal.Decimal   numeric, exact
//	UUID      uuid.UUID         byte order
//	CATEGORY  string            configured category order, see Categorical
//
// Lookup resolves a family by name at run time.
package columns
