package column

import "slices"

// DefaultMissingValues are the strings every default parser treats as a
// missing cell.
var DefaultMissingValues = []string{"", "NaN", "*", "NA", "null", "N/A"}

// Parser converts the string form of a cell to T.
type Parser[T any] interface {
	// IsMissing reports whether s denotes a missing cell.
	IsMissing(s string) bool

	// Parse converts s. It is only called for strings IsMissing rejects.
	Parse(s string) (T, error)
}

type funcParser[T any] struct {
	parse   func(string) (T, error)
	missing []string
}

// NewParser returns a Parser that uses parse for values and treats the given
// strings as missing. With no missing strings, DefaultMissingValues apply.
func NewParser[T any](parse func(string) (T, error), missing ...string) Parser[T] {
	if len(missing) == 0 {
		missing = DefaultMissingValues
	}
	return &funcParser[T]{parse: parse, missing: slices.Clone(missing)}
}

func (p *funcParser[T]) IsMissing(s string) bool {
	return slices.Contains(p.missing, s)
}

func (p *funcParser[T]) Parse(s string) (T, error) {
	return p.parse(s)
}
