package columns

import (
	"slices"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

type cellAppender interface {
	cellAppender(missing []string) func(s string) error
}

// CellAppender returns a function that parses one string and appends it to
// c, treating exactly the given tokens as missing. With no tokens the
// family defaults apply. Columns from other packages fall back to checking
// the tokens before AppendCell.
func CellAppender(c column.Any, missing ...string) func(s string) error {
	if a, ok := c.(cellAppender); ok {
		return a.cellAppender(missing)
	}
	return func(s string) error {
		if slices.Contains(missing, s) {
			c.AppendMissing()
			return nil
		}
		return c.AppendCell(s)
	}
}

func (d *Dense[T]) cellAppender(missing []string) func(s string) error {
	p := d.family.ParserWith(missing...)
	return func(s string) error { return d.AppendCellWith(s, p) }
}
