// Package table provides Table, an ordered set of equally sized named
// columns, and its text rendering.
//
// Table only needs read access to its columns, so it accepts anything with a
// name, a size and a string form per row; every column in package columns
// qualifies.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Table errors.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrRowCountMismatch = errors.New("column row count does not match table")
)

// Column is the read access Table needs from a column.
type Column interface {
	Name() string
	Size() int
	GetString(row int) string
}

// Table is an ordered set of named columns that share a row count.
type Table struct {
	name    string
	columns []Column
}

// New returns an empty table.
func New(name string) *Table {
	return &Table{name: name}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// AddColumns appends columns to the table. Every column must have the
// table's row count (any count for the first column) and a name not already
// used. On error no column is added.
func (t *Table) AddColumns(cols ...Column) error {
	rows := -1
	if len(t.columns) > 0 {
		rows = t.RowCount()
	}
	seen := make(map[string]bool, len(t.columns)+len(cols))
	for _, c := range t.columns {
		seen[c.Name()] = true
	}
	for _, c := range cols {
		if seen[c.Name()] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		seen[c.Name()] = true
		if rows == -1 {
			rows = c.Size()
		}
		if c.Size() != rows {
			return fmt.Errorf("%w: %q has %d rows, want %d", ErrRowCountMismatch, c.Name(), c.Size(), rows)
		}
	}
	t.columns = append(t.columns, cols...)
	return nil
}

// MustAddColumns is AddColumns for callers that build columns of equal size
// under distinct names. It panics on error and returns t.
func (t *Table) MustAddColumns(cols ...Column) *Table {
	if err := t.AddColumns(cols...); err != nil {
		panic(err)
	}
	return t
}

// RowCount returns the number of rows, 0 for a table without columns.
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Size()
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, error) {
	for _, c := range t.columns {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// ColumnAt returns the i-th column.
func (t *Table) ColumnAt(i int) Column { return t.columns[i] }

// Print renders the table name, a header and every row, each column padded
// to its widest cell.
func (t *Table) Print() string {
	widths := make([]int, len(t.columns))
	for ci, c := range t.columns {
		widths[ci] = uniseg.StringWidth(c.Name())
		for r := range c.Size() {
			widths[ci] = max(widths[ci], uniseg.StringWidth(c.GetString(r)))
		}
	}

	var b strings.Builder
	if t.name != "" {
		b.WriteString(t.name)
		b.WriteByte('\n')
	}
	line := func(cell func(ci int) string) {
		for ci := range t.columns {
			if ci > 0 {
				b.WriteString(" | ")
			}
			s := cell(ci)
			b.WriteString(s)
			if ci < len(t.columns)-1 {
				b.WriteString(strings.Repeat(" ", widths[ci]-uniseg.StringWidth(s)))
			}
		}
		b.WriteByte('\n')
	}
	line(func(ci int) string { return t.columns[ci].Name() })
	for r := range t.RowCount() {
		line(func(ci int) string { return t.columns[ci].GetString(r) })
	}
	return b.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string { return t.Print() }
