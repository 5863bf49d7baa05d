package columns

import (
	"math"
	"slices"

	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/selection"
)

// Dense stores one value and one missing flag per row. Missing rows keep the
// family's sentinel in values so Get never needs a branch.
type Dense[T any] struct {
	column.Base[T]

	name     string
	family   *Family[T]
	values   []T
	missing  []bool
	nMissing int
}

var _ column.Column[int64] = (*Dense[int64])(nil)

func newDense[T any](f *Family[T], name string, capacity int) *Dense[T] {
	d := &Dense[T]{
		name:    name,
		family:  f,
		values:  make([]T, 0, capacity),
		missing: make([]bool, 0, capacity),
	}
	d.Base = column.NewBase[T](d)
	return d
}

func (d *Dense[T]) Name() string { return d.name }

func (d *Dense[T]) SetName(name string) { d.name = name }

func (d *Dense[T]) Type() column.ColumnType { return d.family }

// Family returns the family descriptor of d.
func (d *Dense[T]) Family() *Family[T] { return d.family }

func (d *Dense[T]) Size() int { return len(d.values) }

func (d *Dense[T]) Clear() {
	d.values = d.values[:0]
	d.missing = d.missing[:0]
	d.nMissing = 0
}

func (d *Dense[T]) IsMissing(row int) bool {
	column.MustRow(row, len(d.values))
	return d.missing[row]
}

// CountMissing is O(1); the count is maintained on every write.
func (d *Dense[T]) CountMissing() int { return d.nMissing }

func (d *Dense[T]) Get(row int) T {
	column.MustRow(row, len(d.values))
	return d.values[row]
}

func (d *Dense[T]) Set(row int, v T) error {
	if err := column.CheckRow(row, len(d.values)); err != nil {
		return err
	}
	wasMissing := d.missing[row]
	if d.family.missingValue(v) {
		d.values[row] = d.family.sentinel
		d.missing[row] = true
	} else {
		d.values[row] = v
		d.missing[row] = false
	}
	switch {
	case wasMissing && !d.missing[row]:
		d.nMissing--
	case !wasMissing && d.missing[row]:
		d.nMissing++
	}
	return nil
}

func (d *Dense[T]) Append(v T) {
	if d.family.missingValue(v) {
		d.AppendMissing()
		return
	}
	d.values = append(d.values, v)
	d.missing = append(d.missing, false)
}

func (d *Dense[T]) AppendMissing() {
	d.values = append(d.values, d.family.sentinel)
	d.missing = append(d.missing, true)
	d.nMissing++
}

func (d *Dense[T]) AppendColumn(other column.Column[T]) {
	if o, ok := other.(*Dense[T]); ok {
		d.values = append(d.values, o.values...)
		d.missing = append(d.missing, o.missing...)
		d.nMissing += o.nMissing
		return
	}
	for i := range other.Size() {
		if other.IsMissing(i) {
			d.AppendMissing()
			continue
		}
		d.Append(other.Get(i))
	}
}

func (d *Dense[T]) AppendCell(s string) error {
	return d.AppendCellWith(s, d.family.parser)
}

func (d *Dense[T]) AppendCellWith(s string, p column.Parser[T]) error {
	if p.IsMissing(s) {
		d.AppendMissing()
		return nil
	}
	v, err := p.Parse(s)
	if err != nil {
		return &column.ParseError{Text: s, Row: len(d.values), Type: d.family.name, Err: err}
	}
	d.Append(v)
	return nil
}

func (d *Dense[T]) GetString(row int) string {
	if d.IsMissing(row) {
		return ""
	}
	return d.family.format(d.values[row])
}

func (d *Dense[T]) GetUnformattedString(row int) string {
	if d.IsMissing(row) {
		return ""
	}
	return d.family.unformat(d.values[row])
}

func (d *Dense[T]) GetDouble(row int) float64 {
	if d.IsMissing(row) {
		return math.NaN()
	}
	return d.family.double(d.values[row])
}

func (d *Dense[T]) AsBytes(row int) []byte {
	column.MustRow(row, len(d.values))
	return d.family.bytes(d.values[row])
}

func (d *Dense[T]) EmptyCopy() column.Column[T] {
	return newDense(d.family, d.name, 0)
}

func (d *Dense[T]) EmptyCopyN(rowSize int) column.Column[T] {
	return newDense(d.family, d.name, max(rowSize, 0))
}

func (d *Dense[T]) Ordering() column.Ordering[T] { return d.family.compare }

func (d *Dense[T]) Copy() column.Column[T] {
	out := newDense(d.family, d.name, 0)
	out.values = slices.Clone(d.values)
	out.missing = slices.Clone(d.missing)
	out.nMissing = d.nMissing
	return out
}

func (d *Dense[T]) RowComparator() column.RowComparator {
	return d.compareRows
}

func (d *Dense[T]) compareRows(i, j int) int {
	mi, mj := d.missing[i], d.missing[j]
	switch {
	case mi && mj:
		return 0
	case mi:
		return -1
	case mj:
		return 1
	}
	return d.family.compare(d.values[i], d.values[j])
}

// Where copies the selected rows directly, without a format and parse round
// trip.
func (d *Dense[T]) Where(sel *selection.Selection) (column.Column[T], error) {
	if err := column.CheckSelection(sel, len(d.values)); err != nil {
		return nil, err
	}
	return d.gather(sel.Rows()), nil
}

func (d *Dense[T]) gather(rows []int) *Dense[T] {
	out := newDense(d.family, d.name, len(rows))
	for _, row := range rows {
		out.values = append(out.values, d.values[row])
		out.missing = append(out.missing, d.missing[row])
		if d.missing[row] {
			out.nMissing++
		}
	}
	return out
}

func (d *Dense[T]) SortAscending() { d.sort(d.compareRows) }

func (d *Dense[T]) SortDescending() {
	d.sort(column.RowComparator(d.compareRows).Reverse())
}

func (d *Dense[T]) sort(rc column.RowComparator) {
	rows := make([]int, len(d.values))
	for i := range rows {
		rows[i] = i
	}
	slices.SortStableFunc(rows, rc)
	sorted := d.gather(rows)
	d.values, d.missing = sorted.values, sorted.missing
}

// String renders the column like Print.
func (d *Dense[T]) String() string { return d.Print() }
