// Tests for the default column algorithms, run against the built-in
// families and against wordColumn, which overrides nothing.
package column_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/columns"
	"github.com/mesh-intelligence/tabula/pkg/selection"
)

const na = math.MinInt64

func ints(values ...int64) *columns.IntColumn { return columns.NewIntColumn("n", values...) }

func seq(n int) *columns.IntColumn {
	c := columns.Int.New("n")
	for i := range n {
		c.Append(int64(i))
	}
	return c
}

func some[T any](values ...T) []column.Cell[T] {
	out := make([]column.Cell[T], len(values))
	for i, v := range values {
		out[i] = column.Some(v)
	}
	return out
}

func TestMissingPartition(t *testing.T) {
	cols := []column.Any{
		columns.NewStringColumn("s", "a", "", "b", ""),
		newWords("w", "a", "", "b", ""),
	}
	for _, c := range cols {
		t.Run(c.Type().Name(), func(t *testing.T) {
			missing, present := c.MissingRows(), c.NonMissingRows()
			assert.Equal(t, []int{1, 3}, missing.Rows())
			assert.Equal(t, []int{0, 2}, present.Rows())
			assert.Equal(t, c.Size(), missing.Len()+present.Len())
			assert.Equal(t, missing.Len(), c.CountMissing())
		})
	}
}

func TestMissingScenario(t *testing.T) {
	c := columns.NewStringColumn("s", "a", "b", "", "d")
	assert.Equal(t, 1, c.CountMissing())

	filled, err := c.FillMissing("z")
	require.NoError(t, err)
	assert.Equal(t, some("a", "b", "z", "d"), filled.AsList())

	lagged := c.Lag(1)
	assert.Equal(t, []column.Cell[string]{
		column.None[string](), column.Some("a"), column.Some("b"), column.None[string](),
	}, lagged.AsList())
}

func TestLagLead(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)

	back := c.Lag(2).Lead(2)
	for i := range 3 {
		assert.Equal(t, c.Get(i), back.Get(i))
	}
	assert.True(t, back.IsMissing(3))
	assert.True(t, back.IsMissing(4))

	assert.Equal(t, c.Lead(1).AsList(), c.Lag(-1).AsList())
	assert.Equal(t, 5, c.Lag(10).CountMissing())
	assert.Equal(t, 5, c.Lead(math.MaxInt).CountMissing())
	assert.Equal(t, c.AsList(), c.Lag(0).AsList())
}

func TestMinMax(t *testing.T) {
	a := ints(1, 5, na, 3)
	b := ints(2, 4, 1, 3)

	lo, err := a.Min(b)
	require.NoError(t, err)
	hi, err := a.Max(b)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(4), nil, int64(3)}, lo.AsObjectArray())
	assert.Equal(t, []any{int64(2), int64(5), nil, int64(3)}, hi.AsObjectArray())

	_, err = a.Min(ints(1))
	assert.ErrorIs(t, err, column.ErrArgument)
}

func TestMinMaxTieKeepsReceiver(t *testing.T) {
	upper, lower := newWords("u", "Apple"), newWords("l", "apple")

	lo, err := upper.Min(lower)
	require.NoError(t, err)
	assert.Equal(t, "Apple", lo.Get(0))

	hi, err := lower.Max(upper)
	require.NoError(t, err)
	assert.Equal(t, "apple", hi.Get(0))
}

func TestFillMissingFrom(t *testing.T) {
	c := ints(1, na, 3, na)
	out, err := c.FillMissingFrom(ints(9, 8, 7, na))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(8), int64(3), nil}, out.AsObjectArray())

	_, err = c.FillMissingFrom(ints(1, 2))
	assert.ErrorIs(t, err, column.ErrArgument)
}

func TestFillMissingKeepsSize(t *testing.T) {
	c := newWords("w", "", "b", "")
	out, err := c.FillMissing("x")
	require.NoError(t, err)
	assert.Equal(t, some("x", "b", "x"), out.AsList())
	assert.Equal(t, 2, c.CountMissing(), "receiver is unchanged")
}

func TestInRange(t *testing.T) {
	c := seq(10)

	tests := []struct {
		name       string
		start, end int
		want       []int64
		wantErr    error
	}{
		{name: "prefix", start: 0, end: 5, want: []int64{0, 1, 2, 3, 4}},
		{name: "middle", start: 7, end: 9, want: []int64{7, 8}},
		{name: "reversed", start: 5, end: 0, wantErr: column.ErrArgument},
		{name: "empty", start: 3, end: 3, wantErr: column.ErrArgument},
		{name: "negative start", start: -1, end: 3, wantErr: column.ErrIndex},
		{name: "end past size", start: 5, end: 11, wantErr: column.ErrIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.InRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, some(tt.want...), out.AsList())
		})
	}
}

func TestFirstLast(t *testing.T) {
	c := seq(10)

	first, err := c.First(20)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Size())

	last, err := c.Last(3)
	require.NoError(t, err)
	assert.Equal(t, some[int64](7, 8, 9), last.AsList())

	_, err = c.First(0)
	assert.ErrorIs(t, err, column.ErrArgument)
}

func TestRows(t *testing.T) {
	c := seq(5)

	out, err := c.Rows(3, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, some[int64](3, 1), out.AsList())

	_, err = c.Rows(1, 5)
	var ie *column.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 5, ie.Row)
}

func TestSampleN(t *testing.T) {
	c := seq(10)

	out, err := c.SampleN(3)
	require.NoError(t, err)
	require.Equal(t, 3, out.Size())
	seen := map[int64]bool{}
	for _, v := range out.All() {
		assert.True(t, c.Contains(v))
		assert.False(t, seen[v], "sample draws without replacement")
		seen[v] = true
	}

	for _, n := range []int{0, -1, 10, 11} {
		_, err := c.SampleN(n)
		assert.ErrorIs(t, err, column.ErrArgument, "n=%d", n)
	}
}

func TestSampleWithSeed(t *testing.T) {
	c := seq(100)
	draw := func() []column.Cell[int64] {
		out, err := column.SampleNWith[int64](c, rand.New(rand.NewPCG(1, 2)), 10)
		require.NoError(t, err)
		return out.AsList()
	}
	assert.Equal(t, draw(), draw())
}

func TestSampleX(t *testing.T) {
	c := seq(10)

	none, err := c.SampleX(0)
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())

	half, err := c.SampleX(0.5)
	require.NoError(t, err)
	assert.Equal(t, 5, half.Size())

	all, err := c.SampleX(1)
	require.NoError(t, err)
	assert.Equal(t, 10, all.Size())

	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := c.SampleX(p)
		assert.ErrorIs(t, err, column.ErrArgument)
	}
}

func TestUnique(t *testing.T) {
	c := columns.NewStringColumn("s", "b", "a", "", "b", "")
	u := c.Unique()
	assert.Equal(t, []column.Cell[string]{
		column.Some("b"), column.Some("a"), column.None[string](),
	}, u.AsList())
	assert.Equal(t, 3, c.CountUnique())

	assert.Equal(t, 1, newWords("w", "Go", "go", "GO").CountUnique())
}

func TestRemoveMissing(t *testing.T) {
	c := ints(na, 1, na, 2)
	assert.Equal(t, some[int64](1, 2), c.RemoveMissing().AsList())
}

func TestDefaultSort(t *testing.T) {
	asc := newWords("w", "b", "", "A", "a", "")
	asc.SortAscending()
	assert.Equal(t, []column.Cell[string]{
		column.None[string](), column.None[string](),
		column.Some("A"), column.Some("a"), column.Some("b"),
	}, asc.AsList())

	desc := newWords("w", "b", "", "A", "a", "")
	desc.SortDescending()
	assert.Equal(t, []column.Cell[string]{
		column.Some("b"), column.Some("A"), column.Some("a"),
		column.None[string](), column.None[string](),
	}, desc.AsList())
}

func TestDefaultWhereAndCopy(t *testing.T) {
	c := newWords("w", "x", "", "z")

	sub, err := c.Where(selection.With(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []column.Cell[string]{column.Some("z"), column.None[string]()}, sub.AsList())

	_, err = c.Subset(selection.With(3))
	assert.ErrorIs(t, err, column.ErrIndex)

	cp := c.Copy()
	require.NoError(t, cp.Set(0, "y"))
	assert.Equal(t, "x", c.Get(0))
	assert.Equal(t, c.Size(), cp.Size())
}

func TestSubsetReparsesDisplayForm(t *testing.T) {
	c := columns.NewFloatColumn("f", 1.5, math.NaN(), -2)
	out, err := column.Subset[float64](c, selection.With(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []any{1.5, nil, -2.0}, out.AsObjectArray())
}

func TestCopyRoundTrip(t *testing.T) {
	c := ints(1, na, 3)
	cp := c.Copy()
	assert.Equal(t, c.AsList(), cp.AsList())
	assert.Equal(t, c.Name(), cp.Name())
	assert.Equal(t, c.Type(), cp.Type())
}

func TestCreate(t *testing.T) {
	c := column.Create[int64]("n", columns.Int)
	assert.Equal(t, "n", c.Name())
	assert.Equal(t, columns.Int, c.Type())
	assert.True(t, c.IsEmpty())

	c.Append(4)
	assert.Equal(t, int64(4), c.Get(0))
}

func TestContains(t *testing.T) {
	c := ints(1, na, 3)
	assert.True(t, c.Contains(3))
	assert.False(t, c.Contains(2))
	assert.False(t, c.Contains(na), "the sentinel never matches a value")
	assert.True(t, c.ContainsCell(column.None[int64]()))
	assert.True(t, c.ContainsCell(column.Some[int64](1)))
	assert.False(t, ints(1).ContainsCell(column.None[int64]()))

	assert.True(t, newWords("w", "Hello").Contains("HELLO"))
}

func TestIteration(t *testing.T) {
	c := ints(1, 2, 3)

	var got []int64
	c.DoWithEach(func(v int64) { got = append(got, v) })
	assert.Equal(t, []int64{1, 2, 3}, got)

	var rows []int
	for i := range c.All() {
		if i == 2 {
			break
		}
		rows = append(rows, i)
	}
	assert.Equal(t, []int{0, 1}, rows)
}

func TestAppendCellAtomic(t *testing.T) {
	c := newWords("w", "a")
	err := c.AppendCell("two words")

	var pe *column.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, "two words", pe.Text)
	assert.ErrorIs(t, err, errNotAWord)
	assert.Equal(t, 1, c.Size())
}

func TestPrint(t *testing.T) {
	c := columns.NewStringColumn("s", "a", "", "bb")
	assert.Equal(t, "Column: s\n", c.Title())
	assert.Equal(t, "Column: s\na\n\nbb\n", c.Print())
	assert.Equal(t, 2, c.ColumnWidth())

	// e followed by a combining acute accent is one character.
	wide := columns.NewStringColumn("x", "he\u0301llo")
	assert.Equal(t, 5, wide.ColumnWidth())
}

func TestSummary(t *testing.T) {
	c := ints(1, 2, 3, na)
	s := c.Summary()
	assert.Equal(t, "n", s.Name())

	measures, err := s.Column("Measure")
	require.NoError(t, err)
	values, err := s.Column("Value")
	require.NoError(t, err)

	got := map[string]string{}
	for i := range s.RowCount() {
		got[measures.GetString(i)] = values.GetString(i)
	}
	assert.Equal(t, "4", got[column.MeasureCount])
	assert.Equal(t, "1", got[column.MeasureMissing])
	assert.Equal(t, "4", got[column.MeasureUnique])
	assert.Equal(t, "2", got[column.MeasureMean])
	assert.Equal(t, "1", got[column.MeasureStdDev])
	assert.Equal(t, "1", got[column.MeasureMin])
	assert.Equal(t, "3", got[column.MeasureMax])

	text := columns.NewStringColumn("s", "a", "b").Summary()
	assert.Equal(t, 3, text.RowCount())
}

func TestRolling(t *testing.T) {
	c := columns.NewFloatColumn("f", 1, 2, 3, 4)
	mean := c.Rolling(2).Mean()
	got := mean.Values()
	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, got[1:])
}

func TestCell(t *testing.T) {
	assert.Equal(t, "NA", column.None[int]().String())
	assert.Equal(t, "7", column.Some(7).String())
}

func TestOrderingReverse(t *testing.T) {
	order := columns.Int.Ordering()
	assert.Negative(t, order(1, 2))
	assert.Positive(t, order.Reverse()(1, 2))

	c := ints(na, 5)
	rc := c.RowComparator()
	assert.Negative(t, rc(0, 1), "missing rows order first")
	assert.Positive(t, rc.Reverse()(0, 1))
}
