package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColumns(t *testing.T) {
	tests := []struct {
		name    string
		cols    []Column
		wantErr error
		rows    int
	}{
		{
			name: "equal sizes",
			cols: []Column{NewTextColumn("a", "1", "2"), NewTextColumn("b", "x", "y")},
			rows: 2,
		},
		{
			name:    "row count mismatch",
			cols:    []Column{NewTextColumn("a", "1", "2"), NewTextColumn("b", "x")},
			wantErr: ErrRowCountMismatch,
		},
		{
			name:    "duplicate name",
			cols:    []Column{NewTextColumn("a", "1"), NewTextColumn("a", "2")},
			wantErr: ErrDuplicateColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New("t")
			err := tbl.AddColumns(tt.cols...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, tbl.ColumnCount(), "no column added on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, tbl.RowCount())
			assert.Equal(t, len(tt.cols), tbl.ColumnCount())
		})
	}
}

func TestMustAddColumns(t *testing.T) {
	tbl := New("t").MustAddColumns(NewTextColumn("a", "1"), NewTextColumn("b", "2"))
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())

	assert.PanicsWithError(t, `column row count does not match table: "c" has 0 rows, want 1`, func() {
		tbl.MustAddColumns(NewTextColumn("c"))
	})
	assert.Equal(t, 2, tbl.ColumnCount())
}

func TestColumnLookup(t *testing.T) {
	tbl := New("t")
	require.NoError(t, tbl.AddColumns(NewTextColumn("a", "1"), NewTextColumn("b", "2")))

	c, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, "2", c.GetString(0))
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())

	_, err = tbl.Column("zzz")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestPrint(t *testing.T) {
	tbl := New("scores")
	require.NoError(t, tbl.AddColumns(
		NewTextColumn("Measure", "Count", "Mean"),
		NewTextColumn("Value", "3", "2.5"),
	))

	want := "scores\n" +
		"Measure | Value\n" +
		"Count   | 3\n" +
		"Mean    | 2.5\n"
	assert.Equal(t, want, tbl.Print())
}

func TestEmptyTable(t *testing.T) {
	tbl := New("")
	assert.Equal(t, 0, tbl.RowCount())
	assert.Equal(t, "\n", tbl.Print())
}
