package columns

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoricalOrder(t *testing.T) {
	f := Categorical("low", "mid", "high", "low")
	assert.Equal(t, []string{"low", "mid", "high"}, f.Categories())

	c := NewCategoryColumn(f, "level", "high", "zzz", "low", "", "aaa", "mid")
	c.SortAscending()
	assert.Equal(t, []any{nil, "low", "mid", "high", "aaa", "zzz"}, c.AsObjectArray())
}

func TestCategoricalDouble(t *testing.T) {
	c := NewCategoryColumn(Categorical("a", "b"), "c", "b", "x")
	assert.Equal(t, 1.0, c.GetDouble(0))
	assert.True(t, math.IsNaN(c.GetDouble(1)))
	assert.Equal(t, []byte{0, 0, 0, 1}, c.AsBytes(0))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, c.AsBytes(1))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: "int", want: "INT"},
		{name: " Float ", want: "FLOAT"},
		{name: "DECIMAL", want: "DECIMAL"},
		{name: "category", want: "CATEGORY"},
		{name: "blob", wantErr: ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Name())
			assert.Equal(t, tt.want, f.CreateAny("x").Type().Name())
		})
	}
}

func TestTypes(t *testing.T) {
	assert.Equal(t,
		[]string{"STRING", "INT", "FLOAT", "BOOL", "DATETIME", "DECIMAL", "UUID", "CATEGORY"},
		Types())
}
