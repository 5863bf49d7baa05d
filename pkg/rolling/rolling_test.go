package rolling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatSource is a Source over a slice; NaN marks a missing row.
type floatSource struct {
	name   string
	values []float64
}

func (s floatSource) Name() string              { return s.name }
func (s floatSource) Size() int                 { return len(s.values) }
func (s floatSource) GetDouble(row int) float64 { return s.values[row] }
func (s floatSource) IsMissing(row int) bool    { return math.IsNaN(s.values[row]) }

func TestRollingAggregates(t *testing.T) {
	src := floatSource{name: "x", values: []float64{1, 2, 3, 4, 5}}
	nan := math.NaN()

	tests := []struct {
		name   string
		result *Result
		want   []float64
	}{
		{name: "mean", result: New(src, 2).Mean(), want: []float64{nan, 1.5, 2.5, 3.5, 4.5}},
		{name: "sum", result: New(src, 3).Sum(), want: []float64{nan, nan, 6, 9, 12}},
		{name: "min", result: New(src, 2).Min(), want: []float64{nan, 1, 2, 3, 4}},
		{name: "max", result: New(src, 2).Max(), want: []float64{nan, 2, 3, 4, 5}},
		{name: "window of one", result: New(src, 1).Sum(), want: []float64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, len(tt.want), tt.result.Size())
			for i, w := range tt.want {
				if math.IsNaN(w) {
					assert.True(t, tt.result.IsMissing(i), "row %d should be missing", i)
					continue
				}
				assert.InDelta(t, w, tt.result.GetDouble(i), 1e-9, "row %d", i)
			}
		})
	}
}

func TestRollingSkipsWindowsWithMissingRows(t *testing.T) {
	src := floatSource{name: "x", values: []float64{1, math.NaN(), 3, 4}}
	r := New(src, 2).Sum()

	assert.True(t, r.IsMissing(0))
	assert.True(t, r.IsMissing(1))
	assert.True(t, r.IsMissing(2))
	assert.Equal(t, 7.0, r.GetDouble(3))
	assert.Equal(t, "", r.GetString(2))
	assert.Equal(t, "7", r.GetString(3))
}

func TestRollingName(t *testing.T) {
	r := New(floatSource{name: "price", values: []float64{1, 2}}, 2).Mean()
	assert.Equal(t, "price 2-period Mean", r.Name())
}

func TestRollingInvalidWindow(t *testing.T) {
	r := New(floatSource{name: "x", values: []float64{1, 2}}, 0).Sum()
	assert.True(t, r.IsMissing(0))
	assert.True(t, r.IsMissing(1))
}
