// Package rolling computes fixed-size trailing-window aggregates over the
// numeric projection of a column.
package rolling

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Source is the read access a rolling window needs.
type Source interface {
	Name() string
	Size() int
	GetDouble(row int) float64
	IsMissing(row int) bool
}

// AggregateFunc reduces the values of one full window to a single value.
type AggregateFunc func(window []float64) float64

// Column is a rolling view over a source column. The window ending at row i
// covers rows i-window+1 through i.
type Column struct {
	src    Source
	window int
}

// New returns a rolling view with the given window size. A window smaller
// than 1 produces results with every row missing.
func New(src Source, window int) *Column {
	return &Column{src: src, window: window}
}

// Window returns the window size.
func (c *Column) Window() int { return c.window }

// Calc applies fn to every full window. Rows whose window is incomplete or
// contains a missing (or NaN) row are missing in the result.
func (c *Column) Calc(name string, fn AggregateFunc) *Result {
	size := c.src.Size()
	out := make([]float64, size)
	buf := make([]float64, 0, max(c.window, 0))
	for i := range size {
		out[i] = math.NaN()
		if c.window < 1 || i+1 < c.window {
			continue
		}
		buf = buf[:0]
		for j := i - c.window + 1; j <= i; j++ {
			v := c.src.GetDouble(j)
			if c.src.IsMissing(j) || math.IsNaN(v) {
				break
			}
			buf = append(buf, v)
		}
		if len(buf) == c.window {
			out[i] = fn(buf)
		}
	}
	return &Result{name: fmt.Sprintf("%s %d-period %s", c.src.Name(), c.window, name), values: out}
}

// Mean returns the rolling arithmetic mean.
func (c *Column) Mean() *Result {
	return c.Calc("Mean", func(w []float64) float64 { return stat.Mean(w, nil) })
}

// Sum returns the rolling sum.
func (c *Column) Sum() *Result {
	return c.Calc("Sum", floats.Sum)
}

// Min returns the rolling minimum.
func (c *Column) Min() *Result {
	return c.Calc("Min", floats.Min)
}

// Max returns the rolling maximum.
func (c *Column) Max() *Result {
	return c.Calc("Max", floats.Max)
}

// Result holds the output of a rolling aggregate. Missing rows are NaN.
type Result struct {
	name   string
	values []float64
}

func (r *Result) Name() string { return r.name }

func (r *Result) Size() int { return len(r.values) }

func (r *Result) GetDouble(row int) float64 { return r.values[row] }

func (r *Result) IsMissing(row int) bool { return math.IsNaN(r.values[row]) }

// GetString formats row, "" when missing.
func (r *Result) GetString(row int) string {
	if r.IsMissing(row) {
		return ""
	}
	return strconv.FormatFloat(r.values[row], 'f', -1, 64)
}

// Values returns a copy of the results.
func (r *Result) Values() []float64 {
	return append([]float64(nil), r.values...)
}
