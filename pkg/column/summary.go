package column

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mesh-intelligence/tabula/pkg/rolling"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

// Summary measure names, in the order they appear.
const (
	MeasureCount   = "Count"
	MeasureMissing = "Missing"
	MeasureUnique  = "Unique"
	MeasureMean    = "Mean"
	MeasureStdDev  = "Std. Dev."
	MeasureMin     = "Min"
	MeasureMax     = "Max"
)

// Summary describes c as a two-column table, Measure and Value. Numeric
// families add mean, standard deviation, min and max over present rows.
func Summary(c Any) *table.Table {
	measures := []string{MeasureCount, MeasureMissing, MeasureUnique}
	values := []string{
		strconv.Itoa(c.Size()),
		strconv.Itoa(c.CountMissing()),
		strconv.Itoa(c.CountUnique()),
	}

	if c.Type().Numeric() {
		xs := make([]float64, 0, c.Size())
		for i := range c.Size() {
			if v := c.GetDouble(i); !c.IsMissing(i) && !math.IsNaN(v) {
				xs = append(xs, v)
			}
		}
		if len(xs) > 0 {
			mean, std := stat.MeanStdDev(xs, nil)
			measures = append(measures, MeasureMean, MeasureStdDev, MeasureMin, MeasureMax)
			values = append(values, formatStat(mean), formatStat(std), formatStat(floats.Min(xs)), formatStat(floats.Max(xs)))
		}
	}

	return table.New(c.Name()).MustAddColumns(
		table.NewTextColumn("Measure", measures...),
		table.NewTextColumn("Value", values...),
	)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Rolling returns a rolling-window view over c's numeric projection.
func Rolling(c Any, window int) *rolling.Column {
	return rolling.New(c, window)
}
