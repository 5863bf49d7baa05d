package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/table"
)

// columnJSON is the --json form of a column.
type columnJSON struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int    `json:"size"`
	Missing int    `json:"missing"`
	Values  []any  `json:"values"`
}

func newColumnJSON(c column.Any) columnJSON {
	return columnJSON{
		Name:    c.Name(),
		Type:    c.Type().Name(),
		Size:    c.Size(),
		Missing: c.CountMissing(),
		Values:  c.AsObjectArray(),
	}
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// tableJSON turns a table into one object per row keyed by column name.
func tableJSON(t *table.Table) []map[string]string {
	names := t.ColumnNames()
	rows := make([]map[string]string, t.RowCount())
	for r := range rows {
		row := make(map[string]string, len(names))
		for ci, name := range names {
			row[name] = t.ColumnAt(ci).GetString(r)
		}
		rows[r] = row
	}
	return rows
}

// nullable maps NaN to nil so the value survives JSON encoding.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
