package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

// ReadSQLite runs query against the SQLite database at path and reads one
// result column. SQL NULL reads as missing. The database must exist; it is
// never created.
func ReadSQLite(ctx context.Context, path, query string, f column.AnyFactory, opts Options) (column.Any, error) {
	if query == "" {
		return nil, ErrNoQuery
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}
	idx := 0
	if opts.Column != "" {
		idx = slices.Index(names, opts.Column)
	}
	if idx < 0 || idx >= len(names) {
		return nil, fmt.Errorf("%w: %q in query result", ErrColumnNotFound, opts.Column)
	}

	values := make([]any, len(names))
	dest := make([]any, len(names))
	for i := range values {
		dest[i] = &values[i]
	}

	var cells []*string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		cells = append(cells, sqlCell(values[idx]))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	opts.logger().Debug("query complete", "path", path, "rows", len(cells))
	return fill(f, names[idx], cells, opts)
}

func sqlCell(v any) *string {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return ptr(v)
	case []byte:
		return ptr(string(v))
	case int64:
		return ptr(strconv.FormatInt(v, 10))
	case float64:
		return ptr(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		return ptr(strconv.FormatBool(v))
	case time.Time:
		return ptr(v.Format(time.RFC3339Nano))
	}
	return ptr(fmt.Sprint(v))
}
