// Package source builds a single column from an external data source: a CSV
// file, a JSONL file or a SQLite query.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/columns"
)

// Source errors.
var (
	ErrColumnNotFound = errors.New("column not found in source")
	ErrUnknownKind    = errors.New("unknown source kind")
	ErrNoQuery        = errors.New("sqlite source needs a query")
)

// Kind names a source format.
type Kind string

// Source kinds.
const (
	KindCSV    Kind = "csv"
	KindJSONL  Kind = "jsonl"
	KindSQLite Kind = "sqlite"
)

// Source locates the data to read.
type Source struct {
	Kind  Kind
	Path  string
	Query string // SQL for KindSQLite
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Path
}

// Options controls how raw cells become a column.
type Options struct {
	// Column is the header, field or result column to read. CSV and SQLite
	// default to the first column when empty; JSONL requires it.
	Column string

	// Missing lists the tokens read as missing cells. Nil keeps the column
	// family defaults.
	Missing []string

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Load reads src into a new column of family f.
func Load(ctx context.Context, src Source, f column.AnyFactory, opts Options) (column.Any, error) {
	switch src.Kind {
	case KindCSV:
		return ReadCSV(src.Path, f, opts)
	case KindJSONL:
		return ReadJSONL(src.Path, f, opts)
	case KindSQLite:
		return ReadSQLite(ctx, src.Path, src.Query, f, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, src.Kind)
}

// fill appends cells to a new column named name. A nil cell is a NULL and
// always appends a missing row.
func fill(f column.AnyFactory, name string, cells []*string, opts Options) (column.Any, error) {
	c := f.CreateAny(name)
	appendCell := columns.CellAppender(c, opts.Missing...)
	for _, s := range cells {
		if s == nil {
			c.AppendMissing()
			continue
		}
		if err := appendCell(*s); err != nil {
			return nil, fmt.Errorf("loading column %s: %w", name, err)
		}
	}
	opts.logger().Debug("column loaded",
		"column", name,
		"type", f.Name(),
		"rows", c.Size(),
		"missing", c.CountMissing())
	return c, nil
}

func ptr(s string) *string { return &s }
