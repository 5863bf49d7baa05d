package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/internal/source"
	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/columns"
)

// inputFlags select the column a command works on.
type inputFlags struct {
	csv        string
	jsonl      string
	sqlite     string
	query      string
	column     string
	typeName   string
	categories []string
	missing    []string
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	f := cmd.Flags()
	f.StringVar(&in.csv, "csv", "", "read from a CSV file with a header row")
	f.StringVar(&in.jsonl, "jsonl", "", "read from a JSONL file")
	f.StringVar(&in.sqlite, "sqlite", "", "read from a SQLite database (needs --query)")
	f.StringVar(&in.query, "query", "", "SQL query for --sqlite")
	f.StringVar(&in.column, "column", "", "column, field or result column to read (default: first)")
	f.StringVar(&in.typeName, "type", "", "column type (default: config default_type)")
	f.StringSliceVar(&in.categories, "categories", nil, "ordered categories for --type CATEGORY")
	f.StringSliceVar(&in.missing, "missing", nil, "cell strings read as missing (overrides config)")
	cmd.MarkFlagsMutuallyExclusive("csv", "jsonl", "sqlite")
	cmd.MarkFlagsOneRequired("csv", "jsonl", "sqlite")
}

func (in inputFlags) source() (source.Source, error) {
	switch {
	case in.csv != "":
		return source.Source{Kind: source.KindCSV, Path: in.csv}, nil
	case in.jsonl != "":
		return source.Source{Kind: source.KindJSONL, Path: in.jsonl}, nil
	case in.sqlite != "":
		return source.Source{Kind: source.KindSQLite, Path: in.sqlite, Query: in.query}, nil
	}
	return source.Source{}, fmt.Errorf("%w: one of --csv, --jsonl or --sqlite is required", errUsage)
}

// load reads the selected column.
func (a *app) load(ctx context.Context, in inputFlags) (column.Any, error) {
	src, err := in.source()
	if err != nil {
		return nil, err
	}

	typeName := in.typeName
	if typeName == "" {
		typeName = a.cfg.DefaultType
	}
	family, err := columns.Lookup(typeName, in.categories...)
	if err != nil {
		return nil, err
	}

	missing := a.cfg.MissingValues
	if len(in.missing) > 0 {
		missing = in.missing
	}

	a.logger.Debug("loading column", "source", src.String(), "column", in.column, "type", family.Name())
	c, err := source.Load(ctx, src, family, source.Options{
		Column:  in.column,
		Missing: missing,
		Logger:  a.logger,
	})
	if err != nil {
		a.logger.Error("load failed", "source", src.String(), "error", err)
		return nil, err
	}
	return c, nil
}
