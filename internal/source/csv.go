package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

// ReadCSV reads one column of a CSV file whose first record is the header.
// Short records read as missing for columns they do not reach.
func ReadCSV(path string, f column.AnyFactory, opts Options) (column.Any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header", ErrColumnNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	idx := 0
	if opts.Column != "" {
		idx = slices.Index(header, opts.Column)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrColumnNotFound, opts.Column, path)
		}
	}

	var cells []*string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if idx >= len(rec) {
			cells = append(cells, nil)
			continue
		}
		cells = append(cells, ptr(rec[idx]))
	}
	return fill(f, header[idx], cells, opts)
}
