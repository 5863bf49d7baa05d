package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped and counted.
func readJSONL(path string) ([]json.RawMessage, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	skipped := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			skipped++
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, skipped, nil
}

// ReadJSONL reads field opts.Column from every object in a JSONL file. An
// absent field or a JSON null reads as missing; a line that is not an
// object is skipped. It fails with ErrColumnNotFound when no record has the
// field.
func ReadJSONL(path string, f column.AnyFactory, opts Options) (column.Any, error) {
	if opts.Column == "" {
		return nil, fmt.Errorf("%w: jsonl source needs a field name", ErrColumnNotFound)
	}
	records, skipped, err := readJSONL(path)
	if err != nil {
		return nil, err
	}

	cells := make([]*string, 0, len(records))
	found := false
	for _, rec := range records {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(rec, &obj); err != nil {
			skipped++
			continue
		}
		raw, ok := obj[opts.Column]
		if !ok {
			cells = append(cells, nil)
			continue
		}
		found = true
		cell, err := jsonCell(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s in %s: %w", opts.Column, path, err)
		}
		cells = append(cells, cell)
	}
	if !found {
		return nil, fmt.Errorf("%w: field %q in %s", ErrColumnNotFound, opts.Column, path)
	}
	if skipped > 0 {
		opts.logger().Debug("skipped malformed jsonl lines", "path", path, "skipped", skipped)
	}
	return fill(f, opts.Column, cells, opts)
}

// jsonCell converts a JSON value to cell text. Strings are unquoted, numbers
// keep their literal text, and objects and arrays keep their JSON form.
func jsonCell(raw json.RawMessage) (*string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return ptr(v), nil
	case json.Number:
		return ptr(v.String()), nil
	case bool:
		return ptr(strconv.FormatBool(v)), nil
	}
	return ptr(string(raw)), nil
}
