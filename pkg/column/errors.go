package column

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by a column.
var (
	ErrArgument = errors.New("invalid argument")
	ErrIndex    = errors.New("row index out of range")
	ErrParse    = errors.New("cannot parse cell")
)

// IndexError reports a row outside [0, Size).
type IndexError struct {
	Row  int
	Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Row, e.Size)
}

// Is makes errors.Is(err, ErrIndex) hold.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// ParseError reports a string that the active parser could not convert.
type ParseError struct {
	Text string // offending text
	Row  int    // row the value would have been written to
	Type string // name of the column family
	Err  error  // underlying parser error, may be nil
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q as %s at row %d", e.Text, e.Type, e.Row)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// argumentError wraps ErrArgument with a description of the offending input.
func argumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, args...))
}

// CheckRow returns an *IndexError when row is outside [0, size).
func CheckRow(row, size int) error {
	if row < 0 || row >= size {
		return &IndexError{Row: row, Size: size}
	}
	return nil
}

// MustRow panics with an *IndexError when row is outside [0, size). Element
// accessors use it so an out-of-range read fails like a slice index would.
func MustRow(row, size int) {
	if err := CheckRow(row, size); err != nil {
		panic(err)
	}
}
