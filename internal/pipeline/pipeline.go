// Package pipeline parses and applies a chain of column operations, each
// written as name or name=arg, to a column whose element type is only known
// at run time.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

// Pipeline errors.
var (
	ErrUnknownOp       = errors.New("unknown operation")
	ErrBadArgument     = errors.New("bad operation argument")
	ErrUnsupportedType = errors.New("unsupported column type")
)

// Operation names.
const (
	OpLag      = "lag"
	OpLead     = "lead"
	OpFirst    = "first"
	OpLast     = "last"
	OpRange    = "range"
	OpRows     = "rows"
	OpSample   = "sample"
	OpFraction = "fraction"
	OpFill     = "fill"
	OpUnique   = "unique"
	OpSort     = "sort"
	OpDropNA   = "dropna"
	OpRename   = "rename"
)

// needsArg records which operations take an argument.
var needsArg = map[string]bool{
	OpLag: true, OpLead: true, OpFirst: true, OpLast: true, OpRange: true,
	OpRows: true, OpSample: true, OpFraction: true, OpFill: true,
	OpUnique: false, OpSort: false, OpDropNA: false, OpRename: true,
}

// Ops returns the operation names Parse accepts.
func Ops() []string {
	return []string{
		OpLag, OpLead, OpFirst, OpLast, OpRange, OpRows, OpSample,
		OpFraction, OpFill, OpUnique, OpSort, OpDropNA, OpRename,
	}
}

// Op is one parsed step.
type Op struct {
	Name string
	Arg  string
}

func (o Op) String() string {
	if o.Arg == "" {
		return o.Name
	}
	return o.Name + "=" + o.Arg
}

// Parse parses "name" or "name=arg".
func Parse(s string) (Op, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "=")
	name = strings.ToLower(strings.TrimSpace(name))
	want, ok := needsArg[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
	if want && !hasArg {
		return Op{}, fmt.Errorf("%w: %s needs an argument", ErrBadArgument, name)
	}
	return Op{Name: name, Arg: arg}, nil
}

// ParseAll parses every step, stopping at the first error.
func ParseAll(specs []string) ([]Op, error) {
	ops := make([]Op, 0, len(specs))
	for _, s := range specs {
		op, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Runner applies operations.
type Runner struct {
	// Rand drives sample and fraction. Nil uses the process-wide source.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// NewRunner returns a Runner. A zero seed leaves sampling unseeded.
func NewRunner(seed uint64, logger *slog.Logger) *Runner {
	r := &Runner{Logger: logger}
	if seed != 0 {
		r.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	return r
}

// Run applies ops to c in order and returns the final column. c itself is
// never modified.
func (r *Runner) Run(c column.Any, ops []Op) (column.Any, error) {
	switch c := c.(type) {
	case column.Column[string]:
		return run(r, c, ops)
	case column.Column[int64]:
		return run(r, c, ops)
	case column.Column[float64]:
		return run(r, c, ops)
	case column.Column[bool]:
		return run(r, c, ops)
	case column.Column[time.Time]:
		return run(r, c, ops)
	case column.Column[decimal.Decimal]:
		return run(r, c, ops)
	case column.Column[uuid.UUID]:
		return run(r, c, ops)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, c.Type().Name())
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func run[T any](r *Runner, c column.Column[T], ops []Op) (column.Any, error) {
	log := r.logger()
	for _, op := range ops {
		next, err := apply(r, c, op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Debug("applied operation", "op", op.String(), "rows", next.Size(), "missing", next.CountMissing())
		c = next
	}
	return c, nil
}

func apply[T any](r *Runner, c column.Column[T], op Op) (column.Column[T], error) {
	switch op.Name {
	case OpLag, OpLead:
		n, err := intArg(op.Arg)
		if err != nil {
			return nil, err
		}
		if op.Name == OpLead {
			return c.Lead(n), nil
		}
		return c.Lag(n), nil

	case OpFirst, OpLast:
		n, err := intArg(op.Arg)
		if err != nil {
			return nil, err
		}
		if op.Name == OpLast {
			return c.Last(n)
		}
		return c.First(n)

	case OpRange:
		lo, hi, ok := strings.Cut(op.Arg, ":")
		if !ok {
			return nil, fmt.Errorf("%w: range wants start:end, got %q", ErrBadArgument, op.Arg)
		}
		start, err := intArg(lo)
		if err != nil {
			return nil, err
		}
		end, err := intArg(hi)
		if err != nil {
			return nil, err
		}
		return c.InRange(start, end)

	case OpRows:
		var rows []int
		for _, s := range strings.Split(op.Arg, ",") {
			i, err := intArg(s)
			if err != nil {
				return nil, err
			}
			rows = append(rows, i)
		}
		return c.Rows(rows...)

	case OpSample:
		n, err := intArg(op.Arg)
		if err != nil {
			return nil, err
		}
		return column.SampleNWith(c, r.Rand, n)

	case OpFraction:
		p, err := cast.ToFloat64E(strings.TrimSpace(op.Arg))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		return column.SampleXWith(c, r.Rand, p)

	case OpFill:
		v, err := valueArg(c, op.Arg)
		if err != nil {
			return nil, err
		}
		return c.FillMissing(v)

	case OpUnique:
		return c.Unique(), nil

	case OpSort:
		out := c.Copy()
		switch strings.ToLower(op.Arg) {
		case "", "asc":
			out.SortAscending()
		case "desc":
			out.SortDescending()
		default:
			return nil, fmt.Errorf("%w: sort wants asc or desc, got %q", ErrBadArgument, op.Arg)
		}
		return out, nil

	case OpDropNA:
		return c.RemoveMissing(), nil

	case OpRename:
		out := c.Copy()
		out.SetName(op.Arg)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Name)
}

func intArg(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	return n, nil
}

// valueArg parses s with c's own parser.
func valueArg[T any](c column.Column[T], s string) (T, error) {
	tmp := c.EmptyCopyN(1)
	if err := tmp.AppendCell(s); err != nil {
		var zero T
		return zero, err
	}
	if tmp.IsMissing(0) {
		var zero T
		return zero, fmt.Errorf("%w: fill value %q reads as missing", ErrBadArgument, s)
	}
	return tmp.Get(0), nil
}
