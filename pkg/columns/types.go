package columns

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Built-in families.
var (
	String   = newStringFamily()
	Int      = newIntFamily()
	Float    = newFloatFamily()
	Bool     = newBoolFamily()
	DateTime = newDateTimeFamily()
	Decimal  = newDecimalFamily()
	UUID     = newUUIDFamily()
)

// Concrete column types.
type (
	StringColumn   = Dense[string]
	IntColumn      = Dense[int64]
	FloatColumn    = Dense[float64]
	BoolColumn     = Dense[bool]
	DateTimeColumn = Dense[time.Time]
	DecimalColumn  = Dense[decimal.Decimal]
	UUIDColumn     = Dense[uuid.UUID]
)

// NewStringColumn returns a STRING column. Empty strings are missing.
func NewStringColumn(name string, values ...string) *StringColumn {
	return String.New(name, values...)
}

// NewIntColumn returns an INT column. math.MinInt64 is missing.
func NewIntColumn(name string, values ...int64) *IntColumn {
	return Int.New(name, values...)
}

// NewFloatColumn returns a FLOAT column. NaN is missing.
func NewFloatColumn(name string, values ...float64) *FloatColumn {
	return Float.New(name, values...)
}

func NewBoolColumn(name string, values ...bool) *BoolColumn {
	return Bool.New(name, values...)
}

func NewDateTimeColumn(name string, values ...time.Time) *DateTimeColumn {
	return DateTime.New(name, values...)
}

func NewDecimalColumn(name string, values ...decimal.Decimal) *DecimalColumn {
	return Decimal.New(name, values...)
}

func NewUUIDColumn(name string, values ...uuid.UUID) *UUIDColumn {
	return UUID.New(name, values...)
}

func identityString(s string) string { return s }

func parseString(s string) (string, error) { return s, nil }

// textMissing is the only missing token of text families. Any other token
// ("NA", "null", ...) is a legitimate string value.
var textMissing = []string{""}

// parseInt reads base-10 integers, leading zeros included. Integral floats
// such as "3.0" or "1e3" are accepted as well.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return v, nil
	}
	f, ferr := cast.ToFloat64E(s)
	if ferr != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, err
	}
	return int64(f), nil
}

// hashString is the fixed-width binary form of string families.
func hashString(s string) []byte {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}

func uint64Bytes(v uint64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), v)
}

func newStringFamily() *Family[string] {
	return (&Family[string]{
		name:       "STRING",
		byteSize:   8,
		isSentinel: func(s string) bool { return s == "" },
		missing:    textMissing,
		compare:    strings.Compare,
		format:     identityString,
		parse:      parseString,
		double: func(s string) float64 {
			f, err := cast.ToFloat64E(strings.TrimSpace(s))
			if err != nil {
				return math.NaN()
			}
			return f
		},
		bytes: hashString,
	}).init()
}

func newIntFamily() *Family[int64] {
	return (&Family[int64]{
		name:       "INT",
		byteSize:   8,
		numeric:    true,
		sentinel:   math.MinInt64,
		isSentinel: func(v int64) bool { return v == math.MinInt64 },
		compare:    cmp.Compare[int64],
		format:     func(v int64) string { return strconv.FormatInt(v, 10) },
		parse:      parseInt,
		double:     func(v int64) float64 { return float64(v) },
		bytes:      func(v int64) []byte { return uint64Bytes(uint64(v)) },
	}).init()
}

func newFloatFamily() *Family[float64] {
	return (&Family[float64]{
		name:       "FLOAT",
		byteSize:   8,
		numeric:    true,
		sentinel:   math.NaN(),
		isSentinel: math.IsNaN,
		compare:    cmp.Compare[float64],
		format:     func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		unformat:   func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		parse:      func(s string) (float64, error) { return cast.ToFloat64E(strings.TrimSpace(s)) },
		double:     func(v float64) float64 { return v },
		bytes:      func(v float64) []byte { return uint64Bytes(math.Float64bits(v)) },
	}).init()
}

func newBoolFamily() *Family[bool] {
	return (&Family[bool]{
		name:     "BOOL",
		byteSize: 1,
		compare: func(a, b bool) int {
			switch {
			case a == b:
				return 0
			case !a:
				return -1
			}
			return 1
		},
		format: strconv.FormatBool,
		parse:  func(s string) (bool, error) { return cast.ToBoolE(strings.TrimSpace(s)) },
		double: func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		},
		bytes: func(v bool) []byte {
			if v {
				return []byte{1}
			}
			return []byte{0}
		},
	}).init()
}

func newDateTimeFamily() *Family[time.Time] {
	return (&Family[time.Time]{
		name:     "DATETIME",
		byteSize: 8,
		compare:  time.Time.Compare,
		format:   func(v time.Time) string { return v.Format(time.DateTime) },
		unformat: func(v time.Time) string { return v.Format(time.RFC3339Nano) },
		parse: func(s string) (time.Time, error) {
			s = strings.TrimSpace(s)
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t, nil
			}
			return cast.ToTimeInDefaultLocationE(s, time.UTC)
		},
		double: func(v time.Time) float64 { return float64(v.Unix()) },
		bytes:  func(v time.Time) []byte { return uint64Bytes(uint64(v.UnixNano())) },
	}).init()
}

func newDecimalFamily() *Family[decimal.Decimal] {
	return (&Family[decimal.Decimal]{
		name:     "DECIMAL",
		byteSize: 8,
		numeric:  true,
		sentinel: decimal.Zero,
		compare:  decimal.Decimal.Cmp,
		format:   decimal.Decimal.String,
		parse: func(s string) (decimal.Decimal, error) {
			return decimal.NewFromString(strings.TrimSpace(s))
		},
		double: decimal.Decimal.InexactFloat64,
		// The binary form is the float64 approximation; the exact value
		// round-trips through GetUnformattedString.
		bytes: func(v decimal.Decimal) []byte {
			return uint64Bytes(math.Float64bits(v.InexactFloat64()))
		},
	}).init()
}

func newUUIDFamily() *Family[uuid.UUID] {
	return (&Family[uuid.UUID]{
		name:     "UUID",
		byteSize: 16,
		sentinel: uuid.Nil,
		compare:  func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) },
		format:   uuid.UUID.String,
		parse:    func(s string) (uuid.UUID, error) { return uuid.Parse(strings.TrimSpace(s)) },
		double:   func(uuid.UUID) float64 { return math.NaN() },
		bytes:    func(v uuid.UUID) []byte { return append([]byte(nil), v[:]...) },
	}).init()
}
