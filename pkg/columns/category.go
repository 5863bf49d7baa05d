package columns

import (
	"cmp"
	"encoding/binary"
	"math"
	"strings"
)

// CategoryColumn is a column of a Categorical family.
type CategoryColumn = Dense[string]

// Categorical returns a CATEGORY family whose values order by their position
// in categories. Values outside the list are accepted and order after every
// known category, lexicographically among themselves. Empty strings are
// missing.
func Categorical(categories ...string) *Family[string] {
	ordinal := make(map[string]int, len(categories))
	known := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, dup := ordinal[c]; dup || c == "" {
			continue
		}
		ordinal[c] = len(known)
		known = append(known, c)
	}
	rank := func(s string) (int, bool) {
		i, ok := ordinal[s]
		return i, ok
	}
	return (&Family[string]{
		name:       "CATEGORY",
		byteSize:   4,
		isSentinel: func(s string) bool { return s == "" },
		missing:    textMissing,
		compare: func(a, b string) int {
			ra, okA := rank(a)
			rb, okB := rank(b)
			switch {
			case okA && okB:
				return cmp.Compare(ra, rb)
			case okA:
				return -1
			case okB:
				return 1
			}
			return strings.Compare(a, b)
		},
		format: identityString,
		parse:  parseString,
		double: func(s string) float64 {
			if i, ok := rank(s); ok {
				return float64(i)
			}
			return math.NaN()
		},
		bytes: func(s string) []byte {
			code := uint32(math.MaxUint32)
			if i, ok := rank(s); ok {
				code = uint32(i)
			}
			return binary.BigEndian.AppendUint32(make([]byte, 0, 4), code)
		},
		categories: known,
	}).init()
}

// NewCategoryColumn returns a column of family f. f must come from
// Categorical.
func NewCategoryColumn(f *Family[string], name string, values ...string) *CategoryColumn {
	return f.New(name, values...)
}
