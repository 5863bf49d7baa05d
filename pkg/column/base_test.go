package column_test

import (
	"errors"
	"math"
	"strings"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

type wordType struct{}

func (wordType) Name() string { return "WORD" }
func (wordType) ByteSize() int { return 0 }
func (wordType) Numeric() bool { return false }

var errNotAWord = errors.New("not a word")

var wordParser = column.NewParser(func(s string) (string, error) {
	if strings.ContainsAny(s, " \t") {
		return "", errNotAWord
	}
	return s, nil
})

// wordColumn implements only the primitives and inherits every algorithm
// from Base. Words compare case-insensitively, so equal words can still be
// told apart.
type wordColumn struct {
	column.Base[string]
	name  string
	words []*string
}

func newWords(name string, words ...string) *wordColumn {
	c := &wordColumn{name: name}
	c.Base = column.NewBase[string](c)
	for _, w := range words {
		if w == "" {
			c.AppendMissing()
			continue
		}
		c.Append(w)
	}
	return c
}

func (c *wordColumn) Name() string { return c.name }
func (c *wordColumn) SetName(name string) { c.name = name }
func (c *wordColumn) Type() column.ColumnType { return wordType{} }
func (c *wordColumn) Size() int { return len(c.words) }
func (c *wordColumn) Clear() { c.words = nil }

func (c *wordColumn) IsMissing(row int) bool {
	column.MustRow(row, len(c.words))
	return c.words[row] == nil
}

func (c *wordColumn) Get(row int) string {
	if c.IsMissing(row) {
		return ""
	}
	return *c.words[row]
}

func (c *wordColumn) Set(row int, v string) error {
	if err := column.CheckRow(row, len(c.words)); err != nil {
		return err
	}
	c.words[row] = &v
	return nil
}

func (c *wordColumn) Append(v string) { c.words = append(c.words, &v) }
func (c *wordColumn) AppendMissing() { c.words = append(c.words, nil) }

func (c *wordColumn) AppendColumn(other column.Column[string]) {
	for i := range other.Size() {
		if other.IsMissing(i) {
			c.AppendMissing()
			continue
		}
		c.Append(other.Get(i))
	}
}

func (c *wordColumn) AppendCell(s string) error { return c.AppendCellWith(s, wordParser) }

func (c *wordColumn) AppendCellWith(s string, p column.Parser[string]) error {
	if p.IsMissing(s) {
		c.AppendMissing()
		return nil
	}
	v, err := p.Parse(s)
	if err != nil {
		return &column.ParseError{Text: s, Row: c.Size(), Type: "WORD", Err: err}
	}
	c.Append(v)
	return nil
}

func (c *wordColumn) GetString(row int) string { return c.Get(row) }
func (c *wordColumn) GetUnformattedString(row int) string { return c.Get(row) }
func (c *wordColumn) GetDouble(int) float64 { return math.NaN() }
func (c *wordColumn) AsBytes(row int) []byte { return []byte(c.Get(row)) }
func (c *wordColumn) EmptyCopy() column.Column[string] { return newWords(c.name) }
func (c *wordColumn) EmptyCopyN(int) column.Column[string] { return newWords(c.name) }

func (c *wordColumn) Ordering() column.Ordering[string] {
	return func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}
