package table

// TextColumn is a read-only column of preformatted strings, used for
// derived tables such as summaries.
type TextColumn struct {
	name   string
	values []string
}

// NewTextColumn returns a TextColumn holding values.
func NewTextColumn(name string, values ...string) *TextColumn {
	return &TextColumn{name: name, values: append([]string(nil), values...)}
}

func (c *TextColumn) Name() string { return c.name }

func (c *TextColumn) Size() int { return len(c.values) }

func (c *TextColumn) GetString(row int) string { return c.values[row] }
