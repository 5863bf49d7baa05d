package column

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Title returns the heading Print starts with.
func Title(c Any) string {
	return "Column: " + c.Name() + "\n"
}

// ColumnWidth returns the widest of the name and every rendered row, counted
// in user-perceived characters.
func ColumnWidth(c Any) int {
	width := uniseg.GraphemeClusterCount(c.Name())
	for i := range c.Size() {
		width = max(width, uniseg.GraphemeClusterCount(c.GetString(i)))
	}
	return width
}

// Print renders the title followed by one row per line.
func Print(c Any) string {
	var b strings.Builder
	b.WriteString(c.Title())
	for i := range c.Size() {
		b.WriteString(c.GetString(i))
		b.WriteByte('\n')
	}
	return b.String()
}
