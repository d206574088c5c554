package markup

import "strings"

// DefaultIndent is the indent unit used when a Composer has none set.
const DefaultIndent = "  "

// Composer lays out nested markup as lines. Each nesting level adds one
// Indent unit in front of every line contributed by a child.
//
// The zero value uses [DefaultIndent].
type Composer struct {
	Indent string
}

func (c Composer) unit() string {
	if c.Indent == "" {
		return DefaultIndent
	}
	return c.Indent
}

// IndentLines prefixes every line with one indent unit, preserving order.
func (c Composer) IndentLines(lines []string) []string {
	unit := c.unit()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = unit + l
	}
	return out
}

// Nest returns open, then every child's lines indented by one unit, then
// close. Children are kept in the given order.
func (c Composer) Nest(open string, children [][]string, close string) []string {
	n := 2
	for _, ch := range children {
		n += len(ch)
	}
	out := make([]string, 0, n)
	out = append(out, open)
	for _, ch := range children {
		out = append(out, c.IndentLines(ch)...)
	}
	return append(out, close)
}

// Element returns the lines of a tag with nested children, using [Open]
// and [Close] around them.
func (c Composer) Element(name string, bags []Bag, children [][]string) []string {
	return c.Nest(Open(name, bags...), children, Close(name))
}

// Lines wraps a single-line rendering.
func Lines(s string) []string { return []string{s} }

// String joins lines with newlines.
func String(lines []string) string { return strings.Join(lines, "\n") }
