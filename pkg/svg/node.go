package svg

import (
	"reflect"

	"github.com/matzehuels/svgkit/pkg/markup"
)

// Node is anything that renders to markup. The set of node types is closed:
// every implementation lives in this package.
type Node interface {
	// Tag is the element name, e.g. "rect". Each concrete type renders
	// exactly one tag.
	Tag() string
	// ID is the element's identifier, or "" when unset.
	ID() string
	// Markup renders the node as lines, nesting children with c.
	Markup(c markup.Composer) []string

	form() form
}

// Measurable nodes report the largest coordinate they reach on each axis.
// Nodes whose extent cannot be known (use, text) report 0.
type Measurable interface {
	MaxX() float64
	MaxY() float64
}

// Entry is a node the canvas accepts into its definitions pool: either a
// Definition or a Content node.
type Entry interface {
	Node
	entry()
}

// Content nodes are drawable, contribute to the canvas size and can have a
// filter applied.
type Content interface {
	Entry
	Measurable
	// FilterRef returns the captured filter reference, e.g. "url(#blur)".
	FilterRef() string

	applyFilter(f *Filter, c *Canvas)
}

// Definition nodes are only referenced, never drawn: gradients and filters.
type Definition interface {
	Entry
	isDefinition()
}

// Structural nodes are content nodes that hold other content.
type Structural interface {
	Content
	Members() []Content
}

// Gradient is a paint server usable with SetFillGradient and friends.
type Gradient interface {
	Definition
	gradient()
}

var (
	_ Content    = (*Rect)(nil)
	_ Content    = (*Circle)(nil)
	_ Content    = (*Ellipse)(nil)
	_ Content    = (*Line)(nil)
	_ Content    = (*Polygon)(nil)
	_ Content    = (*Polyline)(nil)
	_ Content    = (*Path)(nil)
	_ Content    = (*Text)(nil)
	_ Content    = (*Image)(nil)
	_ Content    = (*Use)(nil)
	_ Structural = (*Group)(nil)
	_ Structural = (*Canvas)(nil)
	_ Gradient   = (*LinearGradient)(nil)
	_ Gradient   = (*RadialGradient)(nil)
	_ Definition = (*Filter)(nil)
)

// form is the explicit field list of a node: its attribute bags, optional
// text body and nested children. Rendering and structural equality are both
// derived from it.
type form struct {
	bags     []markup.Bag
	text     string
	hasText  bool
	open     bool // closing tag always on its own line
	children []Node
}

// isNil reports whether v is nil or holds a nil pointer, such as a
// (*Rect)(nil) passed as Content. Both mean an undefined node.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Href returns the reference token for n, "#" followed by its id. It returns
// false when n is nil or has no id.
func Href(n Node) (string, bool) {
	if isNil(n) || n.ID() == "" {
		return "", false
	}
	return "#" + n.ID(), true
}

// ResultName returns the result name of an effect, the token other effects
// use to consume its output. It returns false when e is nil or unnamed.
func ResultName(e Effect) (string, bool) {
	if isNil(e) || e.Result() == "" {
		return "", false
	}
	return e.Result(), true
}

// Render returns the markup of n with the default indent unit.
func Render(n Node) string {
	if isNil(n) {
		return ""
	}
	return markup.String(n.Markup(markup.Composer{}))
}

func urlRef(ref string, ok bool) string {
	if !ok {
		return ""
	}
	return "url(" + ref + ")"
}

func render(n Node, c markup.Composer) []string {
	f := n.form()
	tag := n.Tag()

	if len(f.children) == 0 && !f.open {
		if f.hasText {
			return markup.Lines(markup.Assemble(tag, f.bags, markup.WithContent(f.text)))
		}
		return markup.Lines(markup.Assemble(tag, f.bags))
	}

	open := markup.Assemble(tag, f.bags, markup.WithContent(f.text), markup.LeaveOpen())
	children := make([][]string, 0, len(f.children))
	for _, ch := range f.children {
		children = append(children, ch.Markup(c))
	}
	return c.Nest(open, children, markup.Close(tag))
}

// nonNil drops nil members so rendering and equality skip them.
func nonNil[N Node](nodes []N) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}
