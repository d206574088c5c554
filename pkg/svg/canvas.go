package svg

import (
	"io"
	"strings"

	"github.com/matzehuels/svgkit/pkg/diag"
	pkgio "github.com/matzehuels/svgkit/pkg/io"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Namespace is written as the xmlns attribute of every canvas.
const Namespace = "http://www.w3.org/2000/svg"

// Canvas is the document root. It holds drawn content in insertion order
// and a separate definitions pool that is always rendered first, inside a
// defs block.
//
// Registration never fails. Structurally equal duplicates of an identified
// node are dropped; id collisions are reported but do not block anything.
type Canvas struct {
	painted[*Canvas]

	x, y          *float64
	width, height *float64
	viewBox       []float64
	aspect        string
	composer      markup.Composer

	content []Content
	defs    []Entry
}

// CanvasOption configures a Canvas at construction.
type CanvasOption func(*Canvas)

// Size sets the canvas width and height. Without it the canvas is sized to
// its content at render time.
func Size(w, h float64) CanvasOption {
	return func(c *Canvas) {
		c.width = c.length("width", w)
		c.height = c.length("height", h)
	}
}

// Position sets the x and y of a nested canvas.
func Position(x, y float64) CanvasOption {
	return func(c *Canvas) {
		c.x = c.coord("x", x)
		c.y = c.coord("y", y)
	}
}

// ViewBox sets the viewBox attribute, usually min-x min-y width height.
func ViewBox(values ...float64) CanvasOption {
	return func(c *Canvas) { c.SetViewBox(values...) }
}

// AspectRatio sets preserveAspectRatio, e.g. AspectRatio("xMidYMid", "meet").
// strategy may be empty.
func AspectRatio(align, strategy string) CanvasOption {
	return func(c *Canvas) { c.SetAspectRatio(align, strategy) }
}

// WithIndent sets the indent unit used by String and WriteTo.
func WithIndent(unit string) CanvasOption {
	return func(c *Canvas) { c.composer = markup.Composer{Indent: unit} }
}

// Canvas creates a document root.
func (b *Builder) Canvas(opts ...CanvasOption) *Canvas {
	c := &Canvas{}
	c.bind(c, "svg", b.Sink())
	for _, opt := range opts {
		opt(c)
	}
	if c.width == nil || c.height == nil {
		c.report(diag.NoCanvasDims, "", nil)
	}
	return c
}

// SetX sets the x position of a nested canvas.
func (c *Canvas) SetX(x float64) *Canvas { c.x = c.coord("x", x); return c }

// SetY sets the y position of a nested canvas.
func (c *Canvas) SetY(y float64) *Canvas { c.y = c.coord("y", y); return c }

// SetWidth sets the document width. A negative width is reported but
// still written.
func (c *Canvas) SetWidth(w float64) *Canvas { c.width = c.length("width", w); return c }

// SetHeight sets the document height. A negative height is reported but
// still written.
func (c *Canvas) SetHeight(h float64) *Canvas { c.height = c.length("height", h); return c }

// SetViewBox sets the viewBox. No values leaves it unchanged.
func (c *Canvas) SetViewBox(values ...float64) *Canvas {
	if len(values) > 0 {
		c.viewBox = values
	}
	return c
}

// SetAspectRatio sets preserveAspectRatio.
func (c *Canvas) SetAspectRatio(align, strategy string) *Canvas {
	c.aspect = strings.TrimSpace(align + " " + strategy)
	return c
}

// Draw appends nodes to the content list. A node with an id is skipped
// when a structurally equal node is already drawn. Any other node sharing
// its id, drawn or defined, is reported as a collision.
func (c *Canvas) Draw(nodes ...Content) *Canvas {
	for _, n := range nodes {
		if isNil(n) {
			c.report(diag.InvalidGroupMember, "content", nil)
		}
		if c.shouldDraw(n) {
			c.content = append(c.content, n)
		}
	}
	return c
}

// Define adds entries to the definitions pool. An entry without an id is
// reported and still added. An entry with an id is skipped when a
// structurally equal entry is already defined. The first other node sharing
// its id is reported as a collision; the entry is added regardless.
func (c *Canvas) Define(entries ...Entry) *Canvas {
	for _, e := range entries {
		if c.shouldDefine(e) {
			c.defs = append(c.defs, e)
		}
	}
	return c
}

func (c *Canvas) shouldDraw(n Content) bool {
	ref, ok := Href(n)
	if !ok {
		return true
	}
	for _, existing := range c.content {
		if Equal(existing, n) {
			return false
		}
	}
	for _, existing := range c.registered() {
		if r, ok := Href(existing); ok && r == ref {
			c.collision(n, existing, ref)
		}
	}
	return true
}

func (c *Canvas) shouldDefine(e Entry) bool {
	ref, ok := Href(e)
	if !ok {
		tag := ""
		if !isNil(e) {
			tag = e.Tag()
		}
		c.sink.Report(diag.Diagnostic{Kind: diag.NoIDOnDefinition, Element: tag})
		return true
	}
	for _, existing := range c.defs {
		if Equal(existing, e) {
			return false
		}
	}
	for _, existing := range c.registered() {
		if r, ok := Href(existing); ok && r == ref {
			c.collision(e, existing, ref)
			return true
		}
	}
	return true
}

func (c *Canvas) registered() []Node {
	all := make([]Node, 0, len(c.content)+len(c.defs))
	for _, n := range c.content {
		all = append(all, n)
	}
	for _, e := range c.defs {
		all = append(all, e)
	}
	return all
}

func (c *Canvas) collision(n, existing Node, ref string) {
	c.sink.Report(diag.Diagnostic{
		Kind:     diag.RepeatedID,
		Element:  n.Tag(),
		Property: existing.Tag(),
		Other:    ref,
	})
}

// Members returns the drawn content in order.
func (c *Canvas) Members() []Content {
	out := make([]Content, len(c.content))
	copy(out, c.content)
	return out
}

// Definitions returns the definitions pool in order.
func (c *Canvas) Definitions() []Entry {
	out := make([]Entry, len(c.defs))
	copy(out, c.defs)
	return out
}

// MaxX is the largest x reached by any drawn node, or 0 when empty.
func (c *Canvas) MaxX() float64 { return maxOver(c.content, Content.MaxX) }

// MaxY is the largest y reached by any drawn node, or 0 when empty.
func (c *Canvas) MaxY() float64 { return maxOver(c.content, Content.MaxY) }

func maxOver(nodes []Content, f func(Content) float64) float64 {
	vals := make([]float64, 0, len(nodes))
	for _, n := range nodes {
		if isNil(n) {
			vals = append(vals, 0)
			continue
		}
		vals = append(vals, f(n))
	}
	return maxOf(vals...)
}

func (c *Canvas) form() form {
	var viewBox any
	if len(c.viewBox) > 0 {
		viewBox = markup.Join(c.viewBox, " ")
	}
	width, height := any(c.width), any(c.height)
	if c.width == nil {
		width = c.MaxX()
	}
	if c.height == nil {
		height = c.MaxY()
	}

	children := make([]Node, 0, len(c.content)+1)
	if len(c.defs) > 0 {
		children = append(children, &defsBlock{entries: c.defs})
	}
	children = append(children, nonNil(c.content)...)

	return form{
		bags: []markup.Bag{{
			{Key: "xmlns", Value: Namespace},
			c.idAttr(),
			{Key: "x", Value: c.x},
			{Key: "y", Value: c.y},
			{Key: "viewBox", Value: viewBox},
			{Key: "width", Value: width},
			{Key: "height", Value: height},
			{Key: "preserveAspectRatio", Value: markup.Str(c.aspect)},
			c.filterAttr(),
		}, c.paint.bag()},
		open:     true,
		children: children,
	}
}

// String renders the document using the canvas indent unit.
func (c *Canvas) String() string {
	return markup.String(c.Markup(c.composer))
}

// WriteTo writes the rendered document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// Export writes the document to path. Failures are reported to the
// diagnostic sink as ExportFailed and never returned.
func (c *Canvas) Export(path string) {
	if err := pkgio.Export(path, c); err != nil {
		c.sink.Report(diag.Diagnostic{Kind: diag.ExportFailed, Element: c.tag, Other: path, Err: err})
	}
}

// defsBlock renders the definitions pool.
type defsBlock struct {
	entries []Entry
}

func (*defsBlock) Tag() string { return "defs" }
func (*defsBlock) ID() string  { return "" }

func (d *defsBlock) Markup(c markup.Composer) []string { return render(d, c) }

func (d *defsBlock) form() form {
	return form{open: true, children: nonNil(d.entries)}
}
