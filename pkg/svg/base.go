package svg

import (
	"math"

	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// core is embedded by every element. T is the concrete pointer type so
// that setters can return it and chains keep their static type.
type core[T any] struct {
	self T
	tag  string
	id   string
	sink diag.Sink
}

func (b *core[T]) bind(self T, tag string, sink diag.Sink) {
	if sink == nil {
		sink = diag.Discard
	}
	b.self, b.tag, b.sink = self, tag, sink
}

// Tag returns the element name.
func (b *core[T]) Tag() string { return b.tag }

// ID returns the identifier, or "" when unset.
func (b *core[T]) ID() string { return b.id }

// SetID sets the identifier. References already captured by other elements
// keep the old value.
func (b *core[T]) SetID(id string) T {
	b.id = id
	return b.self
}

// Markup renders the element as lines.
func (b *core[T]) Markup(c markup.Composer) []string {
	return render(any(b.self).(Node), c)
}

// String renders the element with the default composer.
func (b *core[T]) String() string {
	return markup.String(b.Markup(markup.Composer{}))
}

func (b *core[T]) report(k diag.Kind, prop string, v any) {
	b.sink.Report(diag.Diagnostic{Kind: k, Element: b.tag, Property: prop, Value: v})
}

// length validates a value that must not be negative. NaN is dropped;
// negative values are reported but kept.
func (b *core[T]) length(prop string, v float64) *float64 {
	if math.IsNaN(v) {
		b.report(diag.InvalidValue, prop, v)
		return nil
	}
	if v < 0 {
		b.report(diag.InvalidValue, prop, v)
	}
	return &v
}

// coord validates a coordinate. Negative coordinates are fine.
func (b *core[T]) coord(prop string, v float64) *float64 {
	if math.IsNaN(v) {
		b.report(diag.InvalidValue, prop, v)
		return nil
	}
	return &v
}

// optLength is length for optional sub-attributes: nil passes silently.
func (b *core[T]) optLength(prop string, v *float64) *float64 {
	if v == nil {
		return nil
	}
	return b.length(prop, *v)
}

func (b *core[T]) idAttr() markup.Attr { return markup.Attr{Key: "id", Value: markup.Str(b.id)} }

// definition is embedded by gradients and filters.
type definition[T any] struct {
	core[T]
}

func (*definition[T]) entry()        {}
func (*definition[T]) isDefinition() {}

// element is embedded by every drawable node.
type element[T any] struct {
	core[T]
	filter string
}

func (*element[T]) entry() {}

// FilterRef returns the captured filter reference, or "".
func (e *element[T]) FilterRef() string { return e.filter }

// UseFilter registers f in the canvas definitions pool and points this
// element at it. A filter without an id is still registered; the element's
// filter attribute is then left empty.
func (e *element[T]) UseFilter(f *Filter, c *Canvas) T {
	e.applyFilter(f, c)
	return e.self
}

func (e *element[T]) applyFilter(f *Filter, c *Canvas) {
	if f == nil {
		e.report(diag.UnnamedFilter, "filter", nil)
		e.filter = ""
		return
	}
	if c == nil {
		e.report(diag.UnregisteredFilter, "filter", f.ID())
		e.filter = ""
		return
	}
	c.Define(f)
	ref, ok := Href(f)
	if !ok {
		e.report(diag.UnnamedFilter, "filter", nil)
	}
	e.filter = urlRef(ref, ok)
}

func (e *element[T]) filterAttr() markup.Attr {
	return markup.Attr{Key: "filter", Value: markup.Str(e.filter)}
}

// painted adds stroke and fill to an element.
type painted[T any] struct {
	element[T]
	paint paint
}

type paint struct {
	stroke        string
	strokeWidth   *float64
	strokeOpacity *float64
	lineCap       string
	lineJoin      string
	dashArray     []float64
	fill          string
	fillOpacity   *float64
	fillRule      string
}

func (p paint) bag() markup.Bag {
	var dash any
	if len(p.dashArray) > 0 {
		dash = markup.Join(p.dashArray, ",")
	}
	return markup.Bag{
		{Key: "stroke", Value: markup.Str(p.stroke)},
		{Key: "stroke_width", Value: p.strokeWidth},
		{Key: "stroke_opacity", Value: p.strokeOpacity},
		{Key: "stroke_linecap", Value: markup.Str(p.lineCap)},
		{Key: "stroke_linejoin", Value: markup.Str(p.lineJoin)},
		{Key: "stroke_dasharray", Value: dash},
		{Key: "fill", Value: markup.Str(p.fill)},
		{Key: "fill_opacity", Value: p.fillOpacity},
		{Key: "fill_rule", Value: markup.Str(p.fillRule)},
	}
}

type strokeOpts struct {
	width, opacity *float64
	cap, join      string
}

// StrokeOption configures SetBorder.
type StrokeOption func(*strokeOpts)

// StrokeWidth sets stroke-width.
func StrokeWidth(w float64) StrokeOption { return func(o *strokeOpts) { o.width = &w } }

// StrokeOpacity sets stroke-opacity.
func StrokeOpacity(v float64) StrokeOption { return func(o *strokeOpts) { o.opacity = &v } }

// LineCap sets stroke-linecap: butt, round or square.
func LineCap(c string) StrokeOption { return func(o *strokeOpts) { o.cap = c } }

// LineJoin sets stroke-linejoin: miter, round or bevel.
func LineJoin(j string) StrokeOption { return func(o *strokeOpts) { o.join = j } }

type fillOpts struct {
	opacity *float64
	rule    string
}

// FillOption configures SetFill.
type FillOption func(*fillOpts)

// FillOpacity sets fill-opacity.
func FillOpacity(v float64) FillOption { return func(o *fillOpts) { o.opacity = &v } }

// FillRule sets fill-rule: nonzero or evenodd.
func FillRule(r string) FillOption { return func(o *fillOpts) { o.rule = r } }

// SetBorder sets a solid stroke. Stroke sub-attributes not given in opts
// are cleared.
func (p *painted[T]) SetBorder(color string, opts ...StrokeOption) T {
	var o strokeOpts
	for _, opt := range opts {
		opt(&o)
	}
	p.paint.stroke = color
	p.paint.strokeWidth = p.optLength("stroke_width", o.width)
	p.paint.strokeOpacity = p.optLength("stroke_opacity", o.opacity)
	p.paint.lineCap = o.cap
	p.paint.lineJoin = o.join
	return p.self
}

// SetBorderGradient strokes with a gradient. The gradient's id is captured
// now; an unidentified gradient leaves the stroke empty.
func (p *painted[T]) SetBorderGradient(g Gradient) T {
	p.paint.stroke = p.gradientRef("stroke", g)
	return p.self
}

// SetBorderDashing sets stroke-dasharray. No values leaves it unchanged.
func (p *painted[T]) SetBorderDashing(values ...float64) T {
	if len(values) > 0 {
		p.paint.dashArray = values
	}
	return p.self
}

// SetFill sets a solid fill.
func (p *painted[T]) SetFill(color string, opts ...FillOption) T {
	var o fillOpts
	for _, opt := range opts {
		opt(&o)
	}
	p.paint.fill = color
	p.paint.fillOpacity = p.optLength("fill_opacity", o.opacity)
	p.paint.fillRule = o.rule
	return p.self
}

// SetFillGradient fills with a gradient, capturing its id now.
func (p *painted[T]) SetFillGradient(g Gradient) T {
	p.paint.fill = p.gradientRef("fill", g)
	return p.self
}

func (p *painted[T]) gradientRef(prop string, g Gradient) string {
	ref, ok := Href(g)
	if !ok {
		p.report(diag.UnnamedGradient, prop, nil)
	}
	return urlRef(ref, ok)
}

func maxOf(vals ...float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	if math.IsInf(m, -1) {
		return 0
	}
	return m
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
