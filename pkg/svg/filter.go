package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Standard effect inputs that need no producing effect.
const (
	SourceGraphic   = "SourceGraphic"
	SourceAlpha     = "SourceAlpha"
	BackgroundImage = "BackgroundImage"
	BackgroundAlpha = "BackgroundAlpha"
	FillPaint       = "FillPaint"
	StrokePaint     = "StrokePaint"
)

// Filter is a named graph of effects. Effects run in the order they were
// added; each may consume the result of earlier ones by name.
type Filter struct {
	definition[*Filter]
	x, y, width, height *float64
	filterUnits         string
	primitiveUnits      string
	effects             []Effect
}

// Filter creates a filter whose id is name. An empty name is reported; the
// filter still works but nothing can reference it.
func (b *Builder) Filter(name string) *Filter {
	f := &Filter{}
	f.bind(f, "filter", b.Sink())
	if name == "" {
		f.report(diag.NoFilterName, "id", nil)
	}
	return f.SetID(name)
}

func (f *Filter) SetX(x float64) *Filter      { f.x = f.coord("x", x); return f }
func (f *Filter) SetY(y float64) *Filter      { f.y = f.coord("y", y); return f }
func (f *Filter) SetWidth(w float64) *Filter  { f.width = f.length("width", w); return f }
func (f *Filter) SetHeight(h float64) *Filter { f.height = f.length("height", h); return f }

// SetFilterUnits sets filterUnits: userSpaceOnUse or objectBoundingBox.
func (f *Filter) SetFilterUnits(u string) *Filter { f.filterUnits = u; return f }

// SetPrimitiveUnits sets primitiveUnits.
func (f *Filter) SetPrimitiveUnits(u string) *Filter { f.primitiveUnits = u; return f }

// Add appends effects to the graph. A nil effect is reported and kept; it
// renders as nothing.
func (f *Filter) Add(effects ...Effect) *Filter {
	for _, e := range effects {
		if isNil(e) {
			f.report(diag.InvalidGroupMember, "effects", nil)
		}
		f.effects = append(f.effects, e)
	}
	return f
}

// Effects returns the effects in order, including nil ones.
func (f *Filter) Effects() []Effect {
	out := make([]Effect, len(f.effects))
	copy(out, f.effects)
	return out
}

// ApplyTo is the filter-side spelling of el.UseFilter(f, c). A nil element
// is ignored.
func (f *Filter) ApplyTo(el Content, c *Canvas) *Filter {
	if !isNil(el) {
		el.applyFilter(f, c)
	}
	return f
}

func (f *Filter) form() form {
	return form{
		bags: []markup.Bag{{
			f.idAttr(),
			{Key: "x", Value: f.x},
			{Key: "y", Value: f.y},
			{Key: "width", Value: f.width},
			{Key: "height", Value: f.height},
			{Key: "filterUnits", Value: markup.Str(f.filterUnits)},
			{Key: "primitiveUnits", Value: markup.Str(f.primitiveUnits)},
		}},
		open:     true,
		children: nonNil(f.effects),
	}
}

// Effect is a filter primitive.
type Effect interface {
	Node
	// Result is the name under which later effects consume this one's
	// output, or "".
	Result() string

	effect()
}

// captureInput stores the result name of in at dst. A nil effect is
// reported and dst is left alone; an unnamed one is reported and dst is
// cleared.
func (b *core[T]) captureInput(prop string, in Effect, dst *string) {
	if isNil(in) {
		b.report(diag.UndefinedInput, prop, nil)
		return
	}
	name, ok := ResultName(in)
	if !ok {
		b.report(diag.NoResultOnInput, prop, nil)
	}
	*dst = name
}

// primitive holds the subregion and result shared by every effect.
type primitive[T any] struct {
	core[T]
	x, y, width, height *float64
	result              string
}

func (*primitive[T]) effect() {}

// Result returns the result name.
func (p *primitive[T]) Result() string { return p.result }

// SetResult names this effect's output.
func (p *primitive[T]) SetResult(name string) T { p.result = name; return p.self }

func (p *primitive[T]) SetX(x float64) T      { p.x = p.coord("x", x); return p.self }
func (p *primitive[T]) SetY(y float64) T      { p.y = p.coord("y", y); return p.self }
func (p *primitive[T]) SetWidth(w float64) T  { p.width = p.length("width", w); return p.self }
func (p *primitive[T]) SetHeight(h float64) T { p.height = p.length("height", h); return p.self }

func (p *primitive[T]) head() markup.Bag {
	return markup.Bag{
		{Key: "x", Value: p.x},
		{Key: "y", Value: p.y},
		{Key: "width", Value: p.width},
		{Key: "height", Value: p.height},
		{Key: "result", Value: markup.Str(p.result)},
	}
}

// single is an effect with one input.
type single[T any] struct {
	primitive[T]
	in string
}

// SetInput consumes the output of another effect, captured by result name
// now.
func (s *single[T]) SetInput(in Effect) T {
	s.captureInput("in", in, &s.in)
	return s.self
}

// SetInputSource consumes a standard input such as SourceGraphic.
func (s *single[T]) SetInputSource(name string) T { s.in = name; return s.self }

func (s *single[T]) head() markup.Bag {
	return append(s.primitive.head(), markup.Attr{Key: "in", Value: markup.Str(s.in)})
}

// dual is an effect with two inputs.
type dual[T any] struct {
	single[T]
	in2 string
}

// SetInput2 sets the second input from another effect.
func (d *dual[T]) SetInput2(in Effect) T {
	d.captureInput("in2", in, &d.in2)
	return d.self
}

// SetInput2Source sets the second input to a standard input.
func (d *dual[T]) SetInput2Source(name string) T { d.in2 = name; return d.self }

func (d *dual[T]) head() markup.Bag {
	return append(d.single.head(), markup.Attr{Key: "in2", Value: markup.Str(d.in2)})
}
