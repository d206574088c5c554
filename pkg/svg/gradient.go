package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Unit is a length unit for gradient geometry.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitPercent Unit = "%"
	UnitEm      Unit = "em"
	UnitEx      Unit = "ex"
	UnitIn      Unit = "in"
	UnitCm      Unit = "cm"
	UnitMm      Unit = "mm"
	UnitPt      Unit = "pt"
	UnitPc      Unit = "pc"
)

func withUnit(v float64, u Unit) string { return markup.FormatFloat(v) + string(u) }

// gradientBase holds what linear and radial gradients share.
type gradientBase[T any] struct {
	definition[T]
	units  string
	href   string
	spread string
	stops  []*Stop
}

func (*gradientBase[T]) gradient() {}

// AddStop appends color stops in order. A nil stop is reported and kept;
// it renders as nothing.
func (g *gradientBase[T]) AddStop(stops ...*Stop) T {
	for _, s := range stops {
		if s == nil {
			g.report(diag.InvalidGroupMember, "stops", nil)
		}
		g.stops = append(g.stops, s)
	}
	return g.self
}

// SetUnits sets gradientUnits: userSpaceOnUse or objectBoundingBox.
func (g *gradientBase[T]) SetUnits(units string) T { g.units = units; return g.self }

// SetSpreadMethod sets spreadMethod: pad, reflect or repeat.
func (g *gradientBase[T]) SetSpreadMethod(m string) T { g.spread = m; return g.self }

// LinkTo inherits stops and attributes from another gradient. Its reference
// is captured now; an unidentified gradient leaves the link empty.
func (g *gradientBase[T]) LinkTo(other Gradient) T {
	ref, ok := Href(other)
	if !ok {
		g.report(diag.NoIDOnGradientInput, "href", nil)
	}
	g.href = ref
	return g.self
}

func (g *gradientBase[T]) head() markup.Bag {
	return markup.Bag{
		g.idAttr(),
		{Key: "gradientUnits", Value: markup.Str(g.units)},
		{Key: "href", Value: markup.Str(g.href)},
		{Key: "spreadMethod", Value: markup.Str(g.spread)},
	}
}

func (g *gradientBase[T]) children() []Node { return nonNil(g.stops) }

// LinearGradient varies color along a vector.
type LinearGradient struct {
	gradientBase[*LinearGradient]
	x1, x2, y1, y2 string
}

// LinearGradient creates an empty linear gradient. Give it an id before
// using it as paint.
func (b *Builder) LinearGradient() *LinearGradient {
	g := &LinearGradient{}
	g.bind(g, "linearGradient", b.Sink())
	return g
}

// SetStart sets the start of the gradient vector.
func (g *LinearGradient) SetStart(x, y float64, u Unit) *LinearGradient {
	g.x1, g.y1 = withUnit(x, u), withUnit(y, u)
	return g
}

// SetEnd sets the end of the gradient vector.
func (g *LinearGradient) SetEnd(x, y float64, u Unit) *LinearGradient {
	g.x2, g.y2 = withUnit(x, u), withUnit(y, u)
	return g
}

func (g *LinearGradient) form() form {
	return form{
		bags: []markup.Bag{g.head(), {
			{Key: "x1", Value: markup.Str(g.x1)},
			{Key: "x2", Value: markup.Str(g.x2)},
			{Key: "y1", Value: markup.Str(g.y1)},
			{Key: "y2", Value: markup.Str(g.y2)},
		}},
		open:     true,
		children: g.children(),
	}
}

// RadialGradient varies color between a focal circle and an end circle.
type RadialGradient struct {
	gradientBase[*RadialGradient]
	cx, cy, r  string
	fx, fy, fr string
}

// RadialGradient creates an empty radial gradient.
func (b *Builder) RadialGradient() *RadialGradient {
	g := &RadialGradient{}
	g.bind(g, "radialGradient", b.Sink())
	return g
}

// SetFocus sets the focal circle the gradient starts from.
func (g *RadialGradient) SetFocus(x, y, r float64, u Unit) *RadialGradient {
	g.fx, g.fy, g.fr = withUnit(x, u), withUnit(y, u), withUnit(r, u)
	return g
}

// SetCircle sets the end circle.
func (g *RadialGradient) SetCircle(x, y, r float64, u Unit) *RadialGradient {
	g.cx, g.cy, g.r = withUnit(x, u), withUnit(y, u), withUnit(r, u)
	return g
}

func (g *RadialGradient) form() form {
	return form{
		bags: []markup.Bag{g.head(), {
			{Key: "cx", Value: markup.Str(g.cx)},
			{Key: "cy", Value: markup.Str(g.cy)},
			{Key: "r", Value: markup.Str(g.r)},
			{Key: "fx", Value: markup.Str(g.fx)},
			{Key: "fy", Value: markup.Str(g.fy)},
			{Key: "fr", Value: markup.Str(g.fr)},
		}},
		open:     true,
		children: g.children(),
	}
}

// Stop is a color stop of a gradient.
type Stop struct {
	core[*Stop]
	offset  *float64
	color   string
	opacity *float64
}

// Stop creates a color stop. offset is usually in [0, 1].
func (b *Builder) Stop(offset float64, color string) *Stop {
	s := &Stop{color: color}
	s.bind(s, "stop", b.Sink())
	return s.SetOffset(offset)
}

func (s *Stop) SetOffset(o float64) *Stop  { s.offset = s.length("offset", o); return s }
func (s *Stop) SetColor(c string) *Stop    { s.color = c; return s }
func (s *Stop) SetOpacity(o float64) *Stop { s.opacity = s.length("stop_opacity", o); return s }

func (s *Stop) form() form {
	return form{bags: []markup.Bag{{
		s.idAttr(),
		{Key: "offset", Value: s.offset},
		{Key: "stop_color", Value: markup.Str(s.color)},
		{Key: "stop_opacity", Value: s.opacity},
	}}}
}
