package scene

import (
	"context"
	"time"

	"github.com/matzehuels/svgkit/pkg/errors"
	"github.com/matzehuels/svgkit/pkg/observability"
	"github.com/matzehuels/svgkit/pkg/svg"
)

// Build compiles the scene into a canvas. Gradients are defined first, then
// filters, both in file order; elements are drawn last.
//
// Unknown kinds and names that do not resolve are returned as errors with
// the UNKNOWN_ELEMENT and UNKNOWN_REFERENCE codes. Everything the builder
// tolerates on its own, such as negative sizes or missing ids, goes to the
// builder's diagnostic sink instead.
func (s *Scene) Build(b *svg.Builder) (*svg.Canvas, error) {
	return s.BuildContext(context.Background(), b)
}

// BuildContext is Build with build hooks reported on ctx.
func (s *Scene) BuildContext(ctx context.Context, b *svg.Builder) (c *svg.Canvas, err error) {
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, s.Name)
	start := time.Now()
	defer func() {
		n := 0
		if c != nil {
			n = len(c.Members())
		}
		hooks.OnBuildComplete(ctx, s.Name, n, time.Since(start), err)
	}()

	if b == nil {
		b = svg.NewBuilder()
	}
	bl := &builder{
		b:         b,
		ids:       newIDGen(s.AutoIDs),
		gradients: map[string]svg.Gradient{},
		filters:   map[string]*svg.Filter{},
		nodes:     map[string]svg.Node{},
	}
	bl.canvas = bl.newCanvas(s)

	for i, g := range s.Gradients {
		if err := bl.gradient(i, g); err != nil {
			return nil, err
		}
	}
	for i, f := range s.Filters {
		if err := bl.filter(i, f); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Elements {
		el, err := bl.element(e)
		if err != nil {
			return nil, err
		}
		bl.canvas.Draw(el)
	}
	return bl.canvas, nil
}

type builder struct {
	b      *svg.Builder
	canvas *svg.Canvas
	ids    *idGen

	gradients map[string]svg.Gradient
	filters   map[string]*svg.Filter
	nodes     map[string]svg.Node // drawn elements by id, for use targets
}

func (bl *builder) newCanvas(s *Scene) *svg.Canvas {
	var opts []svg.CanvasOption
	if s.Width != nil && s.Height != nil {
		opts = append(opts, svg.Size(*s.Width, *s.Height))
	}
	if s.X != nil || s.Y != nil {
		opts = append(opts, svg.Position(val(s.X), val(s.Y)))
	}
	if len(s.ViewBox) > 0 {
		opts = append(opts, svg.ViewBox(s.ViewBox...))
	}
	if s.AspectRatio != "" {
		opts = append(opts, svg.AspectRatio(s.AspectRatio, ""))
	}
	if s.Indent != "" {
		opts = append(opts, svg.WithIndent(s.Indent))
	}

	c := bl.b.Canvas(opts...)
	// a single dimension still applies; the other is measured
	if s.Width != nil && s.Height == nil {
		c.SetWidth(*s.Width)
	}
	if s.Height != nil && s.Width == nil {
		c.SetHeight(*s.Height)
	}
	return c
}

func (bl *builder) gradient(i int, spec GradientSpec) error {
	unit := svg.Unit(spec.Unit)
	id := bl.ids.id("g", i, spec.ID)

	var g svg.Gradient
	switch spec.Kind {
	case "linear", "":
		lg := bl.b.LinearGradient().SetID(id).SetUnits(spec.Units).SetSpreadMethod(spec.Spread)
		if x, y, ok := pair(spec.Start); ok {
			lg.SetStart(x, y, unit)
		}
		if x, y, ok := pair(spec.End); ok {
			lg.SetEnd(x, y, unit)
		}
		for _, st := range spec.Stops {
			lg.AddStop(bl.stop(st))
		}
		if spec.Href != "" {
			other, err := bl.linked(spec.Href)
			if err != nil {
				return err
			}
			lg.LinkTo(other)
		}
		g = lg
	case "radial":
		rg := bl.b.RadialGradient().SetID(id).SetUnits(spec.Units).SetSpreadMethod(spec.Spread)
		if len(spec.Circle) == 3 {
			rg.SetCircle(spec.Circle[0], spec.Circle[1], spec.Circle[2], unit)
		}
		if len(spec.Focus) == 3 {
			rg.SetFocus(spec.Focus[0], spec.Focus[1], spec.Focus[2], unit)
		}
		for _, st := range spec.Stops {
			rg.AddStop(bl.stop(st))
		}
		if spec.Href != "" {
			other, err := bl.linked(spec.Href)
			if err != nil {
				return err
			}
			rg.LinkTo(other)
		}
		g = rg
	default:
		return errors.New(errors.ErrCodeUnknownElement, "gradients[%d]: unknown gradient kind %q", i, spec.Kind)
	}

	if id != "" {
		bl.gradients[id] = g
	}
	bl.canvas.Define(g)
	return nil
}

func (bl *builder) linked(href string) (svg.Gradient, error) {
	other, ok := bl.gradients[href]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownReference, "gradient %q is not defined before it is linked", href)
	}
	return other, nil
}

func (bl *builder) stop(spec StopSpec) *svg.Stop {
	s := bl.b.Stop(spec.Offset, spec.Color)
	if spec.Opacity != nil {
		s.SetOpacity(*spec.Opacity)
	}
	return s
}

func (bl *builder) lookupGradient(name string) (svg.Gradient, error) {
	g, ok := bl.gradients[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownReference, "unknown gradient %q", name)
	}
	return g, nil
}

func (bl *builder) lookupFilter(name string) (*svg.Filter, error) {
	f, ok := bl.filters[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownReference, "unknown filter %q", name)
	}
	return f, nil
}

func pair(v []float64) (float64, float64, bool) {
	if len(v) != 2 {
		return 0, 0, false
	}
	return v[0], v[1], true
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
