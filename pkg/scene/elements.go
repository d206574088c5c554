package scene

import (
	"unicode/utf8"

	"github.com/matzehuels/svgkit/pkg/errors"
	"github.com/matzehuels/svgkit/pkg/svg"
)

// paintable is a drawable element with id and paint setters returning its
// own type.
type paintable[T any] interface {
	svg.Content
	SetID(string) T
	SetFill(string, ...svg.FillOption) T
	SetFillGradient(svg.Gradient) T
	SetBorder(string, ...svg.StrokeOption) T
	SetBorderGradient(svg.Gradient) T
	SetBorderDashing(...float64) T
}

// identifiable is a drawable element without paint.
type identifiable[T any] interface {
	svg.Content
	SetID(string) T
}

func (bl *builder) element(spec ElementSpec) (svg.Content, error) {
	b := bl.b
	switch spec.Kind {
	case "rect":
		r := b.Rect(val(spec.X), val(spec.Y), val(spec.Width), val(spec.Height))
		if spec.RX != nil {
			r.SetRadiusX(*spec.RX)
		}
		if spec.RY != nil {
			r.SetRadiusY(*spec.RY)
		}
		return decorate(bl, r, spec)
	case "circle":
		return decorate(bl, b.Circle(val(spec.CX), val(spec.CY), val(spec.R)), spec)
	case "ellipse":
		return decorate(bl, b.Ellipse(val(spec.CX), val(spec.CY), val(spec.RX), val(spec.RY)), spec)
	case "line":
		return decorate(bl, b.Line(val(spec.X1), val(spec.Y1), val(spec.X2), val(spec.Y2)), spec)
	case "polygon", "polyline":
		return bl.poly(spec)
	case "path":
		return bl.path(spec)
	case "text":
		return bl.text(spec)
	case "image":
		img := b.Image(spec.Href, val(spec.Width), val(spec.Height))
		if spec.X != nil {
			img.SetX(*spec.X)
		}
		if spec.Y != nil {
			img.SetY(*spec.Y)
		}
		return identify(bl, img, spec)
	case "use":
		return bl.use(spec)
	case "group", "g":
		g := b.Group()
		for _, child := range spec.Elements {
			el, err := bl.element(child)
			if err != nil {
				return nil, err
			}
			g.Add(el)
		}
		return decorate(bl, g, spec)
	}
	return nil, errors.New(errors.ErrCodeUnknownElement, "unknown element kind %q", spec.Kind)
}

func (bl *builder) poly(spec ElementSpec) (svg.Content, error) {
	if len(spec.Points) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s needs at least 2 points, got %d", spec.Kind, len(spec.Points))
	}
	p0, p1 := spec.Points[0], spec.Points[1]
	if spec.Kind == "polygon" {
		pg := bl.b.Polygon(p0[0], p0[1], p1[0], p1[1])
		for _, p := range spec.Points[2:] {
			pg.AddPoint(p[0], p[1])
		}
		return decorate(bl, pg, spec)
	}
	pl := bl.b.Polyline(p0[0], p0[1], p1[0], p1[1])
	for _, p := range spec.Points[2:] {
		pl.AddPoint(p[0], p[1])
	}
	return decorate(bl, pl, spec)
}

func (bl *builder) path(spec ElementSpec) (svg.Content, error) {
	p := bl.b.Path(val(spec.X), val(spec.Y))
	for i, cmd := range spec.Commands {
		if utf8.RuneCountInString(cmd.Op) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "commands[%d]: op must be a single letter, got %q", i, cmd.Op)
		}
		op, _ := utf8.DecodeRuneInString(cmd.Op)
		p.Command(op, cmd.Args...)
	}
	return decorate(bl, p, spec)
}

func (bl *builder) text(spec ElementSpec) (svg.Content, error) {
	t := bl.b.Text(val(spec.X), val(spec.Y), spec.Text)
	for _, ls := range spec.Lines {
		line := bl.b.Text(val(ls.X), val(ls.Y), ls.Text)
		if _, err := decorate(bl, line, ls); err != nil {
			return nil, err
		}
		t.AddLine(line)
	}
	return decorate(bl, t, spec)
}

func (bl *builder) use(spec ElementSpec) (svg.Content, error) {
	var u *svg.Use
	switch {
	case spec.Target != "":
		target, ok := bl.nodes[spec.Target]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownReference, "use target %q is not drawn before it is used", spec.Target)
		}
		u = bl.b.Use(target)
	default:
		u = bl.b.UseRef(spec.Href)
	}
	if spec.X != nil {
		u.SetX(*spec.X)
	}
	if spec.Y != nil {
		u.SetY(*spec.Y)
	}
	if spec.Width != nil {
		u.SetWidth(*spec.Width)
	}
	if spec.Height != nil {
		u.SetHeight(*spec.Height)
	}
	return identify(bl, u, spec)
}

// decorate applies id, paint and filter from spec to el.
func decorate[T paintable[T]](bl *builder, el T, spec ElementSpec) (svg.Content, error) {
	p := spec.Paint
	var fill []svg.FillOption
	if p.FillOpacity != nil {
		fill = append(fill, svg.FillOpacity(*p.FillOpacity))
	}
	if p.FillRule != "" {
		fill = append(fill, svg.FillRule(p.FillRule))
	}
	if p.Fill != "" || len(fill) > 0 {
		el.SetFill(p.Fill, fill...)
	}
	if p.FillGradient != "" {
		g, err := bl.lookupGradient(p.FillGradient)
		if err != nil {
			return nil, err
		}
		el.SetFillGradient(g)
	}
	var stroke []svg.StrokeOption
	if p.StrokeWidth != nil {
		stroke = append(stroke, svg.StrokeWidth(*p.StrokeWidth))
	}
	if p.StrokeOpacity != nil {
		stroke = append(stroke, svg.StrokeOpacity(*p.StrokeOpacity))
	}
	if p.LineCap != "" {
		stroke = append(stroke, svg.LineCap(p.LineCap))
	}
	if p.LineJoin != "" {
		stroke = append(stroke, svg.LineJoin(p.LineJoin))
	}
	if p.Stroke != "" || len(stroke) > 0 {
		el.SetBorder(p.Stroke, stroke...)
	}
	if p.StrokeGradient != "" {
		g, err := bl.lookupGradient(p.StrokeGradient)
		if err != nil {
			return nil, err
		}
		el.SetBorderGradient(g)
	}
	el.SetBorderDashing(p.Dash...)
	return identify(bl, el, spec)
}

// identify applies id and filter from spec to el.
func identify[T identifiable[T]](bl *builder, el T, spec ElementSpec) (svg.Content, error) {
	if spec.ID != "" {
		el.SetID(spec.ID)
		bl.nodes[spec.ID] = el
	}
	if spec.Filter != "" {
		f, err := bl.lookupFilter(spec.Filter)
		if err != nil {
			return nil, err
		}
		f.ApplyTo(el, bl.canvas)
	}
	return el, nil
}
