package svg

import (
	"math"
	"strings"

	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Rect is a rectangle, optionally with rounded corners.
type Rect struct {
	painted[*Rect]
	x, y, width, height *float64
	rx, ry, pathLength  *float64
}

// Rect creates a rectangle with its top-left corner at (x, y).
func (b *Builder) Rect(x, y, width, height float64) *Rect {
	r := &Rect{}
	r.bind(r, "rect", b.Sink())
	return r.SetX(x).SetY(y).SetWidth(width).SetHeight(height)
}

func (r *Rect) SetX(x float64) *Rect          { r.x = r.coord("x", x); return r }
func (r *Rect) SetY(y float64) *Rect          { r.y = r.coord("y", y); return r }
func (r *Rect) SetWidth(w float64) *Rect      { r.width = r.length("width", w); return r }
func (r *Rect) SetHeight(h float64) *Rect     { r.height = r.length("height", h); return r }
func (r *Rect) SetRadiusX(rx float64) *Rect   { r.rx = r.length("rx", rx); return r }
func (r *Rect) SetRadiusY(ry float64) *Rect   { r.ry = r.length("ry", ry); return r }
func (r *Rect) SetPathLength(l float64) *Rect { r.pathLength = r.length("pathLength", l); return r }

func (r *Rect) MaxX() float64 { return val(r.x) + val(r.width) }
func (r *Rect) MaxY() float64 { return val(r.y) + val(r.height) }

func (r *Rect) form() form {
	return form{bags: []markup.Bag{{
		r.idAttr(),
		{Key: "x", Value: r.x},
		{Key: "y", Value: r.y},
		{Key: "width", Value: r.width},
		{Key: "height", Value: r.height},
		{Key: "rx", Value: r.rx},
		{Key: "ry", Value: r.ry},
		{Key: "pathLength", Value: r.pathLength},
		r.filterAttr(),
	}, r.paint.bag()}}
}

// Circle is a circle around (cx, cy).
type Circle struct {
	painted[*Circle]
	cx, cy, r, pathLength *float64
}

// Circle creates a circle centered on (cx, cy).
func (b *Builder) Circle(cx, cy, r float64) *Circle {
	c := &Circle{}
	c.bind(c, "circle", b.Sink())
	return c.SetCenterX(cx).SetCenterY(cy).SetRadius(r)
}

func (c *Circle) SetCenterX(x float64) *Circle    { c.cx = c.coord("cx", x); return c }
func (c *Circle) SetCenterY(y float64) *Circle    { c.cy = c.coord("cy", y); return c }
func (c *Circle) SetRadius(r float64) *Circle     { c.r = c.length("r", r); return c }
func (c *Circle) SetPathLength(l float64) *Circle { c.pathLength = c.length("pathLength", l); return c }

func (c *Circle) MaxX() float64 { return val(c.cx) + val(c.r) }
func (c *Circle) MaxY() float64 { return val(c.cy) + val(c.r) }

func (c *Circle) form() form {
	return form{bags: []markup.Bag{{
		c.idAttr(),
		{Key: "cx", Value: c.cx},
		{Key: "cy", Value: c.cy},
		{Key: "r", Value: c.r},
		{Key: "pathLength", Value: c.pathLength},
		c.filterAttr(),
	}, c.paint.bag()}}
}

// Ellipse is an axis-aligned ellipse around (cx, cy).
type Ellipse struct {
	painted[*Ellipse]
	cx, cy, rx, ry, pathLength *float64
}

// Ellipse creates an ellipse centered on (cx, cy).
func (b *Builder) Ellipse(cx, cy, rx, ry float64) *Ellipse {
	e := &Ellipse{}
	e.bind(e, "ellipse", b.Sink())
	return e.SetCenterX(cx).SetCenterY(cy).SetRadiusX(rx).SetRadiusY(ry)
}

func (e *Ellipse) SetCenterX(x float64) *Ellipse    { e.cx = e.coord("cx", x); return e }
func (e *Ellipse) SetCenterY(y float64) *Ellipse    { e.cy = e.coord("cy", y); return e }
func (e *Ellipse) SetRadiusX(r float64) *Ellipse    { e.rx = e.length("rx", r); return e }
func (e *Ellipse) SetRadiusY(r float64) *Ellipse    { e.ry = e.length("ry", r); return e }
func (e *Ellipse) SetPathLength(l float64) *Ellipse { e.pathLength = e.length("pathLength", l); return e }

func (e *Ellipse) MaxX() float64 { return val(e.cx) + val(e.rx) }
func (e *Ellipse) MaxY() float64 { return val(e.cy) + val(e.ry) }

func (e *Ellipse) form() form {
	return form{bags: []markup.Bag{{
		e.idAttr(),
		{Key: "cx", Value: e.cx},
		{Key: "cy", Value: e.cy},
		{Key: "rx", Value: e.rx},
		{Key: "ry", Value: e.ry},
		{Key: "pathLength", Value: e.pathLength},
		e.filterAttr(),
	}, e.paint.bag()}}
}

// Line is a straight segment.
type Line struct {
	painted[*Line]
	x1, y1, x2, y2, pathLength *float64
}

// Line creates a segment from (x1, y1) to (x2, y2).
func (b *Builder) Line(x1, y1, x2, y2 float64) *Line {
	l := &Line{}
	l.bind(l, "line", b.Sink())
	return l.SetStart(x1, y1).SetEnd(x2, y2)
}

func (l *Line) SetStart(x, y float64) *Line {
	l.x1, l.y1 = l.coord("x1", x), l.coord("y1", y)
	return l
}

func (l *Line) SetEnd(x, y float64) *Line {
	l.x2, l.y2 = l.coord("x2", x), l.coord("y2", y)
	return l
}

func (l *Line) SetPathLength(v float64) *Line { l.pathLength = l.length("pathLength", v); return l }

func (l *Line) MaxX() float64 { return math.Max(val(l.x1), val(l.x2)) }
func (l *Line) MaxY() float64 { return math.Max(val(l.y1), val(l.y2)) }

func (l *Line) form() form {
	return form{bags: []markup.Bag{{
		l.idAttr(),
		{Key: "x1", Value: l.x1},
		{Key: "y1", Value: l.y1},
		{Key: "x2", Value: l.x2},
		{Key: "y2", Value: l.y2},
		{Key: "pathLength", Value: l.pathLength},
		l.filterAttr(),
	}, l.paint.bag()}}
}

// Point is a vertex of a polygon or polyline.
type Point struct{ X, Y float64 }

// poly is shared by Polygon and Polyline.
type poly[T any] struct {
	painted[T]
	points     []Point
	pathLength *float64
}

// AddPoint appends a vertex. Negative or NaN coordinates become 0.
func (p *poly[T]) AddPoint(x, y float64) T {
	p.points = append(p.points, Point{X: p.pointCoord("x", x), Y: p.pointCoord("y", y)})
	return p.self
}

func (p *poly[T]) pointCoord(prop string, v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		p.report(diag.InvalidPointValue, prop, v)
		return 0
	}
	return v
}

func (p *poly[T]) SetPathLength(l float64) T {
	p.pathLength = p.length("pathLength", l)
	return p.self
}

// Points returns a copy of the vertices.
func (p *poly[T]) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

func (p *poly[T]) MaxX() float64 {
	xs := make([]float64, len(p.points))
	for i, pt := range p.points {
		xs[i] = pt.X
	}
	return maxOf(xs...)
}

func (p *poly[T]) MaxY() float64 {
	ys := make([]float64, len(p.points))
	for i, pt := range p.points {
		ys[i] = pt.Y
	}
	return maxOf(ys...)
}

func (p *poly[T]) polyForm() form {
	var points any
	if len(p.points) > 0 {
		parts := make([]string, len(p.points))
		for i, pt := range p.points {
			parts[i] = markup.FormatFloat(pt.X) + "," + markup.FormatFloat(pt.Y)
		}
		points = strings.Join(parts, " ")
	}
	return form{bags: []markup.Bag{{
		p.idAttr(),
		{Key: "points", Value: points},
		{Key: "pathLength", Value: p.pathLength},
		p.filterAttr(),
	}, p.paint.bag()}}
}

// Polygon is a closed shape through its points.
type Polygon struct {
	poly[*Polygon]
}

// Polygon creates a polygon from its first two vertices; add more with
// AddPoint.
func (b *Builder) Polygon(x1, y1, x2, y2 float64) *Polygon {
	p := &Polygon{}
	p.bind(p, "polygon", b.Sink())
	return p.AddPoint(x1, y1).AddPoint(x2, y2)
}

func (p *Polygon) form() form { return p.polyForm() }

// Polyline is an open line through its points.
type Polyline struct {
	poly[*Polyline]
}

// Polyline creates a polyline from its first two vertices.
func (b *Builder) Polyline(x1, y1, x2, y2 float64) *Polyline {
	p := &Polyline{}
	p.bind(p, "polyline", b.Sink())
	return p.AddPoint(x1, y1).AddPoint(x2, y2)
}

func (p *Polyline) form() form { return p.polyForm() }
