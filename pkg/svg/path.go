package svg

import (
	"math"
	"strings"
	"unicode"

	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// pathOps lists the argument names of every path command, by upper-case
// letter. Names are used in diagnostics.
var pathOps = map[rune][]string{
	'M': {"x", "y"},
	'L': {"x", "y"},
	'H': {"x"},
	'V': {"y"},
	'Z': {},
	'C': {"x1", "y1", "x2", "y2", "x", "y"},
	'S': {"x2", "y2", "x", "y"},
	'Q': {"x1", "y1", "x", "y"},
	'T': {"x", "y"},
	'A': {"rx", "ry", "x_axis_rotation", "large_arc_flag", "sweep_flag", "x", "y"},
}

type pathCmd struct {
	op   rune // upper case
	rel  bool
	args []float64
}

func (c pathCmd) String() string {
	op := c.op
	if c.rel {
		op = unicode.ToLower(op)
	}
	f := markup.FormatFloat
	a := c.args

	var sb strings.Builder
	sb.WriteRune(op)
	switch c.op {
	case 'M', 'L', 'T':
		sb.WriteString(f(a[0]) + " " + f(a[1]))
	case 'H', 'V':
		sb.WriteString(f(a[0]))
	case 'C':
		sb.WriteString(f(a[0]) + " " + f(a[1]) + ", " + f(a[2]) + " " + f(a[3]) + ", " + f(a[4]) + " " + f(a[5]))
	case 'S', 'Q':
		sb.WriteString(f(a[0]) + " " + f(a[1]) + ", " + f(a[2]) + " " + f(a[3]))
	case 'A':
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = f(v)
		}
		sb.WriteString(strings.Join(parts, " "))
	}
	return sb.String()
}

func (c pathCmd) maxX() float64 {
	a := c.args
	switch c.op {
	case 'M', 'L', 'T', 'H':
		return a[0]
	case 'C':
		return maxOf(a[0], a[2], a[4])
	case 'S', 'Q':
		return maxOf(a[0], a[2])
	case 'A':
		return a[5] + a[0]
	}
	return 0
}

func (c pathCmd) maxY() float64 {
	a := c.args
	switch c.op {
	case 'M', 'L', 'T':
		return a[1]
	case 'V':
		return a[0]
	case 'C':
		return maxOf(a[1], a[3], a[5])
	case 'S', 'Q':
		return maxOf(a[1], a[3])
	case 'A':
		return a[6] + a[1]
	}
	return 0
}

// Path is a sequence of drawing commands.
//
// Absolute commands do not accept negative or NaN coordinates: they are
// replaced by 0 and reported. Relative commands accept negative offsets;
// NaN is replaced by 0 and reported.
type Path struct {
	painted[*Path]
	cmds       []pathCmd
	pathLength *float64
}

// Path creates a path starting with an absolute move to (x, y).
func (b *Builder) Path(x, y float64) *Path {
	p := &Path{}
	p.bind(p, "path", b.Sink())
	return p.MoveTo(x, y)
}

// Command appends a command by its letter. Lower-case letters are relative.
// Unknown letters and wrong argument counts are reported as
// InvalidPathValue and ignored.
func (p *Path) Command(op rune, args ...float64) *Path {
	rel := unicode.IsLower(op)
	up := unicode.ToUpper(op)
	names, ok := pathOps[up]
	if !ok || len(args) != len(names) {
		p.report(diag.InvalidPathValue, string(op), args)
		return p
	}

	cmd := pathCmd{op: up, rel: rel, args: make([]float64, len(args))}
	for i, v := range args {
		cmd.args[i] = p.pathValue(rel, names[i], v)
	}
	p.cmds = append(p.cmds, cmd)
	return p
}

func (p *Path) pathValue(rel bool, prop string, v float64) float64 {
	switch {
	case !rel && (math.IsNaN(v) || v < 0):
		p.report(diag.InvalidAbsPathValue, prop, v)
		return 0
	case math.IsNaN(v):
		p.report(diag.InvalidPathValue, prop, v)
		return 0
	}
	return v
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (p *Path) MoveTo(x, y float64) *Path    { return p.Command('M', x, y) }
func (p *Path) MoveToRel(x, y float64) *Path { return p.Command('m', x, y) }
func (p *Path) LineTo(x, y float64) *Path    { return p.Command('L', x, y) }
func (p *Path) LineToRel(x, y float64) *Path { return p.Command('l', x, y) }
func (p *Path) HorizontalTo(x float64) *Path { return p.Command('H', x) }
func (p *Path) VerticalTo(y float64) *Path   { return p.Command('V', y) }
func (p *Path) Close() *Path                 { return p.Command('Z') }

func (p *Path) HorizontalToRel(x float64) *Path { return p.Command('h', x) }
func (p *Path) VerticalToRel(y float64) *Path   { return p.Command('v', y) }

// CubicTo draws a cubic Bézier curve with control points (x1, y1) and
// (x2, y2) ending at (x, y).
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) *Path {
	return p.Command('C', x1, y1, x2, y2, x, y)
}

func (p *Path) CubicToRel(x1, y1, x2, y2, x, y float64) *Path {
	return p.Command('c', x1, y1, x2, y2, x, y)
}

// SmoothCubicTo continues a cubic curve, reflecting the previous control
// point.
func (p *Path) SmoothCubicTo(x2, y2, x, y float64) *Path { return p.Command('S', x2, y2, x, y) }

func (p *Path) SmoothCubicToRel(x2, y2, x, y float64) *Path { return p.Command('s', x2, y2, x, y) }

// QuadTo draws a quadratic Bézier curve.
func (p *Path) QuadTo(x1, y1, x, y float64) *Path    { return p.Command('Q', x1, y1, x, y) }
func (p *Path) QuadToRel(x1, y1, x, y float64) *Path { return p.Command('q', x1, y1, x, y) }

func (p *Path) SmoothQuadTo(x, y float64) *Path    { return p.Command('T', x, y) }
func (p *Path) SmoothQuadToRel(x, y float64) *Path { return p.Command('t', x, y) }

// ArcTo draws an elliptical arc to (x, y).
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *Path {
	return p.Command('A', rx, ry, rotation, flag(largeArc), flag(sweep), x, y)
}

func (p *Path) ArcToRel(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *Path {
	return p.Command('a', rx, ry, rotation, flag(largeArc), flag(sweep), x, y)
}

func (p *Path) SetPathLength(l float64) *Path { p.pathLength = p.length("pathLength", l); return p }

// D returns the path data string.
func (p *Path) D() string {
	parts := make([]string, len(p.cmds))
	for i, c := range p.cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (p *Path) MaxX() float64 {
	xs := make([]float64, len(p.cmds))
	for i, c := range p.cmds {
		xs[i] = c.maxX()
	}
	return maxOf(xs...)
}

func (p *Path) MaxY() float64 {
	ys := make([]float64, len(p.cmds))
	for i, c := range p.cmds {
		ys[i] = c.maxY()
	}
	return maxOf(ys...)
}

func (p *Path) form() form {
	return form{bags: []markup.Bag{{
		p.idAttr(),
		{Key: "d", Value: markup.Str(p.D())},
		{Key: "pathLength", Value: p.pathLength},
		p.filterAttr(),
	}, p.paint.bag()}}
}
