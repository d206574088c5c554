package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Blend combines two inputs with a blend mode.
type Blend struct {
	dual[*Blend]
	mode string
}

// Blend creates a blend effect.
func (b *Builder) Blend() *Blend {
	e := &Blend{}
	e.bind(e, "feBlend", b.Sink())
	return e
}

// SetMode sets the blend mode, e.g. multiply or screen.
func (e *Blend) SetMode(m string) *Blend { e.mode = m; return e }

func (e *Blend) form() form {
	return form{bags: []markup.Bag{e.head(), {{Key: "mode", Value: markup.Str(e.mode)}}}}
}

// ColorMatrix transforms colors with a matrix or a shorthand type.
type ColorMatrix struct {
	single[*ColorMatrix]
	kind   string
	values []float64
}

// ColorMatrix creates a color matrix effect.
func (b *Builder) ColorMatrix() *ColorMatrix {
	e := &ColorMatrix{}
	e.bind(e, "feColorMatrix", b.Sink())
	return e
}

// SetType sets the matrix type: matrix, saturate, hueRotate or
// luminanceToAlpha.
func (e *ColorMatrix) SetType(t string) *ColorMatrix { e.kind = t; return e }

// SetValues sets the matrix values. No values leaves them unchanged.
func (e *ColorMatrix) SetValues(v ...float64) *ColorMatrix {
	if len(v) > 0 {
		e.values = v
	}
	return e
}

func (e *ColorMatrix) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "type", Value: markup.Str(e.kind)},
		{Key: "values", Value: markup.Join(e.values, " ")},
	}}}
}

// Composite combines two inputs with a Porter-Duff operator or an
// arithmetic formula.
type Composite struct {
	dual[*Composite]
	operator       string
	k1, k2, k3, k4 *float64
}

// Composite creates a composite effect.
func (b *Builder) Composite() *Composite {
	e := &Composite{}
	e.bind(e, "feComposite", b.Sink())
	return e
}

// SetOperator sets over, in, out, atop, xor or arithmetic.
func (e *Composite) SetOperator(op string) *Composite { e.operator = op; return e }

// SetCoefficients sets k1 to k4 for the arithmetic operator.
func (e *Composite) SetCoefficients(k1, k2, k3, k4 float64) *Composite {
	e.k1, e.k2 = e.coord("k1", k1), e.coord("k2", k2)
	e.k3, e.k4 = e.coord("k3", k3), e.coord("k4", k4)
	return e
}

func (e *Composite) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "operator", Value: markup.Str(e.operator)},
		{Key: "k1", Value: e.k1},
		{Key: "k2", Value: e.k2},
		{Key: "k3", Value: e.k3},
		{Key: "k4", Value: e.k4},
	}}}
}

// ConvolveMatrix applies a convolution kernel.
type ConvolveMatrix struct {
	single[*ConvolveMatrix]
	order            *float64
	kernel           []float64
	divisor, bias    *float64
	targetX, targetY *float64
	edgeMode         string
	preserveAlpha    *bool
}

// ConvolveMatrix creates a convolution effect.
func (b *Builder) ConvolveMatrix() *ConvolveMatrix {
	e := &ConvolveMatrix{}
	e.bind(e, "feConvolveMatrix", b.Sink())
	return e
}

// SetOrder sets the kernel size. A negative order is reported but still
// written.
func (e *ConvolveMatrix) SetOrder(o float64) *ConvolveMatrix { e.order = e.length("order", o); return e }

// SetKernel sets kernelMatrix. No values leaves it unchanged.
func (e *ConvolveMatrix) SetKernel(v ...float64) *ConvolveMatrix {
	if len(v) > 0 {
		e.kernel = v
	}
	return e
}

// SetDivisor sets the value the kernel sum is divided by.
func (e *ConvolveMatrix) SetDivisor(d float64) *ConvolveMatrix { e.divisor = e.coord("divisor", d); return e }

// SetBias sets the value added to each result.
func (e *ConvolveMatrix) SetBias(b float64) *ConvolveMatrix { e.bias = e.coord("bias", b); return e }

// SetTarget sets targetX and targetY, the kernel cell over the output pixel.
func (e *ConvolveMatrix) SetTarget(x, y float64) *ConvolveMatrix {
	e.targetX, e.targetY = e.length("targetX", x), e.length("targetY", y)
	return e
}

// SetEdgeMode sets duplicate, wrap or none.
func (e *ConvolveMatrix) SetEdgeMode(m string) *ConvolveMatrix { e.edgeMode = m; return e }

// SetPreserveAlpha leaves the alpha channel unconvolved when p is true.
func (e *ConvolveMatrix) SetPreserveAlpha(p bool) *ConvolveMatrix { e.preserveAlpha = &p; return e }

func (e *ConvolveMatrix) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "order", Value: e.order},
		{Key: "kernelMatrix", Value: markup.Join(e.kernel, " ")},
		{Key: "divisor", Value: e.divisor},
		{Key: "bias", Value: e.bias},
		{Key: "targetX", Value: e.targetX},
		{Key: "targetY", Value: e.targetY},
		{Key: "edgeMode", Value: markup.Str(e.edgeMode)},
		{Key: "preserveAlpha", Value: e.preserveAlpha},
	}}}
}

// DisplacementMap moves the pixels of the first input by the channels of
// the second.
type DisplacementMap struct {
	dual[*DisplacementMap]
	scale *float64
	xChan string
	yChan string
}

// DisplacementMap creates a displacement effect.
func (b *Builder) DisplacementMap() *DisplacementMap {
	e := &DisplacementMap{}
	e.bind(e, "feDisplacementMap", b.Sink())
	return e
}

// SetScale sets the displacement scale factor.
func (e *DisplacementMap) SetScale(s float64) *DisplacementMap { e.scale = e.coord("scale", s); return e }

// SetChannels sets xChannelSelector and yChannelSelector: R, G, B or A.
func (e *DisplacementMap) SetChannels(x, y string) *DisplacementMap {
	e.xChan, e.yChan = x, y
	return e
}

func (e *DisplacementMap) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "scale", Value: e.scale},
		{Key: "xChannelSelector", Value: markup.Str(e.xChan)},
		{Key: "yChannelSelector", Value: markup.Str(e.yChan)},
	}}}
}

// DropShadow draws a blurred, offset copy of the input beneath it.
type DropShadow struct {
	single[*DropShadow]
	dx, dy, stdDev *float64
	color          string
	opacity        *float64
}

// DropShadow creates a drop shadow effect.
func (b *Builder) DropShadow() *DropShadow {
	e := &DropShadow{}
	e.bind(e, "feDropShadow", b.Sink())
	return e
}

// SetOffset sets the shadow offset.
func (e *DropShadow) SetOffset(dx, dy float64) *DropShadow {
	e.dx, e.dy = e.coord("dx", dx), e.coord("dy", dy)
	return e
}

// SetStdDeviation sets the shadow blur. A negative value is reported but
// still written.
func (e *DropShadow) SetStdDeviation(s float64) *DropShadow {
	e.stdDev = e.length("stdDeviation", s)
	return e
}

// SetColor sets flood-color.
func (e *DropShadow) SetColor(c string) *DropShadow { e.color = c; return e }

// SetOpacity sets flood-opacity.
func (e *DropShadow) SetOpacity(o float64) *DropShadow {
	e.opacity = e.length("flood_opacity", o)
	return e
}

func (e *DropShadow) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "dx", Value: e.dx},
		{Key: "dy", Value: e.dy},
		{Key: "stdDeviation", Value: e.stdDev},
		{Key: "flood_color", Value: markup.Str(e.color)},
		{Key: "flood_opacity", Value: e.opacity},
	}}}
}

// Flood fills the subregion with a color.
type Flood struct {
	primitive[*Flood]
	color   string
	opacity *float64
}

// Flood creates a flood effect. It takes no input.
func (b *Builder) Flood() *Flood {
	e := &Flood{}
	e.bind(e, "feFlood", b.Sink())
	return e
}

// SetColor sets flood-color.
func (e *Flood) SetColor(c string) *Flood { e.color = c; return e }

// SetOpacity sets flood-opacity.
func (e *Flood) SetOpacity(o float64) *Flood { e.opacity = e.length("flood_opacity", o); return e }

func (e *Flood) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "flood_color", Value: markup.Str(e.color)},
		{Key: "flood_opacity", Value: e.opacity},
	}}}
}

// GaussianBlur blurs its input.
type GaussianBlur struct {
	single[*GaussianBlur]
	stdDev   *float64
	edgeMode string
}

// GaussianBlur creates a blur effect.
func (b *Builder) GaussianBlur() *GaussianBlur {
	e := &GaussianBlur{}
	e.bind(e, "feGaussianBlur", b.Sink())
	return e
}

// SetStdDeviation sets the blur amount. A negative value is reported but
// still written.
func (e *GaussianBlur) SetStdDeviation(s float64) *GaussianBlur {
	e.stdDev = e.length("stdDeviation", s)
	return e
}

// SetEdgeMode sets duplicate, wrap or none.
func (e *GaussianBlur) SetEdgeMode(m string) *GaussianBlur { e.edgeMode = m; return e }

func (e *GaussianBlur) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "stdDeviation", Value: e.stdDev},
		{Key: "edgeMode", Value: markup.Str(e.edgeMode)},
	}}}
}

// FeImage loads an external image into the filter graph.
type FeImage struct {
	primitive[*FeImage]
	href   string
	aspect string
}

// FeImage creates an image effect loading url.
func (b *Builder) FeImage(url string) *FeImage {
	e := &FeImage{href: url}
	e.bind(e, "feImage", b.Sink())
	return e
}

// SetAspectRatio sets preserveAspectRatio; strategy may be empty.
func (e *FeImage) SetAspectRatio(align, strategy string) *FeImage {
	e.aspect = align
	if strategy != "" {
		e.aspect += " " + strategy
	}
	return e
}

func (e *FeImage) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "href", Value: markup.Str(e.href)},
		{Key: "preserveAspectRatio", Value: markup.Str(e.aspect)},
	}}}
}

// Morphology erodes or dilates its input.
type Morphology struct {
	single[*Morphology]
	operator string
	radius   *float64
}

// Morphology creates a morphology effect.
func (b *Builder) Morphology() *Morphology {
	e := &Morphology{}
	e.bind(e, "feMorphology", b.Sink())
	return e
}

// SetOperator sets erode or dilate.
func (e *Morphology) SetOperator(op string) *Morphology { e.operator = op; return e }

// SetRadius sets the erosion or dilation radius.
func (e *Morphology) SetRadius(r float64) *Morphology { e.radius = e.length("radius", r); return e }

func (e *Morphology) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "operator", Value: markup.Str(e.operator)},
		{Key: "radius", Value: e.radius},
	}}}
}

// Offset shifts its input.
type Offset struct {
	single[*Offset]
	dx, dy *float64
}

// Offset creates an offset effect.
func (b *Builder) Offset() *Offset {
	e := &Offset{}
	e.bind(e, "feOffset", b.Sink())
	return e
}

// SetOffset sets the shift along each axis.
func (e *Offset) SetOffset(dx, dy float64) *Offset {
	e.dx, e.dy = e.coord("dx", dx), e.coord("dy", dy)
	return e
}

func (e *Offset) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "dx", Value: e.dx},
		{Key: "dy", Value: e.dy},
	}}}
}

// Tile repeats its input across the subregion.
type Tile struct {
	single[*Tile]
}

// Tile creates a tile effect.
func (b *Builder) Tile() *Tile {
	e := &Tile{}
	e.bind(e, "feTile", b.Sink())
	return e
}

func (e *Tile) form() form { return form{bags: []markup.Bag{e.head()}} }

// Turbulence generates Perlin noise.
type Turbulence struct {
	primitive[*Turbulence]
	baseFreq   *float64
	numOctaves *int
	seed       *float64
	stitch     string
	kind       string
}

// Turbulence creates a noise effect. It takes no input.
func (b *Builder) Turbulence() *Turbulence {
	e := &Turbulence{}
	e.bind(e, "feTurbulence", b.Sink())
	return e
}

// SetBaseFrequency sets the noise frequency. A negative value is reported
// but still written.
func (e *Turbulence) SetBaseFrequency(f float64) *Turbulence {
	e.baseFreq = e.length("baseFrequency", f)
	return e
}

// SetNumOctaves sets the number of noise octaves. A negative count is
// reported but still written.
func (e *Turbulence) SetNumOctaves(n int) *Turbulence {
	if n < 0 {
		e.length("numOctaves", float64(n))
	}
	e.numOctaves = &n
	return e
}

// SetSeed sets the random seed.
func (e *Turbulence) SetSeed(s float64) *Turbulence { e.seed = e.coord("seed", s); return e }

// SetStitchTiles sets stitch or noStitch.
func (e *Turbulence) SetStitchTiles(s string) *Turbulence { e.stitch = s; return e }

// SetType sets fractalNoise or turbulence.
func (e *Turbulence) SetType(t string) *Turbulence { e.kind = t; return e }

func (e *Turbulence) form() form {
	return form{bags: []markup.Bag{e.head(), {
		{Key: "baseFrequency", Value: e.baseFreq},
		{Key: "numOctaves", Value: e.numOctaves},
		{Key: "seed", Value: e.seed},
		{Key: "stitchTiles", Value: markup.Str(e.stitch)},
		{Key: "type", Value: markup.Str(e.kind)},
	}}}
}

// Merge layers several inputs, first at the bottom.
type Merge struct {
	primitive[*Merge]
	nodes []*MergeNode
}

// Merge creates a merge effect stacking nodes bottom to top.
func (b *Builder) Merge(nodes ...*MergeNode) *Merge {
	e := &Merge{}
	e.bind(e, "feMerge", b.Sink())
	return e.Add(nodes...)
}

// Add appends merge layers. A nil layer is reported and kept; it renders
// as nothing.
func (e *Merge) Add(nodes ...*MergeNode) *Merge {
	for _, n := range nodes {
		if n == nil {
			e.report(diag.InvalidGroupMember, "nodes", nil)
		}
		e.nodes = append(e.nodes, n)
	}
	return e
}

func (e *Merge) form() form {
	return form{bags: []markup.Bag{e.head()}, open: true, children: nonNil(e.nodes)}
}

// MergeNode is one layer of a Merge.
type MergeNode struct {
	core[*MergeNode]
	in string
}

// MergeNode creates a layer consuming in. A nil input is reported and the
// layer is left without one.
func (b *Builder) MergeNode(in Effect) *MergeNode {
	n := &MergeNode{}
	n.bind(n, "feMergeNode", b.Sink())
	return n.SetInput(in)
}

// MergeSource creates a layer consuming a standard input such as
// SourceGraphic.
func (b *Builder) MergeSource(name string) *MergeNode {
	n := &MergeNode{}
	n.bind(n, "feMergeNode", b.Sink())
	return n.SetInputSource(name)
}

// SetInput consumes the output of another effect, captured by result name
// now.
func (n *MergeNode) SetInput(in Effect) *MergeNode {
	n.captureInput("in", in, &n.in)
	return n
}

// SetInputSource consumes a standard input such as SourceGraphic.
func (n *MergeNode) SetInputSource(name string) *MergeNode { n.in = name; return n }

func (n *MergeNode) form() form {
	return form{bags: []markup.Bag{{{Key: "in", Value: markup.Str(n.in)}}}}
}
