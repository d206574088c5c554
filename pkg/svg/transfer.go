package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// ComponentTransfer remaps each color channel of its input with a
// transfer function.
type ComponentTransfer struct {
	single[*ComponentTransfer]
	funcs []*TransferFunc
}

// ComponentTransfer creates a transfer effect holding funcs.
func (b *Builder) ComponentTransfer(funcs ...*TransferFunc) *ComponentTransfer {
	e := &ComponentTransfer{}
	e.bind(e, "feComponentTransfer", b.Sink())
	return e.Add(funcs...)
}

// Add appends transfer functions. A nil function is reported and kept; it
// renders as nothing.
func (e *ComponentTransfer) Add(funcs ...*TransferFunc) *ComponentTransfer {
	for _, f := range funcs {
		if f == nil {
			e.report(diag.InvalidGroupMember, "funcs", nil)
		}
		e.funcs = append(e.funcs, f)
	}
	return e
}

func (e *ComponentTransfer) form() form {
	return form{bags: []markup.Bag{e.head()}, open: true, children: nonNil(e.funcs)}
}

// Channel selects which color channel a TransferFunc remaps.
type Channel byte

const (
	ChannelR Channel = 'R'
	ChannelG Channel = 'G'
	ChannelB Channel = 'B'
	ChannelA Channel = 'A'
)

// TransferFunc is a feFuncR, feFuncG, feFuncB or feFuncA child.
type TransferFunc struct {
	core[*TransferFunc]
	kind                        string
	table                       []float64
	slope, intercept            *float64
	amplitude, exponent, offset *float64
}

// TransferFunc creates a transfer function for channel ch.
func (b *Builder) TransferFunc(ch Channel) *TransferFunc {
	f := &TransferFunc{}
	f.bind(f, "feFunc"+string(rune(ch)), b.Sink())
	return f
}

// SetType sets identity, table, discrete, linear or gamma.
func (f *TransferFunc) SetType(t string) *TransferFunc { f.kind = t; return f }

// SetTable sets tableValues. No values leaves them unchanged.
func (f *TransferFunc) SetTable(v ...float64) *TransferFunc {
	if len(v) > 0 {
		f.table = v
	}
	return f
}

func (f *TransferFunc) SetSlope(s float64) *TransferFunc     { f.slope = f.coord("slope", s); return f }
func (f *TransferFunc) SetIntercept(i float64) *TransferFunc { f.intercept = f.coord("intercept", i); return f }
func (f *TransferFunc) SetAmplitude(a float64) *TransferFunc { f.amplitude = f.coord("amplitude", a); return f }
func (f *TransferFunc) SetExponent(e float64) *TransferFunc  { f.exponent = f.coord("exponent", e); return f }
func (f *TransferFunc) SetOffset(o float64) *TransferFunc    { f.offset = f.coord("offset", o); return f }

func (f *TransferFunc) form() form {
	return form{bags: []markup.Bag{{
		{Key: "type", Value: markup.Str(f.kind)},
		{Key: "tableValues", Value: markup.Join(f.table, " ")},
		{Key: "slope", Value: f.slope},
		{Key: "intercept", Value: f.intercept},
		{Key: "amplitude", Value: f.amplitude},
		{Key: "exponent", Value: f.exponent},
		{Key: "offset", Value: f.offset},
	}}}
}
