package scene

import (
	"github.com/matzehuels/svgkit/pkg/errors"
	"github.com/matzehuels/svgkit/pkg/svg"
)

var standardInputs = map[string]bool{
	svg.SourceGraphic:   true,
	svg.SourceAlpha:     true,
	svg.BackgroundImage: true,
	svg.BackgroundAlpha: true,
	svg.FillPaint:       true,
	svg.StrokePaint:     true,
}

type named[T any] interface {
	svg.Effect
	SetResult(string) T
}

type oneInput[T any] interface {
	named[T]
	SetInput(svg.Effect) T
	SetInputSource(string) T
}

type twoInputs[T any] interface {
	oneInput[T]
	SetInput2(svg.Effect) T
	SetInput2Source(string) T
}

// effectGraph resolves input names within one filter.
type effectGraph struct {
	filter  string
	results map[string]svg.Effect
}

func (bl *builder) filter(i int, spec FilterSpec) error {
	id := bl.ids.id("f", i, spec.ID)
	f := bl.b.Filter(id)
	if spec.X != nil {
		f.SetX(*spec.X)
	}
	if spec.Y != nil {
		f.SetY(*spec.Y)
	}
	if spec.Width != nil {
		f.SetWidth(*spec.Width)
	}
	if spec.Height != nil {
		f.SetHeight(*spec.Height)
	}
	if spec.FilterUnits != "" {
		f.SetFilterUnits(spec.FilterUnits)
	}
	if spec.PrimitiveUnits != "" {
		f.SetPrimitiveUnits(spec.PrimitiveUnits)
	}

	g := &effectGraph{filter: id, results: map[string]svg.Effect{}}
	for j, es := range spec.Effects {
		e, err := bl.effect(g, es)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "filters[%d].effects[%d]", i, j)
		}
		f.Add(e)
		if es.Result != "" {
			g.results[es.Result] = e
		}
	}

	if id != "" {
		bl.filters[id] = f
	}
	bl.canvas.Define(f)
	return nil
}

func (bl *builder) effect(g *effectGraph, spec EffectSpec) (svg.Effect, error) {
	b := bl.b
	switch spec.Kind {
	case "blend":
		return connect2(g, b.Blend().SetMode(spec.Mode), spec)
	case "color_matrix":
		return connect(g, b.ColorMatrix().SetType(spec.Type).SetValues(spec.Values...), spec)
	case "composite":
		e := b.Composite().SetOperator(spec.Operator)
		if len(spec.K) > 0 {
			if len(spec.K) != 4 {
				return nil, errors.New(errors.ErrCodeInvalidScene, "composite k needs 4 values, got %d", len(spec.K))
			}
			e.SetCoefficients(spec.K[0], spec.K[1], spec.K[2], spec.K[3])
		}
		return connect2(g, e, spec)
	case "flood":
		e := b.Flood().SetColor(spec.Color)
		if spec.Opacity != nil {
			e.SetOpacity(*spec.Opacity)
		}
		return result(e, spec), nil
	case "gaussian_blur":
		e := b.GaussianBlur()
		if spec.StdDeviation != nil {
			e.SetStdDeviation(*spec.StdDeviation)
		}
		return connect(g, e, spec)
	case "offset":
		return connect(g, b.Offset().SetOffset(val(spec.DX), val(spec.DY)), spec)
	case "drop_shadow":
		e := b.DropShadow().SetOffset(val(spec.DX), val(spec.DY)).SetColor(spec.Color)
		if spec.StdDeviation != nil {
			e.SetStdDeviation(*spec.StdDeviation)
		}
		if spec.Opacity != nil {
			e.SetOpacity(*spec.Opacity)
		}
		return connect(g, e, spec)
	case "morphology":
		e := b.Morphology().SetOperator(spec.Operator)
		if spec.Radius != nil {
			e.SetRadius(*spec.Radius)
		}
		return connect(g, e, spec)
	case "tile":
		return connect(g, b.Tile(), spec)
	case "turbulence":
		e := b.Turbulence().SetType(spec.Type)
		if spec.BaseFrequency != nil {
			e.SetBaseFrequency(*spec.BaseFrequency)
		}
		if spec.NumOctaves != nil {
			e.SetNumOctaves(*spec.NumOctaves)
		}
		if spec.Seed != nil {
			e.SetSeed(*spec.Seed)
		}
		return result(e, spec), nil
	case "displacement_map":
		e := b.DisplacementMap()
		if spec.Scale != nil {
			e.SetScale(*spec.Scale)
		}
		switch len(spec.Channels) {
		case 0:
		case 2:
			e.SetChannels(spec.Channels[0], spec.Channels[1])
		default:
			return nil, errors.New(errors.ErrCodeInvalidScene, "displacement_map channels needs 2 values, got %d", len(spec.Channels))
		}
		return connect2(g, e, spec)
	case "merge":
		m := b.Merge()
		for _, name := range spec.Inputs {
			if standardInputs[name] {
				m.Add(b.MergeSource(name))
				continue
			}
			in, err := g.lookup(name)
			if err != nil {
				return nil, err
			}
			m.Add(b.MergeNode(in))
		}
		return result(m, spec), nil
	}
	return nil, errors.New(errors.ErrCodeUnknownElement, "unknown effect kind %q", spec.Kind)
}

// wire points an input at a standard source or an earlier result. An empty
// name leaves the input unset.
func wire[T any](g *effectGraph, name string, set func(svg.Effect) T, source func(string) T) error {
	switch {
	case name == "":
	case standardInputs[name]:
		source(name)
	default:
		e, err := g.lookup(name)
		if err != nil {
			return err
		}
		set(e)
	}
	return nil
}

func (g *effectGraph) lookup(name string) (svg.Effect, error) {
	e, ok := g.results[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownReference, "filter %q has no result %q before this effect", g.filter, name)
	}
	return e, nil
}

func result[T named[T]](e T, spec EffectSpec) svg.Effect {
	if spec.Result != "" {
		e.SetResult(spec.Result)
	}
	return e
}

func connect[T oneInput[T]](g *effectGraph, e T, spec EffectSpec) (svg.Effect, error) {
	if err := wire(g, spec.In, e.SetInput, e.SetInputSource); err != nil {
		return nil, err
	}
	return result(e, spec), nil
}

func connect2[T twoInputs[T]](g *effectGraph, e T, spec EffectSpec) (svg.Effect, error) {
	if err := wire(g, spec.In2, e.SetInput2, e.SetInput2Source); err != nil {
		return nil, err
	}
	return connect(g, e, spec)
}
