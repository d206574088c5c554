package scene

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgkit/pkg/errors"
	pkgio "github.com/matzehuels/svgkit/pkg/io"
)

// Supported scene formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Scene is a declarative document: canvas settings, a definitions pool and
// the content to draw.
type Scene struct {
	Width       *float64  `mapstructure:"width"`
	Height      *float64  `mapstructure:"height"`
	X           *float64  `mapstructure:"x"`
	Y           *float64  `mapstructure:"y"`
	ViewBox     []float64 `mapstructure:"view_box"`
	AspectRatio string    `mapstructure:"aspect_ratio"`
	Indent      string    `mapstructure:"indent"`
	AutoIDs     bool      `mapstructure:"auto_ids"`

	Gradients []GradientSpec `mapstructure:"gradients"`
	Filters   []FilterSpec   `mapstructure:"filters"`
	Elements  []ElementSpec  `mapstructure:"elements"`

	// Name identifies the scene in hooks and logs, usually its path.
	Name string `mapstructure:"-"`
}

// Paint is the stroke and fill of a drawable element.
type Paint struct {
	Fill           string    `mapstructure:"fill"`
	FillOpacity    *float64  `mapstructure:"fill_opacity"`
	FillRule       string    `mapstructure:"fill_rule"`
	FillGradient   string    `mapstructure:"fill_gradient"`
	Stroke         string    `mapstructure:"stroke"`
	StrokeWidth    *float64  `mapstructure:"stroke_width"`
	StrokeOpacity  *float64  `mapstructure:"stroke_opacity"`
	LineCap        string    `mapstructure:"line_cap"`
	LineJoin       string    `mapstructure:"line_join"`
	Dash           []float64 `mapstructure:"dash"`
	StrokeGradient string    `mapstructure:"stroke_gradient"`
}

// ElementSpec describes one drawable element. Which fields apply depends
// on Kind.
type ElementSpec struct {
	Kind   string `mapstructure:"kind"`
	ID     string `mapstructure:"id"`
	Filter string `mapstructure:"filter"`
	Paint  `mapstructure:",squash"`

	X      *float64 `mapstructure:"x"`
	Y      *float64 `mapstructure:"y"`
	Width  *float64 `mapstructure:"width"`
	Height *float64 `mapstructure:"height"`
	RX     *float64 `mapstructure:"rx"`
	RY     *float64 `mapstructure:"ry"`
	CX     *float64 `mapstructure:"cx"`
	CY     *float64 `mapstructure:"cy"`
	R      *float64 `mapstructure:"r"`
	X1     *float64 `mapstructure:"x1"`
	Y1     *float64 `mapstructure:"y1"`
	X2     *float64 `mapstructure:"x2"`
	Y2     *float64 `mapstructure:"y2"`

	Points   [][]float64   `mapstructure:"points"`
	Commands []PathCommand `mapstructure:"commands"`

	Text  string        `mapstructure:"text"`
	Lines []ElementSpec `mapstructure:"lines"`

	Href   string `mapstructure:"href"`
	Target string `mapstructure:"target"`

	Elements []ElementSpec `mapstructure:"elements"`
}

// PathCommand is one path command: a letter and its arguments. Lower-case
// letters are relative.
type PathCommand struct {
	Op   string    `mapstructure:"op"`
	Args []float64 `mapstructure:"args"`
}

// GradientSpec describes a linear or radial gradient.
type GradientSpec struct {
	Kind   string     `mapstructure:"kind"`
	ID     string     `mapstructure:"id"`
	Unit   string     `mapstructure:"unit"`
	Units  string     `mapstructure:"units"`
	Spread string     `mapstructure:"spread"`
	Href   string     `mapstructure:"href"`
	Stops  []StopSpec `mapstructure:"stops"`

	// linear
	Start []float64 `mapstructure:"start"`
	End   []float64 `mapstructure:"end"`

	// radial: [x, y, r]
	Circle []float64 `mapstructure:"circle"`
	Focus  []float64 `mapstructure:"focus"`
}

// StopSpec is a gradient color stop.
type StopSpec struct {
	Offset  float64  `mapstructure:"offset"`
	Color   string   `mapstructure:"color"`
	Opacity *float64 `mapstructure:"opacity"`
}

// FilterSpec describes a filter and its effect graph.
type FilterSpec struct {
	ID             string       `mapstructure:"id"`
	X              *float64     `mapstructure:"x"`
	Y              *float64     `mapstructure:"y"`
	Width          *float64     `mapstructure:"width"`
	Height         *float64     `mapstructure:"height"`
	FilterUnits    string       `mapstructure:"filter_units"`
	PrimitiveUnits string       `mapstructure:"primitive_units"`
	Effects        []EffectSpec `mapstructure:"effects"`
}

// EffectSpec describes one filter primitive. In and In2 name either a
// standard input such as "SourceGraphic" or the result of an earlier
// effect in the same filter.
type EffectSpec struct {
	Kind   string   `mapstructure:"kind"`
	Result string   `mapstructure:"result"`
	In     string   `mapstructure:"in"`
	In2    string   `mapstructure:"in2"`
	Inputs []string `mapstructure:"inputs"`

	Mode          string    `mapstructure:"mode"`
	Operator      string    `mapstructure:"operator"`
	K             []float64 `mapstructure:"k"`
	Type          string    `mapstructure:"type"`
	Values        []float64 `mapstructure:"values"`
	Color         string    `mapstructure:"color"`
	Opacity       *float64  `mapstructure:"opacity"`
	StdDeviation  *float64  `mapstructure:"std_deviation"`
	DX            *float64  `mapstructure:"dx"`
	DY            *float64  `mapstructure:"dy"`
	Radius        *float64  `mapstructure:"radius"`
	BaseFrequency *float64  `mapstructure:"base_frequency"`
	NumOctaves    *int      `mapstructure:"num_octaves"`
	Seed          *float64  `mapstructure:"seed"`
	Scale         *float64  `mapstructure:"scale"`
	Channels      []string  `mapstructure:"channels"`
}

// Load reads and parses the scene file at path. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (*Scene, error) {
	format, err := errors.ValidateSceneFilename(path)
	if err != nil {
		return nil, err
	}
	data, err := pkgio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	s.Name = path
	return s, nil
}

// Parse decodes a scene from data in the given format.
//
// The document is first decoded into generic maps and then into the typed
// specs, so both formats share field names and validation. Unknown keys
// are rejected.
func Parse(data []byte, format string) (*Scene, error) {
	raw := map[string]any{}
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}

	var s Scene
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate checks ids and list shapes. Numeric ranges are left to the
// builder, which reports them as diagnostics.
func (s *Scene) validate() error {
	for i, g := range s.Gradients {
		if err := errors.ValidateID(g.ID); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "gradients[%d]", i)
		}
	}
	for i, f := range s.Filters {
		if err := errors.ValidateID(f.ID); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "filters[%d]", i)
		}
	}
	return validateElements("elements", s.Elements)
}

func validateElements(path string, specs []ElementSpec) error {
	for i, e := range specs {
		at := fmt.Sprintf("%s[%d]", path, i)
		if err := errors.ValidateID(e.ID); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "%s", at)
		}
		for j, p := range e.Points {
			if len(p) != 2 {
				return errors.New(errors.ErrCodeInvalidScene, "%s.points[%d]: want [x, y], got %d values", at, j, len(p))
			}
		}
		if err := validateElements(at+".lines", e.Lines); err != nil {
			return err
		}
		if err := validateElements(at+".elements", e.Elements); err != nil {
			return err
		}
	}
	return nil
}
