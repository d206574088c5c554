// Package diag is the diagnostic channel of the SVG builder.
//
// The builder never returns errors and never panics on bad input. Every
// abnormal but recoverable condition (a negative width, a reference to an
// element without an id, two elements sharing an id) is reported as a
// [Diagnostic] to a [Sink] and construction continues.
//
// Sinks are injected: tests capture diagnostics with a [Recorder], the CLI
// forwards them to a charmbracelet logger with [NewLogSink], and library
// users who do not care pass [Discard].
//
//	rec := &diag.Recorder{}
//	b := svg.NewBuilder(svg.WithSink(rec))
//	b.Rect(0, 0, -1, 10)
//	rec.CountKind(diag.InvalidValue) // 1
package diag

import (
	"fmt"
	"strings"
)

// Kind identifies one entry in the fixed diagnostic catalogue.
type Kind int

const (
	// ExportFailed means the serialized document could not be written.
	ExportFailed Kind = iota
	// NoCanvasDims means the root has no explicit width or height and
	// falls back to measuring its content.
	NoCanvasDims
	// NoIDOnGradientInput means a gradient was linked to another gradient
	// that has no id.
	NoIDOnGradientInput
	// NoResultOnInput means an effect was used as an input before its
	// result name was set.
	NoResultOnInput
	// UndefinedInput means a nil effect was passed as an input.
	UndefinedInput
	// UnnamedGradient means a paint referenced a gradient without an id.
	UnnamedGradient
	// UnnamedFilter means an element applied a filter without an id.
	UnnamedFilter
	// NoFilterName means a filter was created with an empty name.
	NoFilterName
	// NoIDOnDefinition means an element without an id was placed in the
	// definitions pool, where nothing can reference it.
	NoIDOnDefinition
	// RepeatedID means two distinct registered elements share an id.
	RepeatedID
	// InvalidValue means a numeric setter received NaN or a negative value.
	InvalidValue
	// InvalidAbsPathValue means an absolute path command got a negative or
	// NaN coordinate, which was replaced by 0.
	InvalidAbsPathValue
	// InvalidPathValue means a relative path command got a NaN coordinate,
	// which was replaced by 0.
	InvalidPathValue
	// InvalidPointValue means a polygon or polyline point had a negative or
	// NaN coordinate, which was replaced by 0.
	InvalidPointValue
	// InvalidGroupMember means a nil member was added to a collection: a
	// group or canvas, a filter's effects, merge layers, transfer
	// functions, gradient stops or text sub-lines.
	InvalidGroupMember
	// BadUseTarget means a use element was pointed at nothing, or at an
	// element without an id.
	BadUseTarget
	// UnregisteredFilter means a filter was applied without a canvas to
	// register it on, so the element's filter reference was left unset.
	UnregisteredFilter

	numKinds
)

var kindNames = [numKinds]string{
	ExportFailed:        "export_failed",
	NoCanvasDims:        "no_canvas_dims",
	NoIDOnGradientInput: "no_id_on_gradient_input",
	NoResultOnInput:     "no_result_on_input",
	UndefinedInput:      "undefined_input",
	UnnamedGradient:     "unnamed_gradient",
	UnnamedFilter:       "unnamed_filter",
	NoFilterName:        "no_filter_name",
	NoIDOnDefinition:    "no_id_on_definition",
	RepeatedID:          "repeated_id",
	InvalidValue:        "invalid_value",
	InvalidAbsPathValue: "invalid_abs_path_value",
	InvalidPathValue:    "invalid_path_value",
	InvalidPointValue:   "invalid_point_value",
	InvalidGroupMember:  "invalid_group_member",
	BadUseTarget:        "bad_use_target",
	UnregisteredFilter:  "unregistered_filter",
}

// String returns the stable snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind looks a kind up by its String form.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds lists the whole catalogue in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Severity grades a diagnostic for display.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Severity reports how serious diagnostics of this kind are. Only a failed
// export loses output; everything else is a warning.
func (k Kind) Severity() Severity {
	if k == ExportFailed {
		return SeverityError
	}
	return SeverityWarning
}

// Diagnostic is a single report. Fields other than Kind are optional context.
type Diagnostic struct {
	Kind     Kind
	Element  string // tag of the reporting element, e.g. "rect"
	Property string // attribute or setter involved, e.g. "width"
	Value    any    // offending value, if any
	Other    string // second party: the colliding id, the export path
	Err      error  // underlying error for ExportFailed
}

// Severity is a shorthand for d.Kind.Severity().
func (d Diagnostic) Severity() Severity { return d.Kind.Severity() }

// Message renders a one-line human-readable description.
func (d Diagnostic) Message() string {
	var msg string
	switch d.Kind {
	case ExportFailed:
		msg = "could not export document"
		if d.Other != "" {
			msg += " to " + d.Other
		}
	case NoCanvasDims:
		msg = "canvas has no width or height; using measured content size"
	case NoIDOnGradientInput:
		msg = "linked gradient has no id"
	case NoResultOnInput:
		msg = "input effect has no result name"
	case UndefinedInput:
		msg = "input effect is undefined; input left unset"
	case UnnamedGradient:
		msg = "gradient used as paint has no id"
	case UnnamedFilter:
		msg = "applied filter has no id"
	case NoFilterName:
		msg = "filter created without a name"
	case NoIDOnDefinition:
		msg = "definition has no id and cannot be referenced"
	case RepeatedID:
		msg = "id is used by more than one element"
	case InvalidValue:
		msg = "invalid numeric value"
	case InvalidAbsPathValue:
		msg = "invalid absolute path coordinate; using 0"
	case InvalidPathValue:
		msg = "invalid path coordinate; using 0"
	case InvalidPointValue:
		msg = "invalid point coordinate; using 0"
	case InvalidGroupMember:
		msg = "collection member is nil; it renders as nothing"
	case BadUseTarget:
		msg = "use target is missing or has no id"
	case UnregisteredFilter:
		msg = "filter applied without a canvas; filter reference left unset"
	default:
		msg = d.Kind.String()
	}

	var ctx []string
	if d.Element != "" {
		ctx = append(ctx, d.Element)
	}
	if d.Property != "" {
		ctx = append(ctx, d.Property)
	}
	if len(ctx) > 0 {
		msg = strings.Join(ctx, ".") + ": " + msg
	}
	if d.Value != nil {
		msg += fmt.Sprintf(" (got %v)", d.Value)
	}
	if d.Kind == RepeatedID && d.Other != "" {
		msg += " (" + d.Other + ")"
	}
	if d.Err != nil {
		msg += ": " + d.Err.Error()
	}
	return msg
}
