package markup

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Attr is a single attribute candidate. Value is rendered with [Format];
// absent values (see [IsAbsent]) produce no output.
type Attr struct {
	Key   string
	Value any
}

// Bag is an ordered group of attribute candidates. Element types usually
// contribute one bag for their own fields and one for shared paint fields.
type Bag []Attr

// Option configures [Assemble].
type Option func(*tagOpts)

type tagOpts struct {
	content   string
	hasBody   bool
	leaveOpen bool
}

// WithContent gives the tag a body. The body is written verbatim.
func WithContent(s string) Option {
	return func(o *tagOpts) { o.content, o.hasBody = s, true }
}

// LeaveOpen suppresses the closing tag after the body. The caller appends
// the matching [Close] line itself. It has no effect without a body.
func LeaveOpen() Option { return func(o *tagOpts) { o.leaveOpen = true } }

// Assemble builds a tag from ordered attribute bags.
//
// Keys are written with underscores replaced by hyphens; all other
// characters, including camelCase, are kept. Neither keys nor values are
// escaped: callers supply markup-safe strings.
func Assemble(name string, bags []Bag, opts ...Option) string {
	var o tagOpts
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, bag := range bags {
		for _, a := range bag {
			v, ok := Format(a.Value)
			if !ok {
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(AttrName(a.Key))
			sb.WriteString(`="`)
			sb.WriteString(v)
			sb.WriteByte('"')
		}
	}

	if !o.hasBody {
		sb.WriteString("/>")
		return sb.String()
	}
	sb.WriteByte('>')
	sb.WriteString(o.content)
	if !o.leaveOpen {
		sb.WriteString(Close(name))
	}
	return sb.String()
}

// Open returns an opening tag whose children follow on separate lines.
func Open(name string, bags ...Bag) string {
	return Assemble(name, bags, WithContent(""), LeaveOpen())
}

// Close returns the closing tag for name.
func Close(name string) string { return "</" + name + ">" }

// AttrName converts a field key into its attribute name.
func AttrName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// IsAbsent reports whether v renders no attribute.
func IsAbsent(v any) bool {
	_, ok := Format(v)
	return !ok
}

// Format renders a value in its literal textual form. It returns false for
// absent values: nil and typed nil pointers.
func Format(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case float64:
		return FormatFloat(x), true
	case *float64:
		if x == nil {
			return "", false
		}
		return FormatFloat(*x), true
	case float32:
		return FormatFloat(float64(x)), true
	case int:
		return strconv.Itoa(x), true
	case *int:
		if x == nil {
			return "", false
		}
		return strconv.Itoa(*x), true
	case bool:
		return strconv.FormatBool(x), true
	case *bool:
		if x == nil {
			return "", false
		}
		return strconv.FormatBool(*x), true
	case interface{ String() string }:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return x.String(), true
	}
	return "", false
}

// FormatFloat writes f in the shortest form that round-trips: 10, 0.5, -3.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Str maps the empty string to an absent value.
func Str(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Join renders numbers separated by sep, or an absent value for an empty list.
func Join(values []float64, sep string) any {
	if len(values) == 0 {
		return nil
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, sep)
}
