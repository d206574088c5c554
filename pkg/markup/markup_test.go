package markup

import (
	"math"
	"testing"
)

func ptr[T any](v T) *T { return &v }

type label struct{ text string }

func (l *label) String() string { return l.text }

func TestAssembleSelfClosing(t *testing.T) {
	tests := []struct {
		name string
		bags []Bag
		want string
	}{
		{"no bags", nil, "<rect/>"},
		{"empty bag", []Bag{{}}, "<rect/>"},
		{"only absent values", []Bag{{
			{Key: "x", Value: nil},
			{Key: "y", Value: (*float64)(nil)},
			{Key: "id", Value: Str("")},
			{Key: "flag", Value: (*bool)(nil)},
		}}, "<rect/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assemble("rect", tt.bags); got != tt.want {
				t.Errorf("Assemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleKeyTranslation(t *testing.T) {
	tests := []struct {
		key  string
		val  any
		want string
	}{
		{"stroke_width", 2, `<path stroke-width="2"/>`},
		{"pathLength", 5.0, `<path pathLength="5"/>`},
		{"x_axis_rotation", 0.5, `<path x-axis-rotation="0.5"/>`},
		{"viewBox", "0 0 10 10", `<path viewBox="0 0 10 10"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Assemble("path", []Bag{{{Key: tt.key, Value: tt.val}}})
			if got != tt.want {
				t.Errorf("Assemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleOrder(t *testing.T) {
	got := Assemble("rect", []Bag{
		{{Key: "id", Value: "r1"}, {Key: "x", Value: 10.0}, {Key: "skip", Value: nil}},
		{{Key: "fill", Value: "red"}, {Key: "fill_opacity", Value: ptr(0.5)}},
	})
	want := `<rect id="r1" x="10" fill="red" fill-opacity="0.5"/>`
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleContent(t *testing.T) {
	bags := []Bag{{{Key: "x", Value: 1}}}

	if got, want := Assemble("text", bags, WithContent(" hi ")), `<text x="1"> hi </text>`; got != want {
		t.Errorf("closed = %q, want %q", got, want)
	}
	if got, want := Assemble("text", bags, WithContent(" hi "), LeaveOpen()), `<text x="1"> hi `; got != want {
		t.Errorf("open = %q, want %q", got, want)
	}
	if got, want := Assemble("g", nil, WithContent("")), `<g></g>`; got != want {
		t.Errorf("empty body = %q, want %q", got, want)
	}
	if got, want := Open("g", Bag{{Key: "id", Value: "a"}}), `<g id="a">`; got != want {
		t.Errorf("Open() = %q, want %q", got, want)
	}
	// LeaveOpen without content still self-closes.
	if got, want := Assemble("g", nil, LeaveOpen()), `<g/>`; got != want {
		t.Errorf("LeaveOpen only = %q, want %q", got, want)
	}
}

// Values are not escaped. This is a known limitation: callers are expected
// to pass markup-safe strings.
func TestAssembleDoesNotEscape(t *testing.T) {
	got := Assemble("text", []Bag{{{Key: "class", Value: `a"b<c`}}}, WithContent("x < y & z"))
	want := `<text class="a"b<c">x < y & z</text>`
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"string", "abc", "abc", true},
		{"empty string", "", "", true},
		{"int", 3, "3", true},
		{"integral float", 10.0, "10", true},
		{"fraction", 0.25, "0.25", true},
		{"negative", -3.0, "-3", true},
		{"negative zero", math.Copysign(0, -1), "0", true},
		{"bool", true, "true", true},
		{"nil float ptr", (*float64)(nil), "", false},
		{"float ptr", ptr(1.5), "1.5", true},
		{"nil string ptr", (*string)(nil), "", false},
		{"bool ptr", ptr(false), "false", true},
		{"stringer", &label{"x"}, "x", true},
		{"nil stringer", (*label)(nil), "", false},
		{"unsupported", struct{}{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Format(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Format(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil, ","); got != nil {
		t.Errorf("Join(nil) = %v, want nil", got)
	}
	if got := Join([]float64{1, 2.5, 3}, " "); got != "1 2.5 3" {
		t.Errorf("Join() = %v, want %q", got, "1 2.5 3")
	}
}
