package svg

import "testing"

func TestEqual(t *testing.T) {
	b, _ := newTestBuilder()
	grad := func(color string) *LinearGradient {
		return b.LinearGradient().SetID("g").AddStop(b.Stop(0, color))
	}

	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same fields", b.Rect(1, 2, 3, 4).SetID("r"), b.Rect(1, 2, 3, 4).SetID("r"), true},
		{"different value", b.Rect(1, 2, 3, 4), b.Rect(1, 2, 3, 5), false},
		{"absent vs present", b.Rect(0, 0, 1, 1), b.Rect(0, 0, 1, 1).SetRadiusX(0), false},
		{"different type", b.Rect(0, 0, 1, 1), b.Ellipse(0, 0, 1, 1), false},
		{"different id", b.Circle(1, 1, 1).SetID("a"), b.Circle(1, 1, 1).SetID("b"), false},
		{"paint differs", b.Circle(1, 1, 1).SetFill("red"), b.Circle(1, 1, 1).SetFill("blue"), false},
		{"equal children", grad("red"), grad("red"), true},
		{"different children", grad("red"), grad("blue"), false},
		{"text body", b.Text(0, 0, "a"), b.Text(0, 0, "b"), false},
		{"nil both", nil, nil, true},
		{"nil one", b.Rect(0, 0, 1, 1), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualIgnoresCapturedTargets(t *testing.T) {
	b, _ := newTestBuilder()
	g1 := b.LinearGradient().SetID("g")
	g2 := b.LinearGradient().SetID("g").SetSpreadMethod("pad")

	// Both rects capture "#g"; which gradient produced it does not matter.
	r1 := b.Rect(0, 0, 1, 1).SetFillGradient(g1)
	r2 := b.Rect(0, 0, 1, 1).SetFillGradient(g2)
	if !Equal(r1, r2) {
		t.Error("rects filled with the same reference should be equal")
	}
}
