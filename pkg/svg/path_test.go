package svg

import (
	"math"
	"testing"

	"github.com/matzehuels/svgkit/pkg/diag"
)

func TestPathData(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name string
		path *Path
		want string
	}{
		{"move and line", b.Path(10, 20).LineTo(30, 40), "M10 20 L30 40"},
		{"relative", b.Path(0, 0).LineToRel(-5, 3).MoveToRel(1, 1), "M0 0 l-5 3 m1 1"},
		{"axis lines", b.Path(0, 0).HorizontalTo(5).VerticalToRel(-2), "M0 0 H5 v-2"},
		{"cubic", b.Path(0, 0).CubicTo(1, 2, 3, 4, 5, 6), "M0 0 C1 2, 3 4, 5 6"},
		{"smooth cubic", b.Path(0, 0).SmoothCubicTo(1, 2, 3, 4), "M0 0 S1 2, 3 4"},
		{"quadratic", b.Path(0, 0).QuadTo(1, 2, 3, 4).SmoothQuadTo(5, 6), "M0 0 Q1 2, 3 4 T5 6"},
		{"arc", b.Path(0, 0).ArcTo(5, 5, 0, true, false, 50, 50), "M0 0 A5 5 0 1 0 50 50"},
		{"close", b.Path(0, 0).LineTo(1, 1).Close(), "M0 0 L1 1 Z"},
		{"command letters", b.Path(0, 0).Command('l', 2, 2).Command('z'), "M0 0 l2 2 z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.D(); got != tt.want {
				t.Errorf("D() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathValidation(t *testing.T) {
	t.Run("negative absolute", func(t *testing.T) {
		b, rec := newTestBuilder()
		p := b.Path(10, 20).LineTo(-5, 30)
		if got, want := p.D(), "M10 20 L0 30"; got != want {
			t.Errorf("D() = %q, want %q", got, want)
		}
		all := rec.All()
		if len(all) != 1 || all[0].Kind != diag.InvalidAbsPathValue || all[0].Property != "x" {
			t.Errorf("diagnostics = %v, want one InvalidAbsPathValue on x", all)
		}
	})

	t.Run("NaN relative", func(t *testing.T) {
		b, rec := newTestBuilder()
		p := b.Path(0, 0).LineToRel(math.NaN(), 1)
		if got, want := p.D(), "M0 0 l0 1"; got != want {
			t.Errorf("D() = %q, want %q", got, want)
		}
		if n := rec.CountKind(diag.InvalidPathValue); n != 1 {
			t.Errorf("got %d InvalidPathValue, want 1", n)
		}
	})

	t.Run("unknown command ignored", func(t *testing.T) {
		b, rec := newTestBuilder()
		p := b.Path(0, 0).Command('X', 1).Command('L', 1)
		if got, want := p.D(), "M0 0"; got != want {
			t.Errorf("D() = %q, want %q", got, want)
		}
		if n := rec.CountKind(diag.InvalidPathValue); n != 2 {
			t.Errorf("got %d InvalidPathValue, want 2", n)
		}
	})
}

func TestPathMeasurement(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name       string
		path       *Path
		maxX, maxY float64
	}{
		{"lines", b.Path(10, 5).LineTo(30, 2).VerticalTo(40), 30, 40},
		{"cubic controls", b.Path(0, 0).CubicTo(80, 1, 2, 90, 5, 5), 80, 90},
		{"arc radius", b.Path(0, 0).ArcTo(5, 7, 0, false, true, 50, 40), 55, 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.MaxX(); got != tt.maxX {
				t.Errorf("MaxX() = %v, want %v", got, tt.maxX)
			}
			if got := tt.path.MaxY(); got != tt.maxY {
				t.Errorf("MaxY() = %v, want %v", got, tt.maxY)
			}
		})
	}
}

func TestPathMarkup(t *testing.T) {
	b, _ := newTestBuilder()
	p := b.Path(0, 0).LineTo(10, 10).SetID("diag").SetBorder("red").SetPathLength(100)
	want := `<path id="diag" d="M0 0 L10 10" pathLength="100" stroke="red"/>`
	if got := Render(p); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
