package svg

import (
	"math"
	"testing"

	"github.com/matzehuels/svgkit/pkg/diag"
)

func TestShapeMarkup(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"rect", b.Rect(1, 2, 3, 4).SetRadiusX(0.5), `<rect x="1" y="2" width="3" height="4" rx="0.5"/>`},
		{"circle", b.Circle(5, 5, 2).SetID("c"), `<circle id="c" cx="5" cy="5" r="2"/>`},
		{"ellipse", b.Ellipse(5, 6, 2, 1), `<ellipse cx="5" cy="6" rx="2" ry="1"/>`},
		{"line", b.Line(0, 0, 10, 5), `<line x1="0" y1="0" x2="10" y2="5"/>`},
		{"polygon", b.Polygon(0, 0, 10, 0).AddPoint(5, 8), `<polygon points="0,0 10,0 5,8"/>`},
		{"polyline", b.Polyline(0, 0, 1.5, 2), `<polyline points="0,0 1.5,2"/>`},
		{"image", b.Image("logo.png", 20, 10).SetX(5), `<image href="logo.png" x="5" width="20" height="10"/>`},
		{
			"paint",
			b.Rect(0, 0, 1, 1).SetBorder("black", StrokeWidth(2), LineCap("round")).SetFill("none").SetBorderDashing(4, 2),
			`<rect x="0" y="0" width="1" height="1" stroke="black" stroke-width="2" stroke-linecap="round" stroke-dasharray="4,2" fill="none"/>`,
		},
		{
			"fill options",
			b.Circle(1, 1, 1).SetFill("red", FillOpacity(0.5), FillRule("evenodd")),
			`<circle cx="1" cy="1" r="1" fill="red" fill-opacity="0.5" fill-rule="evenodd"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestShapeMeasurement(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name       string
		node       Content
		maxX, maxY float64
	}{
		{"rect", b.Rect(10, 5, 30, 20), 40, 25},
		{"circle", b.Circle(10, 20, 5), 15, 25},
		{"ellipse", b.Ellipse(10, 20, 5, 2), 15, 22},
		{"line reversed", b.Line(30, 40, 10, 5), 30, 40},
		{"polygon", b.Polygon(1, 9, 7, 2).AddPoint(3, 3), 7, 9},
		{"image without position", b.Image("a.png", 20, 10), 20, 10},
		{"text", b.Text(100, 100, "far away"), 0, 0},
		{"use", b.UseRef("#x"), 0, 0},
		{"empty group", b.Group(), 0, 0},
		{"group", b.Group(b.Rect(0, 0, 5, 5), b.Group(b.Circle(20, 1, 2))), 22, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.MaxX(); got != tt.maxX {
				t.Errorf("MaxX() = %v, want %v", got, tt.maxX)
			}
			if got := tt.node.MaxY(); got != tt.maxY {
				t.Errorf("MaxY() = %v, want %v", got, tt.maxY)
			}
		})
	}
}

func TestValueValidation(t *testing.T) {
	t.Run("negative length kept and reported", func(t *testing.T) {
		b, rec := newTestBuilder()
		r := b.Rect(0, 0, -5, 1)
		if got, want := Render(r), `<rect x="0" y="0" width="-5" height="1"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if n := rec.CountKind(diag.InvalidValue); n != 1 {
			t.Errorf("got %d InvalidValue, want 1", n)
		}
	})

	t.Run("negative coordinate allowed", func(t *testing.T) {
		b, rec := newTestBuilder()
		b.Rect(-3, -4, 1, 1)
		if n := rec.Count(); n != 0 {
			t.Errorf("got %d diagnostics, want 0", n)
		}
	})

	t.Run("NaN dropped", func(t *testing.T) {
		b, rec := newTestBuilder()
		c := b.Circle(math.NaN(), 1, 1)
		if got, want := Render(c), `<circle cy="1" r="1"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		d := rec.All()
		if len(d) != 1 || d[0].Kind != diag.InvalidValue || d[0].Element != "circle" || d[0].Property != "cx" {
			t.Errorf("diagnostics = %v", d)
		}
	})

	t.Run("invalid polygon point", func(t *testing.T) {
		b, rec := newTestBuilder()
		p := b.Polygon(0, 0, 10, 0).AddPoint(-1, 5)
		if got, want := Render(p), `<polygon points="0,0 10,0 0,5"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if n := rec.CountKind(diag.InvalidPointValue); n != 1 {
			t.Errorf("got %d InvalidPointValue, want 1", n)
		}
	})
}

func TestGroupMembers(t *testing.T) {
	b, rec := newTestBuilder()
	r := b.Rect(0, 0, 1, 1)
	g := b.Group(r, nil).SetID("layer").SetFill("blue")

	if n := rec.CountKind(diag.InvalidGroupMember); n != 1 {
		t.Errorf("got %d InvalidGroupMember, want 1", n)
	}
	if n := len(g.Members()); n != 2 {
		t.Errorf("got %d members, want 2", n)
	}

	want := "<g id=\"layer\" fill=\"blue\">\n" +
		"  <rect x=\"0\" y=\"0\" width=\"1\" height=\"1\"/>\n" +
		"</g>"
	if got := Render(g); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// A node may belong to several groups.
	other := b.Group(r)
	if other.Members()[0] != Content(r) {
		t.Error("shared member not kept")
	}
}

func TestUse(t *testing.T) {
	t.Run("identified target", func(t *testing.T) {
		b, rec := newTestBuilder()
		target := b.Rect(0, 0, 1, 1).SetID("tile")
		u := b.Use(target).SetX(10)
		target.SetID("renamed")

		if got, want := Render(u), `<use href="#tile" x="10"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if rec.Count() != 0 {
			t.Errorf("unexpected diagnostics: %v", rec.All())
		}
	})

	t.Run("unidentified target", func(t *testing.T) {
		b, rec := newTestBuilder()
		u := b.Use(b.Rect(0, 0, 1, 1))
		if got, want := Render(u), `<use/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if n := rec.CountKind(diag.BadUseTarget); n != 1 {
			t.Errorf("got %d BadUseTarget, want 1", n)
		}
	})

	t.Run("raw reference", func(t *testing.T) {
		b, _ := newTestBuilder()
		if got := b.UseRef("sprites.svg#star").Target(); got != "sprites.svg#star" {
			t.Errorf("Target() = %q", got)
		}
	})
}

func TestText(t *testing.T) {
	b, _ := newTestBuilder()
	txt := b.Text(5, 10, "Hello").
		SetFill("black").
		AddLine(b.Text(5, 20, "World").SetShiftX(2))

	want := "<text x=\"5\" y=\"10\" fill=\"black\"> Hello \n" +
		"  <tspan x=\"5\" y=\"20\" dx=\"2\"> World </tspan>\n" +
		"</text>"
	if got := Render(txt); got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}

	single := b.Text(0, 0, "hi").SetRotation(10, 20).SetLengthAdjust("spacing")
	want = "<text x=\"0\" y=\"0\" rotate=\"10,20\" lengthAdjust=\"spacing\"> hi \n</text>"
	if got := Render(single); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGradients(t *testing.T) {
	t.Run("linear with stops", func(t *testing.T) {
		b, _ := newTestBuilder()
		g := b.LinearGradient().SetID("fade").
			SetStart(0, 0, UnitPercent).
			SetEnd(100, 0, UnitPercent).
			AddStop(b.Stop(0, "red"), b.Stop(1, "blue").SetOpacity(0.5))

		want := "<linearGradient id=\"fade\" x1=\"0%\" x2=\"100%\" y1=\"0%\" y2=\"0%\">\n" +
			"  <stop offset=\"0\" stop-color=\"red\"/>\n" +
			"  <stop offset=\"1\" stop-color=\"blue\" stop-opacity=\"0.5\"/>\n" +
			"</linearGradient>"
		if got := Render(g); got != want {
			t.Errorf("got\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("radial linked", func(t *testing.T) {
		b, rec := newTestBuilder()
		base := b.LinearGradient().SetID("base")
		g := b.RadialGradient().SetID("glow").LinkTo(base).SetCircle(50, 50, 50, UnitPercent)

		want := "<radialGradient id=\"glow\" href=\"#base\" cx=\"50%\" cy=\"50%\" r=\"50%\">\n</radialGradient>"
		if got := Render(g); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if rec.Count() != 0 {
			t.Errorf("unexpected diagnostics: %v", rec.All())
		}
	})

	t.Run("link to unidentified", func(t *testing.T) {
		b, rec := newTestBuilder()
		b.RadialGradient().LinkTo(b.LinearGradient())
		if n := rec.CountKind(diag.NoIDOnGradientInput); n != 1 {
			t.Errorf("got %d NoIDOnGradientInput, want 1", n)
		}
	})
}

func TestGradientPaint(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		b, _ := newTestBuilder()
		g := b.LinearGradient().SetID("g1")
		r := b.Rect(0, 0, 1, 1).SetFillGradient(g).SetBorderGradient(g)
		want := `<rect x="0" y="0" width="1" height="1" stroke="url(#g1)" fill="url(#g1)"/>`
		if got := Render(r); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("unresolved keeps chaining", func(t *testing.T) {
		b, rec := newTestBuilder()
		r := b.Rect(0, 0, 1, 1).SetFillGradient(b.LinearGradient()).SetBorder("black")

		want := `<rect x="0" y="0" width="1" height="1" stroke="black"/>`
		if got := Render(r); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		all := rec.All()
		if len(all) != 1 || all[0].Kind != diag.UnnamedGradient || all[0].Property != "fill" {
			t.Errorf("diagnostics = %v, want one UnnamedGradient on fill", all)
		}
	})
}
