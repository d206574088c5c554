package svg

import (
	"testing"

	"github.com/matzehuels/svgkit/pkg/diag"
)

func TestFilterGraph(t *testing.T) {
	b, rec := newTestBuilder()
	blur := b.GaussianBlur().SetInputSource(SourceAlpha).SetStdDeviation(3).SetResult("blur")
	off := b.Offset().SetInput(blur).SetOffset(2, 2).SetResult("off")
	merge := b.Merge(b.MergeNode(off), b.MergeNode(nil).SetInputSource(SourceGraphic))
	f := b.Filter("shadow").Add(blur, off, merge)

	want := "<filter id=\"shadow\">\n" +
		"  <feGaussianBlur result=\"blur\" in=\"SourceAlpha\" stdDeviation=\"3\"/>\n" +
		"  <feOffset result=\"off\" in=\"blur\" dx=\"2\" dy=\"2\"/>\n" +
		"  <feMerge>\n" +
		"    <feMergeNode in=\"off\"/>\n" +
		"    <feMergeNode in=\"SourceGraphic\"/>\n" +
		"  </feMerge>\n" +
		"</filter>"
	if got := Render(f); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if n := rec.CountKind(diag.UndefinedInput); n != 1 {
		t.Errorf("got %d UndefinedInput, want 1", n)
	}
	if n := len(f.Effects()); n != 3 {
		t.Errorf("got %d effects, want 3", n)
	}
}

func TestEffectInputs(t *testing.T) {
	t.Run("unnamed input", func(t *testing.T) {
		b, rec := newTestBuilder()
		blend := b.Blend().SetInputSource(SourceGraphic).SetInput(b.Flood())
		if got, want := Render(blend), `<feBlend/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		all := rec.All()
		if len(all) != 1 || all[0].Kind != diag.NoResultOnInput || all[0].Property != "in" {
			t.Errorf("diagnostics = %v, want one NoResultOnInput on in", all)
		}
	})

	t.Run("nil input keeps previous", func(t *testing.T) {
		b, rec := newTestBuilder()
		blur := b.GaussianBlur().SetInputSource(SourceGraphic).SetInput(nil)
		if got, want := Render(blur), `<feGaussianBlur in="SourceGraphic"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if n := rec.CountKind(diag.UndefinedInput); n != 1 {
			t.Errorf("got %d UndefinedInput, want 1", n)
		}
	})

	t.Run("second input", func(t *testing.T) {
		b, rec := newTestBuilder()
		noise := b.Turbulence().SetBaseFrequency(0.05).SetResult("noise")
		d := b.DisplacementMap().SetInputSource(SourceGraphic).SetInput2(noise).SetScale(10)
		want := `<feDisplacementMap in="SourceGraphic" in2="noise" scale="10"/>`
		if got := Render(d); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if rec.Count() != 0 {
			t.Errorf("unexpected diagnostics: %v", rec.All())
		}
	})

	t.Run("result captured at call time", func(t *testing.T) {
		b, _ := newTestBuilder()
		src := b.Flood().SetResult("first")
		o := b.Offset().SetInput(src)
		src.SetResult("second")
		if got, want := Render(o), `<feOffset in="first"/>`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
}

func TestEffectMarkup(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"composite",
			b.Composite().SetOperator("arithmetic").SetCoefficients(0, 1, 1, 0),
			`<feComposite operator="arithmetic" k1="0" k2="1" k3="1" k4="0"/>`,
		},
		{
			"color matrix",
			b.ColorMatrix().SetType("saturate").SetValues(0.2),
			`<feColorMatrix type="saturate" values="0.2"/>`,
		},
		{
			"flood",
			b.Flood().SetColor("black").SetOpacity(0.3).SetResult("shade"),
			`<feFlood result="shade" flood-color="black" flood-opacity="0.3"/>`,
		},
		{
			"drop shadow",
			b.DropShadow().SetOffset(1, 2).SetStdDeviation(0.5),
			`<feDropShadow dx="1" dy="2" stdDeviation="0.5"/>`,
		},
		{
			"feImage",
			b.FeImage("texture.png").SetWidth(10),
			`<feImage width="10" href="texture.png"/>`,
		},
		{
			"diffuse lighting",
			b.DiffuseLighting().SetInputSource(SourceAlpha).SetLight(b.DistantLight(45, 30)),
			"<feDiffuseLighting in=\"SourceAlpha\">\n  <feDistantLight azimuth=\"45\" elevation=\"30\"/>\n</feDiffuseLighting>",
		},
		{
			"specular lighting",
			b.SpecularLighting().SetSpecularExponent(20).SetLight(b.PointLight(1, 2, 3)),
			"<feSpecularLighting specularExponent=\"20\">\n  <fePointLight x=\"1\" y=\"2\" z=\"3\"/>\n</feSpecularLighting>",
		},
		{
			"spot light",
			b.SpotLight(0, 0, 10).SetPointsAt(5, 5, 0).SetLimitingConeAngle(30),
			`<feSpotLight x="0" y="0" z="10" pointsAtX="5" pointsAtY="5" pointsAtZ="0" limitingConeAngle="30"/>`,
		},
		{
			"component transfer",
			b.ComponentTransfer(
				b.TransferFunc(ChannelR).SetType("linear").SetSlope(0.5),
				b.TransferFunc(ChannelA).SetType("table").SetTable(0, 1),
			),
			"<feComponentTransfer>\n  <feFuncR type=\"linear\" slope=\"0.5\"/>\n  <feFuncA type=\"table\" tableValues=\"0 1\"/>\n</feComponentTransfer>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFilterUnnamed(t *testing.T) {
	b, rec := newTestBuilder()
	f := b.Filter("")
	if f.ID() != "" {
		t.Errorf("ID() = %q, want empty", f.ID())
	}
	if _, ok := Href(f); ok {
		t.Error("Href reported a reference for an unnamed filter")
	}
	if n := rec.CountKind(diag.NoFilterName); n != 1 {
		t.Errorf("got %d NoFilterName, want 1", n)
	}
}

func TestMergeSource(t *testing.T) {
	b, rec := newTestBuilder()
	m := b.Merge(b.MergeSource(SourceGraphic), b.MergeSource(SourceAlpha))

	want := "<feMerge>\n" +
		"  <feMergeNode in=\"SourceGraphic\"/>\n" +
		"  <feMergeNode in=\"SourceAlpha\"/>\n" +
		"</feMerge>"
	if got := Render(m); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if n := rec.Count(); n != 0 {
		t.Errorf("unexpected diagnostics: %v", rec.All())
	}
}
