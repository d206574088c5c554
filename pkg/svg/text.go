package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Text is a run of text, optionally followed by sub-lines rendered as
// tspan children. Its extent is unknown without font metrics, so it
// measures 0.
type Text struct {
	painted[*Text]
	x, y, dx, dy *float64
	rotate       []float64
	lengthAdjust string
	textLength   *float64
	content      string
	lines        []*Text
}

// Text creates a text element at (x, y).
func (b *Builder) Text(x, y float64, content string) *Text {
	t := &Text{content: content}
	t.bind(t, "text", b.Sink())
	return t.SetX(x).SetY(y)
}

func (t *Text) SetX(x float64) *Text       { t.x = t.coord("x", x); return t }
func (t *Text) SetY(y float64) *Text       { t.y = t.coord("y", y); return t }
func (t *Text) SetShiftX(dx float64) *Text { t.dx = t.coord("dx", dx); return t }
func (t *Text) SetShiftY(dy float64) *Text { t.dy = t.coord("dy", dy); return t }

// SetRotation sets per-glyph rotation. No values leaves it unchanged.
func (t *Text) SetRotation(values ...float64) *Text {
	if len(values) > 0 {
		t.rotate = values
	}
	return t
}

// SetLengthAdjust sets lengthAdjust: spacing or spacingAndGlyphs.
func (t *Text) SetLengthAdjust(mode string) *Text { t.lengthAdjust = mode; return t }

// SetTextLength sets textLength, the advance the text is fitted to.
func (t *Text) SetTextLength(l float64) *Text { t.textLength = t.length("textLength", l); return t }

// AddLine appends a sub-line. Sub-lines keep their own attributes and
// paint; their own sub-lines are not rendered. A nil line is reported and
// kept; it renders as nothing.
func (t *Text) AddLine(line *Text) *Text {
	if line == nil {
		t.report(diag.InvalidGroupMember, "lines", nil)
	}
	t.lines = append(t.lines, line)
	return t
}

// Content returns the text of the main line.
func (t *Text) Content() string { return t.content }

func (t *Text) MaxX() float64 { return 0 }
func (t *Text) MaxY() float64 { return 0 }

func (t *Text) bags() []markup.Bag {
	var rotate any
	if len(t.rotate) > 0 {
		rotate = markup.Join(t.rotate, ",")
	}
	return []markup.Bag{{
		t.idAttr(),
		{Key: "x", Value: t.x},
		{Key: "y", Value: t.y},
		{Key: "dx", Value: t.dx},
		{Key: "dy", Value: t.dy},
		{Key: "rotate", Value: rotate},
		{Key: "lengthAdjust", Value: markup.Str(t.lengthAdjust)},
		{Key: "textLength", Value: t.textLength},
		t.filterAttr(),
	}, t.paint.bag()}
}

func (t *Text) form() form {
	children := make([]Node, 0, len(t.lines))
	for _, l := range t.lines {
		if l != nil {
			children = append(children, &tspan{line: l})
		}
	}
	return form{
		bags:     t.bags(),
		text:     " " + t.content + " ",
		hasText:  true,
		open:     true,
		children: children,
	}
}

// tspan renders a Text as a sub-line of another.
type tspan struct {
	line *Text
}

func (*tspan) Tag() string                         { return "tspan" }
func (s *tspan) ID() string                        { return s.line.ID() }
func (s *tspan) Markup(c markup.Composer) []string { return render(s, c) }

func (s *tspan) form() form {
	return form{bags: s.line.bags(), text: " " + s.line.content + " ", hasText: true}
}
