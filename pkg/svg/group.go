package svg

import (
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/markup"
)

// Group nests content under shared paint and filter attributes.
type Group struct {
	painted[*Group]
	members []Content
}

// Group creates a group holding members in order.
func (b *Builder) Group(members ...Content) *Group {
	g := &Group{}
	g.bind(g, "g", b.Sink())
	return g.Add(members...)
}

// Add appends members. A nil member is reported and kept; it renders as
// nothing and measures 0. The same node may be added to several groups.
func (g *Group) Add(members ...Content) *Group {
	for _, m := range members {
		if isNil(m) {
			g.report(diag.InvalidGroupMember, "members", nil)
		}
		g.members = append(g.members, m)
	}
	return g
}

// Members returns the members in order, including nil ones.
func (g *Group) Members() []Content {
	out := make([]Content, len(g.members))
	copy(out, g.members)
	return out
}

func (g *Group) MaxX() float64 { return maxOver(g.members, Content.MaxX) }
func (g *Group) MaxY() float64 { return maxOver(g.members, Content.MaxY) }

func (g *Group) form() form {
	return form{
		bags:     []markup.Bag{{g.idAttr(), g.filterAttr()}, g.paint.bag()},
		open:     true,
		children: nonNil(g.members),
	}
}

// Use renders another element again by reference.
type Use struct {
	element[*Use]
	target        string
	x, y          *float64
	width, height *float64
}

// Use creates a use element pointing at target. The target's reference is
// captured now; a nil or unidentified target is reported and leaves the
// reference empty.
func (b *Builder) Use(target Node) *Use {
	u := b.newUse()
	ref, ok := Href(target)
	if !ok {
		u.report(diag.BadUseTarget, "href", nil)
	}
	u.target = ref
	return u
}

// UseRef creates a use element with a raw reference such as "#logo" or
// "sprites.svg#logo". An empty reference is reported.
func (b *Builder) UseRef(ref string) *Use {
	u := b.newUse()
	if ref == "" {
		u.report(diag.BadUseTarget, "href", ref)
	}
	u.target = ref
	return u
}

func (b *Builder) newUse() *Use {
	u := &Use{}
	u.bind(u, "use", b.Sink())
	return u
}

// Target returns the captured reference.
func (u *Use) Target() string { return u.target }

func (u *Use) SetX(x float64) *Use      { u.x = u.coord("x", x); return u }
func (u *Use) SetY(y float64) *Use      { u.y = u.coord("y", y); return u }
func (u *Use) SetWidth(w float64) *Use  { u.width = u.length("width", w); return u }
func (u *Use) SetHeight(h float64) *Use { u.height = u.length("height", h); return u }

// MaxX is 0: the referenced element is not known here.
func (u *Use) MaxX() float64 { return 0 }
func (u *Use) MaxY() float64 { return 0 }

func (u *Use) form() form {
	return form{bags: []markup.Bag{{
		u.idAttr(),
		{Key: "href", Value: markup.Str(u.target)},
		{Key: "x", Value: u.x},
		{Key: "y", Value: u.y},
		{Key: "width", Value: u.width},
		{Key: "height", Value: u.height},
		u.filterAttr(),
	}}}
}
