package svg

import (
	"strings"

	"github.com/matzehuels/svgkit/pkg/markup"
)

// Image embeds an external raster or vector image.
type Image struct {
	element[*Image]
	href          string
	x, y          *float64
	width, height *float64
	aspect        string
}

// Image creates an image element showing url at the given size.
func (b *Builder) Image(url string, width, height float64) *Image {
	i := &Image{href: url}
	i.bind(i, "image", b.Sink())
	return i.SetWidth(width).SetHeight(height)
}

func (i *Image) SetX(x float64) *Image      { i.x = i.coord("x", x); return i }
func (i *Image) SetY(y float64) *Image      { i.y = i.coord("y", y); return i }
func (i *Image) SetWidth(w float64) *Image  { i.width = i.length("width", w); return i }
func (i *Image) SetHeight(h float64) *Image { i.height = i.length("height", h); return i }

// SetAspectRatio sets preserveAspectRatio; strategy may be empty.
func (i *Image) SetAspectRatio(align, strategy string) *Image {
	i.aspect = strings.TrimSpace(align + " " + strategy)
	return i
}

func (i *Image) MaxX() float64 { return val(i.x) + val(i.width) }
func (i *Image) MaxY() float64 { return val(i.y) + val(i.height) }

func (i *Image) form() form {
	return form{bags: []markup.Bag{{
		i.idAttr(),
		{Key: "href", Value: markup.Str(i.href)},
		{Key: "x", Value: i.x},
		{Key: "y", Value: i.y},
		{Key: "width", Value: i.width},
		{Key: "height", Value: i.height},
		{Key: "preserveAspectRatio", Value: markup.Str(i.aspect)},
		i.filterAttr(),
	}}}
}
