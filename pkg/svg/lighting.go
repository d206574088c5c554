package svg

import "github.com/matzehuels/svgkit/pkg/markup"

// Light is the light source of a lighting effect.
type Light interface {
	Node
	light()
}

// lit holds what both lighting effects share.
type lit[T any] struct {
	single[T]
	surfaceScale *float64
	color        string
	source       Light
}

func (l *lit[T]) SetSurfaceScale(s float64) T { l.surfaceScale = l.coord("surfaceScale", s); return l.self }

// SetLightingColor sets lighting-color.
func (l *lit[T]) SetLightingColor(c string) T { l.color = c; return l.self }

// SetLight sets the single light source, replacing any previous one.
func (l *lit[T]) SetLight(src Light) T { l.source = src; return l.self }

func (l *lit[T]) children() []Node {
	if isNil(l.source) {
		return nil
	}
	return []Node{l.source}
}

// DiffuseLighting lights the input's alpha channel as a bump map.
type DiffuseLighting struct {
	lit[*DiffuseLighting]
	diffuse *float64
}

func (b *Builder) DiffuseLighting() *DiffuseLighting {
	e := &DiffuseLighting{}
	e.bind(e, "feDiffuseLighting", b.Sink())
	return e
}

func (e *DiffuseLighting) SetDiffuseConstant(k float64) *DiffuseLighting {
	e.diffuse = e.length("diffuseConstant", k)
	return e
}

func (e *DiffuseLighting) form() form {
	return form{
		bags: []markup.Bag{e.head(), {
			{Key: "surfaceScale", Value: e.surfaceScale},
			{Key: "diffuseConstant", Value: e.diffuse},
			{Key: "lighting_color", Value: markup.Str(e.color)},
		}},
		open:     true,
		children: e.children(),
	}
}

// SpecularLighting adds specular highlights from a light source.
type SpecularLighting struct {
	lit[*SpecularLighting]
	constant *float64
	exponent *float64
}

func (b *Builder) SpecularLighting() *SpecularLighting {
	e := &SpecularLighting{}
	e.bind(e, "feSpecularLighting", b.Sink())
	return e
}

func (e *SpecularLighting) SetSpecularConstant(k float64) *SpecularLighting {
	e.constant = e.length("specularConstant", k)
	return e
}

func (e *SpecularLighting) SetSpecularExponent(x float64) *SpecularLighting {
	e.exponent = e.length("specularExponent", x)
	return e
}

func (e *SpecularLighting) form() form {
	return form{
		bags: []markup.Bag{e.head(), {
			{Key: "surfaceScale", Value: e.surfaceScale},
			{Key: "specularConstant", Value: e.constant},
			{Key: "specularExponent", Value: e.exponent},
			{Key: "lighting_color", Value: markup.Str(e.color)},
		}},
		open:     true,
		children: e.children(),
	}
}

type lightSource[T any] struct {
	core[T]
}

func (*lightSource[T]) light() {}

// DistantLight is infinitely far away, shining from a direction.
type DistantLight struct {
	lightSource[*DistantLight]
	azimuth, elevation *float64
}

// DistantLight creates a light shining from azimuth and elevation, in
// degrees.
func (b *Builder) DistantLight(azimuth, elevation float64) *DistantLight {
	l := &DistantLight{}
	l.bind(l, "feDistantLight", b.Sink())
	l.azimuth, l.elevation = l.coord("azimuth", azimuth), l.coord("elevation", elevation)
	return l
}

func (l *DistantLight) form() form {
	return form{bags: []markup.Bag{{
		{Key: "azimuth", Value: l.azimuth},
		{Key: "elevation", Value: l.elevation},
	}}}
}

// PointLight shines in all directions from a point.
type PointLight struct {
	lightSource[*PointLight]
	x, y, z *float64
}

func (b *Builder) PointLight(x, y, z float64) *PointLight {
	l := &PointLight{}
	l.bind(l, "fePointLight", b.Sink())
	l.x, l.y, l.z = l.coord("x", x), l.coord("y", y), l.coord("z", z)
	return l
}

func (l *PointLight) form() form {
	return form{bags: []markup.Bag{{
		{Key: "x", Value: l.x},
		{Key: "y", Value: l.y},
		{Key: "z", Value: l.z},
	}}}
}

// SpotLight shines a cone from a point toward a target.
type SpotLight struct {
	lightSource[*SpotLight]
	x, y, z             *float64
	atX, atY, atZ       *float64
	exponent, coneAngle *float64
}

func (b *Builder) SpotLight(x, y, z float64) *SpotLight {
	l := &SpotLight{}
	l.bind(l, "feSpotLight", b.Sink())
	l.x, l.y, l.z = l.coord("x", x), l.coord("y", y), l.coord("z", z)
	return l
}

// SetPointsAt sets the point the cone is aimed at.
func (l *SpotLight) SetPointsAt(x, y, z float64) *SpotLight {
	l.atX, l.atY, l.atZ = l.coord("pointsAtX", x), l.coord("pointsAtY", y), l.coord("pointsAtZ", z)
	return l
}

func (l *SpotLight) SetSpecularExponent(e float64) *SpotLight {
	l.exponent = l.length("specularExponent", e)
	return l
}

// SetLimitingConeAngle restricts the cone, in degrees.
func (l *SpotLight) SetLimitingConeAngle(a float64) *SpotLight {
	l.coneAngle = l.coord("limitingConeAngle", a)
	return l
}

func (l *SpotLight) form() form {
	return form{bags: []markup.Bag{{
		{Key: "x", Value: l.x},
		{Key: "y", Value: l.y},
		{Key: "z", Value: l.z},
		{Key: "pointsAtX", Value: l.atX},
		{Key: "pointsAtY", Value: l.atY},
		{Key: "pointsAtZ", Value: l.atZ},
		{Key: "specularExponent", Value: l.exponent},
		{Key: "limitingConeAngle", Value: l.coneAngle},
	}}}
}
