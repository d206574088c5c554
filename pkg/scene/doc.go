// Package scene compiles declarative scene files into SVG canvases.
//
// A scene is a TOML or YAML document with canvas settings, a pool of
// gradients and filters, and a list of elements to draw:
//
//	width = 120
//	height = 80
//
//	[[gradients]]
//	id = "sky"
//	stops = [{offset = 0, color = "white"}, {offset = 1, color = "blue"}]
//
//	[[elements]]
//	kind = "rect"
//	width = 120
//	height = 80
//	fill_gradient = "sky"
//
// Definitions are referenced by id and must appear before their first use.
// Effects inside a filter reference earlier effects by their result name or
// a standard input such as "SourceGraphic".
//
// Parsing and building are separate steps. [Parse] and [Load] validate
// structure and ids; [Scene.Build] resolves references and hands every
// value to the svg builder, whose diagnostics go to the builder's sink.
package scene
