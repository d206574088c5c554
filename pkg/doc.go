// Package pkg provides the libraries behind svgkit, a programmatic SVG
// document builder.
//
// # Overview
//
// svgkit builds SVG documents from typed Go values instead of string
// templates. Elements, gradients and filter effects are created through a
// [svg.Builder], registered on a [svg.Canvas], and rendered as indented
// markup. Problems that do not stop a render, such as a negative radius or
// a reference to an undefined id, are reported as diagnostics rather than
// errors.
//
// The pkg directory is organized into three areas:
//
//  1. Document model: [markup], [svg], [diag]
//  2. Scene files: [scene]
//  3. Infrastructure: [cache], [io], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through svgkit:
//
//	Scene file (TOML/YAML)  or  Go code
//	         ↓
//	    [scene] package (parse + resolve references)
//	         ↓
//	    [svg] package (elements, defs, filters, canvas registry)
//	         ↓
//	    [markup] package (tags + indenting composer)
//	         ↓
//	    SVG document
//
// # Quick Start
//
// Draw a gradient-filled rectangle with a drop shadow:
//
//	b := svg.NewBuilder()
//	c := b.Canvas(svg.Size(120, 80))
//
//	sky := b.LinearGradient().SetID("sky").
//	    AddStop(b.Stop(0, "white"), b.Stop(1, "steelblue"))
//	shadow := b.Filter("shadow").Add(
//	    b.DropShadow().SetInputSource(svg.SourceGraphic),
//	)
//
//	c.Draw(b.Rect(10, 10, 100, 60).SetFillGradient(sky).UseFilter(shadow, c))
//	c.Define(sky)
//	fmt.Println(c)
//
// # Main Packages
//
// [markup] - Tag assembly and the indenting composer. Knows nothing about
// SVG semantics.
//
// [svg] - The element taxonomy, identity and references, the canvas
// registry with definition dedup, and filter effect graphs.
//
// [diag] - Diagnostic kinds and sinks. Builders report through a sink
// chosen with [svg.WithSink].
//
// [scene] - Declarative scenes compiled onto the svg builder.
//
// [cache] - Render cache with file, Redis and null backends.
//
// [observability] - Hooks for builds, cache access and exports, with a
// Prometheus implementation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/svg/...      # Specific package
//	go test -run Example       # Examples only
//
// [svg.Builder]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/svg#Builder
// [svg.Canvas]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/svg#Canvas
// [svg.WithSink]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/svg#WithSink
// [markup]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/markup
// [svg]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/svg
// [diag]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/diag
// [scene]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/scene
// [cache]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/svgkit/pkg/buildinfo
package pkg
