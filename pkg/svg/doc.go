// Package svg builds SVG documents from typed elements.
//
// # Overview
//
// Elements are created by a [Builder] and configured with chained setters
// that return the concrete type:
//
//	b := svg.NewBuilder(svg.WithSink(diag.NewLogSink(logger)))
//	c := b.Canvas(svg.Size(100, 100))
//	c.Draw(b.Rect(10, 10, 30, 20).SetID("r1").SetFill("tomato"))
//	fmt.Println(c)
//
// Every element belongs to one capability set:
//
//   - [Content]: drawable and measurable, can carry a filter. Shapes, text,
//     images and use references.
//   - [Definition]: only referenced, never drawn. Gradients and filters.
//   - [Structural]: content that holds other content. [Group] and [Canvas].
//
// Filter primitives ([Effect]), gradient stops, light sources and transfer
// functions are nested parts of a definition and are not registered on
// their own.
//
// # References
//
// A reference is captured when it is set: SetFillGradient, UseFilter,
// LinkTo, SetInput and [Builder.Use] copy the target's id (or effect result
// name) at call time. Changing the target's id afterwards does not update
// the reference. Referencing an element without an id reports a diagnostic
// and renders the attribute as absent.
//
// # Canvas registry
//
// [Canvas.Draw] appends to the content list and [Canvas.Define] to the
// definitions pool. An identified node that is structurally equal to one
// already in the same list is dropped. A node sharing its id with a
// different node is reported as [diag.RepeatedID] and registered anyway.
// Applying a filter to an element defines the filter on the canvas.
//
// The document renders as the svg tag, the defs block when the pool is not
// empty, then the content in insertion order. Each nesting level adds one
// indent unit.
//
// # Diagnostics
//
// Nothing in this package returns an error or panics on bad input. Invalid
// values, missing ids and collisions are reported to the builder's
// [diag.Sink] and construction continues with a safe value.
//
// Values are written without escaping; pass markup-safe strings.
package svg
