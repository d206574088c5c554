// Package markup assembles SVG tags from ordered attribute bags and lays out
// nested tags as indented lines.
//
// # Tags
//
// [Assemble] is the single place where attribute text is produced:
//
//	markup.Assemble("rect", []markup.Bag{{
//	    {Key: "x", Value: 10.0},
//	    {Key: "stroke_width", Value: 2},
//	    {Key: "rx", Value: (*float64)(nil)}, // absent, skipped
//	}})
//	// <rect x="10" stroke-width="2"/>
//
// Values are written as-is. Nothing is escaped; callers pass markup-safe text.
//
// # Composition
//
// Multi-line elements are built with a [Composer]. The indent unit is part
// of the composer value, so output depends only on the tree and the composer:
//
//	c := markup.Composer{Indent: "  "}
//	c.Nest("<g>", [][]string{{`<rect/>`}}, "</g>")
//	// ["<g>", "  <rect/>", "</g>"]
package markup
