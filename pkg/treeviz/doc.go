// Package treeviz renders scene documents as node-link diagrams.
//
// # Overview
//
// This package produces a Graphviz view of a scene tree before
// compilation: every node appears as a box, parent-child containment
// as arrows. It exists for inspecting what the compiler will see,
// including the parts it will discard.
//
// # Usage
//
// Convert a document to DOT format, then render to SVG or PNG:
//
//	dot := treeviz.ToDOT(doc, treeviz.Options{Detailed: true})
//	svg, err := treeviz.RenderSVG(dot)
//	png, err := treeviz.RenderPNG(dot)
//
// # Styling
//
// Boxes are tinted by widget classification (button, text field,
// checkbox, text run). Invisible nodes and their descendants, which
// compilation prunes, are drawn dashed with a grey fill.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// and PNG rendering; no external Graphviz installation is required.
package treeviz
