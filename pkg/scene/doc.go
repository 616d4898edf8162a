// Package scene defines the design scene tree consumed by the compiler.
//
// A scene document is the extraction format produced by the design-tool
// plugin: an ordered list of root nodes, each carrying geometry, paint,
// typography, auto-layout attributes, and optional pre-rendered vector
// or raster payloads. Coordinates are relative to the immediate parent's
// local origin at extraction time; the compiler re-derives positions for
// whatever context it emits into.
//
// # Ownership
//
// A node exclusively owns its children. The tree is acyclic by
// construction (it mirrors a design-tool scene graph) and document order
// of children is significant everywhere: classification, compilation,
// and identifier assignment all walk in extraction order.
//
// # Defaults
//
// Optional wire fields use pointers so absence is distinguishable from
// zero: visibility defaults to true, opacity to 1, paint opacity to 1,
// and stroke weight to 1. Accessor methods (IsVisible, Alpha,
// StrokeWidth) apply the defaults; code should prefer them over the raw
// fields.
//
// # Usage
//
//	doc, err := scene.ImportFile("design.json")
//	if err != nil {
//	    return err
//	}
//	unit, err := compiler.New(logger).CompileDocument(doc)
package scene
