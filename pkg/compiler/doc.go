// Package compiler turns a scene document into React component source.
//
// The compiler is a single-pass, rule-based positional compiler: it
// walks the tree depth-first, resolves each node's flat style mapping,
// classifies containers into semantic widgets by name heuristics,
// embeds pre-rendered vector/raster payloads, and assembles the result
// into a named unit (markup source plus companion stylesheet).
//
// # Rendering priority
//
// Exactly one path is chosen per node, in this order:
//
//  1. invisible nodes prune their whole subtree
//  2. text nodes with content emit a text leaf (never recursing)
//  3. nodes with a usable vector or raster payload emit an asset leaf
//     (children suppressed; the payload already renders them)
//  4. name-classified widgets emit a widget leaf (button, text field,
//     checkbox), consuming their first text descendant
//  5. everything else emits a structural container and recurses
//
// # Determinism
//
// Compiling the same document twice yields byte-identical output. Node
// identifiers are assigned depth-first in document order from a counter
// scoped to one compilation call, style properties serialize in fixed
// insertion order, and all numeric formatting is stable. The compiler
// performs no I/O and is safe to use concurrently for independent
// documents.
package compiler
