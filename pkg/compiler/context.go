package compiler

import "github.com/mkoenig/framesmith/pkg/scene"

// PositioningMode says how a node is placed inside its parent's box.
type PositioningMode int

const (
	// PositionAbsolute pins the node with explicit left/top offsets.
	PositionAbsolute PositioningMode = iota
	// PositionFlow lets the parent's layout engine place the node.
	PositionFlow
)

// Context carries the placement state a node inherits from its parent.
// The zero value is the context of an absolutely positioned child whose
// parent's box sits at the coordinate origin.
type Context struct {
	// Root marks the document root itself, which always participates
	// in the normal flow of the assembled wrapper.
	Root bool

	// ParentFlow is set when the parent runs an auto-layout, so the
	// node must not carry explicit offsets.
	ParentFlow bool

	// Asset is set while resolving styles for asset leaves; fills are
	// suppressed because the embedded payload already paints them.
	Asset bool

	// OriginX and OriginY hold the coordinate origin offsets subtracted
	// from the node's own position. For children of the root this folds
	// in the canvas offset that shifts negative root coordinates back
	// into view; everywhere else the parent's box is the origin.
	OriginX float64
	OriginY float64
}

// PositioningFor picks the placement mode for a node in a context.
// Roots, children of auto-layout parents, and nodes running their own
// auto-layout flow; everything else is pinned with explicit offsets.
func PositioningFor(n *scene.Node, ctx Context) PositioningMode {
	if ctx.Root || ctx.ParentFlow || n.HasAutoLayout() {
		return PositionFlow
	}
	return PositionAbsolute
}
