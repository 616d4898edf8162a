package scene

import "math"

// Node types produced by the design-tool extraction.
const (
	TypeFrame     = "FRAME"
	TypeGroup     = "GROUP"
	TypeComponent = "COMPONENT"
	TypeInstance  = "INSTANCE"
	TypeRectangle = "RECTANGLE"
	TypeEllipse   = "ELLIPSE"
	TypeVector    = "VECTOR"
	TypeText      = "TEXT"
)

// Auto-layout modes.
const (
	LayoutNone       = "NONE"
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
)

// Axis alignment values for auto-layout containers.
const (
	AlignMin          = "MIN"
	AlignCenter       = "CENTER"
	AlignMax          = "MAX"
	AlignSpaceBetween = "SPACE_BETWEEN"
)

// Paint kinds. Only solid paints are composited; gradients are carried
// through so the compiler can log what it skipped.
const (
	PaintSolid          = "SOLID"
	PaintGradientLinear = "GRADIENT_LINEAR"
	PaintGradientRadial = "GRADIENT_RADIAL"
	PaintImage          = "IMAGE"
)

// Effect kinds.
const (
	EffectDropShadow = "DROP_SHADOW"
)

// Node is one element of the scene tree: a shape, text run, or container.
// Field names mirror the extraction JSON; optional fields are pointers so
// absence keeps its documented default (see package doc).
type Node struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// Geometry, relative to the parent's local origin at extraction time.
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Rotation     float64 `json:"rotation,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// Paint.
	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	Effects      []Effect `json:"effects,omitempty"`

	// Auto-layout.
	LayoutMode            string  `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string  `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing           float64 `json:"itemSpacing,omitempty"`
	PaddingLeft           float64 `json:"paddingLeft,omitempty"`
	PaddingRight          float64 `json:"paddingRight,omitempty"`
	PaddingTop            float64 `json:"paddingTop,omitempty"`
	PaddingBottom         float64 `json:"paddingBottom,omitempty"`

	// Typography. Style is only meaningful on TEXT nodes.
	Characters string     `json:"characters,omitempty"`
	Style      *TextStyle `json:"style,omitempty"`

	// Visual state.
	Opacity *float64 `json:"opacity,omitempty"`
	Visible *bool    `json:"visible,omitempty"` // nil = visible

	// Pre-rendered assets. A node carrying either is an opaque leaf for
	// rendering even if it also has children.
	VectorData string `json:"vector,omitempty"`
	RasterData string `json:"raster,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Paint is a fill or stroke entry.
type Paint struct {
	Type          string      `json:"type"`
	Visible       *bool       `json:"visible,omitempty"` // nil = visible
	Opacity       *float64    `json:"opacity,omitempty"` // nil = 1
	Color         *Color      `json:"color,omitempty"`
	GradientStops []ColorStop `json:"gradientStops,omitempty"`
}

// IsVisible reports whether the paint participates in rendering.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Alpha returns the paint's effective alpha: its color alpha scaled by
// the paint opacity.
func (p *Paint) Alpha() float64 {
	a := 1.0
	if p.Color != nil {
		a = p.Color.A
	}
	if p.Opacity != nil {
		a *= *p.Opacity
	}
	return a
}

// Color is an RGBA color with 0-1 float channels, as extracted.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex returns the color as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return "#" + byteHex(c.R) + byteHex(c.G) + byteHex(c.B)
}

// Channel255 converts one 0-1 channel to its rounded 0-255 value,
// clamping out-of-range input.
func Channel255(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

const hexDigits = "0123456789ABCDEF"

func byteHex(v float64) string {
	n := Channel255(v)
	return string([]byte{hexDigits[n>>4], hexDigits[n&0x0f]})
}

// ColorStop is one stop of a gradient paint. Gradients are not
// composited by the compiler; stops are retained for diagnostics.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect is a visual effect entry. Only visible drop-shadows are
// rendered.
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"` // nil = visible
	Radius  float64 `json:"radius,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
}

// IsVisible reports whether the effect participates in rendering.
func (e *Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// Vector is a 2D offset used by effects.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is one compilation request: an ordered sequence of root
// nodes plus an optional document name.
type Document struct {
	Name  string  `json:"name,omitempty"`
	Nodes []*Node `json:"nodes"`
}

// IsVisible reports whether the node renders at all. Invisible nodes
// prune their whole subtree.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Alpha returns the node opacity, defaulting to 1 when absent.
func (n *Node) Alpha() float64 {
	if n.Opacity == nil {
		return 1
	}
	return *n.Opacity
}

// StrokeWidth returns the stroke weight, defaulting to 1 when absent.
func (n *Node) StrokeWidth() float64 {
	if n.StrokeWeight == nil {
		return 1
	}
	return *n.StrokeWeight
}

// IsText reports whether the node is a text run.
func (n *Node) IsText() bool {
	return n.Type == TypeText
}

// IsContainer reports whether the node's type is a container kind.
// Container kinds matter to widget classification: only containers can
// classify as buttons.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case TypeFrame, TypeGroup, TypeComponent, TypeInstance:
		return true
	}
	return false
}

// HasAutoLayout reports whether the node lays out its children by flow.
func (n *Node) HasAutoLayout() bool {
	return n.LayoutMode == LayoutHorizontal || n.LayoutMode == LayoutVertical
}

// HasVector reports whether the node carries an inline vector payload.
func (n *Node) HasVector() bool {
	return n.VectorData != ""
}

// HasRaster reports whether the node carries a raster payload reference.
func (n *Node) HasRaster() bool {
	return n.RasterData != ""
}

// FirstSolidFill returns the first visible solid fill, or nil. Later
// fills and gradients are intentionally not composited.
func (n *Node) FirstSolidFill() *Paint {
	for i := range n.Fills {
		p := &n.Fills[i]
		if p.IsVisible() && p.Type == PaintSolid && p.Color != nil {
			return p
		}
	}
	return nil
}

// FirstStroke returns the first visible stroke, or nil.
func (n *Node) FirstStroke() *Paint {
	for i := range n.Strokes {
		p := &n.Strokes[i]
		if p.IsVisible() {
			return p
		}
	}
	return nil
}

// FirstDropShadow returns the first visible drop-shadow effect, or nil.
func (n *Node) FirstDropShadow() *Effect {
	for i := range n.Effects {
		e := &n.Effects[i]
		if e.IsVisible() && e.Type == EffectDropShadow {
			return e
		}
	}
	return nil
}
