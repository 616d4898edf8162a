package compiler

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// Resolver turns one node into its flat style mapping. Unsupported
// paints and effects degrade to omission with a debug log entry rather
// than failing the compilation.
type Resolver struct {
	Log *log.Logger
}

// Resolve computes the style mapping for a node in its placement
// context. Property insertion order is fixed: placement, box size,
// layout, paint, border, shadow, transform, opacity, typography.
func (r *Resolver) Resolve(n *scene.Node, ctx Context) *StyleMap {
	m := NewStyleMap()

	switch PositioningFor(n, ctx) {
	case PositionFlow:
		m.Set("position", "relative")
	case PositionAbsolute:
		m.Set("position", "absolute")
		m.Set("left", px(n.X-ctx.OriginX))
		m.Set("top", px(n.Y-ctx.OriginY))
	}

	// Text boxes size themselves from their content.
	if !n.IsText() {
		m.Set("width", px(n.Width))
		m.Set("height", px(n.Height))
	}

	if n.HasAutoLayout() {
		r.resolveLayout(n, m)
	}
	r.resolvePaint(n, ctx, m)

	if s := n.FirstStroke(); s != nil && s.Color != nil {
		m.Set("border", fmt.Sprintf("%s solid %s", px(n.StrokeWidth()), cssColor(*s.Color, s.Alpha())))
	}
	if n.CornerRadius > 0 {
		m.Set("borderRadius", px(n.CornerRadius))
	}
	if sh := n.FirstDropShadow(); sh != nil {
		m.Set("boxShadow", shadowCSS(sh))
	}
	if n.Rotation != 0 {
		m.Set("transform", fmt.Sprintf("rotate(%sdeg)", fmtNum(n.Rotation)))
		m.Set("transformOrigin", "top left")
	}
	if a := n.Alpha(); a < 1 {
		m.Set("opacity", fmtNum(a))
	}
	if n.IsText() {
		r.resolveTypography(n, m)
	}
	return m
}

func (r *Resolver) resolveLayout(n *scene.Node, m *StyleMap) {
	m.Set("display", "flex")
	if n.LayoutMode == scene.LayoutVertical {
		m.Set("flexDirection", "column")
	} else {
		m.Set("flexDirection", "row")
	}
	m.Set("justifyContent", flexAlign(n.PrimaryAxisAlignItems))
	m.Set("alignItems", flexAlign(n.CounterAxisAlignItems))
	if n.ItemSpacing > 0 {
		m.Set("gap", px(n.ItemSpacing))
	}
	if n.PaddingTop != 0 || n.PaddingRight != 0 || n.PaddingBottom != 0 || n.PaddingLeft != 0 {
		m.Set("padding", fmt.Sprintf("%s %s %s %s",
			px(n.PaddingTop), px(n.PaddingRight), px(n.PaddingBottom), px(n.PaddingLeft)))
	}
}

func (r *Resolver) resolvePaint(n *scene.Node, ctx Context, m *StyleMap) {
	if ctx.Asset {
		// The embedded payload already carries its own paint.
		return
	}
	fill := n.FirstSolidFill()
	if fill == nil {
		if p := firstVisiblePaint(n.Fills); p != nil && r.Log != nil {
			r.Log.Debug("skipping unsupported fill", "type", p.Type, "node", n.Name)
		}
		return
	}
	key := "backgroundColor"
	if n.IsText() {
		key = "color"
	}
	m.Set(key, cssColor(*fill.Color, fill.Alpha()))
}

func (r *Resolver) resolveTypography(n *scene.Node, m *StyleMap) {
	st := n.Style
	if st == nil {
		st = &scene.TextStyle{}
	}
	if fam := scene.FontFamilyName(st.FontFamily); fam != "" {
		m.Set("fontFamily", fam)
	}
	if st.FontSize > 0 {
		m.Set("fontSize", px(st.FontSize))
	}
	m.Set("fontWeight", fmt.Sprintf("%d", st.FontWeight.CSS()))
	if st.FontWeight.Italic() {
		m.Set("fontStyle", "italic")
	}
	m.Set("textAlign", textAlign(st.TextAlignHorizontal))
	m.Set("lineHeight", lineHeightCSS(st))
	if st.LetterSpacing != nil {
		if v, ok := unitCSS(*st.LetterSpacing); ok {
			m.Set("letterSpacing", v)
		}
	}
}

func firstVisiblePaint(paints []scene.Paint) *scene.Paint {
	for i := range paints {
		if paints[i].IsVisible() {
			return &paints[i]
		}
	}
	return nil
}

// cssColor renders a color as #RRGGBB when fully opaque, otherwise as
// an rgba() expression.
func cssColor(c scene.Color, alpha float64) string {
	if alpha >= 1 {
		return c.Hex()
	}
	if alpha < 0 {
		alpha = 0
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		scene.Channel255(c.R), scene.Channel255(c.G), scene.Channel255(c.B), fmtNum(alpha))
}

func shadowCSS(e *scene.Effect) string {
	var ox, oy float64
	if e.Offset != nil {
		ox, oy = e.Offset.X, e.Offset.Y
	}
	color := "rgba(0, 0, 0, 0.5)"
	if e.Color != nil {
		color = cssColor(*e.Color, e.Color.A)
	}
	return fmt.Sprintf("%s %s %s %s", px(ox), px(oy), px(e.Radius), color)
}

func flexAlign(align string) string {
	switch align {
	case scene.AlignCenter:
		return "center"
	case scene.AlignMax:
		return "flex-end"
	case scene.AlignSpaceBetween:
		return "space-between"
	default:
		return "flex-start"
	}
}

func textAlign(align string) string {
	switch align {
	case "CENTER":
		return "center"
	case "RIGHT":
		return "right"
	case "JUSTIFIED":
		return "justify"
	default:
		return "left"
	}
}

// lineHeightCSS falls back to 1.2x the font size when the document
// carries no line height at all. An explicit AUTO keeps the browser's
// natural leading instead.
func lineHeightCSS(st *scene.TextStyle) string {
	lh := st.LineHeight
	if lh == nil {
		if st.FontSize <= 0 {
			return "normal"
		}
		return px(st.FontSize * 1.2)
	}
	if lh.Unit == scene.UnitAuto {
		return "normal"
	}
	if v, ok := unitCSS(*lh); ok {
		return v
	}
	return "normal"
}

func unitCSS(u scene.UnitValue) (string, bool) {
	switch u.Unit {
	case scene.UnitPixels:
		return px(u.Value), true
	case scene.UnitPercent:
		return fmtNum(u.Value) + "%", true
	default:
		return "", false
	}
}
