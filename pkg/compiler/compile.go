package compiler

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// Compiler compiles scene documents into nested markup. The zero value
// works without logging; New wires all stages to one logger.
type Compiler struct {
	Styles *Resolver
	Assets *Embedder
	Log    *log.Logger
}

// New returns a compiler whose stages share the given logger.
func New(logger *log.Logger) *Compiler {
	return &Compiler{
		Styles: &Resolver{Log: logger},
		Assets: &Embedder{Log: logger},
		Log:    logger,
	}
}

// Tree is the compiled markup of one document plus the traversal
// metadata later stages need.
type Tree struct {
	// Markup holds the emitted element lines for all roots, unindented
	// relative to the assembled wrapper.
	Markup string

	// Families lists the font families of emitted text leaves,
	// normalized and deduplicated in traversal order.
	Families []string

	// Emitted counts emitted elements; Pruned counts nodes dropped with
	// their subtrees for being invisible.
	Emitted int
	Pruned  int
}

// state threads the per-compilation counter and collections through one
// CompileTree call, keeping concurrent compilations independent.
type state struct {
	nextID   int
	pruned   int
	families []string
	seen     map[string]struct{}

	// Canvas offset of the root currently being compiled, folded into
	// the origin of its immediate children.
	rootOffX float64
	rootOffY float64
}

func (st *state) id() string {
	id := st.nextID
	st.nextID++
	return fmt.Sprintf("node-%d", id)
}

func (st *state) addFamily(family string) {
	if family == "" {
		return
	}
	if _, ok := st.seen[family]; ok {
		return
	}
	st.seen[family] = struct{}{}
	st.families = append(st.families, family)
}

// CompileTree compiles every root of the document in order. Element
// identifiers are assigned depth-first from a single counter spanning
// all roots, so repeated compilations of the same document are
// byte-identical.
func (c *Compiler) CompileTree(doc *scene.Document) (*Tree, error) {
	if err := scene.Validate(doc); err != nil {
		return nil, err
	}
	st := &state{seen: make(map[string]struct{})}
	var buf bytes.Buffer
	for _, root := range doc.Nodes {
		st.rootOffX, st.rootOffY = canvasOffset(root)
		c.compile(root, 0, Context{Root: true}, &buf, st)
	}
	return &Tree{
		Markup:   buf.String(),
		Families: st.families,
		Emitted:  st.nextID,
		Pruned:   st.pruned,
	}, nil
}

// compile emits exactly one rendering of the node, chosen by priority:
// prune, text leaf, asset leaf, widget leaf, structural container.
func (c *Compiler) compile(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	if !n.IsVisible() {
		st.pruned += subtreeSize(n)
		return
	}
	if n.IsText() && n.Characters != "" {
		c.emitText(n, depth, ctx, buf, st)
		return
	}
	if d := c.Assets.Decide(n); d.Kind != EmbedNone {
		c.emitAsset(n, d, depth, ctx, buf, st)
		return
	}
	switch Classify(n) {
	case KindButton:
		c.emitButton(n, depth, ctx, buf, st)
	case KindTextField:
		c.emitTextField(n, depth, ctx, buf, st)
	case KindCheckbox:
		c.emitCheckbox(n, depth, ctx, buf, st)
	default:
		c.emitContainer(n, depth, ctx, buf, st)
	}
}

func (c *Compiler) emitText(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	if n.Style != nil {
		st.addFamily(scene.FontFamilyName(n.Style.FontFamily))
	}
	style := c.Styles.Resolve(n, ctx)
	fmt.Fprintf(buf, "%s<p id=%q style=%s>{\"%s\"}</p>\n",
		indent(depth), st.id(), style.JSX(), EscapeText(n.Characters))
}

func (c *Compiler) emitAsset(n *scene.Node, d Decision, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	ctx.Asset = true
	style := c.Styles.Resolve(n, ctx)
	switch d.Kind {
	case EmbedVector:
		fmt.Fprintf(buf, "%s<div id=%q style=%s dangerouslySetInnerHTML={{__html: `%s`}} />\n",
			indent(depth), st.id(), style.JSX(), d.Markup)
	case EmbedRaster:
		style.Set("objectFit", "contain")
		fmt.Fprintf(buf, "%s<img id=%q style=%s src={\"%s\"} />\n",
			indent(depth), st.id(), style.JSX(), EscapeText(d.Source))
	}
}

func (c *Compiler) emitButton(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	style := c.Styles.Resolve(n, ctx)
	if label := scene.FirstText(n); label != nil {
		fmt.Fprintf(buf, "%s<button id=%q style=%s>{\"%s\"}</button>\n",
			indent(depth), st.id(), style.JSX(), EscapeText(label.Characters))
		return
	}
	fmt.Fprintf(buf, "%s<button id=%q style=%s />\n", indent(depth), st.id(), style.JSX())
}

func (c *Compiler) emitTextField(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	style := c.Styles.Resolve(n, ctx)
	if label := scene.FirstText(n); label != nil {
		fmt.Fprintf(buf, "%s<input id=%q type=\"text\" style=%s placeholder={\"%s\"} />\n",
			indent(depth), st.id(), style.JSX(), EscapeText(label.Characters))
		return
	}
	fmt.Fprintf(buf, "%s<input id=%q type=\"text\" style=%s />\n", indent(depth), st.id(), style.JSX())
}

func (c *Compiler) emitCheckbox(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	style := c.Styles.Resolve(n, ctx)
	fmt.Fprintf(buf, "%s<input id=%q type=\"checkbox\" style=%s />\n", indent(depth), st.id(), style.JSX())
}

func (c *Compiler) emitContainer(n *scene.Node, depth int, ctx Context, buf *bytes.Buffer, st *state) {
	style := c.Styles.Resolve(n, ctx)
	id := st.id()
	if len(n.Children) == 0 {
		fmt.Fprintf(buf, "%s<div id=%q style=%s />\n", indent(depth), id, style.JSX())
		return
	}
	fmt.Fprintf(buf, "%s<div id=%q style=%s>\n", indent(depth), id, style.JSX())
	childCtx := childContext(n, ctx, st)
	for _, child := range n.Children {
		c.compile(child, depth+1, childCtx, buf, st)
	}
	fmt.Fprintf(buf, "%s</div>\n", indent(depth))
}

// childContext derives the context the node's children inherit. Flow
// parents hand their children to the layout engine; the root folds its
// canvas offset into the children's origin; everywhere else the
// parent's own box is the origin for the children's stored coordinates.
func childContext(n *scene.Node, ctx Context, st *state) Context {
	if n.HasAutoLayout() {
		return Context{ParentFlow: true}
	}
	if ctx.Root {
		return Context{OriginX: -st.rootOffX, OriginY: -st.rootOffY}
	}
	return Context{}
}

// canvasOffset computes, per axis, how far the root's visible subtree
// extends into negative accumulated coordinates, so the whole tree can
// be shifted back into view. Non-negative trees get a zero offset.
func canvasOffset(root *scene.Node) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	var walk func(n *scene.Node, accX, accY float64)
	walk = func(n *scene.Node, accX, accY float64) {
		if !n.IsVisible() {
			return
		}
		ax, ay := accX+n.X, accY+n.Y
		minX = min(minX, ax)
		minY = min(minY, ay)
		for _, child := range n.Children {
			walk(child, ax, ay)
		}
	}
	walk(root, 0, 0)
	return max(0, -minX), max(0, -minY)
}

func subtreeSize(n *scene.Node) int {
	count := 0
	scene.Walk(n, func(*scene.Node) bool {
		count++
		return true
	})
	return count
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
