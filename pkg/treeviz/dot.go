package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mkoenig/framesmith/pkg/compiler"
	"github.com/mkoenig/framesmith/pkg/scene"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes geometry and text snippets in node labels.
	// When false, only the node name and type are shown.
	Detailed bool
}

// ToDOT converts a scene document to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Invisible nodes prune their subtree during compilation; they and their
// descendants are rendered with dashed outlines and grey fill so the
// discarded parts stay recognizable.
func ToDOT(doc *scene.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := &dotWriter{nodes: &buf, detailed: opts.Detailed}
	if doc != nil {
		for _, root := range doc.Nodes {
			w.walk(root, "", false)
		}
	}

	buf.WriteString("\n")
	for _, e := range w.edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	nodes    *bytes.Buffer
	edges    []string
	next     int
	detailed bool
}

func (w *dotWriter) walk(n *scene.Node, parent string, pruned bool) {
	if n == nil {
		return
	}

	id := fmt.Sprintf("n%d", w.next)
	w.next++

	pruned = pruned || !n.IsVisible()
	label := fmtLabel(n, w.detailed)
	attrs := fmtAttrs(n, label, pruned)
	fmt.Fprintf(w.nodes, "  %q [%s];\n", id, strings.Join(attrs, ", "))

	if parent != "" {
		w.edges = append(w.edges, fmt.Sprintf("  %q -> %q;\n", parent, id))
	}

	for _, c := range n.Children {
		w.walk(c, id, pruned)
	}
}

func fmtLabel(n *scene.Node, detailed bool) string {
	parts := make([]string, 0, 4)
	if n.Name != "" {
		parts = append(parts, n.Name)
	}
	parts = append(parts, n.Type)

	if detailed {
		parts = append(parts, fmt.Sprintf("%gx%g @ (%g, %g)", n.Width, n.Height, n.X, n.Y))
		if n.IsText() && n.Characters != "" {
			parts = append(parts, fmt.Sprintf("%q", snippet(n.Characters, 24)))
		}
	}

	return strings.Join(parts, "\n")
}

func fmtAttrs(n *scene.Node, label string, pruned bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if pruned {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
		return attrs
	}
	if c := kindColor(compiler.Classify(n)); c != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%s", c))
	}
	return attrs
}

func kindColor(k compiler.Kind) string {
	switch k {
	case compiler.KindButton:
		return "lightblue"
	case compiler.KindTextField:
		return "lightyellow"
	case compiler.KindCheckbox:
		return "thistle"
	case compiler.KindTypography:
		return "palegreen"
	}
	return ""
}

func snippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's in-process
// image renderer.
func RenderPNG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func render(dot string, format graphviz.Format, buf *bytes.Buffer) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
