package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/shapesmith/shapesmith/pkg/canvas"
)

// TreeOptions configures document tree rendering.
type TreeOptions struct {
	// Detailed includes node types and bounding boxes in labels.
	// When false, only the node name is shown.
	Detailed bool

	// MaxDepth limits how deep into the tree to render; 0 means
	// unlimited.
	MaxDepth int
}

// TreeToDOT converts a fetched document tree to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderDOT].
func TreeToDOT(root *canvas.Node, opts TreeOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeTreeNodes(&buf, root, opts, 0)
	buf.WriteString("\n")
	writeTreeEdges(&buf, root, opts, 0)

	buf.WriteString("}\n")
	return buf.String()
}

func writeTreeNodes(buf *bytes.Buffer, n *canvas.Node, opts TreeOptions, depth int) {
	if n == nil || (opts.MaxDepth > 0 && depth > opts.MaxDepth) {
		return
	}
	attrs := []string{fmt.Sprintf("label=%q", treeLabel(n, opts.Detailed))}
	if len(n.Children) > 0 {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	for _, child := range n.Children {
		writeTreeNodes(buf, child, opts, depth+1)
	}
}

func writeTreeEdges(buf *bytes.Buffer, n *canvas.Node, opts TreeOptions, depth int) {
	if n == nil || (opts.MaxDepth > 0 && depth >= opts.MaxDepth) {
		return
	}
	for _, child := range n.Children {
		fmt.Fprintf(buf, "  %q -> %q;\n", n.ID, child.ID)
		writeTreeEdges(buf, child, opts, depth+1)
	}
}

func treeLabel(n *canvas.Node, detailed bool) string {
	name := n.Name
	if name == "" {
		name = n.ID
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("type: %s", n.Type)}
	if box := n.AbsoluteBoundingBox; box != nil {
		parts = append(parts, fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", box.Width, box.Height, box.X, box.Y))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
func RenderDOT(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the diagram
// starts at the origin and fills its frame.
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
