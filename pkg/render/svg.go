// Package render turns composed scenes into preview artifacts (SVG and
// PNG) and canvas document trees into node-link diagrams.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shapesmith/shapesmith/pkg/paint"
	"github.com/shapesmith/shapesmith/pkg/scene"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	padding    float64
	background string
	showLabels bool
}

// WithPadding sets the margin around the scene bounds (default 20).
func WithPadding(p float64) SVGOption {
	return func(r *svgRenderer) { r.padding = p }
}

// WithBackground fills the canvas with the given CSS color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithLabels annotates each node with its kind.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.showLabels = true }
}

// RenderSVG renders a scene as an SVG preview. Nodes are drawn in
// slice order, which the composition engine has already sorted by
// stacking index.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{padding: 20}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, w, h := sceneBounds(s, r.padding)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, w, h)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			minX, minY, w, h, r.background)
	}

	for _, n := range s.Nodes {
		renderNode(&buf, n)
		if r.showLabels {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="10" fill="#666">%s</text>`+"\n",
				n.X, n.Y-4, n.Kind)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderNode(buf *bytes.Buffer, n *scene.NodeDescriptor) {
	attrs := paintAttrs(n)
	switch n.Kind {
	case scene.KindRectangle, scene.KindFrame:
		corner := ""
		if n.CornerRadius > 0 {
			corner = fmt.Sprintf(` rx="%.1f"`, n.CornerRadius)
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"%s%s/>`+"\n",
			n.X, n.Y, n.Width, n.Height, corner, attrs)

	case scene.KindEllipse:
		fmt.Fprintf(buf, `  <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f"%s/>`+"\n",
			n.X+n.Width/2, n.Y+n.Height/2, n.Width/2, n.Height/2, attrs)

	case scene.KindLine:
		stroke := attrs
		if n.Stroke == nil {
			// A line with no stroke paint would be invisible.
			stroke = fmt.Sprintf(` stroke="black" stroke-width="%.1f"`, math.Max(n.StrokeWeight, 1))
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"%s/>`+"\n",
			n.X, n.Y, n.X+n.Width, n.Y+n.Height, stroke)

	case scene.KindStar:
		fmt.Fprintf(buf, `  <polygon points="%s"%s/>`+"\n",
			starPoints(n), attrs)

	case scene.KindPolygon:
		fmt.Fprintf(buf, `  <polygon points="%s"%s/>`+"\n",
			polygonPoints(n), attrs)

	case scene.KindText:
		fill := ` fill="black"`
		if n.Fill != nil {
			fill = fmt.Sprintf(` fill="%s"`, cssColor(n.Fill))
		}
		family := "sans-serif"
		if n.Font != nil {
			family = n.Font.Family
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f"%s>%s</text>`+"\n",
			n.X, n.Y+n.FontSize, family, n.FontSize, fill, escapeText(n.Text))
	}
}

func paintAttrs(n *scene.NodeDescriptor) string {
	var buf bytes.Buffer
	if n.Fill != nil {
		fmt.Fprintf(&buf, ` fill="%s"`, cssColor(n.Fill))
	} else {
		buf.WriteString(` fill="none"`)
	}
	if n.Stroke != nil {
		fmt.Fprintf(&buf, ` stroke="%s" stroke-width="%.1f"`, cssColor(n.Stroke), n.StrokeWeight)
	}
	return buf.String()
}

func cssColor(c *paint.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(c.R*255)), int(math.Round(c.G*255)), int(math.Round(c.B*255)))
}

// starPoints builds alternating outer and inner vertices, starting from
// the top of the bounding box.
func starPoints(n *scene.NodeDescriptor) string {
	cx, cy := n.X+n.Width/2, n.Y+n.Height/2
	rx, ry := n.Width/2, n.Height/2

	var buf bytes.Buffer
	total := n.PointCount * 2
	for i := range total {
		fx, fy := rx, ry
		if i%2 == 1 {
			fx *= n.InnerRadius
			fy *= n.InnerRadius
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(n.PointCount)
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.1f,%.1f", cx+fx*math.Cos(angle), cy+fy*math.Sin(angle))
	}
	return buf.String()
}

// polygonPoints builds a regular polygon inscribed in the bounding box,
// starting from the top.
func polygonPoints(n *scene.NodeDescriptor) string {
	cx, cy := n.X+n.Width/2, n.Y+n.Height/2
	rx, ry := n.Width/2, n.Height/2

	var buf bytes.Buffer
	for i := range n.PointCount {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(n.PointCount)
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.1f,%.1f", cx+rx*math.Cos(angle), cy+ry*math.Sin(angle))
	}
	return buf.String()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func sceneBounds(s *scene.Scene, padding float64) (minX, minY, w, h float64) {
	if s.Viewport.Width > 0 || s.Viewport.Height > 0 {
		return s.Viewport.X - padding, s.Viewport.Y - padding,
			s.Viewport.Width + 2*padding, s.Viewport.Height + 2*padding
	}
	return -padding, -padding, 2 * padding, 2 * padding
}
