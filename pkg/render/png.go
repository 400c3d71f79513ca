package render

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/shapesmith/shapesmith/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	padding float64
	scale   float64
}

// WithPNGPadding sets the margin around the scene bounds (default 20).
func WithPNGPadding(p float64) PNGOption {
	return func(r *pngRenderer) { r.padding = p }
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes a scene to PNG. Nodes are drawn in slice order
// on a white background.
func RenderPNG(s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{padding: 20, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, w, h := sceneBounds(s, r.padding)
	dc := gg.NewContext(int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale)))
	dc.Scale(r.scale, r.scale)
	dc.Translate(-minX, -minY)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, n := range s.Nodes {
		drawNode(dc, n)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawNode(dc *gg.Context, n *scene.NodeDescriptor) {
	switch n.Kind {
	case scene.KindRectangle, scene.KindFrame:
		if n.CornerRadius > 0 {
			dc.DrawRoundedRectangle(n.X, n.Y, n.Width, n.Height, n.CornerRadius)
		} else {
			dc.DrawRectangle(n.X, n.Y, n.Width, n.Height)
		}
		fillAndStroke(dc, n)

	case scene.KindEllipse:
		dc.DrawEllipse(n.X+n.Width/2, n.Y+n.Height/2, n.Width/2, n.Height/2)
		fillAndStroke(dc, n)

	case scene.KindLine:
		dc.MoveTo(n.X, n.Y)
		dc.LineTo(n.X+n.Width, n.Y+n.Height)
		if n.Stroke != nil {
			dc.SetRGB(n.Stroke.R, n.Stroke.G, n.Stroke.B)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.SetLineWidth(math.Max(n.StrokeWeight, 1))
		dc.Stroke()

	case scene.KindStar:
		tracePoints(dc, starVertices(n))
		fillAndStroke(dc, n)

	case scene.KindPolygon:
		tracePoints(dc, polygonVertices(n))
		fillAndStroke(dc, n)

	case scene.KindText:
		if n.Fill != nil {
			dc.SetRGB(n.Fill.R, n.Fill.G, n.Fill.B)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawString(n.Text, n.X, n.Y+n.FontSize)
	}
}

func fillAndStroke(dc *gg.Context, n *scene.NodeDescriptor) {
	if n.Fill != nil {
		dc.SetRGB(n.Fill.R, n.Fill.G, n.Fill.B)
		if n.Stroke != nil {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if n.Stroke != nil {
		dc.SetRGB(n.Stroke.R, n.Stroke.G, n.Stroke.B)
		dc.SetLineWidth(n.StrokeWeight)
		dc.Stroke()
	}
	if n.Fill == nil && n.Stroke == nil {
		dc.ClearPath()
	}
}

type point struct{ x, y float64 }

func tracePoints(dc *gg.Context, pts []point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.x, p.y)
		} else {
			dc.LineTo(p.x, p.y)
		}
	}
	dc.ClosePath()
}

func starVertices(n *scene.NodeDescriptor) []point {
	cx, cy := n.X+n.Width/2, n.Y+n.Height/2
	rx, ry := n.Width/2, n.Height/2

	total := n.PointCount * 2
	pts := make([]point, 0, total)
	for i := range total {
		fx, fy := rx, ry
		if i%2 == 1 {
			fx *= n.InnerRadius
			fy *= n.InnerRadius
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(n.PointCount)
		pts = append(pts, point{cx + fx*math.Cos(angle), cy + fy*math.Sin(angle)})
	}
	return pts
}

func polygonVertices(n *scene.NodeDescriptor) []point {
	cx, cy := n.X+n.Width/2, n.Y+n.Height/2
	rx, ry := n.Width/2, n.Height/2

	pts := make([]point, 0, n.PointCount)
	for i := range n.PointCount {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(n.PointCount)
		pts = append(pts, point{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)})
	}
	return pts
}
