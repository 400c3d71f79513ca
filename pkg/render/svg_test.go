package render

import (
	"strings"
	"testing"

	"github.com/shapesmith/shapesmith/pkg/paint"
	"github.com/shapesmith/shapesmith/pkg/scene"
)

func previewScene() *scene.Scene {
	blue := &paint.RGB{B: 1}
	red := &paint.RGB{R: 1}
	return &scene.Scene{
		Nodes: []*scene.NodeDescriptor{
			{Kind: scene.KindRectangle, X: 0, Y: 0, Width: 100, Height: 50, Fill: blue, CornerRadius: 4},
			{Kind: scene.KindEllipse, X: 120, Y: 0, Width: 80, Height: 80, Fill: red, Stroke: blue, StrokeWeight: 2},
			{Kind: scene.KindStar, X: 0, Y: 100, Width: 60, Height: 60, Fill: red, PointCount: 5, InnerRadius: 0.5},
			{Kind: scene.KindPolygon, X: 80, Y: 100, Width: 60, Height: 60, Fill: blue, PointCount: 6},
			{Kind: scene.KindLine, X: 0, Y: 200, Width: 200, Height: 0, Stroke: red, StrokeWeight: 1},
			{Kind: scene.KindText, X: 0, Y: 220, Text: "Hello <World>", FontSize: 12},
		},
		Viewport: scene.Viewport{X: 0, Y: 0, Width: 200, Height: 240},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(previewScene()))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("missing svg header: %s", svg[:60])
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("missing closing tag")
	}

	wantFragments := []string{
		`<rect`, `rx="4.0"`, `fill="#0000ff"`,
		`<ellipse`, `stroke="#0000ff" stroke-width="2.0"`,
		`<polygon`,
		`<line`,
		`<text`, "Hello &lt;World&gt;",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(svg, frag) {
			t.Errorf("SVG missing %q", frag)
		}
	}

	// Two polygons: one star, one hexagon
	if n := strings.Count(svg, "<polygon"); n != 2 {
		t.Errorf("expected 2 polygon elements, got %d", n)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	s := previewScene()

	svg := string(RenderSVG(s, WithBackground("#ffffff"), WithLabels(), WithPadding(10)))
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("missing background rect")
	}
	if !strings.Contains(svg, ">rectangle</text>") {
		t.Error("missing kind label")
	}
	if !strings.Contains(svg, `viewBox="-10.0 -10.0 220.0 260.0"`) {
		t.Errorf("unexpected viewBox: %s", svg[:120])
	}
}

func TestRenderSVGNoFillIsNone(t *testing.T) {
	s := &scene.Scene{
		Nodes: []*scene.NodeDescriptor{
			{Kind: scene.KindRectangle, Width: 10, Height: 10},
		},
		Viewport: scene.Viewport{Width: 10, Height: 10},
	}
	svg := string(RenderSVG(s))
	if !strings.Contains(svg, `fill="none"`) {
		t.Error("unpainted node should have fill=\"none\"")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(previewScene())
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG")
	}
}

func TestStarVertexCount(t *testing.T) {
	n := &scene.NodeDescriptor{Kind: scene.KindStar, Width: 100, Height: 100, PointCount: 7, InnerRadius: 0.4}
	pts := starVertices(n)
	if len(pts) != 14 {
		t.Errorf("expected 14 star vertices, got %d", len(pts))
	}
}
