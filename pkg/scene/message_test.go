package scene

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

func TestHandleCreateShape(t *testing.T) {
	h := NewHandler(nil)

	scene, err := h.Handle(context.Background(), Message{
		Type:   MessageCreateShape,
		Config: json.RawMessage(`{"type":"rectangle","x":0,"y":0,"width":100,"height":50,"fill":"blue"}`),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(scene.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(scene.Nodes))
	}
	n := scene.Nodes[0]
	if n.Kind != KindRectangle || n.Width != 100 || n.Height != 50 {
		t.Errorf("node = %+v", n)
	}
	if n.Fill == nil || n.Fill.B != 1 || n.Fill.R != 0 {
		t.Errorf("fill = %+v, want (0,0,1)", n.Fill)
	}
	if len(scene.Selection) != 1 || scene.Selection[0] != n.ID {
		t.Errorf("selection = %v", scene.Selection)
	}
	if !scene.KeepOpen {
		t.Error("JSON-driven shape path should keep the session open")
	}
}

func TestHandleCreateShapes(t *testing.T) {
	h := NewHandler(nil)

	scene, err := h.Handle(context.Background(), Message{
		Type: MessageCreateShapes,
		Config: json.RawMessage(`{"shapes":[
			{"type":"star","zIndex":2,"fill":"red"},
			{"type":"ellipse","zIndex":1,"fill":"green"}
		]}`),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(scene.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(scene.Nodes))
	}
	if scene.Nodes[0].Kind != KindEllipse || scene.Nodes[1].Kind != KindStar {
		t.Errorf("order = [%s, %s], want [ellipse, star]", scene.Nodes[0].Kind, scene.Nodes[1].Kind)
	}
}

func TestHandleCreateGrid(t *testing.T) {
	h := NewHandler(nil)

	scene, err := h.Handle(context.Background(), Message{Type: MessageCreateGrid, Count: 3})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(scene.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(scene.Nodes))
	}
	for i, n := range scene.Nodes {
		if n.X != float64(i)*GridSpacing {
			t.Errorf("node %d X = %g, want %g", i, n.X, float64(i)*GridSpacing)
		}
		if n.Fill == nil || *n.Fill != gridFill {
			t.Errorf("node %d fill = %+v, want orange", i, n.Fill)
		}
	}
	if scene.KeepOpen {
		t.Error("grid path should close the session")
	}
	// Viewport spans from the first rectangle to the last one.
	wantWidth := 2*GridSpacing + DefaultWidth
	if scene.Viewport.Width != wantWidth {
		t.Errorf("viewport width = %g, want %g", scene.Viewport.Width, wantWidth)
	}
}

func TestHandleBatchAbortsOnInvalidSibling(t *testing.T) {
	h := NewHandler(nil)

	scene, err := h.Handle(context.Background(), Message{
		Type: MessageCreateShapes,
		Config: json.RawMessage(`{"shapes":[
			{"type":"rectangle"},
			{"type":"kite"}
		]}`),
	})
	if err == nil {
		t.Fatalf("Handle should fail, got %+v", scene)
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedShape) {
		t.Errorf("error code = %s, want UNSUPPORTED_SHAPE", errors.GetCode(err))
	}
}

func TestHandleUnknownMessage(t *testing.T) {
	h := NewHandler(nil)

	_, err := h.Handle(context.Background(), Message{Type: "delete-everything"})
	if !errors.Is(err, errors.ErrCodeInvalidMessage) {
		t.Errorf("error = %v, want INVALID_MESSAGE", err)
	}
}

func TestHandleMalformedConfig(t *testing.T) {
	h := NewHandler(nil)

	_, err := h.Handle(context.Background(), Message{
		Type:   MessageCreateShape,
		Config: json.RawMessage(`{"type":`),
	})
	if !errors.Is(err, errors.ErrCodeInvalidMessage) {
		t.Errorf("error = %v, want INVALID_MESSAGE", err)
	}
}

func TestHandleGridRejectsNonPositiveCount(t *testing.T) {
	h := NewHandler(nil)

	for _, count := range []int{0, -2} {
		_, err := h.Handle(context.Background(), Message{Type: MessageCreateGrid, Count: count})
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("count %d: error = %v, want INVALID_INPUT", count, err)
		}
	}
}

func TestViewportCoversAllNodes(t *testing.T) {
	h := NewHandler(nil)

	scene, err := h.Handle(context.Background(), Message{
		Type: MessageCreateShapes,
		Config: json.RawMessage(`{"shapes":[
			{"type":"rectangle","x":-50,"y":10,"width":20,"height":20},
			{"type":"ellipse","x":100,"y":-40,"width":30,"height":30}
		]}`),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	v := scene.Viewport
	if v.X != -50 || v.Y != -40 {
		t.Errorf("viewport origin = (%g,%g), want (-50,-40)", v.X, v.Y)
	}
	if v.Width != 180 || v.Height != 70 {
		t.Errorf("viewport size = (%g,%g), want (180,70)", v.Width, v.Height)
	}
}
