package scene

import (
	"context"
	"encoding/json"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

// Message kinds recognized by the host handler.
const (
	MessageCreateShape  = "create-shape"
	MessageCreateShapes = "create-shapes"
	MessageCreateGrid   = "create-grid"
)

// Message is the host payload envelope. Config carries either a single
// shape configuration (create-shape) or an object with a "shapes" array
// (create-shapes); Count drives the rectangle-grid request.
type Message struct {
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config,omitempty"`
	Count  int             `json:"count,omitempty"`
}

// batchConfig is the create-shapes config payload.
type batchConfig struct {
	Shapes Batch `json:"shapes"`
}

// Viewport is the bounding region the host should focus after insertion.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scene is the result of handling a message: the produced nodes in draw
// order, the IDs the host should select, and the viewport focus region.
// KeepOpen reports whether the interactive session stays open afterward
// (only the JSON-driven shape paths may trigger further interaction).
type Scene struct {
	Nodes     []*NodeDescriptor `json:"nodes"`
	Selection []string          `json:"selection"`
	Viewport  Viewport          `json:"viewport"`
	KeepOpen  bool              `json:"keepOpen,omitempty"`
}

// Handler dispatches host messages onto the engine.
type Handler struct {
	engine *Engine
}

// NewHandler creates a message handler around the given engine.
func NewHandler(e *Engine) *Handler {
	if e == nil {
		e = NewEngine(nil)
	}
	return &Handler{engine: e}
}

// Handle processes one host message and returns the resulting scene.
// Unrecognized message kinds and undecodable configs fail with
// INVALID_MESSAGE; shape construction failures propagate unchanged.
func (h *Handler) Handle(ctx context.Context, msg Message) (*Scene, error) {
	switch msg.Type {
	case MessageCreateShape:
		var cfg ShapeConfig
		if err := json.Unmarshal(msg.Config, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMessage, err, "decode shape config")
		}
		node, err := h.engine.ComposeOne(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return newScene([]*NodeDescriptor{node}, true), nil

	case MessageCreateShapes:
		var cfg batchConfig
		if err := json.Unmarshal(msg.Config, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMessage, err, "decode shapes config")
		}
		nodes, err := h.engine.Compose(ctx, cfg.Shapes)
		if err != nil {
			return nil, err
		}
		return newScene(nodes, true), nil

	case MessageCreateGrid:
		nodes, err := BuildGrid(msg.Count)
		if err != nil {
			return nil, err
		}
		return newScene(nodes, false), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidMessage, "unrecognized message type: %q", msg.Type)
	}
}

// newScene assembles the host-facing result: all produced nodes become the
// selection, and the viewport covers their combined bounds.
func newScene(nodes []*NodeDescriptor, keepOpen bool) *Scene {
	s := &Scene{
		Nodes:     nodes,
		Selection: make([]string, len(nodes)),
		KeepOpen:  keepOpen,
	}
	for i, n := range nodes {
		s.Selection[i] = n.ID
	}
	s.Viewport = focusViewport(nodes)
	return s
}

// focusViewport computes the bounding region of the produced nodes.
func focusViewport(nodes []*NodeDescriptor) Viewport {
	if len(nodes) == 0 {
		return Viewport{}
	}

	x0, y0, x1, y1 := nodes[0].Bounds()
	for _, n := range nodes[1:] {
		nx0, ny0, nx1, ny1 := n.Bounds()
		x0 = min(x0, nx0)
		y0 = min(y0, ny0)
		x1 = max(x1, nx1)
		y1 = max(y1, ny1)
	}
	return Viewport{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
