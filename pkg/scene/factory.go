package scene

import (
	"context"

	"github.com/google/uuid"

	"github.com/shapesmith/shapesmith/pkg/fonts"
	"github.com/shapesmith/shapesmith/pkg/paint"
)

// Factory converts one shape configuration into one node descriptor.
// It depends on nothing else in the engine; the only external capability
// it uses is the injected font provider for text construction.
//
// A Factory is stateless across calls and safe for concurrent use as long
// as its provider is.
type Factory struct {
	fonts fonts.Provider
}

// NewFactory creates a factory with the given font provider.
// A nil provider falls back to a static provider carrying the default family.
func NewFactory(p fonts.Provider) *Factory {
	if p == nil {
		p = fonts.NewStaticProvider()
	}
	return &Factory{fonts: p}
}

// Produce materializes a single shape configuration.
//
// It fails with UNSUPPORTED_SHAPE for types outside the closed enumeration,
// INVALID_COLOR for malformed fill/stroke values, and RESOURCE_UNAVAILABLE
// when a text node's font cannot be acquired. The returned descriptor is
// immutable; Produce has no other side effects.
func (f *Factory) Produce(ctx context.Context, cfg ShapeConfig) (*NodeDescriptor, error) {
	kind, err := ParseKind(cfg.Type)
	if err != nil {
		return nil, err
	}

	node := &NodeDescriptor{
		ID:     uuid.NewString(),
		Kind:   kind,
		X:      DefaultX,
		Y:      DefaultY,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		ZIndex: cfg.ZIndex,
	}

	switch kind {
	case KindStar:
		node.PointCount = cfg.PointCount
		if node.PointCount == 0 {
			node.PointCount = DefaultStarPoints
		}
		node.InnerRadius = DefaultStarInnerRadius
		if cfg.InnerRadius != nil {
			node.InnerRadius = *cfg.InnerRadius
		}
	case KindPolygon:
		node.PointCount = cfg.PolygonPointCount
		if node.PointCount == 0 {
			node.PointCount = DefaultPolygonPoints
		}
	case KindText:
		// The font must be acquired before content or size assignment.
		font := cfg.font()
		if err := f.fonts.Load(ctx, font); err != nil {
			return nil, err
		}
		node.Font = &font
		node.Text = cfg.Text
		node.FontSize = DefaultFontSize
		if cfg.FontSize != nil {
			node.FontSize = *cfg.FontSize
		}
	}

	// Position applies unconditionally when present.
	if cfg.X != nil {
		node.X = *cfg.X
	}
	if cfg.Y != nil {
		node.Y = *cfg.Y
	}

	// Size applies only to kinds that support resizing; text nodes are
	// sized by content.
	if kind.Resizable() {
		if cfg.Width != nil {
			node.Width = *cfg.Width
		}
		if cfg.Height != nil {
			node.Height = *cfg.Height
		}
	}

	if cfg.Fill != nil {
		fill, err := paint.Resolve("fill", *cfg.Fill)
		if err != nil {
			return nil, err
		}
		node.Fill = fill
	}
	if cfg.Stroke != nil {
		stroke, err := paint.Resolve("stroke", *cfg.Stroke)
		if err != nil {
			return nil, err
		}
		node.Stroke = stroke
	}

	// Refinements apply only where the produced kind supports them;
	// anything else is silently ignored.
	if cfg.StrokeWeight != nil && kind.SupportsStroke() {
		node.StrokeWeight = *cfg.StrokeWeight
	}
	if cfg.CornerRadius != nil && kind.SupportsCornerRadius() {
		node.CornerRadius = *cfg.CornerRadius
	}

	return node, nil
}
