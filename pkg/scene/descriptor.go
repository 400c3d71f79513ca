package scene

import (
	"github.com/shapesmith/shapesmith/pkg/fonts"
	"github.com/shapesmith/shapesmith/pkg/paint"
)

// Host-default placement and size for configurations that omit them.
const (
	DefaultX      = 0.0
	DefaultY      = 0.0
	DefaultWidth  = 100.0
	DefaultHeight = 100.0

	// DefaultFontSize is assigned to text nodes without an explicit size.
	DefaultFontSize = 12.0
)

// Star construction defaults.
const (
	DefaultStarPoints      = 5
	DefaultStarInnerRadius = 0.5
)

// DefaultPolygonPoints is the point count for polygons that omit it.
const DefaultPolygonPoints = 6

// NodeDescriptor is the materialized form of one shape request: a shape
// kind plus fully resolved geometry, paint, and refinements. Paint values
// are normalized RGB triples in [0,1]; hex strings and symbolic names never
// survive to this point.
//
// A descriptor is produced once by the Factory and must not be mutated
// afterward; ownership transfers to the engine and then to the host.
type NodeDescriptor struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Fill   *paint.RGB `json:"fill,omitempty"`
	Stroke *paint.RGB `json:"stroke,omitempty"`

	StrokeWeight float64 `json:"strokeWeight,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// Star and polygon geometry. InnerRadius is a fraction of the outer
	// radius and only meaningful for stars.
	PointCount  int     `json:"pointCount,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"`

	// Text content and typography, set only after the font resource has
	// been acquired.
	Text     string      `json:"text,omitempty"`
	Font     *fonts.Font `json:"font,omitempty"`
	FontSize float64     `json:"fontSize,omitempty"`

	// ZIndex preserved from the configuration for host-side bookkeeping;
	// draw order is already established by descriptor position.
	ZIndex int `json:"zIndex"`
}

// Bounds returns the axis-aligned bounding box of the node.
func (n *NodeDescriptor) Bounds() (x0, y0, x1, y1 float64) {
	return n.X, n.Y, n.X + n.Width, n.Y + n.Height
}
