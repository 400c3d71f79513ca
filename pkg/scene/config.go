package scene

import (
	"github.com/shapesmith/shapesmith/pkg/fonts"
)

// ShapeConfig is one declarative shape request.
//
// The schema is a forward-compatible superset: fields irrelevant to the
// requested type are ignored, never rejected. Pointer fields distinguish
// "absent" (host default) from an explicit zero.
type ShapeConfig struct {
	// Type selects the shape kind. Required; must be in the closed
	// enumeration (see ParseKind).
	Type string `json:"type"`

	// Position. Absence means host-default placement.
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`

	// Size. Absence means host-default size; only applied to resizable kinds.
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// Paint. Each value is a hex string, symbolic name, or "transparent";
	// absence means no paint applied. An explicit empty string is an
	// invalid color, not absence.
	Fill   *string `json:"fill,omitempty"`
	Stroke *string `json:"stroke,omitempty"`

	// Numeric refinements, only meaningful for kinds that support them.
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`

	// ZIndex controls draw/stacking order only, not identity. Missing
	// values decode to 0, the specified default.
	ZIndex int `json:"zIndex,omitempty"`

	// Star-specific fields.
	PointCount  int      `json:"pointCount,omitempty"`
	InnerRadius *float64 `json:"innerRadius,omitempty"`

	// Polygon-specific field.
	PolygonPointCount int `json:"polygonPointCount,omitempty"`

	// Text-specific fields.
	Text       string   `json:"text,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	FontFamily string   `json:"fontFamily,omitempty"`
	FontStyle  string   `json:"fontStyle,omitempty"`
}

// Batch is an ordered sequence of shape requests. Duplicates and
// overlapping geometry are legal; there is no uniqueness constraint.
type Batch []ShapeConfig

// font returns the font face requested by a text configuration,
// falling back to the default face.
func (c ShapeConfig) font() fonts.Font {
	f := fonts.Default()
	if c.FontFamily != "" {
		f.Family = c.FontFamily
	}
	if c.FontStyle != "" {
		f.Style = c.FontStyle
	}
	return f
}
