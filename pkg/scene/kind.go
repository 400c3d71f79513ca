// Package scene implements the shape-composition engine: declarative shape
// configurations in, deterministically ordered drawable node descriptors out.
//
// The package has two components. The Factory converts one ShapeConfig into
// one NodeDescriptor, resolving geometry, paint, and sizing rules per shape
// kind. The Engine accepts a batch of configurations, establishes the draw
// order, and invokes the Factory per entry.
//
// The package performs no I/O and no logging of its own; font acquisition is
// injected via fonts.Provider and every failure is surfaced to the caller.
package scene

import (
	"github.com/shapesmith/shapesmith/pkg/errors"
)

// Kind is the closed enumeration of supported shape kinds.
// A configuration requesting anything else is a hard error, never a
// best-effort fallback.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindStar
	KindPolygon
	KindLine
	KindFrame
	KindText
)

var kindNames = [...]string{
	KindRectangle: "rectangle",
	KindEllipse:   "ellipse",
	KindStar:      "star",
	KindPolygon:   "polygon",
	KindLine:      "line",
	KindFrame:     "frame",
	KindText:      "text",
}

// String returns the configuration tag for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler so descriptors serialize
// with the configuration tag rather than the numeric value.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a configuration type tag to a Kind.
// Unknown tags fail with UNSUPPORTED_SHAPE.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "rectangle":
		return KindRectangle, nil
	case "ellipse":
		return KindEllipse, nil
	case "star":
		return KindStar, nil
	case "polygon":
		return KindPolygon, nil
	case "line":
		return KindLine, nil
	case "frame":
		return KindFrame, nil
	case "text":
		return KindText, nil
	default:
		return 0, errors.New(errors.ErrCodeUnsupportedShape, "unsupported shape type: %q", tag)
	}
}

// Resizable reports whether the kind accepts explicit width/height.
// Text nodes are sized by content and ignore configured dimensions.
func (k Kind) Resizable() bool {
	return k != KindText
}

// SupportsCornerRadius reports whether the kind accepts a corner radius.
// Corner radii on other kinds are silently ignored, not errors.
func (k Kind) SupportsCornerRadius() bool {
	return k == KindRectangle || k == KindFrame
}

// SupportsStroke reports whether the kind accepts a stroke weight.
func (k Kind) SupportsStroke() bool {
	return k != KindText
}
