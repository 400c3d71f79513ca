package scene

import (
	"github.com/google/uuid"

	"github.com/shapesmith/shapesmith/pkg/errors"
	"github.com/shapesmith/shapesmith/pkg/paint"
)

// GridSpacing is the fixed horizontal distance between grid rectangles.
const GridSpacing = 150.0

// gridFill is the fixed fill for grid rectangles (orange).
var gridFill = paint.RGB{R: 1, G: 165.0 / 255, B: 0}

// BuildGrid produces count default-sized rectangles laid out left to right
// at the fixed spacing with the fixed orange fill.
//
// The grid path builds its descriptors directly rather than going through
// the factory's generalized construction rules; it shares only the
// descriptor type with the engine.
func BuildGrid(count int) ([]*NodeDescriptor, error) {
	if count <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid count must be positive, got %d", count)
	}

	nodes := make([]*NodeDescriptor, count)
	for i := range nodes {
		fill := gridFill
		nodes[i] = &NodeDescriptor{
			ID:     uuid.NewString(),
			Kind:   KindRectangle,
			X:      float64(i) * GridSpacing,
			Y:      DefaultY,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Fill:   &fill,
		}
	}
	return nodes, nil
}
