package scene

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// Engine establishes the deterministic draw order for a batch of shape
// requests and invokes the Factory per entry.
//
// Entries are processed strictly sequentially: draw order is a correctness
// requirement, and out-of-order completion would make equal-z-index ties
// non-deterministic. The engine holds no state across calls.
type Engine struct {
	factory *Factory
}

// NewEngine creates an engine around the given factory.
// A nil factory gets a default-provider factory.
func NewEngine(f *Factory) *Engine {
	if f == nil {
		f = NewFactory(nil)
	}
	return &Engine{factory: f}
}

// Factory returns the engine's shape factory.
func (e *Engine) Factory() *Factory {
	return e.factory
}

// Compose materializes a batch into an ordered sequence of descriptors.
//
// The batch is stable-sorted by z-index ascending (missing values default
// to 0); entries with equal z-index keep their original relative order.
// Descriptors are returned in that order, so the first descriptor is the
// one intended to render at the back.
//
// Compose is fail-fast: if any entry fails, the whole batch fails and no
// partial result is returned, since partial application would leave an
// inconsistent, host-visible scene state. The returned error names the
// offending batch position (post-sort input index).
func (e *Engine) Compose(ctx context.Context, batch Batch) ([]*NodeDescriptor, error) {
	ordered := slices.Clone(batch)
	slices.SortStableFunc(ordered, func(a, b ShapeConfig) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})

	nodes := make([]*NodeDescriptor, 0, len(ordered))
	for i, cfg := range ordered {
		node, err := e.factory.Produce(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("produce entry %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ComposeOne materializes a single shape request. It is equivalent to a
// one-element batch and produces an identical descriptor to the batch path.
func (e *Engine) ComposeOne(ctx context.Context, cfg ShapeConfig) (*NodeDescriptor, error) {
	return e.factory.Produce(ctx, cfg)
}
