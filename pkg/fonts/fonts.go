// Package fonts models font acquisition for text shape construction.
//
// Text nodes cannot receive characters or a font size until their font has
// been loaded by the host. The Provider interface makes that acquisition an
// explicit, injectable dependency so the shape factory can be exercised with
// a fake provider in tests.
package fonts

import (
	"context"
	"sort"
	"sync"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

// Font identifies a font face by family and style.
type Font struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// Default is the font assigned to text nodes that do not request one.
const (
	DefaultFamily = "Inter"
	DefaultStyle  = "Regular"
)

// Default returns the default font face.
func Default() Font {
	return Font{Family: DefaultFamily, Style: DefaultStyle}
}

// Provider acquires font resources on behalf of the shape factory.
// Load blocks until the font is available or returns an error; a successful
// return guarantees the font may be assigned to text nodes.
type Provider interface {
	Load(ctx context.Context, f Font) error
}

// StaticProvider is a Provider backed by a fixed set of available families.
// It is safe for concurrent use.
type StaticProvider struct {
	mu       sync.RWMutex
	families map[string]bool
}

// NewStaticProvider creates a provider with the given available families.
// When no families are given, the default family is available.
func NewStaticProvider(families ...string) *StaticProvider {
	if len(families) == 0 {
		families = []string{DefaultFamily}
	}
	set := make(map[string]bool, len(families))
	for _, f := range families {
		set[f] = true
	}
	return &StaticProvider{families: set}
}

// Load resolves the font against the available set.
// Unknown families fail with RESOURCE_UNAVAILABLE.
func (p *StaticProvider) Load(ctx context.Context, f Font) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeResourceUnavailable, err, "font load cancelled: %s %s", f.Family, f.Style)
	}

	p.mu.RLock()
	ok := p.families[f.Family]
	p.mu.RUnlock()

	if !ok {
		return errors.New(errors.ErrCodeResourceUnavailable, "font not available: %s %s", f.Family, f.Style)
	}
	return nil
}

// Add registers an additional available family.
func (p *StaticProvider) Add(family string) {
	p.mu.Lock()
	p.families[family] = true
	p.mu.Unlock()
}

// Families returns the available families in sorted order.
func (p *StaticProvider) Families() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.families))
	for f := range p.families {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

var _ Provider = (*StaticProvider)(nil)
