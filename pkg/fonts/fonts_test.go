package fonts

import (
	"context"
	"testing"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

func TestStaticProviderLoad(t *testing.T) {
	ctx := context.Background()
	p := NewStaticProvider("Inter", "Roboto")

	if err := p.Load(ctx, Font{Family: "Inter", Style: "Regular"}); err != nil {
		t.Errorf("Load available font: %v", err)
	}

	err := p.Load(ctx, Font{Family: "Comic Sans", Style: "Bold"})
	if err == nil {
		t.Fatal("Load unknown font should fail")
	}
	if !errors.Is(err, errors.ErrCodeResourceUnavailable) {
		t.Errorf("error code = %s, want RESOURCE_UNAVAILABLE", errors.GetCode(err))
	}
}

func TestStaticProviderDefault(t *testing.T) {
	p := NewStaticProvider()
	if err := p.Load(context.Background(), Default()); err != nil {
		t.Errorf("default provider should carry the default family: %v", err)
	}
}

func TestStaticProviderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewStaticProvider("Inter")
	err := p.Load(ctx, Default())
	if !errors.Is(err, errors.ErrCodeResourceUnavailable) {
		t.Errorf("cancelled load should surface RESOURCE_UNAVAILABLE, got %v", err)
	}
}

func TestStaticProviderAdd(t *testing.T) {
	p := NewStaticProvider("Inter")
	if err := p.Load(context.Background(), Font{Family: "Mono", Style: "Regular"}); err == nil {
		t.Fatal("Mono should start unavailable")
	}
	p.Add("Mono")
	if err := p.Load(context.Background(), Font{Family: "Mono", Style: "Regular"}); err != nil {
		t.Errorf("Mono should be available after Add: %v", err)
	}
}
