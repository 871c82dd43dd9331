package artboard

import (
	"context"
	"testing"

	"github.com/gogpu/artboard/text"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.imageCapacity != 50 {
		t.Errorf("imageCapacity = %d, want 50", o.imageCapacity)
	}
	if o.layerCapacity != 30 {
		t.Errorf("layerCapacity = %d, want 30", o.layerCapacity)
	}
	if o.assets == nil {
		t.Error("assets is nil, want an empty store")
	}
	if o.placeholder != DefaultPlaceholder() {
		t.Errorf("placeholder = %+v, want the default", o.placeholder)
	}
}

func TestCompositorOptions(t *testing.T) {
	assets := MapAssets{}
	fonts := text.NewRegistry()
	ph := Placeholder{Fill: Red, Cross: Black, CrossWidth: 3}
	fetch := FetcherFunc(func(context.Context, string) ([]byte, error) { return nil, nil })

	o := defaultOptions()
	for _, opt := range []CompositorOption{
		WithImageCacheCapacity(5),
		WithLayerCacheCapacity(7),
		WithAssetStore(assets),
		WithFetcher(fetch),
		WithFonts(fonts),
		WithPlaceholder(ph),
	} {
		opt(&o)
	}

	if o.imageCapacity != 5 || o.layerCapacity != 7 {
		t.Errorf("capacities = %d/%d, want 5/7", o.imageCapacity, o.layerCapacity)
	}
	if o.fetcher == nil {
		t.Error("fetcher not set")
	}
	if o.fonts != fonts {
		t.Error("fonts not set")
	}
	if o.placeholder != ph {
		t.Errorf("placeholder = %+v, want %+v", o.placeholder, ph)
	}
}

func TestCompositorOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	WithImageCacheCapacity(0)(&o)
	WithLayerCacheCapacity(-3)(&o)
	WithAssetStore(nil)(&o)
	if o.imageCapacity != DefaultImageCacheCapacity || o.layerCapacity != DefaultLayerCacheCapacity {
		t.Errorf("capacities = %d/%d, want defaults", o.imageCapacity, o.layerCapacity)
	}
	if o.assets == nil {
		t.Error("nil store replaced the default")
	}
}

func TestNewCompositorUsesFonts(t *testing.T) {
	fonts := text.NewRegistry()
	c := NewCompositor(WithFonts(fonts))
	defer c.Close()
	if c.Fonts() != fonts {
		t.Error("Fonts() did not return the configured registry")
	}

	d := NewCompositor()
	defer d.Close()
	if d.Fonts() == nil {
		t.Error("default compositor has no font registry")
	}
}
