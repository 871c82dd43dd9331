package artboard

import "github.com/gogpu/artboard/text"

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	c := artboard.NewCompositor(
//	    artboard.WithAssetStore(assets),
//	    artboard.WithLayerCacheCapacity(60),
//	)
type CompositorOption func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor creation.
type compositorOptions struct {
	imageCapacity int
	layerCapacity int
	assets        AssetStore
	fetcher       Fetcher
	fonts         *text.Registry
	placeholder   Placeholder
}

// defaultOptions returns the default compositor options.
func defaultOptions() compositorOptions {
	return compositorOptions{
		imageCapacity: DefaultImageCacheCapacity,
		layerCapacity: DefaultLayerCacheCapacity,
		assets:        MapAssets{},
		placeholder:   DefaultPlaceholder(),
	}
}

// WithImageCacheCapacity sets how many decoded bitmaps are kept.
// Non-positive values keep the default of 50.
func WithImageCacheCapacity(n int) CompositorOption {
	return func(o *compositorOptions) {
		if n > 0 {
			o.imageCapacity = n
		}
	}
}

// WithLayerCacheCapacity sets how many rendered layer buffers are kept.
// Non-positive values keep the default of 30.
func WithLayerCacheCapacity(n int) CompositorOption {
	return func(o *compositorOptions) {
		if n > 0 {
			o.layerCapacity = n
		}
	}
}

// WithAssetStore sets the store image layers resolve their AssetID in.
func WithAssetStore(s AssetStore) CompositorOption {
	return func(o *compositorOptions) {
		if s != nil {
			o.assets = s
		}
	}
}

// WithFetcher sets how asset sources that are not data URLs are loaded.
// If the fetcher also implements Releaser, evicted sources are released.
func WithFetcher(f Fetcher) CompositorOption {
	return func(o *compositorOptions) {
		o.fetcher = f
	}
}

// WithFonts sets the font registry used by text layers. By default a
// registry with the Go fonts is created.
func WithFonts(r *text.Registry) CompositorOption {
	return func(o *compositorOptions) {
		o.fonts = r
	}
}

// WithPlaceholder sets the look of images that are not decoded yet.
func WithPlaceholder(p Placeholder) CompositorOption {
	return func(o *compositorOptions) {
		o.placeholder = p
	}
}
