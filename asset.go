package artboard

import "context"

// MediaAsset is an image referenced by image layers. Source is a data URL
// ("data:image/png;base64,...") or a key understood by the Fetcher.
type MediaAsset struct {
	ID     string
	Source string
}

// AssetStore resolves asset ids. Layers reference assets, never own them.
type AssetStore interface {
	Asset(id string) (MediaAsset, bool)
}

// MapAssets is an in-memory AssetStore keyed by asset id.
type MapAssets map[string]MediaAsset

// Asset implements AssetStore.
func (m MapAssets) Asset(id string) (MediaAsset, bool) {
	a, ok := m[id]
	return a, ok
}

// Put adds or replaces an asset.
func (m MapAssets) Put(a MediaAsset) {
	m[a.ID] = a
}

// Fetcher loads the encoded bytes of a non-data-URL source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// Releaser is implemented by fetchers that hold a resource per source
// (an object URL, a temp file). Release is called when the decoded bitmap
// of that source is evicted from the image cache.
type Releaser interface {
	Release(source string)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, source string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, source string) ([]byte, error) {
	return f(ctx, source)
}
