package artboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/url"
	"strings"
	"sync"

	"github.com/gogpu/artboard/cache"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultImageCacheCapacity is the number of decoded bitmaps kept.
const DefaultImageCacheCapacity = 50

// ImageState is the decode state of an asset source.
type ImageState int

const (
	// ImagePending means a decode is in flight; draw a placeholder.
	ImagePending ImageState = iota
	// ImageReady means the bitmap is available.
	ImageReady
	// ImageFailed means the source could not be decoded. It is never retried.
	ImageFailed
)

// String returns the state name.
func (s ImageState) String() string {
	switch s {
	case ImagePending:
		return "pending"
	case ImageReady:
		return "ready"
	case ImageFailed:
		return "failed"
	default:
		return fmt.Sprintf("ImageState(%d)", int(s))
	}
}

// DecodeTask is the future of one asynchronous decode.
type DecodeTask struct {
	source string
	done   chan struct{}
	bitmap *Pixmap
	err    error
}

// Source returns the source being decoded.
func (t *DecodeTask) Source() string { return t.source }

// Done is closed when the decode finished, successfully or not.
func (t *DecodeTask) Done() <-chan struct{} { return t.done }

// Result blocks until the decode finished and returns its outcome.
func (t *DecodeTask) Result() (*Pixmap, error) {
	<-t.done
	return t.bitmap, t.err
}

// decodedImage is one image cache entry.
type decodedImage struct {
	bitmap *Pixmap
	source string
}

// ImageCache decodes asset sources in the background and keeps the most
// recently used bitmaps. Sources that fail to decode are remembered and
// reported as ImageFailed from then on.
//
// ImageCache is safe for concurrent use.
type ImageCache struct {
	mu      sync.Mutex
	lru     *cache.LRU[string, decodedImage]
	pending map[string]*DecodeTask
	failed  map[string]error
	fetcher Fetcher
	ready   chan string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewImageCache creates an image cache holding at most capacity bitmaps.
// fetcher resolves sources that are not data URLs and may be nil.
func NewImageCache(capacity int, fetcher Fetcher) *ImageCache {
	if capacity <= 0 {
		capacity = DefaultImageCacheCapacity
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &ImageCache{
		lru:     cache.NewLRU[string, decodedImage](capacity),
		pending: make(map[string]*DecodeTask),
		failed:  make(map[string]error),
		fetcher: fetcher,
		ready:   make(chan string, 64),
		ctx:     ctx,
		cancel:  cancel,
	}
	if rel, ok := fetcher.(Releaser); ok {
		c.lru.OnEvict(func(_ string, e decodedImage) {
			if !isDataURL(e.source) {
				rel.Release(e.source)
			}
		})
	}
	return c
}

// Get returns the bitmap for source. On a miss it starts a decode and
// reports ImagePending; the caller draws a placeholder and redraws once
// the source shows up on Ready.
func (c *ImageCache) Get(source string) (*Pixmap, ImageState) {
	if e, ok := c.lru.Get(source); ok {
		return e.bitmap, ImageReady
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, failed := c.failed[source]; failed {
		return nil, ImageFailed
	}
	// The decode may have landed between the lookup and the lock.
	if e, ok := c.lru.Peek(source); ok {
		return e.bitmap, ImageReady
	}
	c.startLocked(source)
	return nil, ImagePending
}

// Load returns the decode task for source, starting one if needed. A
// source that is already cached or failed yields a completed task.
func (c *ImageCache) Load(source string) *DecodeTask {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.lru.Peek(source); ok {
		return completedTask(source, e.bitmap, nil)
	}
	if err, failed := c.failed[source]; failed {
		return completedTask(source, nil, err)
	}
	return c.startLocked(source)
}

// startLocked returns the in-flight task for source or spawns one.
// Caller must hold c.mu.
func (c *ImageCache) startLocked(source string) *DecodeTask {
	if t, ok := c.pending[source]; ok {
		return t
	}
	t := &DecodeTask{source: source, done: make(chan struct{})}
	c.pending[source] = t
	Logger().Debug("artboard: image decode started", "source", sourceLabel(source))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		bitmap, err := decodeSource(c.ctx, source, c.fetcher)
		c.finish(t, bitmap, err)
	}()
	return t
}

// finish records the outcome of t and wakes its waiters.
func (c *ImageCache) finish(t *DecodeTask, bitmap *Pixmap, err error) {
	c.mu.Lock()
	delete(c.pending, t.source)
	if err != nil {
		c.failed[t.source] = err
	} else {
		c.lru.Set(t.source, decodedImage{bitmap: bitmap, source: t.source})
	}
	t.bitmap, t.err = bitmap, err
	close(t.done)
	c.mu.Unlock()

	if err != nil {
		if c.ctx.Err() == nil {
			Logger().Warn("artboard: image decode failed", "source", sourceLabel(t.source), "err", err)
		}
		return
	}
	// A full channel already holds a pending wake-up, which is enough to
	// force the next frame.
	select {
	case c.ready <- t.source:
	default:
	}
}

// Ready delivers the source of every decode that succeeded.
func (c *ImageCache) Ready() <-chan string {
	return c.ready
}

// Err returns the recorded failure for source, or nil.
func (c *ImageCache) Err(source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed[source]
}

// Pending returns the number of decodes in flight.
func (c *ImageCache) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Len returns the number of cached bitmaps.
func (c *ImageCache) Len() int {
	return c.lru.Len()
}

// Stats returns bitmap cache statistics.
func (c *ImageCache) Stats() cache.Stats {
	return c.lru.Stats()
}

// Close cancels outstanding decodes, waits for them and drops every
// bitmap and failure record.
func (c *ImageCache) Close() {
	c.cancel()
	c.wg.Wait()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
	clear(c.failed)
}

func completedTask(source string, bitmap *Pixmap, err error) *DecodeTask {
	t := &DecodeTask{source: source, done: make(chan struct{}), bitmap: bitmap, err: err}
	close(t.done)
	return t
}

// decodeSource loads and decodes one source.
func decodeSource(ctx context.Context, source string, fetcher Fetcher) (*Pixmap, error) {
	var data []byte
	switch {
	case isDataURL(source):
		b, err := parseDataURL(source)
		if err != nil {
			return nil, err
		}
		data = b
	case fetcher != nil:
		b, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch: %w", ErrNoSource, err)
		}
		data = b
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoSource, sourceLabel(source))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	Logger().Debug("artboard: image decoded", "source", sourceLabel(source), "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return PixmapFromImage(img), nil
}

func isDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// parseDataURL returns the payload of a data URL. Both base64 and
// percent-encoded payloads are accepted.
func parseDataURL(s string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: malformed data URL", ErrDecode)
	}
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some encoders drop the padding.
			b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return b, nil
	}
	text, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return []byte(text), nil
}

// sourceLabel shortens data URLs for log output.
func sourceLabel(s string) string {
	const maxLen = 48
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
