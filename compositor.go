package artboard

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/artboard/text"
)

// Viewport maps artboard coordinates to surface pixels:
// surface = artboard*Zoom + (PanX, PanY).
type Viewport struct {
	// Zoom is the scale factor; zero means 1.
	Zoom float64
	PanX float64
	PanY float64
}

// Matrix returns the artboard-to-surface transform.
func (v Viewport) Matrix() Matrix {
	z := v.Zoom
	if z <= 0 {
		z = 1
	}
	return Translate(v.PanX, v.PanY).Multiply(Scale(z, z))
}

// RenderStats reports what one Render call did.
type RenderStats struct {
	// Layers is the number of non-group layers drawn.
	Layers int
	// CacheHits and CacheMisses count layer cache lookups.
	CacheHits   int
	CacheMisses int
	// Placeholders is the number of images drawn as placeholders.
	Placeholders int
	// Failures is the number of layers skipped because rendering failed.
	Failures int
	Duration time.Duration
}

// Compositor draws layer trees. It owns the decoded-image cache and the
// layer cache; construct one per editing session and Close it at the end.
//
// Render is not safe for concurrent use; image decoding runs in the
// background.
type Compositor struct {
	images      *ImageCache
	layers      *LayerCache
	assets      AssetStore
	fonts       *text.Registry
	shaper      *text.Shaper
	placeholder Placeholder
}

// NewCompositor creates a compositor with the given options.
func NewCompositor(opts ...CompositorOption) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = text.NewRegistry()
	}
	return &Compositor{
		images:      NewImageCache(o.imageCapacity, o.fetcher),
		layers:      NewLayerCache(o.layerCapacity),
		assets:      o.assets,
		fonts:       o.fonts,
		shaper:      text.NewShaper(),
		placeholder: o.placeholder,
	}
}

// Images returns the decoded-image cache.
func (c *Compositor) Images() *ImageCache { return c.images }

// LayerCache returns the rendered-layer cache.
func (c *Compositor) LayerCache() *LayerCache { return c.layers }

// Fonts returns the font registry used for text layers.
func (c *Compositor) Fonts() *text.Registry { return c.fonts }

// Render clears surface and draws the artboard background and every
// visible layer of tree through the viewport. Layers that fail to render
// are logged and skipped; the rest of the tree is still drawn.
func (c *Compositor) Render(tree *Tree, surface *Pixmap, vp Viewport) RenderStats {
	start := time.Now()
	var stats RenderStats

	dst := surface.RGBA()
	clear(dst.Pix)

	view := vp.Matrix()
	ab := tree.Artboard
	if ab.Width > 0 && ab.Height > 0 && ab.Background.A > 0 {
		bg := NewPath()
		bg.Rectangle(0, 0, float64(ab.Width), float64(ab.Height))
		mask := FillMask(bg.Transform(view), dst.Rect.Dx(), dst.Rect.Dy())
		paintMask(dst, mask, SolidBrush{Color: ab.Background}, 1)
	}

	for i := len(ab.Layers) - 1; i >= 0; i-- {
		c.renderLayer(tree, ab.Layers[i], view, 1, dst, &stats)
	}

	stats.Duration = time.Since(start)
	Logger().Debug("artboard: rendered", "artboard", ab.ID, "layers", stats.Layers,
		"hits", stats.CacheHits, "misses", stats.CacheMisses, "duration", stats.Duration)
	return stats
}

// renderLayer draws one layer, recursing into groups. parent is the
// accumulated matrix of the enclosing groups and the viewport.
func (c *Compositor) renderLayer(tree *Tree, id string, parent Matrix, parentOpacity float64, dst *image.RGBA, stats *RenderStats) {
	defer func() {
		if r := recover(); r != nil {
			stats.Failures++
			Logger().Warn("artboard: layer render failed", "layer", id, "panic", r)
		}
	}()

	l, ok := tree.Layer(id)
	if !ok {
		stats.Failures++
		Logger().Warn("artboard: layer render failed", "layer", id, "err", ErrUnknownLayer)
		return
	}
	e := l.Base()
	if !e.Visible {
		return
	}
	opacity := parentOpacity * clamp01(e.Transform.Opacity)
	m := parent.Multiply(layerMatrix(e.Transform))

	if g, ok := l.(*GroupLayer); ok {
		for i := len(g.Children) - 1; i >= 0; i-- {
			c.renderLayer(tree, g.Children[i], m, opacity, dst, stats)
		}
		return
	}
	if opacity <= 0 || !onSurface(l, m, dst.Rect) {
		return
	}

	buf, pad, err := c.layerBuffer(l, stats)
	if err != nil {
		stats.Failures++
		Logger().Warn("artboard: layer render failed", "layer", id, "err", err)
		return
	}
	if buf == nil {
		return
	}
	stats.Layers++
	composite(dst, buf.RGBA(), m.Multiply(Translate(-float64(pad), -float64(pad))), opacity, e.Effects.BlendMode.op())
}

// layerBuffer returns the padded offscreen buffer of l, from the layer
// cache when its content hash and size still match. A nil buffer means the
// layer has nothing to draw.
func (c *Compositor) layerBuffer(l Layer, stats *RenderStats) (*Pixmap, int, error) {
	e := l.Base()
	w, h := boxSize(e.Transform)
	if w <= 0 || h <= 0 {
		return nil, 0, nil
	}

	hash := ContentHash(l)
	if entry, ok := c.layers.Lookup(e.ID, hash, w, h); ok {
		stats.CacheHits++
		Logger().Debug("artboard: layer cache hit", "layer", e.ID)
		return entry.Buffer, entry.Padding, nil
	}
	stats.CacheMisses++
	Logger().Debug("artboard: layer cache miss", "layer", e.ID)

	pad := padding(l)
	content := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))

	var placeholder bool
	switch v := l.(type) {
	case *ImageLayer:
		placeholder = c.drawImage(content, pad, v, w, h)
	case *TextLayer:
		c.drawText(content, pad, v, w, h)
	case *ShapeLayer:
		c.drawShape(content, pad, v, w, h)
	default:
		return nil, 0, fmt.Errorf("%w: %T", ErrNoBuffer, l)
	}
	if placeholder {
		stats.Placeholders++
	} else {
		applyAdjustments(content, pad, e.Effects.Adjustments)
	}

	buf := wrapRGBA(runEffects(content, pad, w, h, e.Effects))
	if !placeholder {
		c.layers.Store(e.ID, &LayerCacheEntry{Buffer: buf, Hash: hash, Width: w, Height: h, Padding: pad})
	}
	return buf, pad, nil
}

// PruneLayerCache drops cached buffers of layers not in live and returns
// how many were removed.
func (c *Compositor) PruneLayerCache(live map[string]struct{}) int {
	n := c.layers.Prune(live)
	if n > 0 {
		Logger().Debug("artboard: pruned layer cache", "removed", n)
	}
	return n
}

// LiveLayers returns the ids of every layer registered in tree, for use
// with PruneLayerCache.
func LiveLayers(tree *Tree) map[string]struct{} {
	live := make(map[string]struct{}, len(tree.layers))
	for id := range tree.layers {
		live[id] = struct{}{}
	}
	return live
}

// Close stops background decodes and clears both caches.
func (c *Compositor) Close() {
	c.images.Close()
	c.layers.Clear()
}

// boxSize returns the ceiled layer box size.
// onSurface reports whether the padded box of l, drawn through m, can
// touch the surface bounds.
func onSurface(l Layer, m Matrix, bounds image.Rectangle) bool {
	w, h := boxSize(l.Base().Transform)
	p := float64(padding(l))
	box := Rect{X: -p, Y: -p, Width: float64(w) + 2*p, Height: float64(h) + 2*p}
	return m.TransformRect(box).Image().Overlaps(bounds)
}

func boxSize(t Transform) (int, int) {
	return int(math.Ceil(t.Width)), int(math.Ceil(t.Height))
}
