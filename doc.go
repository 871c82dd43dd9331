// Package artboard is the rendering core of a raster image editor.
//
// # Overview
//
// An artboard is a fixed-size canvas holding a tree of layers: images,
// text, vector shapes and groups. The Compositor walks the tree every frame
// and draws it onto a target Pixmap. Each layer is rendered once into a
// padded offscreen buffer that holds its effects (glow, drop shadow, inner
// shadow, outline), then drawn through the layer's affine matrix with its
// blend mode and opacity.
//
// Rendering is backed by two LRU caches owned by the Compositor:
//
//   - the image cache, which decodes asset sources (data URLs or keys
//     resolved by a Fetcher) asynchronously and never retries failures
//   - the layer cache, which keeps the rendered offscreen buffer of each
//     layer keyed by a content hash that ignores position and rotation
//
// Moving or rotating a layer therefore reuses its cached buffer; changing
// a filter, a colour or the text re-renders it.
//
// # Quick Start
//
//	tree := artboard.NewTree(artboard.Artboard{ID: "a", Width: 800, Height: 600})
//	tree.Add(&artboard.ShapeLayer{
//	    Envelope: artboard.Envelope{ID: "box", Visible: true,
//	        Transform: artboard.Transform{X: 100, Y: 100, Width: 200, Height: 120, Opacity: 1}},
//	    Kind:  artboard.ShapeRectangle,
//	    Style: artboard.ShapeStyle{Fill: artboard.Hex("#3366ff"), FillType: artboard.FillSolid},
//	})
//
//	c := artboard.NewCompositor()
//	defer c.Close()
//
//	surface := artboard.NewPixmap(800, 600)
//	c.Render(tree, surface, artboard.Viewport{Zoom: 1})
//	_ = surface.SavePNG("out.png")
//
// # Redraw scheduling
//
// A Scheduler coalesces invalidations into a single render per frame and
// skips frames whose tree hash did not change, unless a decode finished or
// a redraw was forced.
//
// # Retouching
//
// Pixel tools (brush, eraser, clone stamp, healing, spot healing, sponge)
// live in the retouch sub-package and operate on a copy of an image asset.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive decode
// failures, layer render failures and cache diagnostics.
package artboard
