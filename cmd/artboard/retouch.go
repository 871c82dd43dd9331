package main

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/artboard"
	"github.com/gogpu/artboard/retouch"
)

// newTool builds the retouch tool a stroke names, starting from the
// package defaults.
func (d StrokeDoc) newTool(src image.Image) (retouch.Tool, error) {
	pick := func(v *float64, def float64) float64 {
		if v == nil {
			return def
		}
		return *v
	}
	size := func(def float64) float64 {
		if d.Size > 0 {
			return d.Size
		}
		return def
	}
	aligned := func(def bool) bool {
		if d.Aligned == nil {
			return def
		}
		return *d.Aligned
	}

	switch d.Tool {
	case "brush":
		s := retouch.DefaultBrushSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		s.Opacity, s.Flow = pick(d.Opacity, s.Opacity), pick(d.Flow, s.Flow)
		if d.Color != nil {
			s.Color = d.Color.RGBA
		}
		return retouch.NewBrush(src, s), nil
	case "eraser":
		s := retouch.DefaultEraserSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		s.Opacity, s.Flow = pick(d.Opacity, s.Opacity), pick(d.Flow, s.Flow)
		if d.Mode != "" {
			s.Mode = retouch.EraserMode(d.Mode)
		}
		return retouch.NewEraser(src, s), nil
	case "clone":
		s := retouch.DefaultCloneSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		s.Opacity, s.Flow = pick(d.Opacity, s.Opacity), pick(d.Flow, s.Flow)
		s.Aligned = aligned(s.Aligned)
		if d.Mode != "" {
			s.BlendMode = artboard.BlendMode(d.Mode)
		}
		return retouch.NewCloneStamp(src, s), nil
	case "heal":
		s := retouch.DefaultHealSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		s.Diffusion = pick(d.Flow, s.Diffusion)
		s.Aligned = aligned(s.Aligned)
		return retouch.NewHealingBrush(src, s), nil
	case "spot":
		s := retouch.DefaultSpotSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		if d.Mode != "" {
			s.Mode = retouch.SpotMode(d.Mode)
		}
		return retouch.NewSpotHealer(src, s), nil
	case "sponge":
		s := retouch.DefaultSpongeSettings()
		s.Size, s.Hardness = size(s.Size), pick(d.Hardness, s.Hardness)
		s.Flow = pick(d.Flow, s.Flow)
		if d.Mode != "" {
			s.Mode = retouch.SpongeMode(d.Mode)
		}
		return retouch.NewSponge(src, s), nil
	}
	return nil, fmt.Errorf("unknown retouch tool %q", d.Tool)
}

// replay applies the strokes to their image layers. Each commit is stored
// as a new asset and the layer is pointed at it, so later strokes on the
// same layer build on the result.
func replay(ctx context.Context, strokes []StrokeDoc, tree *artboard.Tree, assets artboard.MapAssets, images *artboard.ImageCache) error {
	log := artboard.Logger()
	for i, d := range strokes {
		l, ok := tree.Layer(d.Layer)
		if !ok {
			return fmt.Errorf("stroke %d: %w: %q", i, artboard.ErrUnknownLayer, d.Layer)
		}
		img, ok := l.(*artboard.ImageLayer)
		if !ok {
			return fmt.Errorf("stroke %d: layer %q is not an image", i, d.Layer)
		}
		if len(d.Points) == 0 {
			continue
		}
		a, ok := assets.Asset(img.AssetID)
		if !ok {
			return fmt.Errorf("stroke %d: layer %q has no asset", i, d.Layer)
		}
		bmp, err := decode(ctx, images, a.Source)
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		toPixels, err := tree.PixelMatrix(d.Layer, bmp.Width(), bmp.Height())
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		tool, err := d.newTool(bmp)
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}

		s := retouch.NewSession()
		s.SetTransform(toPixels)
		s.Use(tool)
		if d.Source != nil {
			s.SetSource(d.Source[0], d.Source[1])
		}
		first := d.Points[0]
		s.Start(first[0], first[1], first[2])
		for _, p := range d.Points[1:] {
			s.Continue(p[0], p[1], p[2])
		}
		c, ok := s.End()
		if !ok {
			log.Debug("retouch: stroke left the image unchanged", "stroke", i, "layer", d.Layer)
			continue
		}
		asset, err := c.Asset()
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		assets.Put(asset)
		img.AssetID = asset.ID
	}
	return nil
}

// decode waits for the bitmap behind source.
func decode(ctx context.Context, images *artboard.ImageCache, source string) (*artboard.Pixmap, error) {
	task := images.Load(source)
	select {
	case <-task.Done():
		return task.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
