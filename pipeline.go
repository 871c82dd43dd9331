package artboard

import (
	"image"
	"math"

	"github.com/gogpu/artboard/internal/blend"
	"golang.org/x/image/draw"
)

// layerMatrix maps layer-local box coordinates (0..Width, 0..Height) to
// the parent space: rotation, scale and skew pivot on the box centre.
func layerMatrix(t Transform) Matrix {
	sx, sy := t.scale()
	cx, cy := t.Width/2, t.Height/2
	return Translate(t.X+cx, t.Y+cy).
		Multiply(Rotate(t.Rotation * math.Pi / 180)).
		Multiply(Scale(sx, sy)).
		Multiply(Skew(t.SkewX, t.SkewY)).
		Multiply(Translate(-cx, -cy))
}

// padding returns the margin the offscreen buffer needs around the layer
// box so that effects and outlines are not clipped: the largest of the
// shadow spread, the glow spread and any stroke width.
func padding(l Layer) int {
	fx := l.Base().Effects
	p := 0.0
	if fx.Shadow.Enabled {
		p = math.Max(p, fx.Shadow.Blur+math.Max(math.Abs(fx.Shadow.OffsetX), math.Abs(fx.Shadow.OffsetY)))
	}
	if fx.Glow.Enabled {
		p = math.Max(p, fx.Glow.Blur*glowIntensity(fx.Glow))
	}
	if fx.Stroke.Enabled {
		p = math.Max(p, fx.Stroke.Width)
	}
	switch v := l.(type) {
	case *ShapeLayer:
		p = math.Max(p, v.Style.StrokeWidth)
		if v.Kind == ShapeArrow {
			p = math.Max(p, arrowHeadSize(v.Style))
		}
	case *TextLayer:
		s := v.Style
		if s.Stroke.Enabled {
			p = math.Max(p, s.Stroke.Width)
		}
		if s.Shadow.Enabled {
			p = math.Max(p, s.Shadow.Blur+math.Max(math.Abs(s.Shadow.OffsetX), math.Abs(s.Shadow.OffsetY)))
		}
	}
	return int(math.Ceil(p))
}

// runEffects builds the final layer buffer from the rendered content:
// glow passes, drop shadow, content, outline and inner shadow, in that
// order. content is not modified.
func runEffects(content *image.RGBA, pad, w, h int, fx Effects) *image.RGBA {
	if !fx.Glow.Enabled && !fx.Shadow.Enabled && !fx.InnerShadow.Enabled && !fx.Stroke.Enabled {
		return content
	}
	buf := image.NewRGBA(content.Rect)

	drewContent := false
	if fx.Glow.Enabled {
		glow := glowShadow(fx.Glow).Render(content)
		for i := 0; i < glowPasses; i++ {
			over(buf, glow)
			over(buf, content)
		}
		drewContent = true
	}
	if fx.Shadow.Enabled {
		over(buf, dropShadow(fx.Shadow).Render(content))
		over(buf, content)
		drewContent = true
	}
	if !drewContent {
		over(buf, content)
	}

	box := Rect{X: float64(pad), Y: float64(pad), Width: float64(w), Height: float64(h)}
	if fx.Stroke.Enabled {
		drawOutline(buf, box, fx.Stroke)
	}
	if fx.InnerShadow.Enabled {
		drawInnerShadow(buf, box, fx.InnerShadow)
	}
	return buf
}

// over composites src onto dst source-over. Both share a Rect.
func over(dst, src *image.RGBA) {
	blend.Span(dst.Pix, src.Pix, 1, blend.ModeSourceOver)
}

// composite draws the layer buffer src onto dst through m (buffer pixels
// to dst pixels) with the layer opacity and blend mode. Integer
// translations copy pixels exactly; every other matrix resamples
// bilinearly.
func composite(dst, src *image.RGBA, m Matrix, opacity float64, mode blend.Mode) {
	if m.IsTranslation() && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		off := image.Pt(int(m.C), int(m.F))
		r := src.Rect.Add(off).Intersect(dst.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			di := dst.PixOffset(r.Min.X, y)
			si := src.PixOffset(r.Min.X-off.X, y-off.Y)
			n := r.Dx() * 4
			blend.Span(dst.Pix[di:di+n], src.Pix[si:si+n], opacity, mode)
		}
		return
	}

	r := m.TransformRect(Rect{Width: float64(src.Rect.Dx()), Height: float64(src.Rect.Dy())})
	bounds := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	).Intersect(dst.Rect)
	if bounds.Empty() {
		return
	}
	tmp := image.NewRGBA(bounds)
	draw.BiLinear.Transform(tmp, m.Aff3(), src, src.Rect, draw.Src, nil)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		di := dst.PixOffset(bounds.Min.X, y)
		ti := tmp.PixOffset(bounds.Min.X, y)
		n := bounds.Dx() * 4
		blend.Span(dst.Pix[di:di+n], tmp.Pix[ti:ti+n], opacity, mode)
	}
}
