package artboard

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// ContentHash returns a 64-bit FNV-1a digest of everything that affects a
// layer's rendered offscreen buffer: box size, opacity, scale, skew,
// flips, blend mode, enabled effects, adjustments and the kind-specific
// content. Name, lock, visibility, parent, position and rotation are
// excluded, so moving or rotating a layer keeps its cache entry.
func ContentHash(l Layer) uint64 {
	h := hasher{fnv.New64a()}
	e := l.Base()

	t := e.Transform
	h.floats(t.Width, t.Height, t.Opacity, t.ScaleX, t.ScaleY, t.SkewX, t.SkewY)
	h.bools(e.FlipX, e.FlipY)
	h.str(string(e.Effects.BlendMode))
	h.effects(e.Effects)

	switch v := l.(type) {
	case *ImageLayer:
		h.str("image")
		h.str(v.AssetID)
		if v.Crop != nil {
			h.bools(true)
			h.floats(v.Crop.X, v.Crop.Y, v.Crop.Width, v.Crop.Height)
		} else {
			h.bools(false)
		}
		f := v.Filters
		h.floats(f.Brightness, f.Contrast, f.Saturation,
			f.Exposure, f.Highlights, f.Shadows, f.Vibrance, f.Clarity,
			f.HueRotate, f.Grayscale, f.Sepia, f.Invert,
			f.Blur, f.BlurAngle)
		h.str(string(f.BlurType))
	case *TextLayer:
		h.str("text")
		h.str(v.Content)
		s := v.Style
		h.str(s.FontFamily)
		h.floats(s.FontSize, float64(s.FontWeight), s.LineHeight, s.LetterSpacing)
		h.bools(s.Italic)
		h.color(s.Color)
		h.str(string(s.Align))
		h.bools(s.Background.Enabled)
		h.color(s.Background.Color)
		h.floats(s.Background.Padding, s.Background.Radius)
		h.gradient(s.Gradient)
		h.outline(s.Stroke)
		h.bools(s.Shadow.Enabled)
		h.color(s.Shadow.Color)
		h.floats(s.Shadow.Blur, s.Shadow.OffsetX, s.Shadow.OffsetY)
	case *ShapeLayer:
		h.str("shape")
		h.str(string(v.Kind))
		h.int(len(v.Points))
		for _, p := range v.Points {
			h.floats(p.X, p.Y)
		}
		s := v.Style
		h.color(s.Fill)
		h.str(string(s.FillType))
		h.gradient(s.Gradient)
		h.floats(s.NoiseAmount, float64(s.NoiseSeed))
		h.color(s.StrokeColor)
		h.floats(s.StrokeWidth)
		h.str(string(s.StrokeStyle))
		h.str(string(s.LineCap))
		h.str(string(s.LineJoin))
		r := s.CornerRadii
		h.floats(r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
		h.int(s.Sides)
		h.int(s.StarPoints)
		h.floats(s.InnerRatio, s.ArrowHead)
		h.bools(s.Closed)
	case *GroupLayer:
		h.str("group")
		for _, id := range v.Children {
			h.str(id)
		}
	}
	return h.Sum64()
}

// hasher writes fixed-width, length-prefixed fields so that adjacent
// values cannot collide by concatenation.
type hasher struct {
	hash.Hash64
}

func (h hasher) floats(vs ...float64) {
	var buf [8]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
}

func (h hasher) int(v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}

func (h hasher) bools(vs ...bool) {
	for _, v := range vs {
		b := byte(0)
		if v {
			b = 1
		}
		h.Write([]byte{b})
	}
}

func (h hasher) str(s string) {
	h.int(len(s))
	h.Write([]byte(s))
}

func (h hasher) color(c RGBA) {
	h.floats(c.R, c.G, c.B, c.A)
}

func (h hasher) outline(o Outline) {
	h.bools(o.Enabled)
	if o.Enabled {
		h.color(o.Color)
		h.floats(o.Width)
	}
}

func (h hasher) shadow(s ShadowEffect) {
	h.bools(s.Enabled)
	if s.Enabled {
		h.color(s.Color)
		h.floats(s.Blur, s.OffsetX, s.OffsetY, s.Opacity)
	}
}

// glow leaves out the offsets, which a glow never reads.
func (h hasher) glow(g GlowEffect) {
	h.bools(g.Enabled)
	if g.Enabled {
		h.color(g.Color)
		h.floats(g.Blur, g.Opacity, g.Intensity)
	}
}

func (h hasher) gradient(g Gradient) {
	h.bools(g.Enabled)
	h.str(string(g.Kind))
	h.floats(g.Angle)
	h.int(len(g.Stops))
	for _, s := range g.Stops {
		h.floats(s.Offset)
		h.color(s.Color)
	}
}

func (h hasher) effects(fx Effects) {
	h.shadow(fx.Shadow)
	h.shadow(fx.InnerShadow)
	h.glow(fx.Glow)
	h.outline(fx.Stroke)

	a := fx.Adjustments
	h.bools(a.Levels.Enabled)
	if a.Levels.Enabled {
		l := a.Levels
		h.floats(l.InBlack, l.InWhite, l.Gamma, l.OutBlack, l.OutWhite)
	}
	h.bools(a.Curves.Enabled)
	if a.Curves.Enabled {
		h.int(len(a.Curves.Points))
		for _, p := range a.Curves.Points {
			h.floats(p.X, p.Y)
		}
	}
	h.bools(a.ColorBalance.Enabled)
	if cb := a.ColorBalance; cb.Enabled {
		h.floats(cb.Shadows[:]...)
		h.floats(cb.Midtones[:]...)
		h.floats(cb.Highlights[:]...)
	}
	h.bools(a.SelectiveColor.Enabled)
	if sc := a.SelectiveColor; sc.Enabled {
		h.str(string(sc.Range))
		h.floats(sc.Cyan, sc.Magenta, sc.Yellow, sc.Black)
		h.bools(sc.Relative)
	}
	h.int(a.Posterize)
	h.int(a.Threshold)
	h.bools(a.Vignette.Enabled)
	if v := a.Vignette; v.Enabled {
		h.floats(v.Amount, v.Size, v.Feather)
	}
}
