package artboard

import (
	"image"
	"image/color"

	"github.com/gogpu/artboard/internal/blend"
	"github.com/gogpu/artboard/internal/filter"
)

// glowPasses is how many times the glow shadow and content are stacked.
const glowPasses = 3

// shadowColor returns the effect colour with Opacity applied.
func shadowColor(s ShadowEffect) color.NRGBA {
	op := s.Opacity
	if op == 0 {
		op = 1
	}
	return s.Color.WithAlpha(op).NRGBA()
}

func glowIntensity(g GlowEffect) float64 {
	if g.Intensity == 0 {
		return 1
	}
	return g.Intensity
}

// dropShadow converts a canvas shadow (shadowBlur b) to a filter shadow of
// sigma b/2.
func dropShadow(s ShadowEffect) filter.Shadow {
	return filter.Shadow{
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
		Sigma:   s.Blur / 2,
		Color:   shadowColor(s),
	}
}

// glowShadow is a centred shadow whose blur is scaled by the intensity.
func glowShadow(g GlowEffect) filter.Shadow {
	return filter.Shadow{
		Sigma: g.Blur * glowIntensity(g) / 2,
		Color: shadowColor(g.ShadowEffect),
	}
}

// drawOutline strokes the layer box.
func drawOutline(dst *image.RGBA, box Rect, o Outline) {
	if o.Width <= 0 {
		return
	}
	p := NewPath()
	p.Rectangle(box.X, box.Y, box.Width, box.Height)
	mask := StrokeMask(p, dst.Rect.Dx(), dst.Rect.Dy(), Stroke{Width: o.Width, Join: LineJoinMiter})
	paintMask(dst, mask, SolidBrush{Color: o.Color}, 1)
}

// drawInnerShadow shades the inside of box along its edges. It fills the
// frame around the box (everything but the box), takes that frame's
// shadow, clips it to the box and composites it source-atop so only
// existing content is darkened.
func drawInnerShadow(dst *image.RGBA, box Rect, s ShadowEffect) {
	sh := dropShadow(s)

	// The frame must reach past the blur so that the box edges see a
	// solid surround; build it in a scratch area larger than dst.
	spread := filter.KernelExtent(sh.Sigma) + int(max(abs(s.OffsetX), abs(s.OffsetY))) + 1
	area := dst.Rect.Inset(-spread)

	boxPath := NewPath()
	boxPath.Rectangle(box.X+float64(spread), box.Y+float64(spread), box.Width, box.Height)
	boxMask := FillMask(boxPath, area.Dx(), area.Dy())
	frame := filter.Colorize(InvertMask(boxMask), color.NRGBA{A: 255})

	shadow := sh.Mask(frame)
	for i := range shadow.Pix {
		shadow.Pix[i] = uint8((uint32(shadow.Pix[i])*uint32(boxMask.Pix[i]) + 127) / 255)
	}
	tint := filter.Colorize(shadow, sh.Color)

	for y := 0; y < dst.Rect.Dy(); y++ {
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		ti := tint.PixOffset(spread, spread+y)
		n := dst.Rect.Dx() * 4
		blend.Span(dst.Pix[di:di+n], tint.Pix[ti:ti+n], 1, blend.ModeSourceAtop)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
