package artboard

import (
	"image"

	"github.com/gogpu/artboard/internal/blend"
)

// LineCap specifies the shape of line endpoints.
type LineCap string

const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin specifies the shape of line joins.
type LineJoin string

const (
	LineJoinMiter LineJoin = "miter"
	LineJoinRound LineJoin = "round"
	LineJoinBevel LineJoin = "bevel"
)

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is the shape of line endpoints. Empty means butt.
	Cap LineCap

	// Join is the shape of line joins. Empty means miter.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Zero means 4, the SVG default.
	MiterLimit float64

	// Dash is the dash pattern; nil strokes a solid line.
	Dash *Dash
}

// paintMask composites brush b through the coverage mask onto dst,
// source-over, scaled by opacity. mask and dst share a coordinate space;
// pixels outside either are untouched.
func paintMask(dst *image.RGBA, mask *image.Alpha, b Brush, opacity float64) {
	r := mask.Rect.Intersect(dst.Rect)
	if r.Empty() || opacity <= 0 {
		return
	}

	solid, isSolid := b.(SolidBrush)
	var src [4]byte
	if isSolid {
		pc := solid.Color.Premul()
		src = [4]byte{pc.R, pc.G, pc.B, pc.A}
	}

	px := make([]byte, 4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := mask.Pix[mask.PixOffset(x, y)]
			if cov == 0 {
				continue
			}
			if !isSolid {
				pc := b.ColorAt(float64(x)+0.5, float64(y)+0.5).Premul()
				src = [4]byte{pc.R, pc.G, pc.B, pc.A}
			}
			copy(px, src[:])
			i := dst.PixOffset(x, y)
			blend.Span(dst.Pix[i:i+4], px, opacity*float64(cov)/255, blend.ModeSourceOver)
		}
	}
}
