package artboard

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// FillMask rasterises p with the non-zero winding rule into a coverage
// mask of the given size.
func FillMask(p *Path, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if p.Empty() || mask.Rect.Empty() {
		return mask
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	open := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			z.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			z.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return mask
}

// InvertMask returns the complement of m: covered pixels become empty and
// empty pixels fully covered.
func InvertMask(m *image.Alpha) *image.Alpha {
	out := image.NewAlpha(m.Rect)
	for i, v := range m.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// StrokeMask rasterises the outline of p stroked with s.
func StrokeMask(p *Path, w, h int, s Stroke) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if p.Empty() || mask.Rect.Empty() || s.Width <= 0 {
		return mask
	}

	miter := s.MiterLimit
	if miter <= 0 {
		miter = 4
	}
	var dashes []float64
	var dashOffset float64
	if s.Dash.IsDashed() {
		dashes = s.Dash.effectiveArray()
		dashOffset = s.Dash.Offset
	}

	scanner := rasterx.NewScannerGV(w, h, mask, mask.Rect)
	d := rasterx.NewDasher(w, h, scanner)
	d.SetStroke(toFixed(s.Width), toFixed(miter), capFunc(s.Cap), nil, nil, joinMode(s.Join), dashes, dashOffset)
	addPath(d, p)
	d.SetColor(color.Opaque)
	d.Draw()
	return mask
}

// addPath feeds p to a rasterx adder, closing subpaths explicitly.
func addPath(a rasterx.Adder, p *Path) {
	open := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixedP(e.Point))
			open = true
		case LineTo:
			a.Line(toFixedP(e.Point))
		case QuadTo:
			a.QuadBezier(toFixedP(e.Control), toFixedP(e.Point))
		case CubicTo:
			a.CubeBezier(toFixedP(e.Control1), toFixedP(e.Control2), toFixedP(e.Point))
		case Close:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case LineCapRound:
		return rasterx.RoundCap
	case LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j LineJoin) rasterx.JoinMode {
	switch j {
	case LineJoinRound:
		return rasterx.Round
	case LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedP(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}
