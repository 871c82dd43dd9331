package artboard

import (
	"image"
	"math"
)

// drawShape fills and strokes the shape layer into dst at (pad, pad).
func (c *Compositor) drawShape(dst *image.RGBA, pad int, l *ShapeLayer, w, h int) {
	s := l.Style
	fw, fh := float64(w), float64(h)
	at := Translate(float64(pad), float64(pad))
	bw, bh := dst.Rect.Dx(), dst.Rect.Dy()
	box := Rect{X: float64(pad), Y: float64(pad), Width: fw, Height: fh}

	switch l.Kind {
	case ShapeLine, ShapeArrow:
		from, to := lineEnds(l.Points, fw, fh)
		col := s.StrokeColor
		if col.A == 0 {
			col = s.Fill
		}
		width := math.Max(s.StrokeWidth, 1)

		shaft := NewPath()
		shaft.MoveTo(from.X, from.Y)
		end := to
		if l.Kind == ShapeArrow {
			// Stop the shaft inside the head so a butt cap does not poke out.
			end = to.Sub(to.Sub(from).Normalize().Mul(arrowHeadSize(s) / 2))
		}
		shaft.LineTo(end.X, end.Y)
		st := Stroke{Width: width, Cap: s.LineCap, Join: s.LineJoin, Dash: DashFor(s.StrokeStyle, width)}
		paintMask(dst, StrokeMask(shaft.Transform(at), bw, bh, st), SolidBrush{Color: col}, 1)

		if l.Kind == ShapeArrow {
			head := NewPath()
			head.ArrowHead(from, to, arrowHeadSize(s))
			paintMask(dst, FillMask(head.Transform(at), bw, bh), SolidBrush{Color: col}, 1)
		}
		return
	}

	p := shapePath(l.Kind, s, l.Points, fw, fh).Transform(at)
	if b := fillBrush(s, box); b != nil {
		paintMask(dst, FillMask(p, bw, bh), b, 1)
	}
	if s.StrokeWidth > 0 && s.StrokeColor.A > 0 {
		st := Stroke{Width: s.StrokeWidth, Cap: s.LineCap, Join: s.LineJoin, Dash: DashFor(s.StrokeStyle, s.StrokeWidth)}
		paintMask(dst, StrokeMask(p, bw, bh, st), SolidBrush{Color: s.StrokeColor}, 1)
	}
}

// shapePath builds the closed outline of a fillable shape kind in
// layer-local coordinates.
func shapePath(kind ShapeKind, s ShapeStyle, pts []Point, w, h float64) *Path {
	p := NewPath()
	switch kind {
	case ShapeEllipse:
		p.Ellipse(w/2, h/2, w/2, h/2)
	case ShapePolygon:
		p.Polygon(w/2, h/2, w/2, h/2, s.Sides)
	case ShapeStar:
		ratio := s.InnerRatio
		if ratio <= 0 {
			ratio = 0.5
		}
		points := s.StarPoints
		if points <= 0 {
			points = 5
		}
		p.Star(w/2, h/2, w/2, h/2, points, ratio)
	case ShapePath:
		p.Polyline(pts, s.Closed)
	default:
		if s.CornerRadii == (CornerRadii{}) {
			p.Rectangle(0, 0, w, h)
		} else {
			p.RoundedRectangle(0, 0, w, h, s.CornerRadii)
		}
	}
	return p
}

// fillBrush returns the interior paint, or nil for no fill.
func fillBrush(s ShapeStyle, box Rect) Brush {
	switch s.FillType {
	case FillNone:
		return nil
	case FillGradient:
		if s.Gradient.Enabled && len(s.Gradient.Stops) > 0 {
			return s.Gradient.Brush(box)
		}
	case FillNoise:
		return NoiseBrush{Base: s.Fill, Amount: s.NoiseAmount / 100, Seed: s.NoiseSeed}
	}
	if s.Fill.A == 0 {
		return nil
	}
	return SolidBrush{Color: s.Fill}
}

// lineEnds returns the first and last point, or a horizontal line through
// the middle of the box when fewer than two points are given.
func lineEnds(pts []Point, w, h float64) (Point, Point) {
	if len(pts) < 2 {
		return Pt(0, h/2), Pt(w, h/2)
	}
	return pts[0], pts[len(pts)-1]
}

// arrowHeadSize returns the head length, defaulting to four stroke widths
// with a minimum of 8px.
func arrowHeadSize(s ShapeStyle) float64 {
	if s.ArrowHead > 0 {
		return s.ArrowHead
	}
	return math.Max(4*s.StrokeWidth, 8)
}
