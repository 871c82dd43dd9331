package artboard

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path in layer-local coordinates.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of all points, control points included.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	add := func(pt Point) {
		if first {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			first = false
			return
		}
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// CornerRadii holds per-corner radii, clockwise from the top-left.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform reports whether every corner has the same radius.
func (r CornerRadii) Uniform() bool {
	return r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft
}

// RoundedRectangle adds a rectangle with independently rounded corners.
// Each radius is clamped to half of the smaller side.
func (p *Path) RoundedRectangle(x, y, w, h float64, radii CornerRadii) {
	maxR := math.Min(w, h) / 2
	clampR := func(r float64) float64 { return math.Max(0, math.Min(r, maxR)) }
	tl, tr := clampR(radii.TopLeft), clampR(radii.TopRight)
	br, bl := clampR(radii.BottomRight), clampR(radii.BottomLeft)

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	p.arc(x+w-tr, y+tr, tr, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-br)
	p.arc(x+w-br, y+h-br, br, 0, math.Pi/2)
	p.LineTo(x+bl, y+h)
	p.arc(x+bl, y+h-bl, bl, math.Pi/2, math.Pi)
	p.LineTo(x, y+tl)
	p.arc(x+tl, y+tl, tl, math.Pi, 3*math.Pi/2)
	p.Close()
}

// Ellipse adds an ellipse to the path using four cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox, oy := rx*k, ry*k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Polygon adds a regular polygon inscribed in the ellipse (cx, cy, rx, ry)
// with the first vertex at the top. Fewer than 3 sides is treated as 3.
func (p *Path) Polygon(cx, cy, rx, ry float64, sides int) {
	sides = max(sides, 3)
	for i := 0; i < sides; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(sides)
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// Star adds a star with the given number of points. innerRatio is the
// inner radius as a fraction of the outer one.
func (p *Path) Star(cx, cy, rx, ry float64, points int, innerRatio float64) {
	points = max(points, 2)
	innerRatio = clamp01(innerRatio)
	n := points * 2
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		f := 1.0
		if i%2 == 1 {
			f = innerRatio
		}
		x, y := cx+rx*f*math.Cos(a), cy+ry*f*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// Polyline adds an open or closed polyline through pts.
func (p *Path) Polyline(pts []Point, closed bool) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if closed && len(pts) > 2 {
		p.Close()
	}
}

// ArrowHead adds a closed triangular head at to, pointing away from from.
func (p *Path) ArrowHead(from, to Point, size float64) {
	dir := to.Sub(from).Normalize()
	if dir == (Point{}) || size <= 0 {
		return
	}
	normal := Pt(-dir.Y, dir.X)
	base := to.Sub(dir.Mul(size))
	left := base.Add(normal.Mul(size / 2))
	right := base.Sub(normal.Mul(size / 2))

	p.MoveTo(to.X, to.Y)
	p.LineTo(left.X, left.Y)
	p.LineTo(right.X, right.Y)
	p.Close()
}

// arc appends a circular arc from angle1 to angle2 (radians) as cubic
// segments of at most 90 degrees. A zero radius degenerates to a line.
func (p *Path) arc(cx, cy, r, angle1, angle2 float64) {
	if r <= 0 {
		p.LineTo(cx, cy)
		return
	}
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	n := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	step := (angle2 - angle1) / float64(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		a2 := a1 + step
		// alpha from "Drawing an elliptical arc using polylines, quadratic or
		// cubic Bezier curves" (Maisonobe).
		t := math.Tan((a2 - a1) / 2)
		alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		x1, y1 := cx+r*cos1, cy+r*sin1
		x2, y2 := cx+r*cos2, cy+r*sin2
		p.CubicTo(x1-alpha*r*sin1, y1+alpha*r*cos1, x2+alpha*r*sin2, y2-alpha*r*cos2, x2, y2)
	}
}
