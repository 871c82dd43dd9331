package artboard

import (
	"math"
	"sort"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// GradientKind selects the gradient geometry.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// Gradient is the gradient fill attached to text and shape styles. Linear
// gradients run across the target box at Angle degrees (0 = left to right,
// 90 = top to bottom); radial gradients spread from the box centre to its
// farthest edge midpoint.
type Gradient struct {
	Enabled bool
	Kind    GradientKind
	Angle   float64
	Stops   []ColorStop
}

// Brush returns the brush that paints g over box.
func (g Gradient) Brush(box Rect) Brush {
	stops := sortStops(g.Stops)
	c := box.Center()
	if g.Kind == GradientRadial {
		return &RadialGradientBrush{
			Center: c,
			Radius: math.Max(box.Width, box.Height) / 2,
			Stops:  stops,
		}
	}

	// The gradient line passes through the centre and is long enough for
	// the perpendiculars through the corners to bound it.
	rad := g.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	half := (math.Abs(box.Width*dx) + math.Abs(box.Height*dy)) / 2
	return &LinearGradientBrush{
		Start: Pt(c.X-dx*half, c.Y-dy*half),
		End:   Pt(c.X+dx*half, c.Y+dy*half),
		Stops: stops,
	}
}

// LinearGradientBrush is a colour transition between two points. Colours
// beyond either end extend the nearest stop.
type LinearGradientBrush struct {
	Start Point
	End   Point
	Stops []ColorStop // sorted by offset
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return colorAtOffset(g.Stops, 0)
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t)
}

// RadialGradientBrush is a circular colour transition around Center.
type RadialGradientBrush struct {
	Center Point
	Radius float64
	Stops  []ColorStop // sorted by offset
}

func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.Radius <= 0 {
		return colorAtOffset(g.Stops, 1)
	}
	return colorAtOffset(g.Stops, math.Hypot(x-g.Center.X, y-g.Center.Y)/g.Radius)
}

// sortStops returns a copy of stops sorted by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset interpolates sorted stops at t, clamped to [0, 1].
// Interpolation is in straight-alpha sRGB, matching canvas gradients.
func colorAtOffset(sorted []ColorStop, t float64) RGBA {
	switch len(sorted) {
	case 0:
		return Transparent
	case 1:
		return sorted[0].Color
	}

	t = clamp01(t)
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return s1.Color.Lerp(s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}
