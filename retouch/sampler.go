package retouch

import "math"

// Sample is one pointer position with its pressure in [0, 1].
type Sample struct {
	X, Y     float64
	Pressure float64
}

// Sampler spaces dabs evenly along a stroke.
type Sampler struct {
	spacing float64
	last    Sample
	started bool
}

// NewSampler creates a sampler for a brush of the given size whose dabs
// are spacingPercent of the size apart. Spacing never drops below one
// pixel.
func NewSampler(size, spacingPercent float64) *Sampler {
	return &Sampler{spacing: math.Max(1, size*spacingPercent/100)}
}

// Spacing returns the distance between dabs in pixels.
func (s *Sampler) Spacing() float64 { return s.spacing }

// Begin starts a stroke at p and returns its single dab.
func (s *Sampler) Begin(p Sample) []Sample {
	s.last, s.started = p, true
	return []Sample{p}
}

// Next returns the dabs between the previous sample and p, ending with p
// itself. A move of zero distance produces no dabs.
func (s *Sampler) Next(p Sample) []Sample {
	if !s.started {
		return s.Begin(p)
	}
	from := s.last
	d := math.Hypot(p.X-from.X, p.Y-from.Y)
	if d == 0 {
		return nil
	}
	steps := int(math.Ceil(d / s.spacing))
	out := make([]Sample, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out[i-1] = Sample{
			X:        from.X + (p.X-from.X)*t,
			Y:        from.Y + (p.Y-from.Y)*t,
			Pressure: from.Pressure + (p.Pressure-from.Pressure)*t,
		}
	}
	out[steps-1] = p
	s.last = p
	return out
}
