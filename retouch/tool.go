package retouch

import (
	"image"
	"math"

	"github.com/gogpu/artboard"
)

// Tool is a stateful retouch tool driven by pointer events in buffer
// pixel coordinates.
type Tool interface {
	// Start begins a stroke: the working buffer is copied from the source
	// and the first dab is applied.
	Start(x, y, pressure float64)
	// Continue extends the stroke to (x, y).
	Continue(x, y, pressure float64)
	// End finishes the stroke. It returns false when no stroke was active
	// or no dab changed the buffer.
	End() (*Commit, bool)
	// Cancel drops the active stroke without committing.
	Cancel()
}

// pressure maps a reported pen pressure to (0, 1]. Zero means the device
// reports none and counts as full pressure.
func pressure(p float64) float64 {
	if p <= 0 || math.IsNaN(p) {
		return 1
	}
	return math.Min(p, 1)
}

// stroke holds the state every tool shares: the source bitmap, the
// working buffer and the dab sampler.
type stroke struct {
	name    string
	src     image.Image
	buf     *image.NRGBA
	sampler *Sampler
	changed bool
	dabs    int
	skipped int
}

// begin copies the source into a fresh working buffer.
func (s *stroke) begin(size, spacing float64) {
	s.buf = NewBuffer(s.src)
	s.sampler = NewSampler(size, spacing)
	s.changed, s.dabs, s.skipped = false, 0, 0
}

func (s *stroke) active() bool { return s.buf != nil }

// run applies dab to each sample, counting skipped ones.
func (s *stroke) run(samples []Sample, dab func(Sample) bool) {
	for _, p := range samples {
		s.dabs++
		if dab(p) {
			s.changed = true
			continue
		}
		s.skipped++
		artboard.Logger().Debug("retouch: dab skipped", "tool", s.name, "x", p.X, "y", p.Y)
	}
}

// commit hands the working buffer out and makes it the next source.
func (s *stroke) commit() (*Commit, bool) {
	buf, changed := s.buf, s.changed
	s.buf, s.sampler = nil, nil
	if buf == nil || !changed {
		return nil, false
	}
	s.src = buf
	return newCommit(s.name, buf), true
}

func (s *stroke) cancel() {
	s.buf, s.sampler, s.changed = nil, nil, false
}

// Image returns the bitmap the next stroke starts from.
func (s *stroke) Image() image.Image { return s.src }

// SetImage replaces the bitmap the next stroke starts from. An active
// stroke is cancelled.
func (s *stroke) SetImage(img image.Image) {
	s.cancel()
	s.src = img
}

// Stats returns the number of dabs of the current or last stroke and how
// many of them were skipped.
func (s *stroke) Stats() (dabs, skipped int) { return s.dabs, s.skipped }

// sourcePoint is the sampling state of the clone stamp and the healing
// brush: a source point and the offset from target to source.
type sourcePoint struct {
	sx, sy    float64
	hasSource bool
	dx, dy    float64
	hasOffset bool
	aligned   bool
}

// SetSource records the sampling point and invalidates the offset.
func (p *sourcePoint) SetSource(x, y float64) {
	p.sx, p.sy, p.hasSource = x, y, true
	p.hasOffset = false
}

// StartClone fixes the offset for a stroke beginning at (x, y). Aligned
// tools keep an existing offset until the source changes; otherwise the
// offset is measured again from the source point.
func (p *sourcePoint) StartClone(x, y float64) {
	if !p.hasSource {
		return
	}
	if p.aligned && p.hasOffset {
		return
	}
	p.dx, p.dy, p.hasOffset = p.sx-x, p.sy-y, true
}

// Offset returns the source minus target offset of the stroke.
func (p *sourcePoint) Offset() (dx, dy float64, ok bool) {
	return p.dx, p.dy, p.hasOffset
}

// finish keeps the offset only for aligned tools.
func (p *sourcePoint) finish() {
	if !p.aligned {
		p.hasOffset = false
	}
}

func (p *sourcePoint) reset() {
	*p = sourcePoint{aligned: p.aligned}
}
