package retouch

import (
	"image"

	"github.com/gogpu/artboard/internal/blend"
)

// CloneStamp copies masked patches from a source point onto the stroke.
// Patches are read from the buffer as it was when the stroke started, so
// a stroke never samples its own dabs.
type CloneStamp struct {
	stroke
	sourcePoint
	settings CloneSettings
	origin   *image.NRGBA
}

// NewCloneStamp creates a clone stamp that edits copies of src.
func NewCloneStamp(src image.Image, s CloneSettings) *CloneStamp {
	return &CloneStamp{
		stroke:      stroke{name: "clone", src: src},
		sourcePoint: sourcePoint{aligned: s.Aligned},
		settings:    s,
	}
}

// Settings returns the clone stamp settings.
func (c *CloneStamp) Settings() CloneSettings { return c.settings }

// Start begins a stroke. Without a source point the stroke runs but every
// dab is skipped.
func (c *CloneStamp) Start(x, y, p float64) {
	c.begin(c.settings.Size, c.settings.Spacing)
	c.origin = NewBuffer(c.buf)
	c.StartClone(x, y)
	c.run(c.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), c.dab)
}

func (c *CloneStamp) Continue(x, y, p float64) {
	if !c.active() {
		return
	}
	c.run(c.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), c.dab)
}

func (c *CloneStamp) End() (*Commit, bool) {
	c.origin = nil
	c.finish()
	return c.commit()
}

// Cancel drops the stroke and forgets the source point.
func (c *CloneStamp) Cancel() {
	c.origin = nil
	c.cancel()
	c.reset()
}

func (c *CloneStamp) dab(p Sample) bool {
	dx, dy, ok := c.Offset()
	if !ok {
		return false
	}
	s := c.settings
	size := dabSize(s.Size, 1)
	src := region(p.X+dx, p.Y+dy, size)
	if !inside(src, c.origin) {
		return false
	}
	dst := region(p.X, p.Y, size)

	patch := readPatch(c.origin, src)
	m := BrushMask(size, s.Hardness)
	m.Apply(patch)

	mode, _ := blend.ParseMode(string(s.BlendMode))
	alpha := s.Opacity / 100 * s.Flow / 100
	return stampPatch(c.buf, dst, patch, alpha, mode)
}

// readPatch copies r out of img row by row.
func readPatch(img *image.NRGBA, r image.Rectangle) [][4]byte {
	patch := make([][4]byte, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			patch = append(patch, at(img, x, y))
		}
	}
	return patch
}

// stampPatch composites a staged patch onto dst at r, clipped to buf.
func stampPatch(buf *image.NRGBA, r image.Rectangle, patch [][4]byte, alpha float64, mode blend.Mode) bool {
	clip := r.Intersect(buf.Rect)
	if clip.Empty() {
		return false
	}
	w := r.Dx()
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			px := patch[(y-r.Min.Y)*w+(x-r.Min.X)]
			if px[3] == 0 {
				continue
			}
			set(buf, x, y, blend.Straight(mode, px, at(buf, x, y), alpha))
		}
	}
	return true
}
