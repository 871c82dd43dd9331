package retouch

import (
	"image"
	"math"

	"github.com/gogpu/artboard/internal/blend"
)

// Brush paints dabs of a solid colour source-over.
type Brush struct {
	stroke
	settings BrushSettings
}

// NewBrush creates a brush that edits copies of src.
func NewBrush(src image.Image, s BrushSettings) *Brush {
	return &Brush{stroke: stroke{name: "brush", src: src}, settings: s}
}

// Settings returns the brush settings.
func (b *Brush) Settings() BrushSettings { return b.settings }

// SetSettings changes the settings; the active stroke keeps its spacing.
func (b *Brush) SetSettings(s BrushSettings) { b.settings = s }

func (b *Brush) Start(x, y, p float64) {
	b.begin(b.settings.Size, b.settings.Spacing)
	b.run(b.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), b.dab)
}

func (b *Brush) Continue(x, y, p float64) {
	if !b.active() {
		return
	}
	b.run(b.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), b.dab)
}

func (b *Brush) End() (*Commit, bool) { return b.commit() }

func (b *Brush) Cancel() { b.cancel() }

func (b *Brush) dab(p Sample) bool {
	s := b.settings
	size := dabSize(s.Size, s.Dynamics.size(p.Pressure))
	alpha := s.Opacity / 100 * s.Flow / 100 * s.Dynamics.opacity(p.Pressure)
	c := s.Color.NRGBA()
	return paintDab(b.buf, p, BrushMask(size, s.Hardness), [4]byte{c.R, c.G, c.B, c.A}, alpha, blend.ModeSourceOver)
}

// Eraser removes alpha with destination-out dabs.
type Eraser struct {
	stroke
	settings EraserSettings
}

// NewEraser creates an eraser that edits copies of src.
func NewEraser(src image.Image, s EraserSettings) *Eraser {
	return &Eraser{stroke: stroke{name: "eraser", src: src}, settings: s}
}

// Settings returns the eraser settings.
func (e *Eraser) Settings() EraserSettings { return e.settings }

func (e *Eraser) Start(x, y, p float64) {
	e.begin(e.settings.Size, e.settings.Spacing)
	e.run(e.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), e.dab)
}

func (e *Eraser) Continue(x, y, p float64) {
	if !e.active() {
		return
	}
	e.run(e.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), e.dab)
}

func (e *Eraser) End() (*Commit, bool) { return e.commit() }

func (e *Eraser) Cancel() { e.cancel() }

func (e *Eraser) dab(p Sample) bool {
	s := e.settings
	size := dabSize(s.Size, s.Dynamics.size(p.Pressure))
	alpha := s.Opacity / 100 * s.Flow / 100 * s.Dynamics.opacity(p.Pressure)

	var m *Mask
	switch s.Mode {
	case EraserPencil:
		m = BrushMask(size, 100)
	case EraserBlock:
		m = BlockMask(size)
	default:
		m = BrushMask(size, s.Hardness)
	}
	return paintDab(e.buf, p, m, [4]byte{0, 0, 0, 255}, alpha, blend.ModeDestinationOut)
}

func dabSize(size, scale float64) int {
	return max(1, int(math.Round(size*scale)))
}

// paintDab composites c through the mask centred on p. Pixels outside the
// buffer are clipped; a dab entirely outside is skipped.
func paintDab(buf *image.NRGBA, p Sample, m *Mask, c [4]byte, alpha float64, mode blend.Mode) bool {
	r := region(p.X, p.Y, m.Size)
	clip := r.Intersect(buf.Rect)
	if clip.Empty() || alpha <= 0 {
		return false
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			a := m.At(x-r.Min.X, y-r.Min.Y) * alpha
			if a == 0 {
				continue
			}
			set(buf, x, y, blend.Straight(mode, c, at(buf, x, y), a))
		}
	}
	return true
}
