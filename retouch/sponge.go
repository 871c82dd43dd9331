package retouch

import "image"

// Sponge raises or lowers saturation in HSL space.
type Sponge struct {
	stroke
	settings SpongeSettings
}

// NewSponge creates a sponge that edits copies of src.
func NewSponge(src image.Image, s SpongeSettings) *Sponge {
	return &Sponge{stroke: stroke{name: "sponge", src: src}, settings: s}
}

// Settings returns the sponge settings.
func (s *Sponge) Settings() SpongeSettings { return s.settings }

func (s *Sponge) Start(x, y, p float64) {
	s.begin(s.settings.Size, s.settings.Spacing)
	s.run(s.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), s.dab)
}

func (s *Sponge) Continue(x, y, p float64) {
	if !s.active() {
		return
	}
	s.run(s.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), s.dab)
}

func (s *Sponge) End() (*Commit, bool) { return s.commit() }

func (s *Sponge) Cancel() { s.cancel() }

func (s *Sponge) dab(p Sample) bool {
	cfg := s.settings
	size := dabSize(cfg.Size, 1)
	m := BrushMask(size, cfg.Hardness)
	r := region(p.X, p.Y, size)
	clip := r.Intersect(s.buf.Rect)
	if clip.Empty() {
		return false
	}
	strength := clamp01(cfg.Flow/100) * p.Pressure
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			k := strength * m.At(x-r.Min.X, y-r.Min.Y)
			if k == 0 {
				continue
			}
			set(s.buf, x, y, sponge(at(s.buf, x, y), k, cfg.Mode, cfg.Vibrance))
		}
	}
	return true
}

// sponge moves the saturation of px by k in [0, 1]. With vibrance the step
// is weighted by the distance left to travel; otherwise it is linear.
// Alpha is kept.
func sponge(px [4]byte, k float64, mode SpongeMode, vibrance bool) [4]byte {
	h, s, l := rgbToHSL(px[0], px[1], px[2])
	if mode == Saturate {
		if vibrance {
			s += (1 - s) * k
		} else {
			s += k
		}
	} else {
		if vibrance {
			s -= s * k
		} else {
			s -= k
		}
	}
	r, g, b := hslToRGB(h, clamp01(s), l)
	return [4]byte{r, g, b, px[3]}
}
