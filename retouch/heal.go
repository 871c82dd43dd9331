package retouch

import "image"

// HealingBrush clones texture from a source point while keeping the
// target's colour: the source patch is shifted by the difference of the
// two patch averages before it is blended in.
type HealingBrush struct {
	stroke
	sourcePoint
	settings HealSettings
	origin   *image.NRGBA
}

// NewHealingBrush creates a healing brush that edits copies of src.
func NewHealingBrush(src image.Image, s HealSettings) *HealingBrush {
	return &HealingBrush{
		stroke:      stroke{name: "heal", src: src},
		sourcePoint: sourcePoint{aligned: s.Aligned},
		settings:    s,
	}
}

// Settings returns the healing brush settings.
func (h *HealingBrush) Settings() HealSettings { return h.settings }

func (h *HealingBrush) Start(x, y, p float64) {
	h.begin(h.settings.Size, h.settings.Spacing)
	h.origin = NewBuffer(h.buf)
	h.StartClone(x, y)
	h.run(h.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), h.dab)
}

func (h *HealingBrush) Continue(x, y, p float64) {
	if !h.active() {
		return
	}
	h.run(h.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), h.dab)
}

func (h *HealingBrush) End() (*Commit, bool) {
	h.origin = nil
	h.finish()
	return h.commit()
}

// Cancel drops the stroke and forgets the source point.
func (h *HealingBrush) Cancel() {
	h.origin = nil
	h.cancel()
	h.reset()
}

func (h *HealingBrush) dab(p Sample) bool {
	dx, dy, ok := h.Offset()
	if !ok {
		return false
	}
	size := dabSize(h.settings.Size, 1)
	src := region(p.X+dx, p.Y+dy, size)
	dst := region(p.X, p.Y, size)
	if !inside(src, h.origin) || !inside(dst, h.buf) {
		return false
	}
	m := BrushMask(size, h.settings.Hardness)
	return transfer(h.buf, dst, readPatch(h.origin, src), m, h.settings.Diffusion/100)
}

// average returns the mean colour of the non-transparent pixels of patch.
func average(patch [][4]byte) ([3]float64, bool) {
	var sum [3]float64
	n := 0
	for _, px := range patch {
		if px[3] == 0 {
			continue
		}
		sum[0] += float64(px[0])
		sum[1] += float64(px[1])
		sum[2] += float64(px[2])
		n++
	}
	if n == 0 {
		return sum, false
	}
	for k := range sum {
		sum[k] /= float64(n)
	}
	return sum, true
}

// transfer blends the colour-corrected source patch into buf at r, which
// must lie inside buf:
//
//	out = t*(1-b) + (s - avg(s) + avg(t))*b,  b = mask*diffusion
//
// Alpha is blended by the mask alone.
func transfer(buf *image.NRGBA, r image.Rectangle, src [][4]byte, m *Mask, diffusion float64) bool {
	target := readPatch(buf, r)
	sAvg, ok := average(src)
	if !ok {
		return false
	}
	tAvg, ok := average(target)
	if !ok {
		return false
	}
	diffusion = clamp01(diffusion)

	w := r.Dx()
	for i, t := range target {
		mask := m.Alpha[i]
		if mask == 0 {
			continue
		}
		s := src[i]
		b := mask * diffusion
		var out [4]byte
		for k := 0; k < 3; k++ {
			corrected := float64(s[k]) - sAvg[k] + tAvg[k]
			out[k] = round8(float64(t[k])*(1-b) + corrected*b)
		}
		out[3] = mix(t[3], s[3], mask)
		set(buf, r.Min.X+i%w, r.Min.Y+i/w, out)
	}
	return true
}
