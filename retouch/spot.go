package retouch

import (
	"image"
	"math"
)

// SpotHealer repairs small blemishes without a source point. Each dab
// reconstructs the patch under the brush with the configured SpotMode.
type SpotHealer struct {
	stroke
	settings SpotSettings
}

// NewSpotHealer creates a spot healer that edits copies of src.
func NewSpotHealer(src image.Image, s SpotSettings) *SpotHealer {
	return &SpotHealer{stroke: stroke{name: "spot-heal", src: src}, settings: s}
}

// Settings returns the spot healing settings.
func (h *SpotHealer) Settings() SpotSettings { return h.settings }

func (h *SpotHealer) Start(x, y, p float64) {
	h.begin(h.settings.Size, h.settings.Spacing)
	h.run(h.sampler.Begin(Sample{X: x, Y: y, Pressure: pressure(p)}), h.dab)
}

func (h *SpotHealer) Continue(x, y, p float64) {
	if !h.active() {
		return
	}
	h.run(h.sampler.Next(Sample{X: x, Y: y, Pressure: pressure(p)}), h.dab)
}

func (h *SpotHealer) End() (*Commit, bool) { return h.commit() }

func (h *SpotHealer) Cancel() { h.cancel() }

func (h *SpotHealer) dab(p Sample) bool {
	size := dabSize(h.settings.Size, 1)
	m := BrushMask(size, h.settings.Hardness)
	switch h.settings.Mode {
	case SpotProximity:
		return proximityMatch(h.buf, p.X, p.Y, m)
	case SpotTexture:
		return createTexture(h.buf, p.X, p.Y, m)
	default:
		return contentAware(h.buf, p.X, p.Y, m)
	}
}

// proximityMatch heals the spot from the nearest in-bounds patch on a
// grid of half-size steps outside a one-size exclusion radius, searching
// up to two sizes away.
func proximityMatch(buf *image.NRGBA, cx, cy float64, m *Mask) bool {
	size := m.Size
	dst := region(cx, cy, size)
	if !inside(dst, buf) {
		return false
	}
	step := max(1, size/2)
	reach := 2 * size

	var best image.Rectangle
	bestScore := 0.0
	for oy := -reach; oy <= reach; oy += step {
		for ox := -reach; ox <= reach; ox += step {
			d := math.Hypot(float64(ox), float64(oy))
			if d <= float64(size) {
				continue
			}
			cand := dst.Add(image.Pt(ox, oy))
			if !inside(cand, buf) {
				continue
			}
			if score := 1 / d; score > bestScore {
				best, bestScore = cand, score
			}
		}
	}
	if bestScore == 0 {
		return false
	}
	return transfer(buf, dst, readPatch(buf, best), m, 1)
}

// contentAware fills the masked disc by inverse-squared-distance
// interpolation of a ring of border pixels just inside the patch edge.
func contentAware(buf *image.NRGBA, cx, cy float64, m *Mask) bool {
	size := m.Size
	dst := region(cx, cy, size)
	if !inside(dst, buf) {
		return false
	}
	centre := float64(size-1) / 2
	ox, oy := float64(dst.Min.X)+centre, float64(dst.Min.Y)+centre
	radius := math.Max(float64(size)/2-1, 0.5)

	type sample struct {
		x, y float64
		c    [4]byte
	}
	n := max(8, int(math.Ceil(2*math.Pi*radius)))
	border := make([]sample, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		bx := int(math.Round(ox + radius*math.Cos(a)))
		by := int(math.Round(oy + radius*math.Sin(a)))
		border = append(border, sample{float64(bx), float64(by), at(buf, bx, by)})
	}
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			mask := m.At(x-dst.Min.X, y-dst.Min.Y)
			if mask == 0 {
				continue
			}
			var sum [4]float64
			total := 0.0
			for _, b := range border {
				d2 := math.Max((b.x-float64(x))*(b.x-float64(x))+(b.y-float64(y))*(b.y-float64(y)), 0.25)
				w := 1 / d2
				for k := range sum {
					sum[k] += float64(b.c[k]) * w
				}
				total += w
			}
			t := at(buf, x, y)
			var out [4]byte
			for k := range out {
				out[k] = round8(float64(t[k])*(1-mask) + sum[k]/total*mask)
			}
			set(buf, x, y, out)
		}
	}
	return true
}

// createTexture replaces the spot with the pixel-wise average of the four
// diagonal neighbour patches one size away. Neighbours outside the buffer
// are skipped; with none left the patch is unchanged.
func createTexture(buf *image.NRGBA, cx, cy float64, m *Mask) bool {
	size := m.Size
	dst := region(cx, cy, size)
	if !inside(dst, buf) {
		return false
	}
	var patches [][][4]byte
	for _, d := range [4]image.Point{{-size, -size}, {size, -size}, {-size, size}, {size, size}} {
		r := dst.Add(d)
		if inside(r, buf) {
			patches = append(patches, readPatch(buf, r))
		}
	}
	if len(patches) == 0 {
		return false
	}

	n := float64(len(patches))
	for i := 0; i < size*size; i++ {
		mask := m.Alpha[i]
		if mask == 0 {
			continue
		}
		var sum [4]float64
		for _, p := range patches {
			for k := range sum {
				sum[k] += float64(p[i][k])
			}
		}
		x, y := dst.Min.X+i%size, dst.Min.Y+i/size
		t := at(buf, x, y)
		var out [4]byte
		for k := range out {
			out[k] = round8(float64(t[k])*(1-mask) + sum[k]/n*mask)
		}
		set(buf, x, y, out)
	}
	return true
}
