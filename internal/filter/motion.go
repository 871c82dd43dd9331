package filter

import (
	"image"
	"math"
)

const (
	// MaxMotionSamples bounds the taps of a motion blur.
	MaxMotionSamples = 20
	// MaxRadialSamples bounds the zoom steps of a radial blur.
	MaxRadialSamples = 15
)

// MotionBlur smears src along a line at angle degrees (0 = horizontal),
// spanning distance pixels centred on each pixel. Tap i from the centre is
// weighted 1/(1+|i|); at most MaxMotionSamples taps are used.
func MotionBlur(src *image.RGBA, distance, angle float64) *image.RGBA {
	n := int(math.Ceil(distance))
	if n < 2 {
		return cloneRGBA(src)
	}
	// An odd tap count keeps a tap on the pixel itself.
	n = min(n, MaxMotionSamples)
	if n%2 == 0 {
		n--
	}
	if n < 3 {
		return cloneRGBA(src)
	}

	rad := angle * math.Pi / 180
	ux, uy := math.Cos(rad), math.Sin(rad)
	step := distance / float64(n-1)
	centre := float64(n-1) / 2

	taps := make([]tap, n)
	var total float64
	for k := range taps {
		i := float64(k) - centre
		w := 1 / (1 + math.Abs(i))
		taps[k] = tap{
			dx: int(math.Round(i * step * ux)),
			dy: int(math.Round(i * step * uy)),
			w:  w,
		}
		total += w
	}
	for k := range taps {
		taps[k].w /= total
	}
	return convolveTaps(src, taps)
}

// RadialBlur zooms src toward its centre over up to MaxRadialSamples equally
// weighted steps. amount is the displacement in pixels at the corners.
func RadialBlur(src *image.RGBA, amount float64) *image.RGBA {
	n := int(math.Ceil(amount))
	r := src.Rect
	if n < 2 || r.Empty() {
		return cloneRGBA(src)
	}
	n = min(n, MaxRadialSamples)

	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	reach := math.Hypot(float64(r.Dx()), float64(r.Dy())) / 2
	w := 1 / float64(n)

	out := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			var acc [4]float64
			for k := 0; k < n; k++ {
				scale := 1 - float64(k)*amount/(float64(n)*reach)
				sx := clampInt(int(math.Floor(cx+px*scale)), r.Min.X, r.Max.X-1)
				sy := clampInt(int(math.Floor(cy+py*scale)), r.Min.Y, r.Max.Y-1)
				i := src.PixOffset(sx, sy)
				for c := 0; c < 4; c++ {
					acc[c] += float64(src.Pix[i+c]) * w
				}
			}
			di := out.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				out.Pix[di+c] = clampUint8(float32(acc[c]))
			}
		}
	}
	return out
}

type tap struct {
	dx, dy int
	w      float64
}

// convolveTaps sums weighted, edge-clamped samples of src.
func convolveTaps(src *image.RGBA, taps []tap) *image.RGBA {
	r := src.Rect
	out := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			var acc [4]float64
			for _, t := range taps {
				sx := clampInt(x+t.dx, r.Min.X, r.Max.X-1)
				sy := clampInt(y+t.dy, r.Min.Y, r.Max.Y-1)
				i := src.PixOffset(sx, sy)
				for c := 0; c < 4; c++ {
					acc[c] += float64(src.Pix[i+c]) * t.w
				}
			}
			di := out.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				out.Pix[di+c] = clampUint8(float32(acc[c]))
			}
		}
	}
	return out
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Rect)
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(src.Rect.Min.X, y):], src.Pix[src.PixOffset(src.Rect.Min.X, y):src.PixOffset(src.Rect.Max.X, y)])
	}
	return out
}
