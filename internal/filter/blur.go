package filter

import (
	"image"
	"sync"
)

// BlurFilter applies separable Gaussian blur to an image.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry).
type BlurFilter struct {
	// SigmaX is the horizontal standard deviation in pixels.
	SigmaX float64

	// SigmaY is the vertical standard deviation in pixels.
	SigmaY float64
}

// NewBlurFilter creates a blur filter with equal sigma in both directions.
func NewBlurFilter(sigma float64) *BlurFilter {
	return &BlurFilter{SigmaX: sigma, SigmaY: sigma}
}

// Apply blurs the bounds region of src into dst. Samples outside bounds are
// clamped to the region edge. src and dst may be the same image.
func (f *BlurFilter) Apply(src, dst *image.RGBA, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}
	r := bounds.Intersect(src.Rect).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	width, height := r.Dx(), r.Dy()
	temp := getTempBuffer(width * height * 4)
	defer putTempBuffer(temp)

	// Pass 1: horizontal (src -> temp).
	kx := CachedGaussianKernel(f.SigmaX)
	half := len(kx) / 2
	for y := 0; y < height; y++ {
		row := src.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < width; x++ {
			var cr, cg, cb, ca float32
			for k, w := range kx {
				sx := clampInt(x+k-half, 0, width-1)
				i := row + sx*4
				cr += float32(src.Pix[i+0]) * w
				cg += float32(src.Pix[i+1]) * w
				cb += float32(src.Pix[i+2]) * w
				ca += float32(src.Pix[i+3]) * w
			}
			t := (y*width + x) * 4
			temp[t+0], temp[t+1], temp[t+2], temp[t+3] = cr, cg, cb, ca
		}
	}

	// Pass 2: vertical (temp -> dst).
	ky := CachedGaussianKernel(f.SigmaY)
	half = len(ky) / 2
	for y := 0; y < height; y++ {
		row := dst.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < width; x++ {
			var cr, cg, cb, ca float32
			for k, w := range ky {
				sy := clampInt(y+k-half, 0, height-1)
				t := (sy*width + x) * 4
				cr += temp[t+0] * w
				cg += temp[t+1] * w
				cb += temp[t+2] * w
				ca += temp[t+3] * w
			}
			i := row + x*4
			dst.Pix[i+0] = clampUint8(cr)
			dst.Pix[i+1] = clampUint8(cg)
			dst.Pix[i+2] = clampUint8(cb)
			dst.Pix[i+3] = clampUint8(ca)
		}
	}
}

// ExpandBounds returns the region the blur can write to for a given input.
func (f *BlurFilter) ExpandBounds(input image.Rectangle) image.Rectangle {
	ex, ey := KernelExtent(f.SigmaX), KernelExtent(f.SigmaY)
	return image.Rect(input.Min.X-ex, input.Min.Y-ey, input.Max.X+ex, input.Max.Y+ey)
}

// BlurAlpha blurs an alpha plane in place.
func BlurAlpha(m *image.Alpha, sigma float64) {
	if m == nil || sigma <= 0 || m.Rect.Empty() {
		return
	}
	width, height := m.Rect.Dx(), m.Rect.Dy()
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2

	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	for y := 0; y < height; y++ {
		row := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
		for x := 0; x < width; x++ {
			var a float32
			for k, w := range kernel {
				a += float32(m.Pix[row+clampInt(x+k-half, 0, width-1)]) * w
			}
			temp[y*width+x] = a
		}
	}
	for y := 0; y < height; y++ {
		row := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
		for x := 0; x < width; x++ {
			var a float32
			for k, w := range kernel {
				a += temp[clampInt(y+k-half, 0, height-1)*width+x] * w
			}
			m.Pix[row+x] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer returns a zeroed scratch buffer of at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

func putTempBuffer(buf []float32) {
	// 64MB max
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
