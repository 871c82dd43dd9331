package retouch

import (
	"math"

	"github.com/gogpu/artboard/cache"
)

// Mask is a square per-pixel alpha multiplier centred on a dab.
type Mask struct {
	Size  int
	Alpha []float64
}

type maskKey struct {
	size     int
	hardness float64
	square   bool
}

var masks = cache.NewLRU[maskKey, *Mask](64)

// BrushMask returns the mask of a round brush of the given size and
// hardness (0..100). Pixels within hardness/100 of the radius are fully
// opaque; alpha then falls linearly to zero at the edge. Masks are
// memoised and must not be modified.
func BrushMask(size int, hardness float64) *Mask {
	size = max(size, 1)
	hardness = math.Max(0, math.Min(100, hardness))
	return masks.GetOrCreate(maskKey{size: size, hardness: hardness}, func() *Mask {
		m := &Mask{Size: size, Alpha: make([]float64, size*size)}
		c := float64(size-1) / 2
		r := float64(size) / 2
		h := hardness / 100
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				d := math.Hypot(float64(x)-c, float64(y)-c) / r
				m.Alpha[y*size+x] = falloff(d, h)
			}
		}
		return m
	})
}

// BlockMask returns a fully opaque square mask.
func BlockMask(size int) *Mask {
	size = max(size, 1)
	return masks.GetOrCreate(maskKey{size: size, square: true}, func() *Mask {
		m := &Mask{Size: size, Alpha: make([]float64, size*size)}
		for i := range m.Alpha {
			m.Alpha[i] = 1
		}
		return m
	})
}

// falloff is the brush alpha at normalised distance d for hardness h in
// [0, 1].
func falloff(d, h float64) float64 {
	switch {
	case d > 1:
		return 0
	case d <= h:
		return 1
	}
	a := 1 - (d-h)/(1-h)
	return math.Max(0, math.Min(1, a))
}

// At returns the mask alpha at (x, y), zero outside the mask.
func (m *Mask) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return 0
	}
	return m.Alpha[y*m.Size+x]
}

// Apply multiplies the alpha channel of a staged patch by the mask. The
// patch must be Size x Size with its origin at (0, 0).
func (m *Mask) Apply(patch [][4]byte) {
	for i := range patch {
		if i >= len(m.Alpha) {
			return
		}
		patch[i][3] = round8(float64(patch[i][3]) * m.Alpha[i])
	}
}
