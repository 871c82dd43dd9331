package artboard

// Brush represents a source of color for filling and stroking operations.
//
// Brush is a sealed interface; only types in this package implement it:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush, RadialGradientBrush: gradients
//   - NoiseBrush: a base colour modulated by deterministic per-pixel noise
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the straight-alpha color at the given coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// NoiseBrush darkens or lightens Base by up to Amount (0..1) per pixel.
// The pattern depends only on Seed and the integer pixel position, so
// repeated renders are identical.
type NoiseBrush struct {
	Base   RGBA
	Amount float64
	Seed   uint32
}

func (NoiseBrush) brushMarker() {}

// ColorAt returns the noisy color at the pixel containing (x, y).
func (b NoiseBrush) ColorAt(x, y float64) RGBA {
	n := hashNoise(int32(x), int32(y), b.Seed)*2 - 1 // [-1, 1]
	d := n * clamp01(b.Amount)
	return RGBA{
		R: clamp01(b.Base.R + d),
		G: clamp01(b.Base.G + d),
		B: clamp01(b.Base.B + d),
		A: b.Base.A,
	}
}

// hashNoise maps a pixel and seed to [0, 1) with an integer avalanche hash.
func hashNoise(x, y int32, seed uint32) float64 {
	h := uint32(x)*0x8da6b343 ^ uint32(y)*0xd8163841 ^ seed*0xcb1ab31f
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return float64(h) / (1 << 32)
}
