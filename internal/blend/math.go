package blend

import "math"

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// toByte converts a [0, 1] value to a byte, rounding half away from zero.
func toByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(v * 255))
}

// unpremultiply returns straight-alpha components in [0, 1].
func unpremultiply(r, g, b, a byte) (float64, float64, float64) {
	if a == 0 {
		return 0, 0, 0
	}
	fa := float64(a)
	return clamp01(float64(r) / fa), clamp01(float64(g) / fa), clamp01(float64(b) / fa)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
