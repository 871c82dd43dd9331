package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// filled creates a w x h image filled with the premultiplied colour c.
func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// near reports whether two colours differ by at most tol per channel.
func near(a, b color.RGBA, tol uint8) bool {
	return diff8(a.R, b.R) <= tol && diff8(a.G, b.G) <= tol &&
		diff8(a.B, b.B) <= tol && diff8(a.A, b.A) <= tol
}

func diff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
