package retouch

import (
	"image"
	"image/color"
)

// fill returns a w x h buffer of colour c.
func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// coords returns a buffer whose pixel (x, y) is (x, y, 0, 255).
func coords(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

// hardDot returns clone settings that stamp exactly one pixel.
func hardDot(aligned bool) CloneSettings {
	s := DefaultCloneSettings()
	s.Size, s.Hardness, s.Aligned = 1, 100, aligned
	return s
}

func nrgba(c [4]byte) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
