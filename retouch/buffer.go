package retouch

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// NewBuffer returns a straight-alpha copy of src with its origin at (0, 0).
func NewBuffer(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

func at(img *image.NRGBA, x, y int) [4]byte {
	i := img.PixOffset(x, y)
	return [4]byte{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func set(img *image.NRGBA, x, y int, c [4]byte) {
	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+4], c[:])
}

// region is the square of side size a dab centred on (cx, cy) covers.
func region(cx, cy float64, size int) image.Rectangle {
	x0 := int(math.Floor(cx)) - size/2
	y0 := int(math.Floor(cy)) - size/2
	return image.Rect(x0, y0, x0+size, y0+size)
}

// inside reports whether r lies entirely within img.
func inside(r image.Rectangle, img *image.NRGBA) bool {
	return r.In(img.Rect)
}

// round8 rounds half away from zero and clamps to a byte.
func round8(v float64) byte {
	v = math.Round(v)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}

func mix(a, b byte, t float64) byte {
	return round8(float64(a)*(1-t) + float64(b)*t)
}
