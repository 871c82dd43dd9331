package artboard

import "image"

// Placeholder is drawn in place of an image that is still decoding, failed
// to decode or references a missing asset.
type Placeholder struct {
	Fill  RGBA
	Cross RGBA
	// CrossWidth is the line width of the diagonals.
	CrossWidth float64
}

// DefaultPlaceholder returns a light grey box with a darker cross.
func DefaultPlaceholder() Placeholder {
	return Placeholder{
		Fill:       RGB(0.9, 0.9, 0.9),
		Cross:      RGB(0.65, 0.65, 0.65),
		CrossWidth: 2,
	}
}

// draw paints the placeholder over the w x h box at (pad, pad).
func (ph Placeholder) draw(dst *image.RGBA, pad, w, h int) {
	bw, bh := dst.Rect.Dx(), dst.Rect.Dy()
	x, y, fw, fh := float64(pad), float64(pad), float64(w), float64(h)

	box := NewPath()
	box.Rectangle(x, y, fw, fh)
	paintMask(dst, FillMask(box, bw, bh), SolidBrush{Color: ph.Fill}, 1)

	cross := NewPath()
	cross.MoveTo(x, y)
	cross.LineTo(x+fw, y+fh)
	cross.MoveTo(x+fw, y)
	cross.LineTo(x, y+fh)
	width := ph.CrossWidth
	if width <= 0 {
		width = 1
	}
	paintMask(dst, StrokeMask(cross, bw, bh, Stroke{Width: width}), SolidBrush{Color: ph.Cross}, 1)
}
