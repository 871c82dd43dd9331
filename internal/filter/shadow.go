package filter

import (
	"image"
	"image/color"
	"math"
)

// Shadow describes a canvas-style shadow: the source alpha, shifted by the
// offset, blurred and tinted with Color.
type Shadow struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// Sigma is the Gaussian standard deviation of the blur.
	Sigma float64

	// Color is the straight-alpha shadow colour. Its alpha scales the mask.
	Color color.NRGBA
}

// Mask extracts the alpha channel of src, shifts it by the offset and blurs
// it. The mask has the same Rect as src; coverage shifted outside is lost.
func (s Shadow) Mask(src *image.RGBA) *image.Alpha {
	m := image.NewAlpha(src.Rect)
	dx, dy := roundOffset(s.OffsetX), roundOffset(s.OffsetY)
	r := src.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - dy
		if sy < r.Min.Y || sy >= r.Max.Y {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			sx := x - dx
			if sx < r.Min.X || sx >= r.Max.X {
				continue
			}
			m.Pix[m.PixOffset(x, y)] = src.Pix[src.PixOffset(sx, sy)+3]
		}
	}
	BlurAlpha(m, s.Sigma)
	return m
}

// Render returns the tinted shadow as a premultiplied image over src.Rect.
func (s Shadow) Render(src *image.RGBA) *image.RGBA {
	return Colorize(s.Mask(src), s.Color)
}

// Apply composites the shadow under src and writes the result to dst.
// dst may be src.
func (s Shadow) Apply(src, dst *image.RGBA) {
	sh := s.Render(src)
	r := src.Rect.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := src.PixOffset(x, y)
			hi := sh.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			inv := 255 - uint32(src.Pix[si+3])
			for c := 0; c < 4; c++ {
				v := uint32(src.Pix[si+c]) + (uint32(sh.Pix[hi+c])*inv+127)/255
				if v > 255 {
					v = 255
				}
				dst.Pix[di+c] = uint8(v)
			}
		}
	}
}

// ExpandBounds returns the region the shadow can cover for a given input.
func (s Shadow) ExpandBounds(input image.Rectangle) image.Rectangle {
	e := KernelExtent(s.Sigma)
	dx, dy := roundOffset(s.OffsetX), roundOffset(s.OffsetY)
	r := input.Inset(-e)
	return r.Union(r.Add(image.Pt(dx, dy)))
}

// Colorize turns a coverage mask into a premultiplied image of colour c.
func Colorize(m *image.Alpha, c color.NRGBA) *image.RGBA {
	out := image.NewRGBA(m.Rect)
	ca := uint32(c.A)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			cov := uint32(m.Pix[m.PixOffset(x, y)])
			if cov == 0 {
				continue
			}
			a := (cov*ca + 127) / 255
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8((uint32(c.R)*a + 127) / 255)
			out.Pix[i+1] = uint8((uint32(c.G)*a + 127) / 255)
			out.Pix[i+2] = uint8((uint32(c.B)*a + 127) / 255)
			out.Pix[i+3] = uint8(a)
		}
	}
	return out
}

// OffsetAlpha returns a copy of m shifted by (dx, dy) within the same Rect.
func OffsetAlpha(m *image.Alpha, dx, dy int) *image.Alpha {
	out := image.NewAlpha(m.Rect)
	r := m.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - dy
		if sy < r.Min.Y || sy >= r.Max.Y {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			sx := x - dx
			if sx < r.Min.X || sx >= r.Max.X {
				continue
			}
			out.Pix[out.PixOffset(x, y)] = m.Pix[m.PixOffset(sx, sy)]
		}
	}
	return out
}

// roundOffset rounds half away from zero.
func roundOffset(v float64) int {
	return int(math.Round(v))
}
