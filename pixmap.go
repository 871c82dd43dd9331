package artboard

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is a premultiplied RGBA8 pixel buffer. It is the target surface
// of the Compositor, the format of decoded images and the storage of
// cached layer buffers.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Non-positive dimensions produce an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// PixmapFromImage converts any image to a pixmap with its origin at (0, 0).
func PixmapFromImage(src image.Image) *Pixmap {
	b := src.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(p.img, p.img.Rect, src, b.Min, draw.Src)
	return p
}

// wrapRGBA adopts img without copying. img must have its origin at (0, 0).
func wrapRGBA(img *image.RGBA) *Pixmap {
	return &Pixmap{img: img}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw premultiplied RGBA bytes.
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// RGBA returns an image view that shares the pixmap's memory.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.img
}

// SetPixel stores a straight-alpha colour at (x, y).
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return
	}
	p.img.SetRGBA(x, y, c.Premul())
}

// GetPixel returns the straight-alpha colour at (x, y).
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pc := c.Premul()
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = pc.R, pc.G, pc.B, pc.A
	}
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return &Pixmap{img: img}
}

// Equal reports whether both pixmaps have the same size and bytes.
func (p *Pixmap) Equal(o *Pixmap) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.img.Rect == o.img.Rect && bytes.Equal(p.img.Pix, o.img.Pix)
}

// NRGBA returns a straight-alpha copy, the format of retouch working
// buffers.
func (p *Pixmap) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(p.img.Rect)
	draw.Draw(out, out.Rect, p.img, image.Point{}, draw.Src)
	return out
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
