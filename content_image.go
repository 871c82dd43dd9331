package artboard

import (
	"fmt"
	"image"

	"github.com/gogpu/artboard/internal/filter"
	"golang.org/x/image/draw"
)

// drawImage draws the image layer content into dst at (pad, pad), scaled
// to w x h. It reports true when a placeholder was drawn instead because
// the asset is missing, still decoding or failed to decode.
func (c *Compositor) drawImage(dst *image.RGBA, pad int, l *ImageLayer, w, h int) bool {
	asset, ok := c.assets.Asset(l.AssetID)
	if !ok {
		Logger().Debug("artboard: drawing placeholder", "layer", l.ID, "err", ErrAssetNotFound)
		c.placeholder.draw(dst, pad, w, h)
		return true
	}
	bmp, state := c.images.Get(asset.Source)
	if state != ImageReady {
		Logger().Debug("artboard: drawing placeholder", "layer", l.ID, "state", state)
		c.placeholder.draw(dst, pad, w, h)
		return true
	}

	src := bmp.RGBA()
	sr := src.Rect
	if l.Crop != nil {
		sr = l.Crop.Image().Intersect(src.Rect)
	}
	if sr.Empty() {
		return false
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Transform(img, placeMatrix(sr, w, h, l.FlipX, l.FlipY).Aff3(), src, sr, draw.Src, nil)
	img = l.Filters.apply(img)

	draw.Draw(dst, img.Rect.Add(image.Pt(pad, pad)), img, image.Point{}, draw.Over)
	return false
}

// placeMatrix maps the source rectangle sr onto the w x h box, mirrored
// as requested.
func placeMatrix(sr image.Rectangle, w, h int, flipX, flipY bool) Matrix {
	sx := float64(w) / float64(sr.Dx())
	sy := float64(h) / float64(sr.Dy())
	m := Scale(sx, sy).Multiply(Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	if flipX {
		m = Translate(float64(w), 0).Multiply(Scale(-1, 1)).Multiply(m)
	}
	if flipY {
		m = Translate(0, float64(h)).Multiply(Scale(1, -1)).Multiply(m)
	}
	return m
}

// colorMatrix folds the tonal filters into one colour matrix. Exposure,
// highlights and shadows modulate brightness; clarity, highlights and
// shadows modulate contrast; vibrance modulates saturation.
func (f ImageFilters) colorMatrix() filter.ColorMatrix {
	brightness := f.Brightness*(1+f.Exposure/100) + (f.Highlights+f.Shadows)/4
	contrast := f.Contrast + f.Clarity/2 + (f.Highlights-f.Shadows)/4
	saturation := f.Saturation + f.Vibrance/2

	m := filter.Brightness(float32(max(brightness, 0) / 100)).
		Multiply(filter.Contrast(float32(max(contrast, 0) / 100))).
		Multiply(filter.Saturation(float32(max(saturation, 0) / 100)))
	if f.HueRotate != 0 {
		m = m.Multiply(filter.HueRotate(f.HueRotate))
	}
	if f.Grayscale > 0 {
		m = m.Multiply(filter.Grayscale(float32(clamp01(f.Grayscale / 100))))
	}
	if f.Sepia > 0 {
		m = m.Multiply(filter.Sepia(float32(clamp01(f.Sepia / 100))))
	}
	if f.Invert > 0 {
		m = m.Multiply(filter.Invert(float32(clamp01(f.Invert / 100))))
	}
	return m
}

// apply runs the colour matrix and the blur over img. It may return img
// itself.
func (f ImageFilters) apply(img *image.RGBA) *image.RGBA {
	if m := f.colorMatrix(); !m.IsIdentity() {
		m.Apply(img, img, img.Rect)
	}
	if f.Blur <= 0 {
		return img
	}
	switch f.BlurType {
	case BlurMotion:
		return filter.MotionBlur(img, f.Blur, f.BlurAngle)
	case BlurRadial:
		return filter.RadialBlur(img, f.Blur)
	default:
		filter.NewBlurFilter(f.Blur).Apply(img, img, img.Rect)
		return img
	}
}

// PixelMatrix returns the matrix mapping artboard coordinates to pixels of
// the bitmap shown by the image layer id, whose decoded size is bmpW x
// bmpH. Retouch tools use it to convert pointer positions.
func (t *Tree) PixelMatrix(id string, bmpW, bmpH int) (Matrix, error) {
	l, ok := t.Layer(id)
	if !ok {
		return Matrix{}, fmt.Errorf("%w: %s", ErrUnknownLayer, id)
	}
	img, ok := l.(*ImageLayer)
	if !ok {
		return Matrix{}, fmt.Errorf("%w: %s is not an image layer", ErrNoBuffer, id)
	}
	sr := image.Rect(0, 0, bmpW, bmpH)
	if img.Crop != nil {
		sr = img.Crop.Image().Intersect(sr)
	}
	w, h := boxSize(img.Transform)
	if sr.Empty() || w <= 0 || h <= 0 {
		return Matrix{}, fmt.Errorf("%w: %s has an empty box", ErrNoBuffer, id)
	}

	m := layerMatrix(img.Transform).Multiply(placeMatrix(sr, w, h, img.FlipX, img.FlipY))
	seen := map[string]bool{id: true}
	for parent := img.ParentID; parent != ""; {
		if seen[parent] {
			return Matrix{}, fmt.Errorf("%w: %s", ErrLayerCycle, parent)
		}
		seen[parent] = true
		g, ok := t.Layer(parent)
		if !ok {
			return Matrix{}, fmt.Errorf("%w: %s", ErrUnknownLayer, parent)
		}
		m = layerMatrix(g.Base().Transform).Multiply(m)
		parent = g.Base().ParentID
	}
	return m.Invert(), nil
}
