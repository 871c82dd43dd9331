package artboard

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"
)

// rectLayer returns a visible, fully opaque solid rectangle.
func rectLayer(id string, x, y, w, h float64, fill RGBA) *ShapeLayer {
	return &ShapeLayer{
		Envelope: Envelope{
			ID:        id,
			Visible:   true,
			Transform: Transform{X: x, Y: y, Width: w, Height: h, Opacity: 1},
		},
		Kind:  ShapeRectangle,
		Style: ShapeStyle{Fill: fill, FillType: FillSolid},
	}
}

// pngDataURL encodes a w x h image of colour c as a PNG data URL.
func pngDataURL(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// await blocks until the task finished or fails the test after a timeout.
func await(t *testing.T, task *DecodeTask) (*Pixmap, error) {
	t.Helper()
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("decode of %q did not finish", sourceLabel(task.Source()))
	}
	return task.Result()
}

// pixel returns the 8-bit premultiplied pixel at (x, y).
func pixel(p *Pixmap, x, y int) color.RGBA {
	return p.RGBA().RGBAAt(x, y)
}
