package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestBlurUniformUnchanged(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	img := filled(20, 20, c)
	NewBlurFilter(3).Apply(img, img, img.Rect)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := img.RGBAAt(x, y); !near(got, c, 1) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})

	dst := image.NewRGBA(img.Rect)
	NewBlurFilter(2).Apply(img, dst, img.Rect)

	centre := dst.RGBAAt(10, 10).A
	side := dst.RGBAAt(12, 10).A
	far := dst.RGBAAt(20, 10).A
	if centre == 0 || centre == 255 {
		t.Errorf("centre alpha = %d, want partially spread", centre)
	}
	if side == 0 || side >= centre {
		t.Errorf("side alpha = %d, want in (0, %d)", side, centre)
	}
	if far != 0 {
		t.Errorf("far alpha = %d, want 0", far)
	}

	// Symmetric spread.
	if l, r := dst.RGBAAt(8, 10).A, dst.RGBAAt(12, 10).A; l != r {
		t.Errorf("left %d != right %d", l, r)
	}
}

func TestBlurZeroSigmaIsCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{10, 20, 30, 40})
	dst := image.NewRGBA(src.Rect)
	NewBlurFilter(0).Apply(src, dst, src.Rect)

	if got := dst.RGBAAt(1, 2); got != (color.RGBA{10, 20, 30, 40}) {
		t.Errorf("pixel = %v, want {10 20 30 40}", got)
	}
}

func TestBlurExpandBounds(t *testing.T) {
	f := &BlurFilter{SigmaX: 3, SigmaY: 10}
	got := f.ExpandBounds(image.Rect(50, 50, 150, 150))
	want := image.Rect(41, 20, 159, 180)
	if got != want {
		t.Errorf("ExpandBounds = %v, want %v", got, want)
	}
}

func TestBlurAlpha(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 11, 11))
	m.SetAlpha(5, 5, color.Alpha{255})
	BlurAlpha(m, 1)

	if m.AlphaAt(5, 5).A == 255 || m.AlphaAt(5, 5).A == 0 {
		t.Errorf("centre = %d, want spread", m.AlphaAt(5, 5).A)
	}
	if m.AlphaAt(6, 5).A == 0 {
		t.Error("neighbour should receive coverage")
	}
	if m.AlphaAt(0, 0).A != 0 {
		t.Errorf("corner = %d, want 0", m.AlphaAt(0, 0).A)
	}
}
