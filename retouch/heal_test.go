package retouch

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// halves returns a 60x30 buffer: left half l, right half from r(x, y).
func halves(l color.NRGBA, r func(x, y int) color.NRGBA) *image.NRGBA {
	img := fill(60, 30, l)
	for y := 0; y < 30; y++ {
		for x := 30; x < 60; x++ {
			img.SetNRGBA(x, y, r(x, y))
		}
	}
	return img
}

func TestHealingKeepsTargetAverage(t *testing.T) {
	target := color.NRGBA{R: 100, G: 150, B: 200, A: 255}
	src := halves(target, func(int, int) color.NRGBA { return color.NRGBA{R: 30, G: 60, B: 90, A: 255} })

	s := DefaultHealSettings()
	s.Size = 11
	h := NewHealingBrush(src, s)
	h.SetSource(45, 15)
	h.Start(15, 15, 1)
	commit, ok := h.End()
	if !ok {
		t.Fatal("stroke did not commit")
	}

	r := region(15, 15, 11)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := commit.Image.NRGBAAt(x, y); got != target {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, target)
			}
		}
	}
}

func TestHealingTransfersTexture(t *testing.T) {
	target := color.NRGBA{R: 100, G: 150, B: 200, A: 255}
	src := halves(target, func(x, y int) color.NRGBA {
		if (x+y)%2 == 0 {
			return color.NRGBA{R: 50, G: 80, B: 110, A: 255}
		}
		return color.NRGBA{R: 10, G: 40, B: 70, A: 255}
	})

	s := DefaultHealSettings()
	s.Size, s.Hardness = 11, 100
	h := NewHealingBrush(src, s)
	h.SetSource(45, 15)
	h.Start(15, 15, 1)
	commit, ok := h.End()
	if !ok {
		t.Fatal("stroke did not commit")
	}

	var sum float64
	n := 0
	seen := map[uint8]bool{}
	m := BrushMask(11, 100)
	r := region(15, 15, 11)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.At(x-r.Min.X, y-r.Min.Y) == 0 {
				continue
			}
			px := commit.Image.NRGBAAt(x, y)
			sum += float64(px.R)
			seen[px.R] = true
			n++
		}
	}
	if avg := sum / float64(n); math.Abs(avg-100) > 3 {
		t.Errorf("healed red average = %v, want ~100", avg)
	}
	if len(seen) < 2 {
		t.Error("healed patch lost the source texture")
	}
}

func TestHealingDiffusion(t *testing.T) {
	target := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	src := halves(target, func(x, y int) color.NRGBA {
		if x == 45 && y == 15 {
			return color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		}
		return color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	})

	s := DefaultHealSettings()
	s.Size, s.Hardness, s.Diffusion = 11, 100, 50
	h := NewHealingBrush(src, s)
	h.SetSource(45, 15)
	h.Start(15, 15, 1)
	commit, _ := h.End()

	// The bright source pixel lands half-strength on the centre.
	got := commit.Image.NRGBAAt(15, 15).R
	if got < 145 || got > 152 {
		t.Errorf("centre red = %d, want ~150", got)
	}
}

func TestAverageIgnoresTransparent(t *testing.T) {
	avg, ok := average([][4]byte{{200, 0, 0, 255}, {0, 0, 0, 0}, {100, 0, 0, 10}})
	if !ok || avg[0] != 150 {
		t.Errorf("average = %v, %v, want 150", avg, ok)
	}
	if _, ok := average([][4]byte{{1, 2, 3, 0}}); ok {
		t.Error("average of transparent pixels reported ok")
	}
}
