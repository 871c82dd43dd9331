package retouch

import (
	"image"
	"image/color"
	"testing"
)

var grey = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// spotted returns a grey w x w buffer with a 3x3 black spot at c.
func spotted(w, c int) *image.NRGBA {
	img := fill(w, w, grey)
	for y := c - 1; y <= c+1; y++ {
		for x := c - 1; x <= c+1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func TestSpotHealModes(t *testing.T) {
	tests := []struct {
		mode    SpotMode
		size    float64
		w, c    int
		atLeast uint8
	}{
		{SpotContentAware, 15, 40, 20, 128},
		{SpotTexture, 9, 60, 30, 128},
		{SpotProximity, 9, 60, 30, 110},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			src := spotted(tt.w, tt.c)
			h := NewSpotHealer(src, SpotSettings{Size: tt.size, Hardness: 100, Spacing: 25, Mode: tt.mode})
			h.Start(float64(tt.c), float64(tt.c), 1)
			commit, ok := h.End()
			if !ok {
				t.Fatal("spot heal did not commit")
			}
			got := commit.Image.NRGBAAt(tt.c, tt.c)
			if got.R < tt.atLeast || got.R > 128 || got.A != 255 {
				t.Errorf("spot centre = %v, want grey of at least %d", got, tt.atLeast)
			}
			if far := commit.Image.NRGBAAt(1, 1); far != grey {
				t.Errorf("pixel far from the spot = %v, want untouched", far)
			}
			if src.NRGBAAt(tt.c, tt.c).R != 0 {
				t.Error("source bitmap was modified")
			}
		})
	}
}

func TestCreateTextureFallback(t *testing.T) {
	h := NewSpotHealer(spotted(9, 4), SpotSettings{Size: 9, Hardness: 100, Mode: SpotTexture})
	h.Start(4, 4, 1)
	if _, ok := h.End(); ok {
		t.Error("create-texture without in-bounds neighbours changed the buffer")
	}
}

func TestSpotHealSkipsEdgeDab(t *testing.T) {
	for _, mode := range []SpotMode{SpotContentAware, SpotProximity, SpotTexture} {
		t.Run(string(mode), func(t *testing.T) {
			src := fill(40, 40, grey)
			src.SetNRGBA(0, 20, color.NRGBA{A: 255})
			src.SetNRGBA(1, 20, color.NRGBA{A: 255})
			h := NewSpotHealer(src, SpotSettings{Size: 15, Hardness: 100, Mode: mode})
			// The 15px square around x=2 reaches x=-5.
			h.Start(2, 20, 1)

			dabs, skipped := h.Stats()
			if dabs != 1 || skipped != 1 {
				t.Errorf("Stats() = %d dabs, %d skipped, want 1, 1", dabs, skipped)
			}
			if _, ok := h.End(); ok {
				t.Error("End() committed a dab that left the buffer")
			}
		})
	}
}

func TestContentAwareLeavesOutsideRadius(t *testing.T) {
	src := spotted(40, 20)
	// Mark a pixel in the corner of the dab square, outside the disc.
	src.SetNRGBA(13, 13, color.NRGBA{R: 255, A: 255})
	h := NewSpotHealer(src, SpotSettings{Size: 15, Hardness: 100, Mode: SpotContentAware})
	h.Start(20, 20, 1)
	commit, _ := h.End()
	if got := commit.Image.NRGBAAt(13, 13); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("corner pixel = %v, want untouched", got)
	}
}
