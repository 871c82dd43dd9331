package retouch

import (
	"image/color"
	"testing"
)

func TestCloneStampAligned(t *testing.T) {
	src := coords(100, 100)
	c := NewCloneStamp(src, hardDot(true))
	c.SetSource(50, 50)

	c.Start(10, 10, 1)
	dx, dy, ok := c.Offset()
	if !ok || dx != 40 || dy != 40 {
		t.Fatalf("Offset() = %v, %v, %v, want 40, 40", dx, dy, ok)
	}
	first, ok := c.End()
	if !ok {
		t.Fatal("first stroke did not commit")
	}
	if got := first.Image.NRGBAAt(10, 10); got != (color.NRGBA{R: 50, G: 50, A: 255}) {
		t.Errorf("first dab = %v, want the colour at (50, 50)", got)
	}

	c.Start(20, 20, 1)
	if dx, dy, _ := c.Offset(); dx != 40 || dy != 40 {
		t.Errorf("second stroke offset = %v, %v, want 40, 40", dx, dy)
	}
	second, ok := c.End()
	if !ok {
		t.Fatal("second stroke did not commit")
	}
	if got := second.Image.NRGBAAt(20, 20); got != (color.NRGBA{R: 60, G: 60, A: 255}) {
		t.Errorf("second dab = %v, want the colour at (60, 60)", got)
	}
	if got := second.Image.NRGBAAt(10, 10); got != (color.NRGBA{R: 50, G: 50, A: 255}) {
		t.Errorf("second stroke lost the first commit: %v", got)
	}
	if got := src.NRGBAAt(10, 10); got != (color.NRGBA{R: 10, G: 10, A: 255}) {
		t.Errorf("source bitmap was modified: %v", got)
	}
}

func TestCloneStampNotAligned(t *testing.T) {
	c := NewCloneStamp(coords(100, 100), hardDot(false))
	c.SetSource(50, 50)

	c.Start(10, 10, 1)
	c.End()
	c.Start(20, 20, 1)
	dx, dy, _ := c.Offset()
	if dx != 30 || dy != 30 {
		t.Errorf("Offset() = %v, %v, want 30, 30", dx, dy)
	}
	commit, ok := c.End()
	if !ok {
		t.Fatal("stroke did not commit")
	}
	if got := commit.Image.NRGBAAt(20, 20); got != (color.NRGBA{R: 50, G: 50, A: 255}) {
		t.Errorf("dab = %v, want the colour at the source point", got)
	}
}

func TestCloneStampNewSourceResetsOffset(t *testing.T) {
	c := NewCloneStamp(coords(100, 100), hardDot(true))
	c.SetSource(50, 50)
	c.Start(10, 10, 1)
	c.End()

	c.SetSource(70, 70)
	c.Start(20, 20, 1)
	if dx, dy, _ := c.Offset(); dx != 50 || dy != 50 {
		t.Errorf("Offset() = %v, %v, want 50, 50", dx, dy)
	}
	c.Cancel()
}

func TestCloneStampOutOfBounds(t *testing.T) {
	s := DefaultCloneSettings()
	s.Size = 20
	c := NewCloneStamp(coords(100, 100), s)
	c.SetSource(95, 95)
	c.Start(10, 10, 1)
	c.Continue(12, 10, 1)

	dabs, skipped := c.Stats()
	if dabs == 0 || dabs != skipped {
		t.Errorf("Stats() = %d dabs, %d skipped, want all skipped", dabs, skipped)
	}
	if _, ok := c.End(); ok {
		t.Error("End() committed a stroke whose dabs were all skipped")
	}
}

func TestCloneStampCancel(t *testing.T) {
	c := NewCloneStamp(coords(100, 100), hardDot(true))
	c.SetSource(50, 50)
	c.Start(10, 10, 1)
	c.Cancel()

	if _, _, ok := c.Offset(); ok {
		t.Error("Cancel() kept the offset")
	}
	if _, ok := c.End(); ok {
		t.Error("End() after Cancel() committed")
	}

	c.Start(10, 10, 1)
	if _, ok := c.End(); ok {
		t.Error("stroke without a source point committed")
	}
}

func TestCloneStampSoftEdge(t *testing.T) {
	s := DefaultCloneSettings()
	s.Size, s.Hardness = 11, 0
	dst := fill(60, 30, color.NRGBA{R: 255, A: 255})
	for y := 0; y < 30; y++ {
		for x := 30; x < 60; x++ {
			dst.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	c := NewCloneStamp(dst, s)
	c.SetSource(45, 15)
	c.Start(15, 15, 1)
	commit, ok := c.End()
	if !ok {
		t.Fatal("stroke did not commit")
	}
	centre := commit.Image.NRGBAAt(15, 15)
	edge := commit.Image.NRGBAAt(19, 15)
	corner := commit.Image.NRGBAAt(10, 10)
	if centre.B != 255 || centre.R != 0 {
		t.Errorf("centre = %v, want the source blue", centre)
	}
	if edge.R == 0 || edge.B == 0 {
		t.Errorf("edge = %v, want a mix", edge)
	}
	if corner != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("corner = %v, want untouched", corner)
	}
}
