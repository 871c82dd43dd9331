package retouch

import (
	"image/color"
	"testing"

	"github.com/gogpu/artboard"
)

func TestSessionSwitchCancels(t *testing.T) {
	b := NewBrush(fill(10, 10, color.NRGBA{}), DefaultBrushSettings())
	e := NewEraser(fill(10, 10, color.NRGBA{A: 255}), DefaultEraserSettings())

	s := NewSession()
	s.Use(b)
	s.Start(5, 5, 1)
	s.Use(e)
	if s.Tool() != e {
		t.Fatal("Use did not switch the tool")
	}
	if _, ok := b.End(); ok {
		t.Error("switching tools kept the brush stroke")
	}

	s.Deselect()
	if s.Tool() != nil {
		t.Error("Deselect kept the tool")
	}
	if _, ok := s.End(); ok {
		t.Error("End() without a tool committed")
	}
}

func TestSessionTransformAndCommit(t *testing.T) {
	bs := DefaultBrushSettings()
	bs.Size, bs.Hardness = 1, 100
	b := NewBrush(fill(10, 10, color.NRGBA{}), bs)

	s := NewSession()
	s.Use(b)
	s.SetTransform(artboard.Translate(-10, -10))
	var commits []*Commit
	s.OnCommit(func(c *Commit) { commits = append(commits, c) })

	s.Start(15, 15, 1)
	s.Continue(15, 15, 1)
	c, ok := s.End()
	if !ok || len(commits) != 1 || commits[0] != c {
		t.Fatalf("End() = %v, %v with %d callbacks, want one commit", c, ok, len(commits))
	}
	if c.Image.NRGBAAt(5, 5).A != 255 {
		t.Error("pointer was not mapped into buffer pixels")
	}
}

func TestSessionSetSource(t *testing.T) {
	clone := NewCloneStamp(coords(100, 100), hardDot(true))
	s := NewSession()
	s.SetSource(1, 1)
	s.Use(clone)
	s.SetTransform(artboard.Scale(2, 2))
	s.SetSource(25, 25)
	s.Start(5, 5, 1)
	dx, dy, ok := clone.Offset()
	if !ok || dx != 40 || dy != 40 {
		t.Errorf("Offset() = %v, %v, %v, want 40, 40", dx, dy, ok)
	}
	s.Cancel()
}
