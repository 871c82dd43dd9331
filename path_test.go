package artboard

import (
	"math"
	"testing"
)

func TestPathBuilder(t *testing.T) {
	p := NewPath()
	if !p.Empty() {
		t.Fatal("new path should be empty")
	}
	p.LineTo(1, 1) // acts as MoveTo
	p.LineTo(5, 1)
	p.QuadTo(6, 2, 5, 3)
	p.CubicTo(4, 4, 3, 4, 2, 3)
	p.Close()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("len(Elements) = %d, want 5", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", elems[0])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("last element = %T, want Close", elems[4])
	}
}

func TestPathBoundsAndTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 30, 40)
	b := p.Bounds()
	if b != (Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("Bounds = %+v", b)
	}

	moved := p.Transform(Translate(-10, -20))
	if got := moved.Bounds(); got != (Rect{Width: 30, Height: 40}) {
		t.Errorf("translated Bounds = %+v", got)
	}
	if p.Bounds() != b {
		t.Error("Transform must not modify the receiver")
	}
}

func TestPathShapes(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  Rect
	}{
		{"ellipse", func(p *Path) { p.Ellipse(50, 50, 20, 10) }, Rect{X: 30, Y: 40, Width: 40, Height: 20}},
		{"rounded", func(p *Path) {
			p.RoundedRectangle(0, 0, 100, 50, CornerRadii{TopLeft: 10, BottomRight: 200})
		}, Rect{Width: 100, Height: 50}},
		{"square polygon", func(p *Path) { p.Polygon(0, 0, 10, 10, 4) }, Rect{X: -10, Y: -10, Width: 20, Height: 20}},
		{"polyline", func(p *Path) { p.Polyline([]Point{{0, 0}, {5, 8}, {9, 1}}, false) }, Rect{Width: 9, Height: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			got := p.Bounds()
			if math.Abs(got.X-tt.want.X) > 1e-6 || math.Abs(got.Y-tt.want.Y) > 1e-6 ||
				math.Abs(got.Width-tt.want.Width) > 1e-6 || math.Abs(got.Height-tt.want.Height) > 1e-6 {
				t.Errorf("Bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathStar(t *testing.T) {
	p := NewPath()
	p.Star(0, 0, 10, 10, 5, 0.5)
	// MoveTo + 9 LineTo + Close.
	if n := len(p.Elements()); n != 11 {
		t.Errorf("len(Elements) = %d, want 11", n)
	}
	top := p.Elements()[0].(MoveTo).Point
	if math.Abs(top.X) > 1e-9 || math.Abs(top.Y+10) > 1e-9 {
		t.Errorf("first vertex = %v, want (0,-10)", top)
	}
}

func TestArrowHead(t *testing.T) {
	p := NewPath()
	p.ArrowHead(Pt(0, 0), Pt(10, 0), 4)
	b := p.Bounds()
	if b != (Rect{X: 6, Y: -2, Width: 4, Height: 4}) {
		t.Errorf("Bounds = %+v, want {6 -2 4 4}", b)
	}

	q := NewPath()
	q.ArrowHead(Pt(1, 1), Pt(1, 1), 4)
	if !q.Empty() {
		t.Error("zero-length arrow should add nothing")
	}
}

func TestCornerRadiiUniform(t *testing.T) {
	if !(CornerRadii{4, 4, 4, 4}).Uniform() || (CornerRadii{4, 4, 4, 0}).Uniform() {
		t.Error("Uniform mismatch")
	}
}
