package artboard

import (
	"math"
	"testing"
)

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"skew x 45", Skew(45, 0), Pt(0, 2), Pt(2, 2)},
		{"translate after scale", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointNear(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(30, 40).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5)).Multiply(Skew(10, 0))
	p := Pt(12, -7)
	if got := m.Invert().TransformPoint(m.TransformPoint(p)); !pointNear(got, p) {
		t.Errorf("round trip = %v, want %v", got, p)
	}
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert = %v, want identity", got)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformRect(Rect{Width: 10, Height: 20})
	want := Rect{X: -20, Y: 0, Width: 20, Height: 10}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 ||
		math.Abs(got.Width-want.Width) > 1e-9 || math.Abs(got.Height-want.Height) > 1e-9 {
		t.Errorf("TransformRect = %+v, want %+v", got, want)
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Translate(1, 2).IsTranslation() || Scale(2, 1).IsTranslation() {
		t.Error("IsTranslation mismatch")
	}
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
	a := Translate(1, 2).Aff3()
	if a[2] != 1 || a[5] != 2 || a[0] != 1 || a[4] != 1 {
		t.Errorf("Aff3 = %v", a)
	}
}

func TestRectUnionAndImage(t *testing.T) {
	u := Rect{X: 0, Y: 0, Width: 10, Height: 10}.Union(Rect{X: 5, Y: -5, Width: 10, Height: 5})
	if u != (Rect{X: 0, Y: -5, Width: 15, Height: 15}) {
		t.Errorf("Union = %+v", u)
	}
	if got := (Rect{}).Union(u); got != u {
		t.Errorf("empty Union = %+v, want %+v", got, u)
	}
	r := Rect{X: 0.5, Y: 1.2, Width: 2, Height: 2}.Image()
	if r.Min.X != 0 || r.Min.Y != 1 || r.Max.X != 3 || r.Max.Y != 4 {
		t.Errorf("Image = %v", r)
	}
}
