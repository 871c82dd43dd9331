package artboard

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTreeAddOrder(t *testing.T) {
	tree := NewTree(Artboard{ID: "a", Width: 100, Height: 100})
	for _, id := range []string{"bottom", "middle", "top"} {
		if err := tree.Add(rectLayer(id, 0, 0, 10, 10, Red)); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	want := []string{"top", "middle", "bottom"}
	if !reflect.DeepEqual(tree.Artboard.Layers, want) {
		t.Errorf("Layers = %v, want %v", tree.Artboard.Layers, want)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestTreeAddToGroup(t *testing.T) {
	tree := NewTree(Artboard{ID: "a"})
	g := &GroupLayer{Envelope: Envelope{ID: "g", Visible: true}}
	if err := tree.Add(g); err != nil {
		t.Fatal(err)
	}
	child := rectLayer("c", 0, 0, 5, 5, Blue)
	child.ParentID = "g"
	if err := tree.Add(child); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Children, []string{"c"}) {
		t.Errorf("Children = %v, want [c]", g.Children)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	orphan := rectLayer("o", 0, 0, 5, 5, Blue)
	orphan.ParentID = "missing"
	if err := tree.Add(orphan); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("Add(missing parent) = %v, want ErrUnknownLayer", err)
	}
	bad := rectLayer("b", 0, 0, 5, 5, Blue)
	bad.ParentID = "c"
	if err := tree.Add(bad); !errors.Is(err, ErrParentMismatch) {
		t.Errorf("Add(non-group parent) = %v, want ErrParentMismatch", err)
	}
}

func TestTreeRemove(t *testing.T) {
	tree := NewTree(Artboard{ID: "a"})
	g := &GroupLayer{Envelope: Envelope{ID: "g"}}
	_ = tree.Add(g)
	child := rectLayer("c", 0, 0, 5, 5, Blue)
	child.ParentID = "g"
	_ = tree.Add(child)
	_ = tree.Add(rectLayer("r", 0, 0, 5, 5, Blue))

	tree.Remove("g")
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
	if !reflect.DeepEqual(tree.Artboard.Layers, []string{"r"}) {
		t.Errorf("Layers = %v, want [r]", tree.Artboard.Layers)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestTreeValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Tree
		want  error
	}{
		{
			name: "unknown top-level id",
			build: func() *Tree {
				return NewTree(Artboard{Layers: []string{"ghost"}})
			},
			want: ErrUnknownLayer,
		},
		{
			name: "unknown child id",
			build: func() *Tree {
				tree := NewTree(Artboard{Layers: []string{"g"}})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "g"}, Children: []string{"ghost"}})
				return tree
			},
			want: ErrUnknownLayer,
		},
		{
			name: "listed twice",
			build: func() *Tree {
				tree := NewTree(Artboard{Layers: []string{"g", "r"}})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "g"}, Children: []string{"r"}})
				tree.Put(rectLayer("r", 0, 0, 1, 1, Red))
				return tree
			},
			want: ErrParentMismatch,
		},
		{
			name: "parent disagrees",
			build: func() *Tree {
				tree := NewTree(Artboard{Layers: []string{"g"}})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "g"}, Children: []string{"r"}})
				tree.Put(rectLayer("r", 0, 0, 1, 1, Red))
				return tree
			},
			want: ErrParentMismatch,
		},
		{
			name: "not listed",
			build: func() *Tree {
				tree := NewTree(Artboard{})
				tree.Put(rectLayer("r", 0, 0, 1, 1, Red))
				return tree
			},
			want: ErrParentMismatch,
		},
		{
			name: "cycle",
			build: func() *Tree {
				tree := NewTree(Artboard{})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "a", ParentID: "b"}, Children: []string{"b"}})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "b", ParentID: "a"}, Children: []string{"a"}})
				return tree
			},
			want: ErrLayerCycle,
		},
		{
			name: "self cycle",
			build: func() *Tree {
				tree := NewTree(Artboard{})
				tree.Put(&GroupLayer{Envelope: Envelope{ID: "a", ParentID: "a"}, Children: []string{"a"}})
				return tree
			},
			want: ErrLayerCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPixelMatrix(t *testing.T) {
	tests := []struct {
		name  string
		flipX bool
		in    Point
		want  Point
	}{
		{"origin", false, Pt(10, 20), Pt(0, 0)},
		{"centre", false, Pt(60, 45), Pt(100, 50)},
		{"far corner", false, Pt(110, 70), Pt(200, 100)},
		{"flipped origin", true, Pt(10, 20), Pt(200, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(Artboard{ID: "a", Width: 200, Height: 200})
			_ = tree.Add(&ImageLayer{
				Envelope: Envelope{
					ID: "img", Visible: true, FlipX: tt.flipX,
					Transform: Transform{X: 10, Y: 20, Width: 100, Height: 50, Opacity: 1},
				},
				Filters: DefaultImageFilters(),
			})
			m, err := tree.PixelMatrix("img", 200, 100)
			if err != nil {
				t.Fatal(err)
			}
			got := m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPixelMatrixErrors(t *testing.T) {
	tree := NewTree(Artboard{ID: "a", Width: 10, Height: 10})
	_ = tree.Add(rectLayer("r", 0, 0, 10, 10, Red))
	if _, err := tree.PixelMatrix("missing", 1, 1); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("missing layer error = %v, want ErrUnknownLayer", err)
	}
	if _, err := tree.PixelMatrix("r", 1, 1); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("shape layer error = %v, want ErrNoBuffer", err)
	}
}
