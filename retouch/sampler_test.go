package retouch

import (
	"math"
	"testing"
)

func TestSamplerBegin(t *testing.T) {
	s := NewSampler(20, 25)
	got := s.Begin(Sample{X: 3, Y: 4, Pressure: 0.5})
	if len(got) != 1 || got[0] != (Sample{X: 3, Y: 4, Pressure: 0.5}) {
		t.Errorf("Begin = %v, want the start sample", got)
	}
}

func TestSamplerNext(t *testing.T) {
	s := NewSampler(10, 25)
	if s.Spacing() != 2.5 {
		t.Fatalf("Spacing() = %v, want 2.5", s.Spacing())
	}
	s.Begin(Sample{X: 0, Y: 0, Pressure: 0})

	got := s.Next(Sample{X: 10, Y: 0, Pressure: 1})
	if len(got) != 4 {
		t.Fatalf("Next emitted %d dabs, want 4", len(got))
	}
	for i, p := range got {
		want := float64(i+1) * 2.5
		if math.Abs(p.X-want) > 1e-9 || p.Y != 0 {
			t.Errorf("dab %d at (%v, %v), want (%v, 0)", i, p.X, p.Y, want)
		}
		if math.Abs(p.Pressure-want/10) > 1e-9 {
			t.Errorf("dab %d pressure = %v, want %v", i, p.Pressure, want/10)
		}
	}
	if got[3] != (Sample{X: 10, Y: 0, Pressure: 1}) {
		t.Errorf("last dab = %v, want the raw sample", got[3])
	}

	if got := s.Next(Sample{X: 10, Y: 0, Pressure: 1}); len(got) != 0 {
		t.Errorf("zero-distance move emitted %d dabs", len(got))
	}
	if got := s.Next(Sample{X: 11, Y: 0, Pressure: 1}); len(got) != 1 {
		t.Errorf("short move emitted %d dabs, want 1", len(got))
	}
}

func TestSamplerMinimumSpacing(t *testing.T) {
	s := NewSampler(2, 10)
	if s.Spacing() != 1 {
		t.Errorf("Spacing() = %v, want 1", s.Spacing())
	}
	s.Begin(Sample{})
	if got := s.Next(Sample{X: 5}); len(got) != 5 {
		t.Errorf("Next emitted %d dabs, want 5", len(got))
	}
}

func TestSamplerNextWithoutBegin(t *testing.T) {
	s := NewSampler(10, 25)
	if got := s.Next(Sample{X: 7, Y: 7}); len(got) != 1 {
		t.Errorf("Next before Begin emitted %d dabs, want 1", len(got))
	}
}
