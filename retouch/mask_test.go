package retouch

import "testing"

func TestFalloff(t *testing.T) {
	for _, hardness := range []float64{0, 0.25, 0.5, 0.9, 1} {
		if got := falloff(0, hardness); got != 1 {
			t.Errorf("falloff(0, %v) = %v, want 1", hardness, got)
		}
		if got := falloff(1.0001, hardness); got != 0 {
			t.Errorf("falloff(>1, %v) = %v, want 0", hardness, got)
		}
		if hardness < 1 {
			if got := falloff(1, hardness); got != 0 {
				t.Errorf("falloff(1, %v) = %v, want 0", hardness, got)
			}
		}
		prev := 1.0
		for d := hardness; d <= 1; d += 0.01 {
			a := falloff(d, hardness)
			if a > prev {
				t.Errorf("falloff increases at d=%v, hardness=%v", d, hardness)
			}
			prev = a
		}
	}
}

func TestBrushMask(t *testing.T) {
	tests := []struct {
		size     int
		hardness float64
	}{
		{9, 0},
		{9, 50},
		{21, 80},
		{21, 100},
	}
	for _, tt := range tests {
		m := BrushMask(tt.size, tt.hardness)
		c := tt.size / 2
		if got := m.At(c, c); got != 1 {
			t.Errorf("BrushMask(%d, %v) centre = %v, want 1", tt.size, tt.hardness, got)
		}
		if got := m.At(0, 0); got != 0 {
			t.Errorf("BrushMask(%d, %v) corner = %v, want 0", tt.size, tt.hardness, got)
		}
		for x := c + 1; x < tt.size; x++ {
			if m.At(x, c) > m.At(x-1, c) {
				t.Errorf("BrushMask(%d, %v) increases at x=%d", tt.size, tt.hardness, x)
			}
		}
		if got := m.At(-1, c); got != 0 {
			t.Errorf("At outside = %v, want 0", got)
		}
	}
}

func TestBrushMaskMemoised(t *testing.T) {
	if BrushMask(15, 30) != BrushMask(15, 30) {
		t.Error("BrushMask did not reuse the cached mask")
	}
	if BrushMask(15, 30) == BrushMask(15, 31) {
		t.Error("different hardness shared a mask")
	}
	if got := BrushMask(0, 50).Size; got != 1 {
		t.Errorf("BrushMask(0).Size = %d, want 1", got)
	}
}

func TestBlockMask(t *testing.T) {
	m := BlockMask(4)
	for i, a := range m.Alpha {
		if a != 1 {
			t.Fatalf("Alpha[%d] = %v, want 1", i, a)
		}
	}
}

func TestMaskApply(t *testing.T) {
	m := BrushMask(5, 0)
	patch := make([][4]byte, 25)
	for i := range patch {
		patch[i] = [4]byte{10, 20, 30, 200}
	}
	m.Apply(patch)
	if patch[12][3] != 200 {
		t.Errorf("centre alpha = %d, want 200", patch[12][3])
	}
	if patch[0][3] != 0 {
		t.Errorf("corner alpha = %d, want 0", patch[0][3])
	}
	if patch[12][0] != 10 {
		t.Errorf("colour changed: %v", patch[12])
	}
}
