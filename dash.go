package artboard

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
type Dash struct {
	// Array contains alternating dash/gap lengths. An odd-length array is
	// logically duplicated (e.g. [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		positive = positive || normalized[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// StrokeStyle names a dash preset for shape outlines.
type StrokeStyle string

const (
	StrokeSolid    StrokeStyle = "solid"
	StrokeDashed   StrokeStyle = "dashed"
	StrokeDotted   StrokeStyle = "dotted"
	StrokeDashDot  StrokeStyle = "dash-dot"
	StrokeLongDash StrokeStyle = "long-dash"
)

// DashFor returns the dash pattern of a preset scaled to the stroke width,
// or nil for solid and unknown styles. Widths below 1 scale as 1.
func DashFor(style StrokeStyle, width float64) *Dash {
	w := math.Max(width, 1)
	switch style {
	case StrokeDashed:
		return NewDash(4*w, 2*w)
	case StrokeDotted:
		return NewDash(w, 2*w)
	case StrokeDashDot:
		return NewDash(4*w, 2*w, w, 2*w)
	case StrokeLongDash:
		return NewDash(8*w, 3*w)
	default:
		return nil
	}
}
