package retouch

import "github.com/gogpu/artboard"

// Percentages (Opacity, Flow, Spacing, Diffusion, MinSize, MinOpacity)
// are on a 0..100 scale. Size is in buffer pixels.

// Dynamics maps pen pressure onto brush size and opacity. With a minimum
// of m percent, a pressure p scales the value by m/100 + (1 - m/100)*p.
type Dynamics struct {
	Size       bool
	Opacity    bool
	MinSize    float64
	MinOpacity float64
}

func (d Dynamics) size(p float64) float64 {
	if !d.Size {
		return 1
	}
	return scaleByPressure(d.MinSize, p)
}

func (d Dynamics) opacity(p float64) float64 {
	if !d.Opacity {
		return 1
	}
	return scaleByPressure(d.MinOpacity, p)
}

func scaleByPressure(minPercent, p float64) float64 {
	m := clamp01(minPercent / 100)
	return m + (1-m)*p
}

// BrushSettings configures the paint brush.
type BrushSettings struct {
	Size     float64
	Hardness float64
	Opacity  float64
	Flow     float64
	Spacing  float64
	Color    artboard.RGBA
	Dynamics Dynamics
}

// DefaultBrushSettings returns a 20px black brush.
func DefaultBrushSettings() BrushSettings {
	return BrushSettings{
		Size:     20,
		Hardness: 80,
		Opacity:  100,
		Flow:     100,
		Spacing:  25,
		Color:    artboard.Black,
	}
}

// EraserMode selects the eraser tip.
type EraserMode string

const (
	// EraserBrush uses the soft brush mask.
	EraserBrush EraserMode = "brush"
	// EraserPencil is a hard-edged circle.
	EraserPencil EraserMode = "pencil"
	// EraserBlock is a hard-edged square.
	EraserBlock EraserMode = "block"
)

// EraserSettings configures the eraser. Color is ignored.
type EraserSettings struct {
	BrushSettings
	Mode EraserMode
}

// DefaultEraserSettings returns a soft 20px eraser.
func DefaultEraserSettings() EraserSettings {
	return EraserSettings{BrushSettings: DefaultBrushSettings(), Mode: EraserBrush}
}

// CloneSettings configures the clone stamp.
type CloneSettings struct {
	Size     float64
	Hardness float64
	Opacity  float64
	Flow     float64
	Spacing  float64
	// Aligned keeps the source offset across strokes.
	Aligned   bool
	BlendMode artboard.BlendMode
}

// DefaultCloneSettings returns an aligned 40px clone stamp.
func DefaultCloneSettings() CloneSettings {
	return CloneSettings{
		Size:      40,
		Hardness:  50,
		Opacity:   100,
		Flow:      100,
		Spacing:   25,
		Aligned:   true,
		BlendMode: artboard.BlendNormal,
	}
}

// HealSettings configures the healing brush. Diffusion is how much of the
// colour-corrected source replaces the target.
type HealSettings struct {
	Size      float64
	Hardness  float64
	Spacing   float64
	Diffusion float64
	Aligned   bool
}

// DefaultHealSettings returns an aligned 40px healing brush.
func DefaultHealSettings() HealSettings {
	return HealSettings{Size: 40, Hardness: 50, Spacing: 25, Diffusion: 100, Aligned: true}
}

// SpotMode selects how spot healing reconstructs the patch.
type SpotMode string

const (
	// SpotProximity heals from the nearest patch outside the spot.
	SpotProximity SpotMode = "proximity-match"
	// SpotContentAware interpolates the spot from its border.
	SpotContentAware SpotMode = "content-aware"
	// SpotTexture averages the four diagonal neighbour patches.
	SpotTexture SpotMode = "create-texture"
)

// SpotSettings configures spot healing.
type SpotSettings struct {
	Size     float64
	Hardness float64
	Spacing  float64
	Mode     SpotMode
}

// DefaultSpotSettings returns a 30px content-aware spot healer.
func DefaultSpotSettings() SpotSettings {
	return SpotSettings{Size: 30, Hardness: 50, Spacing: 25, Mode: SpotContentAware}
}

// SpongeMode selects the direction of the sponge.
type SpongeMode string

const (
	Saturate   SpongeMode = "saturate"
	Desaturate SpongeMode = "desaturate"
)

// SpongeSettings configures the sponge. Vibrance weights the change by
// the remaining headroom so that strongly saturated pixels clip less.
type SpongeSettings struct {
	Size     float64
	Hardness float64
	Flow     float64
	Spacing  float64
	Mode     SpongeMode
	Vibrance bool
}

// DefaultSpongeSettings returns a 40px desaturating sponge.
func DefaultSpongeSettings() SpongeSettings {
	return SpongeSettings{Size: 40, Hardness: 50, Flow: 50, Spacing: 25, Mode: Desaturate, Vibrance: true}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
