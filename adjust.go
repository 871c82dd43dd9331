package artboard

import (
	"image"
	"math"
	"slices"
)

// Adjustments are pixel operations applied to a layer's rendered content
// before effects and compositing. They run in order: levels, curves,
// colour balance, selective colour, posterize, threshold, vignette.
type Adjustments struct {
	Levels         Levels
	Curves         Curves
	ColorBalance   ColorBalance
	SelectiveColor SelectiveColor

	// Posterize is the number of tone levels per channel; values below 2
	// disable it.
	Posterize int

	// Threshold maps luminance at or above the level (1..255) to white and
	// everything else to black; 0 disables it.
	Threshold int

	Vignette Vignette
}

// Active reports whether any adjustment changes pixels.
func (a Adjustments) Active() bool {
	return a.Levels.Enabled || a.Curves.Enabled || a.ColorBalance.Enabled ||
		a.SelectiveColor.Enabled || a.Posterize >= 2 || a.Threshold > 0 ||
		(a.Vignette.Enabled && a.Vignette.Amount != 0)
}

// Levels remaps the input range [InBlack, InWhite] with a gamma curve onto
// [OutBlack, OutWhite]. All bounds are 0..255.
type Levels struct {
	Enabled  bool
	InBlack  float64
	InWhite  float64
	Gamma    float64
	OutBlack float64
	OutWhite float64
}

// Curves is a tone curve through control points in 0..255, interpolated
// linearly and held flat past the first and last point.
type Curves struct {
	Enabled bool
	Points  []Point
}

// ColorBalance shifts the cyan-red, magenta-green and yellow-blue axes
// separately for shadows, midtones and highlights. Each value is -100..100.
type ColorBalance struct {
	Enabled    bool
	Shadows    [3]float64
	Midtones   [3]float64
	Highlights [3]float64
}

// ColorRange selects the pixels a SelectiveColor adjustment affects.
type ColorRange string

const (
	RangeReds     ColorRange = "reds"
	RangeYellows  ColorRange = "yellows"
	RangeGreens   ColorRange = "greens"
	RangeCyans    ColorRange = "cyans"
	RangeBlues    ColorRange = "blues"
	RangeMagentas ColorRange = "magentas"
	RangeWhites   ColorRange = "whites"
	RangeNeutrals ColorRange = "neutrals"
	RangeBlacks   ColorRange = "blacks"
)

// SelectiveColor adds or removes process ink (-100..100) in one colour
// range. Relative scales the change by the ink already present.
type SelectiveColor struct {
	Enabled                      bool
	Range                        ColorRange
	Cyan, Magenta, Yellow, Black float64
	Relative                     bool
}

// Vignette darkens (Amount > 0) or lightens (Amount < 0) toward the box
// edges. Size (0..100) is where the falloff starts, Feather (0..100) its
// width.
type Vignette struct {
	Enabled bool
	Amount  float64
	Size    float64
	Feather float64
}

// applyAdjustments runs a over the content box (the image minus pad on
// every side) in place.
func applyAdjustments(img *image.RGBA, pad int, a Adjustments) {
	if !a.Active() {
		return
	}
	box := img.Rect.Inset(pad)
	if box.Empty() {
		return
	}

	lut := toneLUT(a.Levels, a.Curves)
	bw, bh := float64(box.Dx()), float64(box.Dy())

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			i := img.PixOffset(x, y)
			px := img.Pix[i : i+4 : i+4]
			alpha := px[3]
			if alpha == 0 {
				continue
			}
			af := float64(alpha)
			r := math.Min(float64(px[0])*255/af, 255)
			g := math.Min(float64(px[1])*255/af, 255)
			b := math.Min(float64(px[2])*255/af, 255)

			if lut != nil {
				r, g, b = float64(lut[uint8(r+0.5)]), float64(lut[uint8(g+0.5)]), float64(lut[uint8(b+0.5)])
			}

			c := [3]float64{r / 255, g / 255, b / 255}
			if a.ColorBalance.Enabled {
				c = a.ColorBalance.apply(c)
			}
			if a.SelectiveColor.Enabled {
				c = a.SelectiveColor.apply(c)
			}
			if n := a.Posterize; n >= 2 {
				for k := range c {
					c[k] = math.Round(clamp01(c[k])*float64(n-1)) / float64(n-1)
				}
			}
			if a.Threshold > 0 {
				v := 0.0
				if luminance(c)*255 >= float64(a.Threshold) {
					v = 1
				}
				c = [3]float64{v, v, v}
			}
			if a.Vignette.Enabled && a.Vignette.Amount != 0 {
				nx := (float64(x-box.Min.X)+0.5)/bw*2 - 1
				ny := (float64(y-box.Min.Y)+0.5)/bh*2 - 1
				c = a.Vignette.apply(c, math.Hypot(nx, ny)/math.Sqrt2)
			}

			for k := range c {
				px[k] = uint8(math.Round(clamp01(c[k]) * af))
			}
		}
	}
}

// toneLUT folds levels and curves into one channel lookup table.
// It returns nil when neither is enabled.
func toneLUT(l Levels, c Curves) *[256]uint8 {
	if !l.Enabled && !c.Enabled {
		return nil
	}
	var pts []Point
	if c.Enabled && len(c.Points) > 0 {
		pts = slices.Clone(c.Points)
		slices.SortFunc(pts, func(a, b Point) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			}
			return 0
		})
	}

	var lut [256]uint8
	for i := range lut {
		v := float64(i)
		if l.Enabled {
			v = l.apply(v)
		}
		if pts != nil {
			v = curveAt(pts, v)
		}
		lut[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	return &lut
}

func (l Levels) apply(v float64) float64 {
	inW := l.InWhite
	if inW <= l.InBlack {
		inW = l.InBlack + 1
	}
	outW := l.OutWhite
	if outW == 0 && l.OutBlack == 0 {
		outW = 255
	}
	gamma := l.Gamma
	if gamma <= 0 {
		gamma = 1
	}
	t := clamp01((v - l.InBlack) / (inW - l.InBlack))
	t = math.Pow(t, 1/gamma)
	return l.OutBlack + t*(outW-l.OutBlack)
}

// curveAt interpolates sorted control points at x.
func curveAt(pts []Point, x float64) float64 {
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		if x > p1.X {
			continue
		}
		if p1.X == p0.X {
			return p1.Y
		}
		t := (x - p0.X) / (p1.X - p0.X)
		return p0.Y + (p1.Y-p0.Y)*t
	}
	return last.Y
}

// apply weights the three tone bands by luminance; the weights sum to 1.
func (cb ColorBalance) apply(c [3]float64) [3]float64 {
	l := luminance(c)
	ws := math.Max(0, 1-2*l)
	wh := math.Max(0, 2*l-1)
	wm := 1 - ws - wh
	for k := range c {
		shift := (ws*cb.Shadows[k] + wm*cb.Midtones[k] + wh*cb.Highlights[k]) / 100
		c[k] = clamp01(c[k] + shift*0.5)
	}
	return c
}

// weight returns how strongly c belongs to the range, in [0, 1].
func (sc SelectiveColor) weight(c [3]float64) float64 {
	hi := math.Max(c[0], math.Max(c[1], c[2]))
	lo := math.Min(c[0], math.Min(c[1], c[2]))
	mid := c[0] + c[1] + c[2] - hi - lo

	// Primary ranges: the channel is the maximum; strength is max - mid.
	// Secondary ranges: the two channels lead; strength is mid - min.
	primary := func(k int) float64 {
		if c[k] < hi {
			return 0
		}
		return hi - mid
	}
	secondary := func(k int) float64 {
		if c[k] > lo || hi == lo {
			return 0
		}
		return mid - lo
	}

	switch sc.Range {
	case RangeReds:
		return primary(0)
	case RangeGreens:
		return primary(1)
	case RangeBlues:
		return primary(2)
	case RangeCyans:
		return secondary(0)
	case RangeMagentas:
		return secondary(1)
	case RangeYellows:
		return secondary(2)
	case RangeWhites:
		return math.Max(0, lo-0.5) * 2
	case RangeBlacks:
		return math.Max(0, 0.5-hi) * 2
	case RangeNeutrals:
		return 1 - math.Abs(hi-0.5) - math.Abs(lo-0.5)
	}
	return 0
}

func (sc SelectiveColor) apply(c [3]float64) [3]float64 {
	w := clamp01(sc.weight(c))
	if w == 0 {
		return c
	}
	inks := [3]float64{sc.Cyan, sc.Magenta, sc.Yellow}
	for k := range c {
		ink := 1 - c[k]
		delta := (inks[k] + sc.Black) / 100
		if sc.Relative {
			delta *= ink
		}
		ink = clamp01(ink + delta*w)
		c[k] = 1 - ink
	}
	return c
}

func (v Vignette) apply(c [3]float64, d float64) [3]float64 {
	size := v.Size
	if size == 0 {
		size = 50
	}
	start := size / 100
	width := math.Max(v.Feather/100, 0.01)
	f := smoothstep(start, start+width, d)
	amt := math.Max(-1, math.Min(1, v.Amount/100)) * f
	for k := range c {
		if amt > 0 {
			c[k] *= 1 - amt
		} else {
			c[k] += (1 - c[k]) * -amt
		}
	}
	return c
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// luminance uses Rec. 709 weights on straight [0, 1] channels.
func luminance(c [3]float64) float64 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}
