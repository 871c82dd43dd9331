package artboard

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA converts to an 8-bit straight-alpha color, rounding half away from
// zero.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Premul converts to an 8-bit premultiplied color.
func (c RGBA) Premul() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{R: to8(c.R * a), G: to8(c.G * a), B: to8(c.B * a), A: to8(a)}
}

// WithAlpha returns c with alpha scaled by f.
func (c RGBA) WithAlpha(f float64) RGBA {
	c.A = clamp01(c.A * f)
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

// ParseColor parses a CSS-style colour: hex ("#rrggbb"), functional
// ("rgb(255, 0, 0)", "rgba(0, 0, 0, 0.5)") or a basic keyword ("red",
// "transparent").
func ParseColor(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return RGBA{}, false
	case s[0] == '#':
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFuncColor(s)
	}
	c, ok := namedColors[s]
	return c, ok
}

func parseHexColor(hex string) (RGBA, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var digits [8]uint32
	for i := 0; i < len(hex) && i < len(digits); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, false
		}
		digits[i] = v
	}

	var r, g, b, a uint32 = 0, 0, 0, 255
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, false
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// parseFuncColor parses rgb(r, g, b) and rgba(r, g, b, a).
func parseFuncColor(s string) (RGBA, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return RGBA{}, false
	}
	parts := strings.FieldsFunc(s[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		pct := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return RGBA{}, false
		}
		switch {
		case pct:
			v /= 100
		case i < 3:
			v /= 255
		}
		ch[i] = clamp01(v)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// to8 maps [0, 1] to [0, 255], rounding half away from zero.
func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

var namedColors = map[string]RGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       RGB(0, 128.0/255, 0),
	"lime":        Green,
	"blue":        Blue,
	"yellow":      RGB(1, 1, 0),
	"cyan":        RGB(0, 1, 1),
	"magenta":     RGB(1, 0, 1),
	"gray":        RGB(128.0/255, 128.0/255, 128.0/255),
	"grey":        RGB(128.0/255, 128.0/255, 128.0/255),
	"orange":      RGB(1, 165.0/255, 0),
	"purple":      RGB(128.0/255, 0, 128.0/255),
	"transparent": Transparent,
}
