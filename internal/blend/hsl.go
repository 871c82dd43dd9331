package blend

// Non-separable blend modes operate on the whole RGB triplet
// (W3C Compositing Level 1, section 10.3).

// lum returns the luminance of a color using BT.601 coefficients.
func lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns max - min of the components.
func sat(r, g, b float64) float64 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components back toward the luminance.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// setLum shifts a color to luminance l, then clips.
func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales the components so that max - min equals s.
func setSat(r, g, b, s float64) (float64, float64, float64) {
	c := [3]float64{r, g, b}
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}

	var out [3]float64
	if c[hi] > c[lo] {
		out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		out[hi] = s
	}
	return out[0], out[1], out[2]
}

func hueOf(sr, sg, sb, br, bg, bb float64) (float64, float64, float64) {
	r, g, b := setSat(sr, sg, sb, sat(br, bg, bb))
	return setLum(r, g, b, lum(br, bg, bb))
}

func saturationOf(sr, sg, sb, br, bg, bb float64) (float64, float64, float64) {
	r, g, b := setSat(br, bg, bb, sat(sr, sg, sb))
	return setLum(r, g, b, lum(br, bg, bb))
}

func colorOf(sr, sg, sb, br, bg, bb float64) (float64, float64, float64) {
	return setLum(sr, sg, sb, lum(br, bg, bb))
}

func luminosityOf(sr, sg, sb, br, bg, bb float64) (float64, float64, float64) {
	return setLum(br, bg, bb, lum(sr, sg, sb))
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hueOf)
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, saturationOf)
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, colorOf)
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, luminosityOf)
}

// nonSeparable composites a whole-triplet blend function source-over with
// the same formula as separable.
func nonSeparable(
	sr, sg, sb, sa, dr, dg, db, da byte,
	fn func(sr, sg, sb, br, bg, bb float64) (float64, float64, float64),
) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	as := float64(sa) / 255
	ab := float64(da) / 255
	scr, scg, scb := unpremultiply(sr, sg, sb, sa)
	bcr, bcg, bcb := unpremultiply(dr, dg, db, da)
	br, bg, bb := fn(scr, scg, scb, bcr, bcg, bcb)

	channel := func(sp, dp byte, blended float64) byte {
		return toByte((1-as)*float64(dp)/255 + (1-ab)*float64(sp)/255 + as*ab*blended)
	}
	return channel(sr, dr, br), channel(sg, dg, bg), channel(sb, db, bb), toByte(as + ab*(1-as))
}
