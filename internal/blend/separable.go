package blend

import "math"

// separable composites a per-channel blend function source-over.
//
// W3C formula on premultiplied values:
//
//	Co = (1 - as) * Cb + (1 - ab) * Cs + as * ab * B(cb, cs)
//	ao = as + ab * (1 - as)
//
// where cb and cs are the unpremultiplied backdrop and source channels.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(cb, cs float64) float64) (byte, byte, byte, byte) {
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

	channel := func(sp, dp byte, cs, cb float64) byte {
		v := (1-as)*float64(dp)/255 + (1-ab)*float64(sp)/255 + as*ab*fn(cb, cs)
		return toByte(v)
	}
	return channel(sr, dr, scr, bcr),
		channel(sg, dg, scg, bcg),
		channel(sb, db, scb, bcb),
		toByte(as + ab*(1-as))
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		return cb * cs
	})
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screen)
}

// blendOverlay is HardLight with the layers swapped.
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		return hardLight(cs, cb)
	})
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math.Min)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math.Max)
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		switch {
		case cb == 0:
			return 0
		case cs >= 1:
			return 1
		default:
			return math.Min(1, cb/(1-cs))
		}
	})
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		switch {
		case cb >= 1:
			return 1
		case cs <= 0:
			return 0
		default:
			return 1 - math.Min(1, (1-cb)/cs)
		}
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLight)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	})
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		return math.Abs(cb - cs)
	})
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float64) float64 {
		return cb + cs - 2*cb*cs
	})
}

func screen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

// hardLight is Multiply or Screen depending on the source channel.
func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}
