package blend

import "math"

// Span blends a run of premultiplied source pixels onto a run of
// premultiplied destination pixels in place. Both slices hold RGBA8 quads;
// the shorter one bounds the run. opacity in [0, 1] scales the source
// before blending. Fully transparent source pixels are skipped.
func Span(dst, src []byte, opacity float64, mode Mode) {
	fn := Get(mode)
	n := min(len(dst), len(src)) &^ 3
	op := toByte(opacity)
	for i := 0; i < n; i += 4 {
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if op != 255 {
			sr, sg, sb, sa = mulDiv255(sr, op), mulDiv255(sg, op), mulDiv255(sb, op), mulDiv255(sa, op)
		}
		if sa == 0 && mode != ModeSource {
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// Straight blends one straight-alpha (non-premultiplied) source pixel onto a
// straight-alpha destination pixel with the given mode. alpha in [0, 1]
// scales the source alpha first. It is the entry point for editors whose
// working buffers hold unassociated alpha.
func Straight(mode Mode, src, dst [4]byte, alpha float64) [4]byte {
	sa := toByte(float64(src[3]) / 255 * alpha)
	if sa == 0 && mode != ModeSource && mode != ModeDestinationIn {
		return dst
	}
	sr, sg, sb := premul(src[0], sa), premul(src[1], sa), premul(src[2], sa)
	dr, dg, db := premul(dst[0], dst[3]), premul(dst[1], dst[3]), premul(dst[2], dst[3])

	r, g, b, a := Get(mode)(sr, sg, sb, sa, dr, dg, db, dst[3])
	if a == 0 {
		return [4]byte{}
	}
	return [4]byte{unpremul(r, a), unpremul(g, a), unpremul(b, a), a}
}

func premul(c, a byte) byte {
	return mulDiv255(c, a)
}

func unpremul(c, a byte) byte {
	v := math.Round(float64(c) * 255 / float64(a))
	if v > 255 {
		return 255
	}
	return byte(v)
}
