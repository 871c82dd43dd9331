package filter

import (
	"image"
	"math"
)

// ColorMatrix is a 4x5 colour transformation in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is a
// bias in the same range.
type ColorMatrix [20]float32

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Identity returns the pass-through matrix.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Brightness scales RGB by factor: 0 = black, 1 = unchanged.
func Brightness(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales RGB around mid grey: 0 = grey, 1 = unchanged.
func Contrast(factor float32) ColorMatrix {
	offset := 127.5 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luminance (0) and identity (1); values above 1
// oversaturate.
func Saturation(factor float32) ColorMatrix {
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale converts toward luminance by amount in [0, 1].
func Grayscale(amount float32) ColorMatrix {
	return Saturation(1 - clampUnit(amount))
}

// Sepia applies the sepia tone by amount in [0, 1].
func Sepia(amount float32) ColorMatrix {
	full := ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
	return Identity().Mix(full, clampUnit(amount))
}

// Invert inverts RGB by amount in [0, 1].
func Invert(amount float32) ColorMatrix {
	full := ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
	return Identity().Mix(full, clampUnit(amount))
}

// HueRotate rotates hue by the given angle in degrees.
func HueRotate(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))

	return ColorMatrix{
		lumR + c*(1-lumR) - s*lumR, lumG - c*lumG - s*lumG, lumB - c*lumB + s*(1-lumB), 0, 0,
		lumR - c*lumR + s*0.143, lumG + c*(1-lumG) + s*0.140, lumB - c*lumB - s*0.283, 0, 0,
		lumR - c*lumR - s*(1-lumR), lumG - c*lumG + s*lumG, lumB + c*(1-lumB) + s*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Opacity multiplies alpha by factor.
func Opacity(factor float32) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}
}

// Mix linearly interpolates every coefficient toward other by t.
func (m ColorMatrix) Mix(other ColorMatrix, t float32) ColorMatrix {
	var out ColorMatrix
	for i := range m {
		out[i] = m[i] + (other[i]-m[i])*t
	}
	return out
}

// Multiply returns the matrix that applies m first, then other.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	a, b := &other, &m
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}
	return r
}

// IsIdentity reports whether m leaves every pixel unchanged.
func (m ColorMatrix) IsIdentity() bool {
	return m == Identity()
}

// Apply transforms the bounds region of src into dst.
func (m ColorMatrix) Apply(src, dst *image.RGBA, bounds image.Rectangle) {
	r := bounds.Intersect(src.Rect).Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+4, di+4 {
			a := float32(src.Pix[si+3])

			// Un-premultiply; the coefficients assume straight alpha.
			var cr, cg, cb float32
			if a > 0 {
				cr = float32(src.Pix[si+0]) * 255 / a
				cg = float32(src.Pix[si+1]) * 255 / a
				cb = float32(src.Pix[si+2]) * 255 / a
			}

			nr := m[0]*cr + m[1]*cg + m[2]*cb + m[3]*a + m[4]
			ng := m[5]*cr + m[6]*cg + m[7]*cb + m[8]*a + m[9]
			nb := m[10]*cr + m[11]*cg + m[12]*cb + m[13]*a + m[14]
			na := m[15]*cr + m[16]*cg + m[17]*cb + m[18]*a + m[19]

			na = min(max(na, 0), 255)
			factor := na / 255
			dst.Pix[di+0] = clampUint8(min(max(nr, 0), 255) * factor)
			dst.Pix[di+1] = clampUint8(min(max(ng, 0), 255) * factor)
			dst.Pix[di+2] = clampUint8(min(max(nb, 0), 255) * factor)
			dst.Pix[di+3] = clampUint8(na)
		}
	}
}

func clampUnit(v float32) float32 {
	return min(max(v, 0), 1)
}
