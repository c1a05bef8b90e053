package color

import "math"

// D65 reference white, 2° observer, scaled so that Y = 100.
const (
	WhiteX = 95.047
	WhiteY = 100.0
	WhiteZ = 108.883
)

// Lab is a CIE 1976 L*a*b* color.
type Lab struct {
	L, A, B float64
}

// LabDistanceSq returns the squared Euclidean distance (ΔE76²) between two
// Lab colors.
func LabDistanceSq(p, q Lab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return float64(dl*dl) + float64(da*da) + float64(db*db)
}

// RGBToLab converts an sRGB color with channels on the 0-255 scale to CIE Lab
// using the D65 illuminant. The arithmetic is float64 throughout and must stay
// in this exact order: palette matches depend on the last bit. The explicit
// float64 conversions round each product so it is never fused into an FMA.
func RGBToLab(c FRGB) Lab {
	r := linearize(c.R / 255)
	g := linearize(c.G / 255)
	b := linearize(c.B / 255)

	x := float64(r*0.4124) + float64(g*0.3576) + float64(b*0.1805)
	y := float64(r*0.2126) + float64(g*0.7152) + float64(b*0.0722)
	z := float64(r*0.0193) + float64(g*0.1192) + float64(b*0.9505)

	fx := labF(x / WhiteX)
	fy := labF(y / WhiteY)
	fz := labF(z / WhiteZ)

	return Lab{
		L: float64(116*fy) - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// linearize undoes the sRGB transfer curve and scales the result to 0-100.
func linearize(c float64) float64 {
	if c > 0.04045 {
		c = math.Pow((c+0.055)/1.055, 2.4)
	} else {
		c = c / 12.92
	}
	return c * 100
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return float64(7.787*t) + 16.0/116.0
}
