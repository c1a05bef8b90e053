package color

import "fmt"

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// FRGB is a working color used during error diffusion. Channels are nominally
// in [0,255] but may drift outside that range once quantization error has
// been added.
type FRGB struct {
	R, G, B float64
}

// Float returns c as a working color.
func (c RGB) Float() FRGB {
	return FRGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Lab returns the CIE Lab representation of c.
func (c RGB) Lab() Lab {
	return RGBToLab(c.Float())
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sub returns the per-channel difference c - o.
func (c FRGB) Sub(o FRGB) FRGB {
	return FRGB{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// DistanceSq returns the squared Euclidean distance between two working
// colors in RGB space.
func DistanceSq(a, b FRGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return float64(dr*dr) + float64(dg*dg) + float64(db*db)
}
