package dither

import (
	"image"
	imgcolor "image/color"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// Library dithers src with the Floyd–Steinberg implementation of
// github.com/makeworld-the-better-one/dither, scaled by amount. That library
// diffuses error in linear light rather than sRGB, so results differ from
// FloydSteinberg; it is offered for comparison.
func Library(src *ir.RGBAImage, idx *palette.Index, amount float64) *ir.RGBAImage {
	colors := idx.Colors()
	pal := make([]imgcolor.Color, len(colors))
	for i, c := range colors {
		pal[i] = imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}

	d := dither.NewDitherer(pal)
	d.Matrix = dither.ErrorDiffusionStrength(dither.FloydSteinberg, float32(amount))

	opaque := src.Clone()
	for i := 3; i < len(opaque.Pixels); i += 4 {
		opaque.Pixels[i] = 255
	}

	var out image.Image = d.DitherCopy(opaque.Image())

	// The library only ever emits palette colors; snapping each pixel back
	// through the index keeps that guarantee explicit and forces alpha.
	dst := ir.NewRGBAImage(src.Width, src.Height)
	b := out.Bounds()
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			r, g, bl, _ := out.At(b.Min.X+x, b.Min.Y+y).RGBA()
			work := color.FRGB{R: float64(r >> 8), G: float64(g >> 8), B: float64(bl >> 8)}
			_, match := idx.Closest(work, color.MetricRGB)
			dst.Set(x, y, match.RGB)
		}
	}
	return dst
}
