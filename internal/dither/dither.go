// Package dither reduces RGBA images to a fixed palette.
package dither

import (
	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// DefaultAmount is the fraction of quantization error that is diffused when
// the caller does not choose one.
const DefaultAmount = 0.75

// Floyd–Steinberg weights, in sixteenths.
const (
	fsScale    = 16.0
	wRight     = 7.0
	wDownLeft  = 3.0
	wDown      = 5.0
	wDownRight = 1.0
)

// Options controls error diffusion.
type Options struct {
	// Amount scales the diffused error. It is conventionally in [0,1] but is
	// not clamped; larger values overshoot linearly.
	Amount float64
	// Metric selects the space used to find the nearest palette color.
	Metric color.Metric
}

// DefaultOptions returns the amount and metric used when nothing else is
// configured.
func DefaultOptions() Options {
	return Options{Amount: DefaultAmount, Metric: color.MetricRGB}
}

// FloydSteinberg maps every pixel of src to a palette color, diffusing the
// quantization error of each pixel to its unvisited neighbours. Rows are
// scanned left to right, top to bottom. Error that would land outside the
// image is dropped. The result is a new opaque image; src is not modified.
func FloydSteinberg(src *ir.RGBAImage, idx *palette.Index, opts Options) *ir.RGBAImage {
	w, h := src.Width, src.Height
	dst := ir.NewRGBAImage(w, h)
	if w == 0 || h == 0 {
		return dst
	}

	amount := opts.Amount
	cur := sampleRow(src, 0)
	var next []color.FRGB

	for y := 0; y < h; y++ {
		last := y == h-1
		if !last {
			next = sampleRow(src, y+1)
		}

		for x := 0; x < w; x++ {
			work := cur[x]
			_, match := idx.Closest(work, opts.Metric)
			dst.Set(x, y, match.RGB)

			e := work.Sub(match.RGB.Float())
			if x < w-1 {
				spread(&cur[x+1], e, wRight, amount)
			}
			if last {
				continue
			}
			if x > 0 {
				spread(&next[x-1], e, wDownLeft, amount)
			}
			spread(&next[x], e, wDown, amount)
			if x < w-1 {
				spread(&next[x+1], e, wDownRight, amount)
			}
		}

		cur = next
		next = nil
	}

	return dst
}

// Quantize maps every pixel of src to its nearest palette color
// independently, without any error diffusion.
func Quantize(src *ir.RGBAImage, idx *palette.Index, metric color.Metric) *ir.RGBAImage {
	dst := ir.NewRGBAImage(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			_, match := idx.Closest(src.At(x, y).Float(), metric)
			dst.Set(x, y, match.RGB)
		}
	}
	return dst
}

// spread adds error*weight/16*amount to c, evaluated left to right and
// rounded before the add so the result is reproducible to the last bit.
func spread(c *color.FRGB, e color.FRGB, weight, amount float64) {
	c.R += float64(e.R * weight / fsScale * amount)
	c.G += float64(e.G * weight / fsScale * amount)
	c.B += float64(e.B * weight / fsScale * amount)
}

// sampleRow reads row y of src into a fresh working row.
func sampleRow(src *ir.RGBAImage, y int) []color.FRGB {
	row := make([]color.FRGB, src.Width)
	for x := range row {
		row[x] = src.At(x, y).Float()
	}
	return row
}
