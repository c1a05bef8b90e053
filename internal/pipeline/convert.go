package pipeline

import (
	"fmt"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/dither"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// Engine selects the error-diffusion implementation.
type Engine int

const (
	EngineNative Engine = iota
	EngineLibrary
)

// ParseEngine converts an engine name to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch s {
	case "native", "":
		return EngineNative, nil
	case "library":
		return EngineLibrary, nil
	default:
		return 0, fmt.Errorf("unknown dither engine: %q", s)
	}
}

func (e Engine) String() string {
	if e == EngineLibrary {
		return "library"
	}
	return "native"
}

// ConvertOptions controls a single palette conversion.
type ConvertOptions struct {
	Amount float64      // fraction of error diffused, default dither.DefaultAmount
	Metric color.Metric // palette distance space; the native engine only
	Engine Engine
}

// DefaultConvertOptions returns the conversion defaults: 0.75 diffusion, RGB
// distance, native engine.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{Amount: dither.DefaultAmount, Metric: color.MetricRGB, Engine: EngineNative}
}

// Convert reduces img to the given ordered palette with Floyd–Steinberg
// dithering, diffusing `amount` of the quantization error. It returns a new
// image of the same size whose every pixel is an opaque palette color; img
// is left untouched. An empty palette is rejected with a
// *palette.ValidationError before any pixel is read.
func Convert(img *ir.RGBAImage, colors []color.RGB, amount float64) (*ir.RGBAImage, error) {
	opts := DefaultConvertOptions()
	opts.Amount = amount
	return ConvertWithOptions(img, colors, opts)
}

// ConvertWithOptions is Convert with a choice of metric and engine.
func ConvertWithOptions(img *ir.RGBAImage, colors []color.RGB, opts ConvertOptions) (*ir.RGBAImage, error) {
	idx, err := palette.NewIndex(colors)
	if err != nil {
		return nil, err
	}
	return ConvertIndex(img, idx, opts)
}

// ConvertIndex converts img against a prepared palette index. The index is
// only read, so one index may serve concurrent conversions of different
// images.
func ConvertIndex(img *ir.RGBAImage, idx *palette.Index, opts ConvertOptions) (*ir.RGBAImage, error) {
	if idx == nil || idx.Len() == 0 {
		return nil, palette.EmptyPalette()
	}
	if img == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if _, err := ir.FromBytes(img.Pixels, img.Width, img.Height); err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}

	switch opts.Engine {
	case EngineLibrary:
		return dither.Library(img, idx, opts.Amount), nil
	default:
		if opts.Amount == 0 {
			return dither.Quantize(img, idx, opts.Metric), nil
		}
		return dither.FloydSteinberg(img, idx, dither.Options{Amount: opts.Amount, Metric: opts.Metric}), nil
	}
}
