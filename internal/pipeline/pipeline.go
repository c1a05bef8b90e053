package pipeline

import (
	"fmt"
	"time"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/imgio"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/logging"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// Options controls the full decode → dither → encode pipeline.
type Options struct {
	Index   *palette.Index // required: target palette
	Convert ConvertOptions
	Format  string // output format; empty means png
}

// Result holds the output of a pipeline run.
type Result struct {
	Data       []byte // encoded image
	Width      int
	Height     int
	SrcFormat  string
	Format     string
	ColorsUsed int // distinct palette colors present in the output
}

// Run executes the full pipeline on an encoded image.
func Run(data []byte, opts Options) (*Result, error) {
	if opts.Index == nil {
		return nil, palette.EmptyPalette()
	}
	format := opts.Format
	if format == "" {
		format = "png"
	}
	log := logging.With(logging.ComponentPipeline)

	// 1. Decode
	decoded, err := imgio.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	src := decoded.Image
	log.Debug("decoded", "format", decoded.Format, "width", src.Width, "height", src.Height)

	// 2. Reduce to the palette
	start := time.Now()
	out, err := ConvertIndex(src, opts.Index, opts.Convert)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	log.Debug("dithered",
		"engine", opts.Convert.Engine,
		"metric", opts.Convert.Metric,
		"amount", opts.Convert.Amount,
		"palette", opts.Index.Len(),
		"elapsed", time.Since(start))

	// 3. Encode
	encoded, err := imgio.Encode(out, format, opts.Index)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:       encoded,
		Width:      src.Width,
		Height:     src.Height,
		SrcFormat:  decoded.Format,
		Format:     format,
		ColorsUsed: countColors(out),
	}, nil
}

func countColors(m *ir.RGBAImage) int {
	seen := make(map[color.RGB]struct{})
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			seen[m.At(x, y)] = struct{}{}
		}
	}
	return len(seen)
}
