package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/imgio"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

func gradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x * 255 / (w - 1))
			img.Pix[i+1] = uint8(y * 255 / (h - 1))
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestFullPipeline(t *testing.T) {
	input := gradientPNG(t, 64, 32)
	colors, _ := palette.Builtin("pico8")
	idx, err := palette.NewIndex(colors)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	for _, format := range imgio.Formats {
		t.Run(format, func(t *testing.T) {
			result, err := Run(input, Options{
				Index:   idx,
				Convert: DefaultConvertOptions(),
				Format:  format,
			})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if result.Width != 64 || result.Height != 32 {
				t.Errorf("unexpected dimensions: %dx%d", result.Width, result.Height)
			}
			if result.SrcFormat != "png" || result.Format != format {
				t.Errorf("formats %s → %s", result.SrcFormat, result.Format)
			}
			if result.ColorsUsed < 2 || result.ColorsUsed > len(colors) {
				t.Errorf("colors used = %d", result.ColorsUsed)
			}

			dec, err := imgio.Decode(result.Data)
			if err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			verifyOutput(t, format, dec.Image, dec.Image, colors)

			t.Logf("%s: %d bytes, %d/%d colors", format, len(result.Data), result.ColorsUsed, len(colors))
		})
	}
}

func TestRunErrors(t *testing.T) {
	idx, err := palette.NewIndex([]color.RGB{{R: 0, G: 0, B: 0}})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	if _, err := Run(gradientPNG(t, 4, 4), Options{}); !errors.Is(err, palette.ErrEmptyPalette) {
		t.Errorf("missing index: %v", err)
	}
	if _, err := Run([]byte("garbage"), Options{Index: idx}); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Run(gradientPNG(t, 4, 4), Options{Index: idx, Format: "xcf"}); err == nil {
		t.Error("expected encode error")
	}
}

func TestRunDefaultsToPNG(t *testing.T) {
	idx, err := palette.NewIndex([]color.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	result, err := Run(gradientPNG(t, 8, 8), Options{Index: idx, Convert: DefaultConvertOptions()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Format != "png" {
		t.Errorf("format = %q", result.Format)
	}
	info, err := imgio.GetInfo(result.Data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Format != "png" || info.Palette != 2 {
		t.Errorf("expected 2-color indexed png, got %s with %d entries", info.Format, info.Palette)
	}
}
