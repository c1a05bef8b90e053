package imgio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

func testImage(t *testing.T) (*ir.RGBAImage, *palette.Index) {
	t.Helper()
	colors := []color.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 0}}
	idx, err := palette.NewIndex(colors)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	m := ir.NewRGBAImage(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			m.Set(x, y, colors[(x+y)%3])
		}
	}
	return m, idx
}

func TestEncodeDecodeLossless(t *testing.T) {
	m, idx := testImage(t)

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(m, format, idx)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			dec, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if dec.Format != format {
				t.Errorf("format = %q, want %q", dec.Format, format)
			}
			if !bytes.Equal(dec.Image.Pixels, m.Pixels) {
				t.Errorf("pixels changed:\n got %v\nwant %v", dec.Image.Pixels, m.Pixels)
			}
		})
	}
}

func TestEncodeIndexedPNG(t *testing.T) {
	m, idx := testImage(t)

	data, err := Encode(m, "png", idx)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.ColorModel != "Paletted" || info.Palette != idx.Len() {
		t.Errorf("expected indexed PNG with %d entries, got %s with %d", idx.Len(), info.ColorModel, info.Palette)
	}
	if info.Width != 3 || info.Height != 2 {
		t.Errorf("unexpected dimensions: %dx%d", info.Width, info.Height)
	}

	direct, err := Encode(m, "png", nil)
	if err != nil {
		t.Fatalf("Encode without palette: %v", err)
	}
	info, err = GetInfo(direct)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Palette != 0 {
		t.Errorf("direct-color PNG reported %d palette entries", info.Palette)
	}
}

func TestToPaletted(t *testing.T) {
	m, idx := testImage(t)

	p, err := ToPaletted(m, idx)
	if err != nil {
		t.Fatalf("ToPaletted: %v", err)
	}
	// Black is listed twice; the first occurrence wins.
	if got := p.ColorIndexAt(0, 0); got != 0 {
		t.Errorf("black mapped to index %d, want 0", got)
	}
	if got := p.ColorIndexAt(2, 0); got != 2 {
		t.Errorf("red mapped to index %d, want 2", got)
	}

	m.Set(1, 1, color.RGB{R: 1, G: 2, B: 3})
	if _, err := ToPaletted(m, idx); err == nil {
		t.Error("expected error for color outside the palette")
	}
	if _, err := Encode(m, "gif", idx); err == nil {
		t.Error("expected gif encoding to fail for color outside the palette")
	}
	if _, err := Encode(m, "gif", nil); err == nil {
		t.Error("expected gif encoding to fail without a palette")
	}
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	// A GIF logical screen of 65535x65535 with no color table: the header
	// alone is enough for DecodeConfig.
	header := []byte{'G', 'I', 'F', '8', '9', 'a', 0xff, 0xff, 0xff, 0xff, 0, 0, 0}
	_, err := Decode(header)
	if err == nil {
		t.Fatal("expected error for 65535x65535 image")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
	if _, err := GetInfo(nil); err == nil {
		t.Error("expected error for empty input")
	}
	m, _ := testImage(t)
	if _, err := Encode(m, "jpeg2000", nil); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.png": "png",
		"OUT.GIF": "gif",
		"a/b.bmp": "bmp",
		"x.tif":   "tiff",
		"x.tiff":  "tiff",
		"noext":   "png",
		"x.jpeg":  "",
		"x.webp":  "",
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
