package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// Formats lists the supported output formats.
var Formats = []string{"png", "gif", "bmp", "tiff"}

// FormatFromPath maps a file extension to an output format. A path with no
// extension means png; an extension outside Formats returns "".
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".png", "":
		return "png"
	default:
		return ""
	}
}

// Encode writes a dithered image in the given format. When idx is non-nil
// and has at most 256 entries, png and gif output is written as an indexed
// image using idx's order; every pixel of m must then be a palette color.
// gif output requires such an index.
func Encode(m *ir.RGBAImage, format string, idx *palette.Index) ([]byte, error) {
	var paletted *image.Paletted
	if idx != nil && idx.Len() <= 256 {
		p, err := ToPaletted(m, idx)
		if err != nil {
			return nil, err
		}
		paletted = p
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png", "":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if paletted != nil {
			err = enc.Encode(&buf, paletted)
		} else {
			err = enc.Encode(&buf, m.Image())
		}
	case "gif":
		if paletted == nil {
			return nil, fmt.Errorf("gif output needs a palette of at most 256 colors")
		}
		err = gif.Encode(&buf, paletted, &gif.Options{NumColors: len(paletted.Palette)})
	case "bmp":
		err = bmp.Encode(&buf, m.Image())
	case "tiff":
		err = tiff.Encode(&buf, m.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
