package imgio

import (
	"fmt"
	"image"
	imgcolor "image/color"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

// ToPaletted converts an image whose pixels are all palette colors into an
// *image.Paletted using idx's order. Duplicate palette colors map to their
// first occurrence.
func ToPaletted(m *ir.RGBAImage, idx *palette.Index) (*image.Paletted, error) {
	if idx.Len() > 256 {
		return nil, fmt.Errorf("palette has %d colors, indexed output supports at most 256", idx.Len())
	}

	pal := make(imgcolor.Palette, idx.Len())
	lookup := make(map[color.RGB]uint8, idx.Len())
	for i, c := range idx.Colors() {
		pal[i] = imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		if _, seen := lookup[c]; !seen {
			lookup[c] = uint8(i)
		}
	}

	out := image.NewPaletted(image.Rect(0, 0, m.Width, m.Height), pal)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.At(x, y)
			i, ok := lookup[c]
			if !ok {
				return nil, fmt.Errorf("pixel (%d,%d) color %v is not in the palette", x, y, c)
			}
			out.SetColorIndex(x, y, i)
		}
	}
	return out, nil
}
