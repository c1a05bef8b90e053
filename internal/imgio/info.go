package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo contains metadata about an encoded image.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	ColorModel string
	Palette    int // number of palette entries, 0 for direct-color images
}

// GetInfo reads image metadata without decoding the pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}

	info := &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: colorModelName(cfg.ColorModel),
	}
	if p, ok := cfg.ColorModel.(color.Palette); ok {
		info.Palette = len(p)
	}
	return info, nil
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	return fmt.Sprintf("%T", m)
}
