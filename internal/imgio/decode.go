// Package imgio decodes source images into RGBA buffers and encodes dithered
// results.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WEBP decoder

	"github.com/davesmith10/RGBtoIndexed/internal/ir"
)

// maxPixels bounds the size of images accepted for decoding.
const maxPixels = 100 * 1000 * 1000

// Decoded is a decoded source image.
type Decoded struct {
	Image  *ir.RGBAImage
	Format string // "png", "jpeg", "gif", "bmp", "tiff", "webp"
}

// Decode decodes any registered image format into a non-premultiplied RGBA
// buffer. Images with no pixels are rejected.
func Decode(data []byte) (*Decoded, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("image too large (%dx%d, max %d pixels)", cfg.Width, cfg.Height, maxPixels)
	}

	m, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return &Decoded{
		Image:  ir.FromImage(m),
		Format: format,
	}, nil
}
