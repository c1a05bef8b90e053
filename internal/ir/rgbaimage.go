package ir

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

// RGBAImage is the pixel buffer passed between decoding, dithering and
// encoding. Pixels are stored as interleaved R,G,B,A bytes (4 bytes per
// pixel, row-major order).
type RGBAImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 4
}

// NewRGBAImage allocates a zeroed buffer of the given size.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
}

// FromBytes wraps externally supplied RGBA bytes after checking that they
// match the stated dimensions. The slice is used as is, not copied.
func FromBytes(pixels []byte, width, height int) (*RGBAImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	expected := width * height * 4
	if len(pixels) != expected {
		return nil, fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pixels))
	}
	return &RGBAImage{Width: width, Height: height, Pixels: pixels}, nil
}

// FromImage copies any image.Image into a new buffer. The copy is
// non-premultiplied, so fully transparent pixels come out black.
func FromImage(src image.Image) *RGBAImage {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &RGBAImage{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: dst.Pix,
	}
}

// Image exposes the buffer as an *image.RGBA sharing the same pixel memory.
// Every pixel written by Set is opaque, so the premultiplied and straight
// interpretations coincide.
func (m *RGBAImage) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    m.Pixels,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// Clone returns a deep copy of m.
func (m *RGBAImage) Clone() *RGBAImage {
	px := make([]byte, len(m.Pixels))
	copy(px, m.Pixels)
	return &RGBAImage{Width: m.Width, Height: m.Height, Pixels: px}
}

// At returns the RGB value at (x, y); alpha is ignored.
func (m *RGBAImage) At(x, y int) color.RGB {
	off := m.offset(x, y)
	return color.RGB{R: m.Pixels[off], G: m.Pixels[off+1], B: m.Pixels[off+2]}
}

// Set writes c at (x, y) and marks the pixel fully opaque.
func (m *RGBAImage) Set(x, y int, c color.RGB) {
	off := m.offset(x, y)
	m.Pixels[off] = c.R
	m.Pixels[off+1] = c.G
	m.Pixels[off+2] = c.B
	m.Pixels[off+3] = 255
}

// offset panics on coordinates outside the image: callers only ever pass
// positions derived from the image's own bounds, so a miss is a bug.
func (m *RGBAImage) offset(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		panic(fmt.Sprintf("ir: pixel (%d,%d) out of bounds for %dx%d image", x, y, m.Width, m.Height))
	}
	return (y*m.Width + x) * 4
}
