// Package image24bit provides the interleaved 24-bit source image fed to the GC9A01 pixel codec.
//
// Each pixel is three bytes, one per channel, in the order given by the
// image's pixfmt.ChannelOrder. Rows are packed with no padding, so Pix of a
// full image is exactly the source buffer expected by pixfmt.Pack.
package image24bit

import (
	"image"
	"image/color"

	"github.com/KalinD/gc9a01/pixfmt"
)

// RGB is an image whose pixels are stored as interleaved 8-bit channel triples.
type RGB struct {
	Pix    []byte              // Pixel data (3 bytes per pixel)
	Stride int                 // Bytes per row
	Rect   image.Rectangle     // Image bounds
	Order  pixfmt.ChannelOrder // Byte order within each pixel
}

// NewRGB creates a new RGB image with the specified bounds and channel order.
func NewRGB(r image.Rectangle, order pixfmt.ChannelOrder) *RGB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &RGB{Rect: r, Order: order}
	}
	stride := w * pixfmt.BytesPerSourcePixel
	return &RGB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
		Order:  order,
	}
}

// ColorModel returns the color model of the image.
func (p *RGB) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the image bounds.
func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the opaque color of the pixel at (x, y).
func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	ri, bi := p.channelOffsets()
	return color.RGBA{R: p.Pix[i+ri], G: p.Pix[i+1], B: p.Pix[i+bi], A: 0xFF}
}

// Set sets the color of the pixel at (x, y). Alpha is dropped.
func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA sets the pixel at (x, y) without going through a color model.
func (p *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	ri, bi := p.channelOffsets()
	p.Pix[i+ri] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+bi] = c.B
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*pixfmt.BytesPerSourcePixel
}

// channelOffsets returns where red and blue live inside a pixel.
func (p *RGB) channelOffsets() (r, b int) {
	if p.Order == pixfmt.BGR {
		return 2, 0
	}
	return 0, 2
}
