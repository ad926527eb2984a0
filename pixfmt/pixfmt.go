// Package pixfmt packs 24-bit RGB source pixels into the GC9A01 wire formats.
//
// Source buffers hold interleaved 8-bit triples. The ChannelOrder tells which
// byte of each triple is red and which is blue; green is always the middle
// byte. Packed buffers are in the controller's native layout for one of the
// three MCU interface formats (12, 16 or 18 bits per pixel).
package pixfmt

import (
	"errors"
	"fmt"
)

// Format is the pixel format of the MCU interface (COLMOD DBI bits).
type Format uint8

const (
	Bpp12 Format = iota + 1 // 4-4-4, two pixels per 3 bytes
	Bpp16                   // one pixel per 2 bytes
	Bpp18                   // one pixel per 3 bytes
)

func (f Format) String() string {
	switch f {
	case Bpp12:
		return "12bpp"
	case Bpp16:
		return "16bpp"
	case Bpp18:
		return "18bpp"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ChannelOrder is the byte order of the color channels in a source triple.
type ChannelOrder uint8

const (
	RGB ChannelOrder = iota // red at offset 0, blue at offset 2
	BGR                     // blue at offset 0, red at offset 2
)

func (o ChannelOrder) String() string {
	switch o {
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	}
	return fmt.Sprintf("ChannelOrder(%d)", uint8(o))
}

// offsets returns the byte offsets of red, green and blue in a source triple.
func (o ChannelOrder) offsets() (r, g, b int) {
	if o == BGR {
		return 2, 1, 0
	}
	return 0, 1, 2
}

var (
	// ErrUnsupportedFormat is returned for a Format outside Bpp12, Bpp16 and Bpp18.
	ErrUnsupportedFormat = errors.New("pixfmt: unsupported pixel format")
	// ErrUnsupportedOrder is returned for a ChannelOrder other than RGB or BGR.
	ErrUnsupportedOrder = errors.New("pixfmt: unsupported channel order")
	// ErrOddPixelCount is returned when a 12bpp buffer would end with half a pair.
	ErrOddPixelCount = errors.New("pixfmt: 12bpp needs an even pixel count")
	// ErrInvalidPixelCount is returned for negative pixel counts.
	ErrInvalidPixelCount = errors.New("pixfmt: invalid pixel count")
	// ErrShortBuffer is returned when src or dst is too small for the pixel count.
	ErrShortBuffer = errors.New("pixfmt: short buffer")
)

// BytesPerSourcePixel is the size of one interleaved RGB888 triple.
const BytesPerSourcePixel = 3

// PackedSize returns the number of wire bytes needed for pixelCount pixels.
//
// The result depends only on the arguments, never on pixel content.
func PackedSize(pixelCount int, f Format) (int, error) {
	if pixelCount < 0 {
		return 0, ErrInvalidPixelCount
	}
	switch f {
	case Bpp12:
		if pixelCount%2 != 0 {
			return 0, fmt.Errorf("%w: got %d", ErrOddPixelCount, pixelCount)
		}
		return pixelCount / 2 * 3, nil
	case Bpp16:
		return pixelCount * 2, nil
	case Bpp18:
		return pixelCount * 3, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// Pack converts pixelCount source pixels into a newly allocated wire buffer.
func Pack(src []byte, pixelCount int, f Format, order ChannelOrder) ([]byte, error) {
	p, err := NewPacker(f, order)
	if err != nil {
		return nil, err
	}
	size, err := PackedSize(pixelCount, f)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	if _, err := PackInto(dst, src, pixelCount, p); err != nil {
		return nil, err
	}
	return dst, nil
}

// PackInto packs pixelCount source pixels from src into dst and returns the
// number of bytes written.
//
// Chunks are consumed strictly left to right; output chunk i depends only on
// source chunk i.
func PackInto(dst, src []byte, pixelCount int, p Packer) (int, error) {
	size, err := PackedSize(pixelCount, p.Format())
	if err != nil {
		return 0, err
	}
	if len(src) < pixelCount*BytesPerSourcePixel {
		return 0, fmt.Errorf("%w: src has %d bytes, need %d", ErrShortBuffer, len(src), pixelCount*BytesPerSourcePixel)
	}
	if len(dst) < size {
		return 0, fmt.Errorf("%w: dst has %d bytes, need %d", ErrShortBuffer, len(dst), size)
	}
	in, out := 0, 0
	for out < size {
		c, n := p.Pack(dst[out:], src[in:])
		in += c
		out += n
	}
	return out, nil
}
