package image24bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/KalinD/gc9a01/pixfmt"
)

func TestNewRGB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x240", image.Rect(0, 0, 240, 240), 720, 172800},
		{"4x2", image.Rect(0, 0, 4, 2), 12, 24},
		{"1x1", image.Rect(0, 0, 1, 1), 3, 3},
		{"odd width", image.Rect(0, 0, 5, 2), 15, 30},
		{"offset rect", image.Rect(10, 20, 14, 22), 12, 24},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewRGB(tt.rect, pixfmt.RGB)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestRGBByteLayout(t *testing.T) {
	tests := []struct {
		name  string
		order pixfmt.ChannelOrder
		want  []byte
	}{
		{"rgb", pixfmt.RGB, []byte{0xFF, 0x00, 0x00, 0x00, 0x80, 0x40}},
		{"bgr", pixfmt.BGR, []byte{0x00, 0x00, 0xFF, 0x40, 0x80, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewRGB(image.Rect(0, 0, 2, 1), tt.order)
			img.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
			img.SetRGBA(1, 0, color.RGBA{G: 0x80, B: 0x40, A: 0xFF})

			for i, b := range tt.want {
				if img.Pix[i] != b {
					t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
				}
			}
		})
	}
}

func TestRGBSetGet(t *testing.T) {
	for _, order := range []pixfmt.ChannelOrder{pixfmt.RGB, pixfmt.BGR} {
		img := NewRGB(image.Rect(0, 0, 3, 2), order)
		want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
		img.SetRGBA(2, 1, want)

		if got := img.RGBAAt(2, 1); got != want {
			t.Errorf("%v: RGBAAt(2, 1) = %v, want %v", order, got, want)
		}
		if got, ok := img.At(2, 1).(color.RGBA); !ok || got != want {
			t.Errorf("%v: At(2, 1) = %v, want %v", order, img.At(2, 1), want)
		}
	}
}

func TestRGBSetConvertsColor(t *testing.T) {
	img := NewRGB(image.Rect(0, 0, 2, 1), pixfmt.RGB)

	img.Set(0, 0, color.White)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("After Set(0, 0, color.White), RGBAAt = %v", got)
	}

	img.Set(1, 0, color.Gray{Y: 0x80})
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0x80, 0x80, 0x80, 0xFF}) {
		t.Errorf("After Set(1, 0, Gray{0x80}), RGBAAt = %v", got)
	}
}

func TestRGBOutOfBounds(t *testing.T) {
	img := NewRGB(image.Rect(0, 0, 4, 4), pixfmt.RGB)

	if got := img.RGBAAt(-1, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(-1, 0) = %v, want zero", got)
	}
	if got := img.RGBAAt(4, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(4, 0) = %v, want zero", got)
	}

	img.SetRGBA(-1, 0, color.RGBA{R: 0xFF})
	img.SetRGBA(0, 4, color.RGBA{R: 0xFF})
	img.Set(4, 4, color.White)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds write changed Pix[%d] = 0x%02X", i, b)
		}
	}
}

func TestRGBOffsetRect(t *testing.T) {
	img := NewRGB(image.Rect(100, 50, 104, 52), pixfmt.RGB)
	img.SetRGBA(100, 50, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})

	if img.Pix[0] != 0x11 || img.Pix[1] != 0x22 || img.Pix[2] != 0x33 {
		t.Errorf("Pix[0:3] = % X, want 11 22 33", img.Pix[:3])
	}
	if off := img.PixOffset(101, 51); off != 15 {
		t.Errorf("PixOffset(101, 51) = %d, want 15", off)
	}
}

func TestRGBDraw(t *testing.T) {
	img := NewRGB(image.Rect(0, 0, 4, 4), pixfmt.BGR)
	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(color.RGBA{R: 0xAA, A: 0xFF}), image.Point{}, draw.Src)

	if got := img.RGBAAt(1, 1); got.R != 0xAA {
		t.Errorf("RGBAAt(1, 1).R = 0x%02X, want 0xAA", got.R)
	}
	if got := img.RGBAAt(0, 0); got.R != 0 {
		t.Errorf("RGBAAt(0, 0).R = 0x%02X, want 0", got.R)
	}
	// BGR keeps red in the last byte.
	if b := img.Pix[img.PixOffset(2, 2)+2]; b != 0xAA {
		t.Errorf("red byte = 0x%02X, want 0xAA", b)
	}
}

func TestRGBColorModel(t *testing.T) {
	img := NewRGB(image.Rect(0, 0, 1, 1), pixfmt.RGB)
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() did not return color.RGBAModel")
	}
	if img.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
}
