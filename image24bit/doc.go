// Package image24bit provides a 24-bit interleaved image format for the GC9A01 display driver.
//
// The GC9A01 driver takes its source pixels as one byte per channel, three
// bytes per pixel, rows packed back to back. Whether red or blue comes first
// is set by the image's channel order; green is always the middle byte.
//
// Memory layout example for a 2-pixel row in RGB order:
//
//	Pixels: 0                 1
//	Colors: red (FF,00,00)    teal (00,80,80)
//	Bytes:  FF 00 00          00 80 80
//
// The same row in BGR order:
//
//	Bytes:  00 00 FF          80 80 00
//
// This package provides:
//
// - RGB: a draw.Image implementation whose Pix is ready for pixfmt.Pack
//
// Example usage:
//
//	// Create a full panel image
//	img := image24bit.NewRGB(image.Rect(0, 0, 240, 240), pixfmt.RGB)
//
//	// Set a pixel
//	img.SetRGBA(10, 20, color.RGBA{R: 0xFF, A: 0xFF})
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
//
//	// Send it to the panel
//	dev.WriteImage(img.Pix, 0, 0, 240, 240)
package image24bit
