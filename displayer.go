package gc9a01

import (
	"fmt"
	"image/color"

	"github.com/KalinD/gc9a01/image24bit"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Dev)(nil)

// Size returns the panel size. The panel is square, so rotation never
// changes it.
func (d *Dev) Size() (x, y int16) {
	return Width, Height
}

// SetPixel modifies the internal buffer. Call Display to send it.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.framebuffer().SetRGBA(int(x), int(y), c)
}

// Display sends the internal buffer to the panel.
func (d *Dev) Display() error {
	return d.WriteImage(d.framebuffer().Pix, 0, 0, Width, Height)
}

func (d *Dev) framebuffer() *image24bit.RGB {
	if d.fb == nil {
		d.fb = image24bit.NewRGB(d.rect, d.order)
	}
	return d.fb
}

// FillRectangle paints a rectangle directly on the panel. The internal
// buffer is updated too, so a later Display keeps the rectangle.
func (d *Dev) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if err := d.FillArea(c.R, c.G, c.B, int(x), int(y), int(width), int(height)); err != nil {
		return err
	}
	if d.fb != nil {
		for py := int(y); py < int(y)+int(height); py++ {
			for px := int(x); px < int(x)+int(width); px++ {
				d.fb.SetRGBA(px, py, c)
			}
		}
	}
	return nil
}

// SetRotation rotates the panel clockwise through the memory access control
// register. Mirrored rotations are not supported.
func (d *Dev) SetRotation(rotation drivers.Rotation) error {
	var madctl byte
	switch rotation {
	case drivers.Rotation0:
		madctl = MADCTLMX
	case drivers.Rotation90:
		madctl = MADCTLMV
	case drivers.Rotation180:
		madctl = MADCTLMY
	case drivers.Rotation270:
		madctl = MADCTLMY | MADCTLMX | MADCTLMV
	default:
		return fmt.Errorf("%w: rotation %d", ErrOutOfRange, rotation)
	}
	return d.SetMemoryAccessControl(madctl)
}

// Rotation returns the current rotation. Only the orientation bits of
// MADCTL are considered.
func (d *Dev) Rotation() drivers.Rotation {
	switch d.madctl & (MADCTLMY | MADCTLMX | MADCTLMV) {
	case MADCTLMV:
		return drivers.Rotation90
	case MADCTLMY:
		return drivers.Rotation180
	case MADCTLMY | MADCTLMX | MADCTLMV:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}

// SetScroll sets the first scrolled line. Errors are logged, since the
// TinyGo display interface has no way to return them.
func (d *Dev) SetScroll(line int16) {
	if err := d.SetVerticalScrollStart(int(line)); err != nil {
		d.log.Debug().Err(err).Int16("line", line).Msg("scroll failed")
	}
}
