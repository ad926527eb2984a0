package gc9a01

import "fmt"

// SetBrightness writes the display brightness register. How the value maps
// to backlight output depends on the module.
func (d *Dev) SetBrightness(level uint8) error {
	return d.command(cmdBrightness, level)
}

// SetCTRLDisplay writes the CTRL Display register; combine the CTRL* bits.
func (d *Dev) SetCTRLDisplay(opts uint8) error {
	return d.command(cmdCTRLDisplay, opts)
}

// SetMemoryAccessControl writes MADCTL directly; combine the MADCTL* bits.
// SetRotation is the usual way to change it.
func (d *Dev) SetMemoryAccessControl(v uint8) error {
	if err := d.command(cmdMADCTL, v); err != nil {
		return err
	}
	d.madctl = v
	return nil
}

// SetDisplayFunctionControl writes the GS and SS bits of the display
// function control register. The leading parameter byte is required by the
// controller but ignored.
func (d *Dev) SetDisplayFunctionControl(v uint8) error {
	return d.command(cmdDisplayFunc, 0x00, v)
}

// SetTearingEffectControl sets TE polarity and pulse width. width uses the
// low 7 bits.
func (d *Dev) SetTearingEffectControl(negative bool, width uint8) error {
	v := width & 0x7F
	if negative {
		v |= 0x80
	}
	return d.command(cmdTearingCtrl, v)
}

// SetInterfaceControl writes the interface control register. Bits 7:6 are
// always set and bits 5:4 always cleared.
func (d *Dev) SetInterfaceControl(v uint8) error {
	return d.command(cmdInterfaceCtrl, (v|0xC0)&^0x30)
}

// Display inversion modes for SetFrameRate.
const (
	ColumnInversion   = 0x00
	OneDotInversion   = 0x10
	TwoDotInversion   = 0x20
	FourDotInversion  = 0x30
	EightDotInversion = 0x40
)

// SetFrameRate sets the display inversion mode. Bit 2 is always set; the
// panel renders incorrectly without it.
func (d *Dev) SetFrameRate(v uint8) error {
	return d.command(cmdFrameRate, v|0x04)
}

// SetPowerControl1 selects the external (true) or internal 2.5V (false)
// reference voltage.
func (d *Dev) SetPowerControl1(externalRef bool) error {
	var v byte
	if externalRef {
		v = 0b10
	}
	return d.command(cmdPowerCtrl1, v)
}

// SetPowerControl2 sets vbp_d, the VREG1A/VREG1B reference level.
func (d *Dev) SetPowerControl2(v uint8) error {
	return d.command(cmdPowerCtrl2, v)
}

// SetPowerControl3 sets vbn_d, the VREG2A/VREG2B reference level.
func (d *Dev) SetPowerControl3(v uint8) error {
	return d.command(cmdPowerCtrl3, v)
}

// SetPowerControl4 sets vrh.
func (d *Dev) SetPowerControl4(v uint8) error {
	return d.command(cmdPowerCtrl4, v)
}

// SetPowerControl7 sets the VCORE level.
func (d *Dev) SetPowerControl7(v uint8) error {
	return d.command(cmdPowerCtrl7, v)
}

// SetGamma writes one of the four gamma tables.
func (d *Dev) SetGamma(reg GammaRegister, values [6]byte) error {
	if reg < Gamma1 || reg > Gamma4 {
		return fmt.Errorf("%w: gamma register 0x%02X", ErrOutOfRange, byte(reg))
	}
	return d.command(byte(reg), values[:]...)
}
