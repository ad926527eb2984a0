package gc9a01

import (
	"fmt"
	"time"

	"github.com/KalinD/gc9a01/pixfmt"
)

// Command is one command/data transaction: a command byte, its parameters
// and an optional pause once the transaction has completed.
type Command struct {
	Cmd    byte
	Params []byte
	Delay  time.Duration
}

// Sequence selects the register table replayed by Initialize.
type Sequence uint8

const (
	// VendorSequence is the panel vendor's power-up table.
	VendorSequence Sequence = iota
	// AdafruitSequence is the shorter table shipped with Adafruit's GC9A01 driver.
	AdafruitSequence
)

func (s Sequence) String() string {
	switch s {
	case VendorSequence:
		return "vendor"
	case AdafruitSequence:
		return "adafruit"
	}
	return fmt.Sprintf("Sequence(%d)", uint8(s))
}

// colmodDBI returns the MCU interface bits of COLMOD for f.
func colmodDBI(f pixfmt.Format) (byte, error) {
	switch f {
	case pixfmt.Bpp12:
		return colmodDBI12, nil
	case pixfmt.Bpp16:
		return colmodDBI16, nil
	case pixfmt.Bpp18:
		return colmodDBI18, nil
	}
	return 0, fmt.Errorf("%w: %v", pixfmt.ErrUnsupportedFormat, f)
}

// commands returns the table for s. COLMOD and MADCTL are the only entries
// that depend on the session.
func (s Sequence) commands(f pixfmt.Format, madctl byte) ([]Command, error) {
	dbi, err := colmodDBI(f)
	if err != nil {
		return nil, err
	}
	switch s {
	case VendorSequence:
		return vendorCommands(dbi|colmodDPI16, madctl), nil
	case AdafruitSequence:
		return adafruitCommands(dbi, madctl), nil
	}
	return nil, fmt.Errorf("gc9a01: unknown init sequence %v", s)
}

func vendorCommands(colmod, madctl byte) []Command {
	return []Command{
		{Cmd: cmdSoftReset},
		{Cmd: 0xFE},
		{Cmd: 0xEF},
		{Cmd: 0xEB, Params: []byte{0x14}},
		{Cmd: 0x84, Params: []byte{0x60}},
		{Cmd: 0x85, Params: []byte{0xF7}},
		{Cmd: 0x86, Params: []byte{0xFC}},
		{Cmd: 0x87, Params: []byte{0x28}},
		{Cmd: 0x8E, Params: []byte{0x0F}},
		{Cmd: 0x8F, Params: []byte{0xFC}},
		{Cmd: 0x88, Params: []byte{0x0A}},
		{Cmd: 0x89, Params: []byte{0x21}},
		{Cmd: 0x8A, Params: []byte{0x00}},
		{Cmd: 0x8B, Params: []byte{0x80}},
		{Cmd: 0x8C, Params: []byte{0x01}},
		{Cmd: 0x8D, Params: []byte{0x03}},
		{Cmd: cmdDisplayFunc, Params: []byte{0x00, 0x00}},
		{Cmd: cmdMADCTL, Params: []byte{madctl}},
		{Cmd: cmdCOLMOD, Params: []byte{colmod}},
		{Cmd: 0x90, Params: []byte{0x08, 0x08, 0x08, 0x08}},
		{Cmd: cmdTearingCtrl, Params: []byte{0x01}},
		{Cmd: 0xBD, Params: []byte{0x06}},
		{Cmd: 0xBC, Params: []byte{0x00}},
		{Cmd: 0xFF, Params: []byte{0x60, 0x01, 0x04}},
		{Cmd: cmdPowerCtrl2, Params: []byte{0x48}},
		{Cmd: cmdPowerCtrl3, Params: []byte{0x48}},
		{Cmd: cmdPowerCtrl4, Params: []byte{0x25}},
		{Cmd: 0xBE, Params: []byte{0x11}},
		{Cmd: 0xE1, Params: []byte{0x10, 0x0E}},
		{Cmd: 0xDF, Params: []byte{0x21, 0x10, 0x02}},
		{Cmd: byte(Gamma1), Params: []byte{0x4B, 0x0F, 0x0A, 0x0B, 0x15, 0x30}},
		{Cmd: byte(Gamma2), Params: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
		{Cmd: byte(Gamma3), Params: []byte{0x4B, 0x0F, 0x0A, 0x0B, 0x15, 0x30}},
		{Cmd: byte(Gamma4), Params: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
		{Cmd: cmdTearScanline, Params: []byte{0x00, 0x00}},
		{Cmd: 0xED, Params: []byte{0x1B, 0x0B}},
		{Cmd: 0xAC, Params: []byte{0x47}},
		{Cmd: 0xAE, Params: []byte{0x77}},
		{Cmd: 0xCD, Params: []byte{0x63}},
		{Cmd: 0x70, Params: []byte{0x07, 0x09, 0x04, 0x0C, 0x0D, 0x09, 0x07, 0x08, 0x03}},
		{Cmd: cmdFrameRate, Params: []byte{0x34}},
		{Cmd: 0x60, Params: []byte{0x38, 0x0B, 0x76, 0x62, 0x39, 0xF0, 0x76, 0x62}},
		{Cmd: 0x61, Params: []byte{0x38, 0xF6, 0x76, 0x62, 0x38, 0xF7, 0x76, 0x62}},
		{Cmd: 0x62, Params: []byte{0x38, 0x0D, 0x71, 0xED, 0x76, 0x62, 0x38, 0x0F, 0x71, 0xEF, 0x76, 0x62}},
		{Cmd: 0x63, Params: []byte{0x38, 0x11, 0x71, 0xF1, 0x76, 0x62, 0x38, 0x13, 0x71, 0xF3, 0x76, 0x62}},
		{Cmd: 0x64, Params: []byte{0x3B, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x0A}},
		{Cmd: 0x66, Params: []byte{0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00}},
		{Cmd: 0x67, Params: []byte{0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98}},
		{Cmd: 0xB5, Params: []byte{0x08, 0x09, 0x14}},
		{Cmd: 0x74, Params: []byte{0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00}},
		{Cmd: 0x98, Params: []byte{0x3E, 0x07}},
		{Cmd: cmdNormalOn},
		{Cmd: cmdTearingOff},
		{Cmd: cmdIdleOff},
		// Panels in the field were brought up with this exact byte pair.
		{Cmd: cmdTearingOff, Params: []byte{0x00}},
		{Cmd: cmdInversionOn},
		{Cmd: cmdSleepOut, Delay: wakeDelay},
		{Cmd: cmdDisplayOn},
	}
}

func adafruitCommands(colmod, madctl byte) []Command {
	return []Command{
		{Cmd: 0xEF},
		{Cmd: 0xEB, Params: []byte{0x14}},
		{Cmd: 0xFE},
		{Cmd: 0xEF},
		{Cmd: 0xEB, Params: []byte{0x14}},
		{Cmd: 0x84, Params: []byte{0x40}},
		{Cmd: 0x85, Params: []byte{0xFF}},
		{Cmd: 0x86, Params: []byte{0xFF}},
		{Cmd: 0x87, Params: []byte{0xFF}},
		{Cmd: 0x88, Params: []byte{0x0A}},
		{Cmd: 0x89, Params: []byte{0x21}},
		{Cmd: 0x8A, Params: []byte{0x00}},
		{Cmd: 0x8B, Params: []byte{0x80}},
		{Cmd: 0x8C, Params: []byte{0x01}},
		{Cmd: 0x8D, Params: []byte{0x01}},
		{Cmd: 0x8E, Params: []byte{0xFF}},
		{Cmd: 0x8F, Params: []byte{0xFF}},
		{Cmd: cmdMADCTL, Params: []byte{madctl}},
		{Cmd: cmdCOLMOD, Params: []byte{colmod}},
		{Cmd: 0x90, Params: []byte{0x08, 0x08, 0x08, 0x08}},
		{Cmd: 0xBD, Params: []byte{0x06}},
		{Cmd: 0xBC, Params: []byte{0x00}},
		{Cmd: 0xFF, Params: []byte{0x60, 0x01, 0x04}},
		{Cmd: cmdPowerCtrl2, Params: []byte{0x13}},
		{Cmd: cmdPowerCtrl3, Params: []byte{0x13}},
		{Cmd: cmdPowerCtrl4, Params: []byte{0x22}},
		{Cmd: 0xBE, Params: []byte{0x11}},
		{Cmd: 0xE1, Params: []byte{0x10, 0x0E}},
		{Cmd: 0xDF, Params: []byte{0x21, 0x0C, 0x02}},
		{Cmd: byte(Gamma1), Params: []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}},
		{Cmd: byte(Gamma2), Params: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
		{Cmd: byte(Gamma3), Params: []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}},
		{Cmd: byte(Gamma4), Params: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
		{Cmd: 0xED, Params: []byte{0x1B, 0x0B}},
		{Cmd: 0xAE, Params: []byte{0x77}},
		{Cmd: 0xCD, Params: []byte{0x63}},
		{Cmd: cmdFrameRate, Params: []byte{0x34}},
		{Cmd: 0x62, Params: []byte{0x18, 0x0D, 0x71, 0xED, 0x70, 0x70, 0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70}},
		{Cmd: 0x63, Params: []byte{0x18, 0x11, 0x71, 0xF1, 0x70, 0x70, 0x18, 0x13, 0x71, 0xF3, 0x70, 0x70}},
		{Cmd: 0x64, Params: []byte{0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07}},
		{Cmd: 0x66, Params: []byte{0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00}},
		{Cmd: 0x67, Params: []byte{0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98}},
		{Cmd: 0x74, Params: []byte{0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00}},
		{Cmd: 0x98, Params: []byte{0x3E, 0x07}},
		{Cmd: cmdTearingOff, Params: []byte{0x00}},
		{Cmd: cmdInversionOn},
		{Cmd: cmdSleepOut, Delay: wakeDelay},
		{Cmd: cmdDisplayOn},
	}
}

// replay sends cmds in order, sleeping after each one that asks for it.
func (d *Dev) replay(cmds []Command) error {
	for i, c := range cmds {
		if err := d.send(c.Cmd, c.Params); err != nil {
			return fmt.Errorf("gc9a01: command %d (0x%02X): %w", i, c.Cmd, err)
		}
		if c.Delay > 0 {
			d.clock.Sleep(c.Delay)
		}
	}
	return nil
}
