package gc9a01

import "fmt"

// command sends a transaction after the halt check.
func (d *Dev) command(cmd byte, params ...byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(cmd, params)
}

// Sleep enters sleep mode and waits for the supply circuits to settle.
// Memory contents are kept.
func (d *Dev) Sleep() error {
	if err := d.command(cmdSleepIn); err != nil {
		return err
	}
	d.clock.Sleep(sleepDelay)
	return nil
}

// WakeUp leaves sleep mode.
func (d *Dev) WakeUp() error {
	return d.command(cmdSleepOut)
}

// PartialMode restricts the display to the rows set by SetPartialArea.
func (d *Dev) PartialMode() error {
	return d.command(cmdPartialOn)
}

// NormalMode leaves partial mode.
func (d *Dev) NormalMode() error {
	return d.command(cmdNormalOn)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.command(cmdInversionOn)
	}
	return d.command(cmdInversionOff)
}

// DisplayOn enables output from panel memory.
func (d *Dev) DisplayOn() error {
	return d.command(cmdDisplayOn)
}

// DisplayOff blanks the panel without touching memory.
func (d *Dev) DisplayOff() error {
	return d.command(cmdDisplayOff)
}

// Idle switches idle mode, which reduces color depth to 8 colors.
func (d *Dev) Idle(on bool) error {
	if on {
		return d.command(cmdIdleOn)
	}
	return d.command(cmdIdleOff)
}

// TearingEffectOn enables the TE output line. With hBlank set the line
// also pulses on horizontal blanking.
func (d *Dev) TearingEffectOn(hBlank bool) error {
	var mode byte
	if hBlank {
		mode = 0x01
	}
	return d.command(cmdTearingOn, mode)
}

// TearingEffectOff disables the TE output line.
func (d *Dev) TearingEffectOff() error {
	return d.command(cmdTearingOff)
}

// SetTearScanline makes TE fire when the panel reaches line. Values up to
// 0x1FF are accepted; line 8 maps to gate 1.
func (d *Dev) SetTearScanline(line int) error {
	if line < 0 || line > 0x1FF {
		return fmt.Errorf("%w: tear scanline %d", ErrOutOfRange, line)
	}
	return d.command(cmdTearScanline, be16(line)...)
}

// SetVerticalScrollArea splits the panel into a top fixed area of topFixed
// lines followed by scrollLines scrolling lines. The rest is the bottom
// fixed area.
func (d *Dev) SetVerticalScrollArea(topFixed, scrollLines int) error {
	if d.halted {
		return ErrHalted
	}
	if topFixed < 0 || scrollLines < 0 || topFixed+scrollLines > Height {
		return fmt.Errorf("%w: scroll area top=%d lines=%d", ErrInvalidRegion, topFixed, scrollLines)
	}
	return d.send(cmdVScrollDef, be16(topFixed, scrollLines))
}

// SetVerticalScrollStart sets the memory line shown right after the top
// fixed area.
func (d *Dev) SetVerticalScrollStart(line int) error {
	if d.halted {
		return ErrHalted
	}
	if line < 0 || line >= Height {
		return fmt.Errorf("%w: scroll start %d", ErrInvalidRegion, line)
	}
	return d.send(cmdVScrollStart, be16(line))
}

// SetPartialArea selects the rows shown in partial mode. startRow may be
// greater than endRow, in which case the area wraps around the panel.
func (d *Dev) SetPartialArea(startRow, endRow int) error {
	if d.halted {
		return ErrHalted
	}
	if startRow < 0 || endRow < 0 || startRow >= Height || endRow >= Height {
		return fmt.Errorf("%w: partial rows %d-%d", ErrInvalidRegion, startRow, endRow)
	}
	return d.send(cmdPartialArea, be16(startRow, endRow))
}
