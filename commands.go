package gc9a01

import "time"

// Command codes understood by the controller.
const (
	cmdSoftReset     = 0x01
	cmdSleepIn       = 0x10
	cmdSleepOut      = 0x11
	cmdPartialOn     = 0x12
	cmdNormalOn      = 0x13
	cmdInversionOff  = 0x20
	cmdInversionOn   = 0x21
	cmdDisplayOff    = 0x28
	cmdDisplayOn     = 0x29
	cmdColumnAddr    = 0x2A
	cmdRowAddr       = 0x2B
	cmdMemoryWrite   = 0x2C
	cmdPartialArea   = 0x30
	cmdVScrollDef    = 0x33
	cmdTearingOff    = 0x34
	cmdTearingOn     = 0x35
	cmdMADCTL        = 0x36
	cmdVScrollStart  = 0x37
	cmdIdleOff       = 0x38
	cmdIdleOn        = 0x39
	cmdCOLMOD        = 0x3A
	cmdTearScanline  = 0x44
	cmdBrightness    = 0x51
	cmdCTRLDisplay   = 0x53
	cmdRGBInterface  = 0xB0
	cmdDisplayFunc   = 0xB6
	cmdTearingCtrl   = 0xBA
	cmdPowerCtrl1    = 0xC1
	cmdPowerCtrl2    = 0xC3
	cmdPowerCtrl3    = 0xC4
	cmdPowerCtrl4    = 0xC9
	cmdPowerCtrl7    = 0xA7
	cmdFrameRate     = 0xE8
	cmdInterfaceCtrl = 0xF6
)

// MADCTL (memory access control) bits.
const (
	MADCTLMY  = 0x80 // row address order
	MADCTLMX  = 0x40 // column address order
	MADCTLMV  = 0x20 // row/column exchange
	MADCTLML  = 0x10 // vertical refresh order
	MADCTLBGR = 0x08 // BGR panel order
	MADCTLMH  = 0x04 // horizontal refresh order
)

// COLMOD bits. The DBI field selects the MCU interface format, the DPI field
// the RGB interface format.
const (
	colmodDPI16 = 0x50
	colmodDPI18 = 0x60

	colmodDBI12 = 0x03
	colmodDBI16 = 0x05
	colmodDBI18 = 0x06
)

// GammaRegister selects one of the four gamma correction tables.
type GammaRegister byte

const (
	Gamma1 GammaRegister = 0xF0
	Gamma2 GammaRegister = 0xF1
	Gamma3 GammaRegister = 0xF2
	Gamma4 GammaRegister = 0xF3
)

// Bits of the CTRL Display register (0x53).
const (
	CTRLBrightnessControl = 0x20
	CTRLDisplayDimming    = 0x08
	CTRLBacklight         = 0x04
)

const (
	resetDelay = 120 * time.Millisecond
	wakeDelay  = 120 * time.Millisecond
	sleepDelay = 5 * time.Millisecond
)
