package gc9a01

import (
	"testing"
	"time"

	"github.com/KalinD/gc9a01/internal/fakebus"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCommands(t *testing.T) {
	tests := []struct {
		name string
		op   func(d *Dev) error
		want fakebus.Transaction
	}{
		{"WakeUp", (*Dev).WakeUp, tx(0x11)},
		{"PartialMode", (*Dev).PartialMode, tx(0x12)},
		{"NormalMode", (*Dev).NormalMode, tx(0x13)},
		{"Invert off", func(d *Dev) error { return d.Invert(false) }, tx(0x20)},
		{"Invert on", func(d *Dev) error { return d.Invert(true) }, tx(0x21)},
		{"DisplayOff", (*Dev).DisplayOff, tx(0x28)},
		{"DisplayOn", (*Dev).DisplayOn, tx(0x29)},
		{"Idle off", func(d *Dev) error { return d.Idle(false) }, tx(0x38)},
		{"Idle on", func(d *Dev) error { return d.Idle(true) }, tx(0x39)},
		{"TearingEffectOff", (*Dev).TearingEffectOff, tx(0x34)},
		{"TearingEffectOn vblank", func(d *Dev) error { return d.TearingEffectOn(false) }, tx(0x35, 0x00)},
		{"TearingEffectOn hblank", func(d *Dev) error { return d.TearingEffectOn(true) }, tx(0x35, 0x01)},
		{"SetTearScanline", func(d *Dev) error { return d.SetTearScanline(0x108) }, tx(0x44, 0x01, 0x08)},
		{"SetVerticalScrollArea", func(d *Dev) error { return d.SetVerticalScrollArea(20, 200) }, tx(0x33, 0x00, 0x14, 0x00, 0xC8)},
		{"SetVerticalScrollStart", func(d *Dev) error { return d.SetVerticalScrollStart(239) }, tx(0x37, 0x00, 0xEF)},
		{"SetPartialArea", func(d *Dev) error { return d.SetPartialArea(10, 100) }, tx(0x30, 0x00, 0x0A, 0x00, 0x64)},
		{"SetPartialArea wraps", func(d *Dev) error { return d.SetPartialArea(200, 20) }, tx(0x30, 0x00, 0xC8, 0x00, 0x14)},
		{"SendCommand", func(d *Dev) error { return d.SendCommand(0xAB, 0x01, 0x02) }, tx(0xAB, 0x01, 0x02)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDev(t, nil)
			require.NoError(t, tt.op(dev))
			assert.Equal(t, []fakebus.Transaction{tt.want}, rec.Transactions())
		})
	}
}

func TestZeroParameterCommandSelectsData(t *testing.T) {
	dev, rec := newTestDev(t, nil)
	require.NoError(t, dev.DisplayOn())

	var sawData bool
	for _, e := range rec.Events {
		if e.Kind == fakebus.CommandData && e.Level {
			sawData = true
		}
	}
	assert.True(t, sawData)
}

func TestSleep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	dev, rec := newTestDev(t, &Opts{Clock: clock})

	require.NoError(t, runWithClock(t, clock, []time.Duration{5 * time.Millisecond}, dev.Sleep))
	assert.Equal(t, []fakebus.Transaction{tx(0x10)}, rec.Transactions())
}

func TestModeRangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		op      func(d *Dev) error
		wantErr error
	}{
		{"scroll area too tall", func(d *Dev) error { return d.SetVerticalScrollArea(100, 141) }, ErrInvalidRegion},
		{"scroll area negative", func(d *Dev) error { return d.SetVerticalScrollArea(-1, 10) }, ErrInvalidRegion},
		{"scroll start past end", func(d *Dev) error { return d.SetVerticalScrollStart(240) }, ErrInvalidRegion},
		{"partial row past end", func(d *Dev) error { return d.SetPartialArea(0, 240) }, ErrInvalidRegion},
		{"partial row negative", func(d *Dev) error { return d.SetPartialArea(-1, 10) }, ErrInvalidRegion},
		{"tear scanline too large", func(d *Dev) error { return d.SetTearScanline(0x200) }, ErrOutOfRange},
		{"tear scanline negative", func(d *Dev) error { return d.SetTearScanline(-1) }, ErrOutOfRange},
		{"gamma register", func(d *Dev) error { return d.SetGamma(GammaRegister(0xEF), [6]byte{}) }, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDev(t, nil)
			assert.ErrorIs(t, tt.op(dev), tt.wantErr)
			assert.Zero(t, rec.Calls())
		})
	}
}

func TestRegisterSetters(t *testing.T) {
	tests := []struct {
		name string
		op   func(d *Dev) error
		want fakebus.Transaction
	}{
		{"SetBrightness", func(d *Dev) error { return d.SetBrightness(0x7F) }, tx(0x51, 0x7F)},
		{"SetCTRLDisplay", func(d *Dev) error { return d.SetCTRLDisplay(CTRLBrightnessControl | CTRLBacklight) }, tx(0x53, 0x24)},
		{"SetMemoryAccessControl", func(d *Dev) error { return d.SetMemoryAccessControl(MADCTLMX | MADCTLBGR) }, tx(0x36, 0x48)},
		{"SetDisplayFunctionControl", func(d *Dev) error { return d.SetDisplayFunctionControl(0x60) }, tx(0xB6, 0x00, 0x60)},
		{"SetTearingEffectControl", func(d *Dev) error { return d.SetTearingEffectControl(false, 0x01) }, tx(0xBA, 0x01)},
		{"SetTearingEffectControl negative", func(d *Dev) error { return d.SetTearingEffectControl(true, 0xFF) }, tx(0xBA, 0xFF)},
		{"SetInterfaceControl forces bits", func(d *Dev) error { return d.SetInterfaceControl(0x3F) }, tx(0xF6, 0xCF)},
		{"SetInterfaceControl zero", func(d *Dev) error { return d.SetInterfaceControl(0x00) }, tx(0xF6, 0xC0)},
		{"SetFrameRate", func(d *Dev) error { return d.SetFrameRate(FourDotInversion) }, tx(0xE8, 0x34)},
		{"SetFrameRate column", func(d *Dev) error { return d.SetFrameRate(ColumnInversion) }, tx(0xE8, 0x04)},
		{"SetPowerControl1 internal", func(d *Dev) error { return d.SetPowerControl1(false) }, tx(0xC1, 0x00)},
		{"SetPowerControl1 external", func(d *Dev) error { return d.SetPowerControl1(true) }, tx(0xC1, 0x02)},
		{"SetPowerControl2", func(d *Dev) error { return d.SetPowerControl2(0x13) }, tx(0xC3, 0x13)},
		{"SetPowerControl3", func(d *Dev) error { return d.SetPowerControl3(0x14) }, tx(0xC4, 0x14)},
		{"SetPowerControl4", func(d *Dev) error { return d.SetPowerControl4(0x22) }, tx(0xC9, 0x22)},
		{"SetPowerControl7", func(d *Dev) error { return d.SetPowerControl7(0x05) }, tx(0xA7, 0x05)},
		{
			"SetGamma",
			func(d *Dev) error { return d.SetGamma(Gamma3, [6]byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}) },
			tx(0xF2, 0x45, 0x09, 0x08, 0x08, 0x26, 0x2A),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDev(t, nil)
			require.NoError(t, tt.op(dev))
			assert.Equal(t, []fakebus.Transaction{tt.want}, rec.Transactions())
		})
	}
}
