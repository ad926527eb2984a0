package gc9a01

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Transport drives the four lines of the controller's serial interface.
//
// Every method reports whether the underlying hardware accepted the request.
// Implementations must not buffer: a call returns once the line has changed
// or the bytes have been clocked out.
type Transport interface {
	// SetChipSelect asserts (true) or releases (false) chip select.
	SetChipSelect(active bool) error
	// SetCommandDataSelect selects data (true) or command (false) mode.
	SetCommandDataSelect(isData bool) error
	// SetReset asserts (true) or releases (false) the reset line.
	SetReset(active bool) error
	// Transmit writes b to the bus.
	Transmit(b []byte) error
}

// writeCycle sends one command byte followed by its parameters.
//
// Chip select is released on every path once it has been asserted. When
// several steps fail the first error is returned.
func writeCycle(t Transport, cmd byte, params []byte) (err error) {
	if err := t.SetReset(false); err != nil {
		return err
	}
	if err := t.SetChipSelect(true); err != nil {
		return err
	}
	defer func() {
		if cerr := t.SetChipSelect(false); err == nil {
			err = cerr
		}
	}()
	if err := t.SetCommandDataSelect(false); err != nil {
		return err
	}
	if err := t.Transmit([]byte{cmd}); err != nil {
		return err
	}
	if err := t.SetCommandDataSelect(true); err != nil {
		return err
	}
	if len(params) > 0 {
		return t.Transmit(params)
	}
	return nil
}

// defaultMaxTxSize is used when the connection does not report a limit.
const defaultMaxTxSize = 4096

type periphTransport struct {
	c     conn.Conn
	dc    gpio.PinOut
	cs    gpio.PinOut
	rst   gpio.PinOut
	maxTx int
}

// NewPeriphTransport returns a Transport over a periph connection.
//
// dc is required. cs and rst may be nil when chip select is driven by the SPI
// controller or the reset line is not wired. Both are active low.
func NewPeriphTransport(c conn.Conn, dc, cs, rst gpio.PinOut) Transport {
	maxTx := defaultMaxTxSize
	if l, ok := c.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 {
			maxTx = n
		}
	}
	return &periphTransport{c: c, dc: dc, cs: cs, rst: rst, maxTx: maxTx}
}

func (p *periphTransport) SetChipSelect(active bool) error {
	if p.cs == nil {
		return nil
	}
	if err := p.cs.Out(activeLow(active)); err != nil {
		return fmt.Errorf("gc9a01: failed to drive CS: %w", err)
	}
	return nil
}

func (p *periphTransport) SetCommandDataSelect(isData bool) error {
	if err := p.dc.Out(gpio.Level(isData)); err != nil {
		return fmt.Errorf("gc9a01: failed to drive DC: %w", err)
	}
	return nil
}

func (p *periphTransport) SetReset(active bool) error {
	if p.rst == nil {
		return nil
	}
	if err := p.rst.Out(activeLow(active)); err != nil {
		return fmt.Errorf("gc9a01: failed to drive RST: %w", err)
	}
	return nil
}

// Transmit splits b into writes no larger than the connection accepts.
func (p *periphTransport) Transmit(b []byte) error {
	for len(b) > 0 {
		n := min(len(b), p.maxTx)
		if err := p.c.Tx(b[:n], nil); err != nil {
			return fmt.Errorf("gc9a01: failed to transmit: %w", err)
		}
		b = b[n:]
	}
	return nil
}

func (p *periphTransport) String() string {
	return fmt.Sprintf("periph(%s)", p.c)
}

func activeLow(active bool) gpio.Level {
	return gpio.Level(!active)
}
