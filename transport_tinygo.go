package gc9a01

import (
	"tinygo.org/x/drivers"
)

// Pin is an output line as exposed by TinyGo's machine.Pin.
type Pin interface {
	Set(high bool)
}

type tinygoTransport struct {
	bus drivers.SPI
	dc  Pin
	cs  Pin
	rst Pin
}

// NewTinyGoTransport returns a Transport over a TinyGo SPI bus.
//
// The bus must already be configured. cs and rst may be nil; both are active
// low.
func NewTinyGoTransport(bus drivers.SPI, dc, cs, rst Pin) Transport {
	return &tinygoTransport{bus: bus, dc: dc, cs: cs, rst: rst}
}

func (t *tinygoTransport) SetChipSelect(active bool) error {
	if t.cs != nil {
		t.cs.Set(!active)
	}
	return nil
}

func (t *tinygoTransport) SetCommandDataSelect(isData bool) error {
	t.dc.Set(isData)
	return nil
}

func (t *tinygoTransport) SetReset(active bool) error {
	if t.rst != nil {
		t.rst.Set(!active)
	}
	return nil
}

func (t *tinygoTransport) Transmit(b []byte) error {
	if len(b) == 1 {
		_, err := t.bus.Transfer(b[0])
		return err
	}
	return t.bus.Tx(b, nil)
}
