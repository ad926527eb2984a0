// Package fakebus records the line changes and writes a display driver makes,
// for use in tests.
package fakebus

import (
	"bytes"
	"fmt"
)

// Kind identifies a recorded call.
type Kind uint8

const (
	ChipSelect Kind = iota + 1
	CommandData
	Reset
	Transmit
)

func (k Kind) String() string {
	switch k {
	case ChipSelect:
		return "cs"
	case CommandData:
		return "dc"
	case Reset:
		return "rst"
	case Transmit:
		return "tx"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is one recorded call. Level is set for line changes, Data for
// transmits.
type Event struct {
	Kind  Kind
	Level bool
	Data  []byte
}

func (e Event) String() string {
	if e.Kind == Transmit {
		return fmt.Sprintf("tx[% X]", e.Data)
	}
	return fmt.Sprintf("%s=%t", e.Kind, e.Level)
}

// Transaction is a command byte and the data bytes sent after it while chip
// select was held.
type Transaction struct {
	Cmd    byte
	Params []byte
	// DataSelected is true when the data/command line went to data after
	// the command byte, whether or not parameters followed.
	DataSelected bool
}

// Recorder implements the display Transport and records every call.
//
// Set FailOn to make the n-th call (1-based, counting every method) return
// Err.
type Recorder struct {
	Events []Event

	FailOn int
	Err    error

	calls int
}

func (r *Recorder) record(e Event) error {
	r.calls++
	if r.FailOn != 0 && r.calls == r.FailOn {
		return r.Err
	}
	r.Events = append(r.Events, e)
	return nil
}

// SetChipSelect records a chip select change.
func (r *Recorder) SetChipSelect(active bool) error {
	return r.record(Event{Kind: ChipSelect, Level: active})
}

// SetCommandDataSelect records a data/command change.
func (r *Recorder) SetCommandDataSelect(isData bool) error {
	return r.record(Event{Kind: CommandData, Level: isData})
}

// SetReset records a reset line change.
func (r *Recorder) SetReset(active bool) error {
	return r.record(Event{Kind: Reset, Level: active})
}

// Transmit records a copy of b.
func (r *Recorder) Transmit(b []byte) error {
	return r.record(Event{Kind: Transmit, Data: bytes.Clone(b)})
}

// Calls returns the number of calls made, including failed ones.
func (r *Recorder) Calls() int {
	return r.calls
}

// Clear forgets everything recorded so far.
func (r *Recorder) Clear() {
	r.Events = nil
	r.calls = 0
}

// Transactions groups the recorded events into command transactions.
//
// The first transmit with data/command low inside a chip select window is
// the command; transmits with it high are appended as parameters.
func (r *Recorder) Transactions() []Transaction {
	var (
		out    []Transaction
		cur    *Transaction
		cs     bool
		isData bool
	)
	for _, e := range r.Events {
		switch e.Kind {
		case ChipSelect:
			cs = e.Level
			if !cs && cur != nil {
				out = append(out, *cur)
				cur = nil
			}
		case CommandData:
			isData = e.Level
			if isData && cur != nil {
				cur.DataSelected = true
			}
		case Transmit:
			if !cs {
				continue
			}
			if !isData {
				if cur != nil {
					out = append(out, *cur)
				}
				cur = &Transaction{Cmd: e.Data[0], Params: []byte{}}
				continue
			}
			if cur != nil {
				cur.Params = append(cur.Params, e.Data...)
			}
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

// Payload returns every byte transmitted while data was selected, in order.
func (r *Recorder) Payload() []byte {
	var (
		out    []byte
		isData bool
	)
	for _, e := range r.Events {
		switch e.Kind {
		case CommandData:
			isData = e.Level
		case Transmit:
			if isData {
				out = append(out, e.Data...)
			}
		}
	}
	return out
}
