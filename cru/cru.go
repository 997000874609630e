// Package cru bridges the processor's bit-serial Communication Register Unit
// lines to a CRU peripheral.
//
// The processor drives CRUCLK and CRUOUT and samples CRUIN, while the
// address bus carries the CRU bit address. The bridge routes these lines and
// gates them with the peripheral select; any timing of the peripheral's
// internal state machine stays inside the peripheral.
package cru

import (
	"fmt"
	"iter"
	"maps"
)

const (
	CRU_BITS = 32 // Bits addressable inside the peripheral.
)

var _cru_defines = map[string]string{
	"CRU_BITS": fmt.Sprintf("%d", CRU_BITS),
}

// Defines returns an iterator over the CRU constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cru_defines)
}

// Signals are the lines presented to a peripheral during one clock.
type Signals struct {
	Select bool  // Peripheral select, active high.
	Clk    bool  // CRUCLK, already gated by Select.
	Out    bool  // CRUOUT.
	S      uint8 // Sub-address, addr[1:6].
}

// Peripheral is a CRU device. It is a black box to the interconnect.
type Peripheral interface {
	// Reset returns the peripheral to its power-on state.
	Reset()
	// Cycle presents one clock of CRU lines and returns CRUIN.
	Cycle(sig Signals) (cruin bool)
}

// Serial is implemented by peripherals owning a physical serial line.
type Serial interface {
	// Tx returns the transmit pin level.
	Tx() bool
	// Rx sets the receive pin level.
	Rx(level bool)
}
