package cru

import (
	"log"

	"github.com/ezrec/tms9900soc/bus"
)

// Bridge routes the CRU lines between the processor and one peripheral.
type Bridge struct {
	Verbose    bool
	Peripheral Peripheral
}

// Cycle runs one clock of the CRU protocol for the address on the bus. When
// the address is outside CRU space the peripheral sees neither the strobe
// nor its select, and CRUIN reads low.
func (br *Bridge) Cycle(addr uint16, cruclk bool, cruout bool) (cruin bool) {
	sig := Signals{
		Select: bus.PeripheralSelect(addr),
		Out:    cruout,
		S:      bus.SubAddress(addr),
	}
	sig.Clk = sig.Select && cruclk

	if br.Peripheral == nil {
		return
	}

	in := br.Peripheral.Cycle(sig)
	if sig.Select {
		cruin = in
	}

	if br.Verbose && sig.Clk {
		log.Printf("cru: bit %d <- %v", sig.S, cruout)
	}

	return
}

// Reset resets the attached peripheral.
func (br *Bridge) Reset() {
	if br.Peripheral != nil {
		br.Peripheral.Reset()
	}
}
