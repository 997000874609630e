// Package datapath holds the registered multiplexer feeding the processor's
// data-in port.
package datapath

// Mux is a registered two-way multiplexer. Set presents the inputs of the
// current cycle; Clock latches them at the edge. DataIn therefore lags the
// select and the memory outputs by exactly one clock.
type Mux struct {
	DataIn uint16 // Registered output, visible to the processor.

	next uint16
}

// Set presents the current cycle's select and memory outputs.
func (mux *Mux) Set(romSelect bool, romOutput uint16, ramOutput uint16) {
	if romSelect {
		mux.next = romOutput
	} else {
		mux.next = ramOutput
	}
}

// Clock latches the presented value into DataIn.
func (mux *Mux) Clock() {
	mux.DataIn = mux.next
}

// Reset clears the register and its pending input.
func (mux *Mux) Reset() {
	mux.DataIn = 0
	mux.next = 0
}
