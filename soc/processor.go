package soc

import (
	"github.com/ezrec/tms9900soc/bus"
)

// ProcessorIn are the processor inputs sampled at a clock edge.
type ProcessorIn struct {
	DataIn   uint16 // Registered read data.
	CruIn    bool   // CRU input bit.
	Waits    uint8  // Wait states, fixed at WAITS.
	CacheHit bool   // Tied high.
	UseReady bool   // Tied high.
	Ready    bool   // Tied high.
	IntReq   bool   // Tied high.
	Hold     bool   // Tied high.
	IC03     uint8  // Interrupt level, tied to IC03.
}

// ProcessorOut are the processor's registered outputs during a cycle.
type ProcessorOut struct {
	bus.Cycle

	RdNow  bool // Read in progress.
	Iaq    bool // Instruction acquisition.
	IntAck bool // Interrupt acknowledge.
	Holda  bool // Hold acknowledge.
	Stuck  bool // Processor halted on an illegal state.
}

// Processor is the black box processor core.
type Processor interface {
	// Reset returns the processor to its reset state.
	Reset()
	// Outputs returns the signals the processor drives this cycle.
	Outputs() ProcessorOut
	// Clock samples the inputs at the end of the cycle and advances.
	Clock(in ProcessorIn)
}
