package soc

import (
	"fmt"

	"github.com/ezrec/tms9900soc/bus"
)

// State is a snapshot of the bus during one cycle.
type State struct {
	Cycle     int          // Cycle number since reset.
	Bus       ProcessorOut // Processor outputs.
	Select    bus.Select   // Decoded selects.
	DataIn    uint16       // Data-in port as seen during the cycle.
	CruIn     bool         // CRUIN as seen during the cycle.
	RomOutput uint16       // ROM read port.
	RamOutput uint16       // RAM read port.
}

// String returns the state as a trace line.
func (st State) String() string {
	cruin := 0
	if st.CruIn {
		cruin = 1
	}
	return fmt.Sprintf("%6d: %v data_in=%04x cruin=%d", st.Cycle, st.Bus.Cycle, st.DataIn, cruin)
}
