package cru

// Registers is a CRU peripheral exposing CRU_BITS plain bit registers. It
// stands in for the serial controller where only the CRU protocol matters.
type Registers struct {
	Bits  uint32 // Register contents, bit n at sub-address n.
	MHz   int    // Clock parameter the peripheral was built with.
	Level bool   // Serial line level, looped from Rx to Tx.
}

var _ Peripheral = (*Registers)(nil)
var _ Serial = (*Registers)(nil)

// NewRegisters creates a bit register peripheral for a clock of mhz MHz.
func NewRegisters(mhz int) *Registers {
	regs := &Registers{MHz: mhz}
	regs.Reset()
	return regs
}

// Reset clears all bits. The serial line idles high.
func (regs *Registers) Reset() {
	regs.Bits = 0
	regs.Level = true
}

// Cycle returns the addressed bit, then stores CRUOUT into it on a strobe.
func (regs *Registers) Cycle(sig Signals) (cruin bool) {
	if !sig.Select {
		return
	}

	bit := uint32(1) << (sig.S % CRU_BITS)
	cruin = regs.Bits&bit != 0

	if sig.Clk {
		if sig.Out {
			regs.Bits |= bit
		} else {
			regs.Bits &^= bit
		}
	}

	return
}

// Tx returns the looped serial level.
func (regs *Registers) Tx() bool {
	return regs.Level
}

// Rx sets the serial level.
func (regs *Registers) Rx(level bool) {
	regs.Level = level
}
