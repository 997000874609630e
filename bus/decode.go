package bus

// Select is the set of chip-selects decoded from one cycle.
type Select struct {
	Rom        bool // ROM feeds the data-in register.
	Ram        bool // Address lies in the RAM half.
	WriteRam   bool // RAM write strobe.
	ReadRam    bool // RAM read strobe.
	Peripheral bool // Address lies in CRU space.
}

// RomSelect decodes the ROM half of the memory space.
func RomSelect(addr uint16) bool {
	return addr&ADDR_BANK == 0
}

// RamSelect decodes the RAM half of the memory space.
func RamSelect(addr uint16) bool {
	return addr&ADDR_BANK != 0
}

// PeripheralSelect decodes CRU space. It is independent of the memory
// decode and of the strobes.
func PeripheralSelect(addr uint16) bool {
	return addr&ADDR_CRU_MASK == 0
}

// Decode computes all selects for a cycle. ROM ignores the write strobe.
func Decode(addr uint16, rd bool, wr bool) (sel Select) {
	sel.Rom = RomSelect(addr)
	sel.Ram = RamSelect(addr)
	sel.WriteRam = sel.Ram && wr
	sel.ReadRam = sel.Ram && rd
	sel.Peripheral = PeripheralSelect(addr)
	return
}

// Decode computes the selects for the cycle's address and strobes.
func (cyc Cycle) Decode() Select {
	return Decode(cyc.Addr, cyc.Rd, cyc.Wr)
}
