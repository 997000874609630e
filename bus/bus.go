// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bus

import (
	"fmt"
	"iter"
	"maps"
)

const (
	ADDR_WIDTH = 16 // Address bus width, in bits.
	DATA_WIDTH = 16 // Data bus width, in bits.

	ADDR_BANK      = uint16(1 << 15) // Bank select: 0 for ROM, 1 for RAM.
	ADDR_CRU_MASK  = uint16(0xffc0)  // Bits 6..15, all zero in CRU space.
	ADDR_SUB_SHIFT = 1               // CRU sub-address starts at bit 1.
	ADDR_SUB_MASK  = uint8(0x1f)     // Five bits of CRU sub-address.
)

var _bus_defines = map[string]string{
	"ADDR_BANK":     fmt.Sprintf("0x%04x", ADDR_BANK),
	"ADDR_CRU_MASK": fmt.Sprintf("0x%04x", ADDR_CRU_MASK),
}

// Defines returns an iterator over the bus constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_bus_defines)
}

// Cycle is the set of signals the processor drives during one clock.
type Cycle struct {
	Addr    uint16 // Address bus.
	DataOut uint16 // Write data.
	Rd      bool   // Memory read strobe.
	Wr      bool   // Memory write strobe.
	CruClk  bool   // CRU bit strobe.
	CruOut  bool   // CRU output bit.
}

// String returns the cycle as a trace line.
func (cyc Cycle) String() string {
	strobe := func(name string, on bool) string {
		if on {
			return name
		}
		return "--"
	}
	return fmt.Sprintf("addr=%04x data_out=%04x %v %v %v cruout=%v",
		cyc.Addr, cyc.DataOut,
		strobe("rd", cyc.Rd), strobe("wr", cyc.Wr), strobe("ck", cyc.CruClk),
		b2i(cyc.CruOut))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Word returns the word index of a byte address; bit 0 is discarded.
func Word(addr uint16) uint16 {
	return addr >> 1
}

// SubAddress returns addr[1:6], the CRU bit selected inside a peripheral.
func SubAddress(addr uint16) uint8 {
	return uint8(addr>>ADDR_SUB_SHIFT) & ADDR_SUB_MASK
}
