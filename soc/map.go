package soc

import (
	"iter"
	"slices"

	"github.com/ezrec/tms9900soc/bus"
	"github.com/ezrec/tms9900soc/cru"
	"github.com/ezrec/tms9900soc/internal"
)

// Region is one decoded range of an address space.
type Region struct {
	Name  string    // Region name.
	Space bus.Space // Address space the region lives in.
	Start uint16    // First byte address.
	End   uint16    // Last byte address.
	Size  int       // Physical size: words for memory, bits for CRU.
}

// Mirrors returns how many times the physical store repeats in the region.
func (rg Region) Mirrors() int {
	span := int(rg.End-rg.Start) + 1
	return span / 2 / rg.Size
}

var memoryRegions = []Region{
	{Name: "rom", Space: bus.SPACE_MEMORY, Start: 0x0000, End: 0x7fff, Size: ROM_WORDS},
	{Name: "ram", Space: bus.SPACE_MEMORY, Start: 0x8000, End: 0xffff, Size: RAM_WORDS},
}

var cruRegions = []Region{
	{Name: "tms9902", Space: bus.SPACE_CRU, Start: 0x0000, End: 0x003f, Size: cru.CRU_BITS},
}

// Map returns an iterator over every region of both address spaces.
func Map() iter.Seq[Region] {
	return internal.IterSeqConcat(slices.Values(memoryRegions), slices.Values(cruRegions))
}
