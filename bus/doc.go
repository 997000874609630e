// Package bus describes the processor's shared address/data bus and decodes
// it.
//
// Two address spaces share the same 16 address lines. The word memory space
// is split by bit 15 between the boot ROM and the working RAM. The CRU space
// is the low 64 byte addresses (bits 6..15 all zero), reached by bit-serial
// CRU transfers rather than by read/write strobes. The two decodes are
// independent: an address may select both a memory and the peripheral in
// the same cycle, as they gate disjoint logic.
//
// Bit 0 of the address is never examined; all memories are word addressed.
package bus
