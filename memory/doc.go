// Package memory provides the word-addressed storage blocks of the SoC: a
// read-only boot ROM initialised from an image, and a read/write RAM.
//
// Both blocks mirror their physical array across the larger address range
// they are mapped into: the effective word index is the requested word
// index modulo the block depth.
//
// Read ports are combinational: while enabled, the output follows the
// addressed word in the same cycle; while disabled, the output holds its
// last value. The single cycle of read latency seen by the processor comes
// from the data-in register downstream, not from the block.
package memory
