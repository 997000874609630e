// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"log"
)

// Block is the storage array shared by the ROM and RAM variants.
type Block struct {
	Verbose bool // If set, logs every access.

	data   []uint16
	mask   uint16 // Mask of the data width.
	output uint16 // Read port latch.
}

func newBlock(depth int, width int, init []uint16) (blk Block, err error) {
	if depth <= 0 {
		err = ErrSizeZero
		return
	}
	if width <= 0 || width > 16 {
		err = ErrWidthInvalid
		return
	}
	if len(init) > depth {
		err = ErrImageTooLarge
		return
	}

	blk.mask = uint16((1 << width) - 1)
	blk.data = make([]uint16, depth)
	for n, word := range init {
		blk.data[n] = word & blk.mask
	}

	return
}

// Depth returns the number of physical words.
func (blk *Block) Depth() int {
	return len(blk.data)
}

// Width returns the data width in bits.
func (blk *Block) Width() (width int) {
	for mask := blk.mask; mask != 0; mask >>= 1 {
		width++
	}
	return
}

// Index returns the physical index of a word index, mirrored.
func (blk *Block) Index(word uint16) int {
	return int(word) % len(blk.data)
}

// Peek returns the word at a word index without touching the read port.
func (blk *Block) Peek(word uint16) uint16 {
	return blk.data[blk.Index(word)]
}

// Output returns the read port value.
func (blk *Block) Output() uint16 {
	return blk.output
}

// Reset clears the read port. Contents are unaffected.
func (blk *Block) Reset() {
	blk.output = 0
}

func (blk *Block) read(name string, word uint16) uint16 {
	blk.output = blk.data[blk.Index(word)]
	if blk.Verbose {
		log.Printf("%v: read [%04x] -> %04x", name, blk.Index(word), blk.output)
	}
	return blk.output
}
