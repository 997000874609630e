package memory

import (
	"log"
)

// RAM_WORDS is the physical depth of the working RAM.
const RAM_WORDS = 16384

// Ram is a read/write block with independent read and write enables.
//
// A read and a write of the same word in the same cycle is write-first: the
// read port returns the value being written.
type Ram struct {
	Block
}

// NewRam creates a RAM of depth words. The read and write widths must agree.
// init, if given, preloads the first words.
func NewRam(depth int, readWidth int, writeWidth int, init []uint16) (ram *Ram, err error) {
	if readWidth != writeWidth {
		err = ErrWidthMismatch
		return
	}

	blk, err := newBlock(depth, readWidth, init)
	if err != nil {
		return
	}

	ram = &Ram{Block: blk}
	return
}

// Access performs one cycle of the RAM ports and returns the read port
// value. The write, if enabled, lands before the read.
func (ram *Ram) Access(word uint16, re bool, we bool, value uint16) uint16 {
	if we {
		ram.Poke(word, value)
		if ram.Verbose {
			log.Printf("ram: write [%04x] <- %04x", ram.Index(word), value&ram.mask)
		}
	}

	if re {
		return ram.read("ram", word)
	}

	return ram.output
}

// Poke stores a word without going through the ports.
func (ram *Ram) Poke(word uint16, value uint16) {
	ram.data[ram.Index(word)] = value & ram.mask
}
