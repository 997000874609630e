package memory

// ROM_WORDS is the physical depth of the boot ROM.
const ROM_WORDS = 4096

// Rom is a read-only block. There is no write port; a write strobe aimed at
// the ROM has nowhere to go.
type Rom struct {
	Block
}

// NewRom creates a ROM of depth words holding image. Words past the end of
// the image read as zero.
func NewRom(depth int, width int, image []uint16) (rom *Rom, err error) {
	blk, err := newBlock(depth, width, image)
	if err != nil {
		return
	}

	rom = &Rom{Block: blk}
	return
}

// Read presents a word index and chip-select for the current cycle and
// returns the read port value.
func (rom *Rom) Read(word uint16, cs bool) uint16 {
	if cs {
		return rom.read("rom", word)
	}
	return rom.output
}
