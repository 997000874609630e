package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testImage(n int) (image []uint16) {
	image = make([]uint16, n)
	for i := range image {
		image[i] = uint16(i*7 + 0x100)
	}
	return
}

func TestNewRom(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom(ROM_WORDS, 16, testImage(16))
	assert.NoError(err)
	assert.Equal(ROM_WORDS, rom.Depth())
	assert.Equal(16, rom.Width())
	assert.Equal(uint16(0x100), rom.Peek(0))
	assert.Equal(uint16(0), rom.Peek(16))
}

func TestNewRom_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		depth int
		width int
		image []uint16
		err   error
	}){
		{"zero depth", 0, 16, nil, ErrSizeZero},
		{"negative depth", -1, 16, nil, ErrSizeZero},
		{"zero width", 16, 0, nil, ErrWidthInvalid},
		{"wide", 16, 17, nil, ErrWidthInvalid},
		{"image too large", 4, 16, testImage(5), ErrImageTooLarge},
	}

	for _, entry := range table {
		rom, err := NewRom(entry.depth, entry.width, entry.image)
		assert.Nil(rom, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestRom_Read(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom(ROM_WORDS, 16, testImage(ROM_WORDS))
	assert.NoError(err)

	assert.Equal(uint16(0x100+7*3), rom.Read(3, true))
	assert.Equal(uint16(0x100+7*3), rom.Output())

	// Deselected: the port holds.
	assert.Equal(uint16(0x100+7*3), rom.Read(9, false))

	rom.Reset()
	assert.Equal(uint16(0), rom.Output())
	assert.Equal(uint16(0x100+7*3), rom.Peek(3))
}

func TestRom_Mirror(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom(ROM_WORDS, 16, testImage(ROM_WORDS))
	assert.NoError(err)

	// The ROM half is 16K words: four mirrors of 4K.
	for word := uint16(0); word < 0x4000; word += 61 {
		assert.Equal(rom.Read(word%ROM_WORDS, true), rom.Read(word, true), "word %04x", word)
	}
}

func TestRom_NarrowWidth(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom(4, 8, []uint16{0x1234})
	assert.NoError(err)
	assert.Equal(8, rom.Width())
	assert.Equal(uint16(0x34), rom.Read(0, true))
}
