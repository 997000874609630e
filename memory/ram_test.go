package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRam(t *testing.T) {
	assert := assert.New(t)

	ram, err := NewRam(RAM_WORDS, 16, 16, []uint16{1, 2, 3})
	assert.NoError(err)
	assert.Equal(RAM_WORDS, ram.Depth())
	assert.Equal(uint16(1), ram.Peek(0))
	assert.Equal(uint16(3), ram.Peek(2))
	assert.Equal(uint16(0), ram.Peek(3))
}

func TestNewRam_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		depth int
		rw    int
		ww    int
		err   error
	}){
		{"width mismatch", RAM_WORDS, 16, 8, ErrWidthMismatch},
		{"zero depth", 0, 16, 16, ErrSizeZero},
		{"zero width", RAM_WORDS, 0, 0, ErrWidthInvalid},
	}

	for _, entry := range table {
		ram, err := NewRam(entry.depth, entry.rw, entry.ww, nil)
		assert.Nil(ram, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestRam_Access(t *testing.T) {
	assert := assert.New(t)

	ram, err := NewRam(RAM_WORDS, 16, 16, nil)
	assert.NoError(err)

	// Write only: the read port holds.
	assert.Equal(uint16(0), ram.Access(0x10, false, true, 0xcafe))
	assert.Equal(uint16(0xcafe), ram.Peek(0x10))

	// Read only.
	assert.Equal(uint16(0xcafe), ram.Access(0x10, true, false, 0xdead))
	assert.Equal(uint16(0xcafe), ram.Peek(0x10))

	// Neither: holds last value.
	assert.Equal(uint16(0xcafe), ram.Access(0x20, false, false, 0))

	ram.Reset()
	assert.Equal(uint16(0), ram.Output())
}

func TestRam_WriteFirst(t *testing.T) {
	assert := assert.New(t)

	ram, err := NewRam(RAM_WORDS, 16, 16, []uint16{0x1111})
	assert.NoError(err)

	assert.Equal(uint16(0x2222), ram.Access(0, true, true, 0x2222))
	assert.Equal(uint16(0x2222), ram.Peek(0))
}

func TestRam_Mirror(t *testing.T) {
	assert := assert.New(t)

	ram, err := NewRam(4, 16, 16, nil)
	assert.NoError(err)

	ram.Access(5, false, true, 0x5555)
	assert.Equal(uint16(0x5555), ram.Access(1, true, false, 0))
	assert.Equal(uint16(0x5555), ram.Access(9, true, false, 0))
	assert.Equal(1, ram.Index(0x4001))
}
