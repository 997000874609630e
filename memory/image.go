package memory

import (
	"encoding/binary"
	"io"
)

// LoadImage reads a ROM image of big-endian 16-bit words, the processor's
// byte order.
func LoadImage(r io.Reader) (image []uint16, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(raw)%2 != 0 {
		err = ErrImageOdd
		return
	}

	image = make([]uint16, len(raw)/2)
	for n := range image {
		image[n] = binary.BigEndian.Uint16(raw[n*2:])
	}

	return
}
