package cru

import (
	"iter"
)

// Count normalises a CRU transfer count: 0 means 16, as the processor
// encodes it; larger values are clamped to 16.
func Count(count int) int {
	if count <= 0 || count > 16 {
		return 16
	}
	return count
}

// Bits returns an iterator over the low count bits of value, LSB first, in
// the order LDCR shifts them out.
func Bits(value uint16, count int) iter.Seq[bool] {
	return func(yield func(bit bool) bool) {
		for n := range Count(count) {
			if !yield(((value >> n) & 1) == 1) {
				return
			}
		}
	}
}

// Assemble collects up to 16 bits, LSB first, as STCR shifts them in.
func Assemble(bits iter.Seq[bool]) (value uint16) {
	var n int
	for bit := range bits {
		if n == 16 {
			break
		}
		if bit {
			value |= 1 << n
		}
		n++
	}
	return
}
