package memory

import (
	"errors"

	"github.com/ezrec/tms9900soc/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrSizeZero      = errors.New(f("memory depth must be positive"))
	ErrWidthInvalid  = errors.New(f("memory width must be 1..16 bits"))
	ErrWidthMismatch = errors.New(f("read and write data widths differ"))
	ErrImageTooLarge = errors.New(f("image larger than memory"))
	ErrImageOdd      = errors.New(f("image has an odd number of bytes"))
)
