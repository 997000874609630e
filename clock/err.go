package clock

import (
	"errors"

	"github.com/ezrec/tms9900soc/translate"
)

var f = translate.From

var (
	ErrReferenceInvalid = errors.New(f("reference clock period invalid"))
	ErrFrequencyInvalid = errors.New(f("frequency must be positive"))
	ErrFrequencyNotMHz  = errors.New(f("frequency must be an integer number of MHz"))
	ErrFrequencyTooHigh = errors.New(f("frequency must be below 64 MHz"))
	ErrPllUnreachable   = errors.New(f("frequency not reachable by the PLL"))
)

// ErrFrequency reports the frequency that failed validation.
type ErrFrequency struct {
	Hz  int
	Err error
}

func (err *ErrFrequency) Error() string {
	return f("clock %v: %v", translate.Hz(err.Hz), err.Err)
}

func (err *ErrFrequency) Unwrap() error {
	return err.Err
}
