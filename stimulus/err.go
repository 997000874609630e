package stimulus

import (
	"errors"
	"strconv"

	"github.com/ezrec/tms9900soc/translate"
)

var f = translate.From

var (
	ErrNoCycles     = errors.New(f("script defines neither cycles nor stimulus()"))
	ErrCycleType    = errors.New(f("cycle must be a dict"))
	ErrCycleKey     = errors.New(f("unknown cycle signal"))
	ErrSignalRange  = errors.New(f("signal value out of range"))
	ErrSequenceType = errors.New(f("cycles must be a sequence"))
)

// ErrStimulus locates an error at a cycle of a script.
type ErrStimulus struct {
	Path  string
	Cycle int
	Err   error
}

func (err *ErrStimulus) Error() string {
	if err.Cycle < 0 {
		return f("stimulus %v: %v", err.Path, err.Err)
	}
	return f("stimulus %v cycle %d: %v", err.Path, err.Cycle, err.Err)
}

func (err *ErrStimulus) Unwrap() error {
	return err.Err
}

// ErrSignal reports a bad signal in a cycle.
type ErrSignal struct {
	Signal string
	Value  int
	Err    error
}

func (err *ErrSignal) Error() string {
	if err.Err != nil {
		return f("%v: %v", err.Signal, err.Err)
	}
	return f("%v: %v %v", err.Signal, strconv.Itoa(err.Value), ErrSignalRange)
}

func (err *ErrSignal) Unwrap() error {
	if err.Err != nil {
		return err.Err
	}
	return ErrSignalRange
}
