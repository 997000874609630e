package soc

import (
	"errors"

	"github.com/ezrec/tms9900soc/translate"
)

var f = translate.From

var (
	ErrProcessorMissing = errors.New(f("no processor attached"))
)

// ErrConfig reports which component failed to configure.
type ErrConfig struct {
	Component string
	Err       error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Component, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
