package board

import (
	"errors"

	"github.com/ezrec/tms9900soc/translate"
)

var f = translate.From

var (
	ErrFieldType   = errors.New(f("field has the wrong type"))
	ErrRomConflict  = errors.New(f("both rom and rom_image given"))
)

// ErrField reports a bad board field.
type ErrField struct {
	Field string
	Err   error
}

func (err *ErrField) Error() string {
	return f("%v: %v", err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

// ErrBoard locates an error in a board description.
type ErrBoard struct {
	Path string
	Err  error
}

func (err *ErrBoard) Error() string {
	return f("board %v: %v", err.Path, err.Err)
}

func (err *ErrBoard) Unwrap() error {
	return err.Err
}
