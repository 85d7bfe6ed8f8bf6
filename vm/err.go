package vm

import (
	"errors"

	"github.com/aryanA101a/lulu/translate"
)

var f = translate.From

var (
	ErrImageShort = errors.New(f("image has no origin word"))
	ErrHalted     = errors.New(f("machine is halted"))
)

// ErrImage names the image file that could not be loaded.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("failed to load image: %v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
