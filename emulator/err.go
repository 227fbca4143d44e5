package emulator

import (
	"github.com/ezrec/chip8core/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo  int
	Address uint16
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("0x%03x: %v", err.Address, err.Err)
	}
	return f("line %d (0x%03x) %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrRegister indicates a bad register preset.
type ErrRegister struct {
	Index int
	Err   error
}

func (err *ErrRegister) Error() string {
	return f("register %d %v", err.Index, err.Err)
}

func (err *ErrRegister) Unwrap() error {
	return err.Err
}
