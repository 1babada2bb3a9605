package cpu

import (
	"errors"

	"github.com/ezrec/x86sim/translate"
)

var f = translate.From

var (
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrStackFull       = errors.New(f("stack full"))
)

// ErrRegister reports an unrecognized register name.
type ErrRegister string

func (er ErrRegister) Error() string {
	return f("register %v invalid", string(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}
