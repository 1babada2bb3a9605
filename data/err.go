package data

import (
	"errors"

	"github.com/ezrec/x86sim/translate"
)

var f = translate.From

var (
	ErrTypeInvalid       = errors.New(f("data type invalid"))
	ErrVariableDuplicate = errors.New(f("variable duplicated"))
	ErrVariableInvalid   = errors.New(f("variable name invalid"))
	ErrLengthInvalid     = errors.New(f("array length invalid"))
	ErrIndexRange        = errors.New(f("index out of range"))
	ErrAddressInvalid    = errors.New(f("address invalid"))
)

// ErrType reports an unsupported data type keyword.
type ErrType string

func (et ErrType) Error() string {
	return f("data type %v unsupported", string(et))
}

func (et ErrType) Unwrap() error {
	return ErrTypeInvalid
}

// ErrAddress reports an address that is not the start of a variable element.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %#x invalid", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrAddressInvalid
}
