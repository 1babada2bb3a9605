package config

import (
	"errors"

	"github.com/ezrec/x86sim/translate"
)

var f = translate.From

var (
	ErrValueInvalid = errors.New(f("configuration value invalid"))
)

type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("configuration key %v unknown", string(err))
}
