package emulator

import (
	"errors"

	"github.com/ezrec/x86sim/translate"
)

var f = translate.From

var (
	// Line errors
	ErrSyntax          = errors.New(f("syntax error"))
	ErrLabelNotFound   = errors.New(f("label not found"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrEquateDuplicate = errors.New(f("equ duplicated"))
	ErrStepLimit       = errors.New(f("step limit reached"))
	ErrReturnInvalid   = errors.New(f("return address invalid"))

	// Operand errors
	ErrOperandType   = errors.New(f("operand type invalid"))
	ErrOperandMemory = errors.New(f("two memory operands"))
	ErrWidthMismatch = errors.New(f("operand size mismatch"))
	ErrExtendWidth   = errors.New(f("extension size invalid"))
	ErrDeclaration   = errors.New(f("declaration syntax"))
)

// syntax marks err as a SyntaxError.
func syntax(err error) error {
	return errors.Join(ErrSyntax, err)
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Index int    // Line index, from 0.
	Line  string // Source text of the line.
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.Index+1, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Unwrap() error {
	return ErrLabelNotFound
}

type ErrOperandCount struct {
	Mnemonic string
	Count    int
}

func (err ErrOperandCount) Error() string {
	return f("%v does not take %v operands", err.Mnemonic, err.Count)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value, variable or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrVariableMissing string

func (err ErrVariableMissing) Error() string {
	return f("variable %v missing", string(err))
}
