package emulator

import (
	"fmt"
	"strings"

	"github.com/ezrec/x86sim/cpu"
	"github.com/ezrec/x86sim/data"
)

// Introspection instructions write one 'LABEL: value' line to Output and
// never change machine state. Missing registers or variables produce an
// explanatory line instead of an error.

func (emu *Emulator) report(label string, value any) {
	fmt.Fprintf(emu.Output, "%v: %v\n", label, value)
}

func (emu *Emulator) notFound(format string, name string) {
	fmt.Fprintln(emu.Output, f(format, name))
}

func doPrintReg(emu *Emulator, args []string) error {
	name := strings.ToUpper(args[0])
	value, err := emu.Registers.Get(name)
	if err != nil {
		emu.notFound("Register not found: %v", name)
		return nil
	}
	emu.report(name, value)
	return nil
}

func doPrintFlag(emu *Emulator, args []string) error {
	name := strings.ToUpper(args[0])
	emu.report(name, emu.Flags.Get(name))
	return nil
}

func doShowStack(emu *Emulator, args []string) error {
	emu.report("Stack", emu.Stack.Data)
	return nil
}

func doShowData(emu *Emulator, args []string) error {
	var vars []string
	for v := range emu.Data.All() {
		vars = append(vars, v.String())
	}
	emu.report("Data Segment", "{"+strings.Join(vars, ", ")+"}")
	return nil
}

// inquire returns the OFFSET, LENGTHOF or SIZEOF handler.
func inquire(keyword string) HandlerFunc {
	return func(emu *Emulator, args []string) error {
		name := strings.ToUpper(args[0])
		v, ok := emu.Data.Lookup(name)
		if !ok {
			emu.notFound("Variable not found: %v", name)
			return nil
		}

		var value int
		switch keyword {
		case "OFFSET":
			value = v.Address
		case "LENGTHOF":
			value = v.Length()
		case "SIZEOF":
			value = v.Size()
		}
		emu.report(keyword+" "+name, value)
		return nil
	}
}

// PTR TYPE OPERAND reports the operand value reduced to TYPE.
func doPtr(emu *Emulator, args []string) (err error) {
	typ, err := data.ParseType(args[0])
	if err != nil {
		err = syntax(err)
		return
	}

	name := strings.ToUpper(args[1])
	op, err := emu.Classify(name)
	if err != nil {
		emu.notFound("Variable not found: %v", name)
		return nil
	}

	value, err := emu.Read(op)
	if err != nil {
		return
	}

	emu.report(typ.String()+" PTR "+name, typ.Truncate(int64(value)))
	return
}

// PRINT REG name, PRINT FLAG name, PRINT STACK or PRINT DATA.
func doPrint(emu *Emulator, args []string) (err error) {
	kind := strings.ToUpper(args[0])
	rest := args[1:]

	need := 0
	var handler HandlerFunc
	switch kind {
	case "REG", "REGISTER":
		need, handler = 1, doPrintReg
	case "FLAG":
		need, handler = 1, doPrintFlag
	case "STACK":
		handler = doShowStack
	case "DATA":
		handler = doShowData
	default:
		if cpu.IsRegister(kind) && len(rest) == 0 {
			return doPrintReg(emu, args)
		}
		err = syntax(ErrOperandType)
		return
	}

	if len(rest) != need {
		err = syntax(ErrOperandCount{Mnemonic: "PRINT " + kind, Count: len(rest)})
		return
	}

	return handler(emu, rest)
}
