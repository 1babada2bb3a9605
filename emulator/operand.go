package emulator

import (
	"regexp"
	"strings"

	"github.com/ezrec/x86sim/cpu"
	"github.com/ezrec/x86sim/data"
)

// OperandKind is the resolved form of an operand token.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // register
	OPERAND_INDIRECT  = OperandKind(1) // indirect
	OPERAND_VARIABLE  = OperandKind(2) // variable
	OPERAND_IMMEDIATE = OperandKind(3) // immediate
)

// Operand is a classified operand token.
type Operand struct {
	Kind     OperandKind
	Token    string // Upper case source token.
	Name     string // Register name (register, indirect) or variable name.
	Index    int    // Variable element index.
	IndexReg string // Register holding the variable element index, if set.
	Value    int32  // Immediate value.
}

// Memory is true for operands stored in the data segment.
func (op Operand) Memory() bool {
	return op.Kind == OPERAND_VARIABLE || op.Kind == OPERAND_INDIRECT
}

// Writable is true for operands that can be a destination.
func (op Operand) Writable() bool {
	return op.Kind != OPERAND_IMMEDIATE
}

var elementRegexp = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]+)\]$`)

// Classify resolves a token to exactly one operand kind.
func (emu *Emulator) Classify(token string) (op Operand, err error) {
	word := strings.ToUpper(strings.TrimSpace(token))
	op.Token = word

	if len(word) == 0 {
		err = syntax(ErrParseValue(token))
		return
	}

	// REG
	if cpu.IsRegister(word) {
		op.Kind = OPERAND_REGISTER
		op.Name = word
		return
	}

	// [REG] or [VAR]
	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		inner := strings.TrimSpace(word[1 : len(word)-1])
		switch {
		case cpu.IsRegister(inner):
			op.Kind = OPERAND_INDIRECT
			op.Name = inner
		case emu.isVariable(inner):
			op.Kind = OPERAND_VARIABLE
			op.Name = inner
		default:
			err = syntax(ErrParseValue(token))
		}
		return
	}

	// OFFSET VAR, LENGTHOF VAR, SIZEOF VAR
	if keyword, name, ok := strings.Cut(word, " "); ok && operandKeywords[keyword] {
		v, found := emu.Data.Lookup(name)
		if !found {
			err = syntax(ErrVariableMissing(name))
			return
		}
		op.Kind = OPERAND_IMMEDIATE
		switch keyword {
		case "OFFSET":
			op.Value = int32(v.Address)
		case "LENGTHOF":
			op.Value = int32(v.Length())
		case "SIZEOF":
			op.Value = int32(v.Size())
		}
		return
	}

	// VAR[i] or VAR[REG]
	if match := elementRegexp.FindStringSubmatch(word); match != nil && emu.isVariable(match[1]) {
		op.Kind = OPERAND_VARIABLE
		op.Name = match[1]
		index := strings.TrimSpace(match[2])
		if cpu.IsRegister(index) {
			op.IndexReg = index
			return
		}
		var value int32
		value, err = parseImmediate(index)
		if err != nil {
			err = syntax(err)
			return
		}
		op.Index = int(value)
		return
	}

	// VAR
	if emu.isVariable(word) {
		op.Kind = OPERAND_VARIABLE
		op.Name = word
		return
	}

	// Immediate
	value, err := parseImmediate(word)
	if err != nil {
		err = syntax(ErrParseValue(token))
		return
	}
	op.Kind = OPERAND_IMMEDIATE
	op.Value = value

	return
}

func (emu *Emulator) isVariable(name string) bool {
	_, ok := emu.Data.Lookup(name)
	return ok
}

// element finds the variable and element index of a memory operand.
func (emu *Emulator) element(op Operand) (v *data.Variable, index int, err error) {
	switch op.Kind {
	case OPERAND_INDIRECT:
		var address int32
		address, err = emu.Registers.Get(op.Name)
		if err != nil {
			return
		}
		v, index, err = emu.Data.At(int(address))
	case OPERAND_VARIABLE:
		var ok bool
		v, ok = emu.Data.Lookup(op.Name)
		if !ok {
			err = ErrVariableMissing(op.Name)
			return
		}
		index = op.Index
		if len(op.IndexReg) != 0 {
			var reg int32
			reg, err = emu.Registers.Get(op.IndexReg)
			if err != nil {
				return
			}
			index = int(reg)
		}
		if index < 0 || index >= v.Length() {
			err = data.ErrIndexRange
		}
	default:
		err = syntax(ErrOperandType)
	}

	return
}

// Width returns the operand width in bits. Immediates have no width (0).
func (emu *Emulator) Width(op Operand) (bits int, err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		bits = cpu.RegisterWidth(op.Name)
	case OPERAND_INDIRECT, OPERAND_VARIABLE:
		var v *data.Variable
		v, _, err = emu.element(op)
		if err != nil {
			return
		}
		bits = v.Size() * 8
	}

	return
}

// Read reads the value of an operand.
func (emu *Emulator) Read(op Operand) (value int32, err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		value, err = emu.Registers.Get(op.Name)
	case OPERAND_INDIRECT, OPERAND_VARIABLE:
		var v *data.Variable
		var index int
		v, index, err = emu.element(op)
		if err != nil {
			return
		}
		var v64 int64
		v64, err = v.Get(index)
		value = int32(v64)
	case OPERAND_IMMEDIATE:
		value = op.Value
	}

	return
}

// Write writes the value of an operand.
func (emu *Emulator) Write(op Operand, value int32) (err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		err = emu.Registers.Set(op.Name, value)
	case OPERAND_INDIRECT, OPERAND_VARIABLE:
		var v *data.Variable
		var index int
		v, index, err = emu.element(op)
		if err != nil {
			return
		}
		err = v.Set(index, int64(value))
	default:
		err = syntax(ErrOperandType)
	}

	return
}

// ResolveRead classifies and reads a token.
func (emu *Emulator) ResolveRead(token string) (value int32, err error) {
	op, err := emu.Classify(token)
	if err != nil {
		return
	}
	return emu.Read(op)
}

// ResolveWrite classifies and writes a token.
func (emu *Emulator) ResolveWrite(token string, value int32) (err error) {
	op, err := emu.Classify(token)
	if err != nil {
		return
	}
	return emu.Write(op, value)
}
