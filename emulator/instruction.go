package emulator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/x86sim/data"
)

// Handler executes an instruction against the emulator state.
type Handler interface {
	Execute(emu *Emulator, args []string) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(emu *Emulator, args []string) error

func (hf HandlerFunc) Execute(emu *Emulator, args []string) error {
	return hf(emu, args)
}

// Instruction is a mnemonic's operand shape and handler.
type Instruction struct {
	MinArgs int
	MaxArgs int
	Handler Handler
}

func fixed(args int, handler Handler) Instruction {
	return Instruction{MinArgs: args, MaxArgs: args, Handler: handler}
}

// instructionMap maps upper case mnemonics to instructions.
var instructionMap map[string]Instruction

func init() {
	instructionMap = map[string]Instruction{
		// Data movement
		"MOV":   fixed(2, HandlerFunc(doMov)),
		"MOVSX": fixed(2, extend(true)),
		"MOVZX": fixed(2, extend(false)),
		"XCHG":  fixed(2, HandlerFunc(doXchg)),

		// Arithmetic
		"ADD": fixed(2, HandlerFunc(doAdd)),
		"SUB": fixed(2, HandlerFunc(doSub)),
		"NEG": fixed(1, HandlerFunc(doNeg)),
		"INC": fixed(1, HandlerFunc(doInc)),
		"DEC": fixed(1, HandlerFunc(doDec)),
		"CMP": fixed(2, HandlerFunc(doCmp)),

		// Logic
		"AND":  fixed(2, HandlerFunc(doAnd)),
		"OR":   fixed(2, HandlerFunc(doOr)),
		"XOR":  fixed(2, HandlerFunc(doXor)),
		"NOT":  fixed(1, HandlerFunc(doNot)),
		"TEST": fixed(2, HandlerFunc(doTest)),
		"SHL":  fixed(2, shift(true)),
		"SAL":  fixed(2, shift(true)),
		"SHR":  fixed(2, shift(false)),

		// Stack
		"PUSH": fixed(1, HandlerFunc(doPush)),
		"POP":  fixed(1, HandlerFunc(doPop)),

		// Control transfer
		"JMP":    fixed(1, jumpIf(nil)),
		"JZ":     fixed(1, jumpIf(condZ)),
		"JE":     fixed(1, jumpIf(condZ)),
		"JNZ":    fixed(1, jumpIf(condNZ)),
		"JNE":    fixed(1, jumpIf(condNZ)),
		"JG":     fixed(1, jumpIf(condG)),
		"JGE":    fixed(1, jumpIf(condGE)),
		"JL":     fixed(1, jumpIf(condL)),
		"JLE":    fixed(1, jumpIf(condLE)),
		"JC":     fixed(1, jumpIf(condC)),
		"JB":     fixed(1, jumpIf(condC)),
		"JNC":    fixed(1, jumpIf(condNC)),
		"JAE":    fixed(1, jumpIf(condNC)),
		"JA":     fixed(1, jumpIf(condA)),
		"JBE":    fixed(1, jumpIf(condBE)),
		"JO":     fixed(1, jumpIf(condO)),
		"JNO":    fixed(1, jumpIf(condNO)),
		"JS":     fixed(1, jumpIf(condS)),
		"JNS":    fixed(1, jumpIf(condNS)),
		"JP":     fixed(1, jumpIf(condP)),
		"JNP":    fixed(1, jumpIf(condNP)),
		"JCXZ":   fixed(1, jumpIf(counterZero("CX"))),
		"JECXZ":  fixed(1, jumpIf(counterZero("ECX"))),
		"JRCXZ":  fixed(1, jumpIf(counterZero("ECX"))),
		"LOOP":   fixed(1, loop(nil)),
		"LOOPZ":  fixed(1, loop(condZ)),
		"LOOPE":  fixed(1, loop(condZ)),
		"LOOPNZ": fixed(1, loop(condNZ)),
		"LOOPNE": fixed(1, loop(condNZ)),
		"CALL":   fixed(1, HandlerFunc(doCall)),
		"RET":    fixed(0, HandlerFunc(doRet)),
		"NOP":    fixed(0, HandlerFunc(doNop)),
		"HLT":    fixed(0, HandlerFunc(doHlt)),

		// Introspection
		"PRINT_REG":  fixed(1, HandlerFunc(doPrintReg)),
		"PRINT_FLAG": fixed(1, HandlerFunc(doPrintFlag)),
		"SHOW_STACK": fixed(0, HandlerFunc(doShowStack)),
		"SHOW_DATA":  fixed(0, HandlerFunc(doShowData)),
		"OFFSET":     fixed(1, inquire("OFFSET")),
		"LENGTHOF":   fixed(1, inquire("LENGTHOF")),
		"SIZEOF":     fixed(1, inquire("SIZEOF")),
		"PTR":        fixed(2, HandlerFunc(doPtr)),
		"PRINT":      {MinArgs: 1, MaxArgs: 2, Handler: HandlerFunc(doPrint)},

		// Flags
		"STC": fixed(0, HandlerFunc(doStc)),
		"CLC": fixed(0, HandlerFunc(doClc)),

		// Segments
		".CODE":  fixed(0, directive(SEGMENT_CODE)),
		".DATA":  fixed(0, directive(SEGMENT_DATA)),
		".STACK": {MinArgs: 0, MaxArgs: 1, Handler: directive(SEGMENT_STACK)},
	}
}

// Execute dispatches a single source line at the current instruction
// pointer.
func (emu *Emulator) Execute(line string) (err error) {
	text := stripComment(line)
	if len(text) == 0 {
		return
	}

	// Label lines are consumed by the label pass.
	if label, ok := labelOf(text); ok {
		if emu.label != nil {
			emu.label[label] = emu.Ip
		}
		return
	}

	emu.equate["LINENO"] = strconv.Itoa(emu.Ip + 1)

	text, err = emu.expand(text)
	if err != nil {
		return
	}

	words := tokenize(text)
	if len(words) == 0 {
		return
	}

	// NAME EQU VALUE. Re-executing an identical definition is a no-op.
	if len(words) >= 3 && strings.ToUpper(words[1]) == "EQU" {
		name := strings.ToUpper(words[0])
		value := strings.Join(words[2:], " ")
		if prior, ok := emu.equate[name]; ok && prior != value {
			err = syntax(ErrEquateDuplicate)
			return
		}
		emu.equate[name] = value
		return
	}

	emu.substitute(words)

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	if strings.HasSuffix(mnemonic, ":") {
		return
	}

	ins, ok := instructionMap[mnemonic]
	if !ok {
		if emu.Segment == SEGMENT_DATA {
			return emu.declare(words)
		}
		emu.unsupported(mnemonic)
		return
	}

	if !operandKeywords[mnemonic] {
		args = foldKeywords(args)
	}

	if len(args) < ins.MinArgs || len(args) > ins.MaxArgs {
		err = syntax(ErrOperandCount{Mnemonic: mnemonic, Count: len(args)})
		return
	}

	return ins.Handler.Execute(emu, args)
}

// unsupported reports an unrecognized mnemonic; the line is a no-op.
func (emu *Emulator) unsupported(mnemonic string) {
	fmt.Fprintln(emu.Output, f("Unsupported instruction: %v", mnemonic))
	emu.Log.WithFields(logrus.Fields{
		"line":     emu.Ip + 1,
		"mnemonic": mnemonic,
	}).Warn("unsupported instruction")
}

// declare handles a data segment declaration: NAME TYPE VALUE, NAME TYPE [N]
// or NAME TYPE V1, V2, ...
func (emu *Emulator) declare(words []string) (err error) {
	if len(words) < 3 {
		err = syntax(ErrDeclaration)
		return
	}

	typ, err := data.ParseType(words[1])
	if err != nil {
		err = syntax(err)
		return
	}

	var values []int64
	array := len(words) > 3

	if first := words[2]; len(words) == 3 && strings.HasPrefix(first, "[") && strings.HasSuffix(first, "]") {
		var length int64
		length, err = parseNumber(strings.TrimSpace(first[1 : len(first)-1]))
		if err != nil || length < 1 || length > data.MAX_LENGTH {
			err = syntax(errors.Join(data.ErrLengthInvalid, err))
			return
		}
		values = make([]int64, length)
		array = true
	} else {
		for _, word := range words[2:] {
			var value int64
			if word != "?" {
				value, err = parseNumber(word)
				if err != nil {
					err = syntax(err)
					return
				}
			}
			values = append(values, value)
		}
	}

	_, err = emu.Data.Declare(words[0], typ, values, array)
	if err != nil {
		err = syntax(err)
		return
	}

	return
}

// pair classifies a destination and source operand. The destination must be
// writable when write is set, and two memory operands are rejected.
func (emu *Emulator) pair(args []string, write bool) (dst, src Operand, err error) {
	dst, err = emu.Classify(args[0])
	if err != nil {
		return
	}
	src, err = emu.Classify(args[1])
	if err != nil {
		return
	}

	if write && !dst.Writable() {
		err = syntax(ErrOperandType)
		return
	}
	if dst.Memory() && src.Memory() {
		err = syntax(ErrOperandMemory)
		return
	}

	err = emu.sameWidth(dst, src)
	return
}

// sameWidth rejects operands of different known widths.
func (emu *Emulator) sameWidth(a, b Operand) (err error) {
	aw, err := emu.Width(a)
	if err != nil {
		return
	}
	bw, err := emu.Width(b)
	if err != nil {
		return
	}
	if aw != 0 && bw != 0 && aw != bw {
		err = syntax(ErrWidthMismatch)
	}
	return
}

// single classifies one operand, which must be writable when write is set.
func (emu *Emulator) single(args []string, write bool) (op Operand, err error) {
	op, err = emu.Classify(args[0])
	if err != nil {
		return
	}
	if write && !op.Writable() {
		err = syntax(ErrOperandType)
	}
	return
}
