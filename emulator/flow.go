package emulator

import (
	"github.com/sirupsen/logrus"

	"github.com/ezrec/x86sim/cpu"
)

// Condition tests the flag state of a CPU.
type Condition func(cp *cpu.Cpu) bool

func condZ(cp *cpu.Cpu) bool  { return cp.Flags.Has(cpu.FLAG_ZF) }
func condNZ(cp *cpu.Cpu) bool { return !cp.Flags.Has(cpu.FLAG_ZF) }
func condC(cp *cpu.Cpu) bool  { return cp.Flags.Has(cpu.FLAG_CF) }
func condNC(cp *cpu.Cpu) bool { return !cp.Flags.Has(cpu.FLAG_CF) }
func condO(cp *cpu.Cpu) bool  { return cp.Flags.Has(cpu.FLAG_OF) }
func condNO(cp *cpu.Cpu) bool { return !cp.Flags.Has(cpu.FLAG_OF) }
func condS(cp *cpu.Cpu) bool  { return cp.Flags.Has(cpu.FLAG_SF) }
func condNS(cp *cpu.Cpu) bool { return !cp.Flags.Has(cpu.FLAG_SF) }
func condP(cp *cpu.Cpu) bool  { return cp.Flags.Has(cpu.FLAG_PF) }
func condNP(cp *cpu.Cpu) bool { return !cp.Flags.Has(cpu.FLAG_PF) }

// signed less-than: SF != OF
func condL(cp *cpu.Cpu) bool {
	return cp.Flags.Has(cpu.FLAG_SF) != cp.Flags.Has(cpu.FLAG_OF)
}

func condGE(cp *cpu.Cpu) bool { return !condL(cp) }
func condG(cp *cpu.Cpu) bool  { return !condZ(cp) && !condL(cp) }
func condLE(cp *cpu.Cpu) bool { return condZ(cp) || condL(cp) }
func condA(cp *cpu.Cpu) bool  { return !condC(cp) && !condZ(cp) }
func condBE(cp *cpu.Cpu) bool { return condC(cp) || condZ(cp) }

// counterZero tests a counter register for zero.
func counterZero(reg string) Condition {
	return func(cp *cpu.Cpu) bool {
		value, _ := cp.Registers.Get(reg)
		return value == 0
	}
}

// branch continues execution after the line of label. Execution never
// comes back to the line following the branch.
func (emu *Emulator) branch(label string) (err error) {
	index, ok := emu.label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	emu.Log.WithFields(logrus.Fields{
		"line":  emu.Ip + 1,
		"label": label,
	}).Debug("branch")

	emu.nextIp = index + 1
	return
}

// jumpIf branches to its label operand when the condition holds. A nil
// condition always branches.
type jumpIf Condition

func (cond jumpIf) Execute(emu *Emulator, args []string) error {
	if cond == nil || cond(emu.Cpu) {
		return emu.branch(args[0])
	}
	return nil
}

// loop decrements CX, then branches when CX is not zero and the condition
// (if any) holds.
type loop Condition

func (cond loop) Execute(emu *Emulator, args []string) (err error) {
	cx, err := emu.Registers.Get("CX")
	if err != nil {
		return
	}
	cx = (cx - 1) & 0xffff
	emu.Registers.Set("CX", cx)

	if cx != 0 && (cond == nil || cond(emu.Cpu)) {
		err = emu.branch(args[0])
	}

	return
}

// CALL pushes the index of the following line and branches.
func doCall(emu *Emulator, args []string) (err error) {
	if _, ok := emu.label[args[0]]; !ok {
		err = ErrLabelMissing(args[0])
		return
	}

	err = emu.Push(int32(emu.Ip + 1))
	if err != nil {
		return
	}

	return emu.branch(args[0])
}

// RET pops a line index and continues there.
func doRet(emu *Emulator, args []string) (err error) {
	index, err := emu.Pop()
	if err != nil {
		return
	}

	if index < 0 || int(index) > len(emu.lines) {
		err = ErrReturnInvalid
		return
	}

	emu.nextIp = int(index)
	return
}

func doNop(emu *Emulator, args []string) error {
	return nil
}

// HLT ends the run.
func doHlt(emu *Emulator, args []string) error {
	emu.halted = true
	return nil
}

func doPush(emu *Emulator, args []string) (err error) {
	op, err := emu.single(args, false)
	if err != nil {
		return
	}

	value, err := emu.Read(op)
	if err != nil {
		return
	}

	return emu.Push(value)
}

// POP checks the destination before popping, so a bad operand leaves the
// stack intact.
func doPop(emu *Emulator, args []string) (err error) {
	op, err := emu.single(args, true)
	if err != nil {
		return
	}
	if _, err = emu.Width(op); err != nil {
		return
	}

	value, err := emu.Pop()
	if err != nil {
		return
	}

	return emu.Write(op, value)
}

func doStc(emu *Emulator, args []string) error {
	emu.Flags.Put(cpu.FLAG_CF, true)
	return nil
}

func doClc(emu *Emulator, args []string) error {
	emu.Flags.Put(cpu.FLAG_CF, false)
	return nil
}

// directive selects the current segment. Operands (.STACK 4096) are ignored.
func directive(seg Segment) HandlerFunc {
	return func(emu *Emulator, args []string) error {
		emu.Segment = seg
		return nil
	}
}
