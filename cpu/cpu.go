// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Cpu is the register, flag and stack state of one simulated machine.
type Cpu struct {
	Registers RegisterFile // General-purpose registers.
	Flags     Flags        // Status flags.
	Stack     Stack        // Call stack.
}

// NewCpu creates a CPU whose stack holds at most limit cells.
func NewCpu(limit int) (cpu *Cpu) {
	cpu = &Cpu{
		Stack: Stack{Limit: limit},
	}

	return
}

// Reset clears the registers, flags and stack.
func (cpu *Cpu) Reset() {
	cpu.Registers.Reset()
	cpu.Flags.Reset()
	cpu.Stack.Reset()
}

// Push pushes a cell and moves ESP down by one cell.
func (cpu *Cpu) Push(value int32) (err error) {
	if !cpu.Stack.Push(value) {
		err = ErrStackFull
		return
	}

	esp, _ := cpu.Registers.Get("ESP")
	cpu.Registers.Set("ESP", esp-STACK_CELL)

	return
}

// Pop pops a cell and moves ESP up by one cell. An empty stack is
// ErrStackUnderflow, leaving ESP unchanged.
func (cpu *Cpu) Pop() (value int32, err error) {
	value, ok := cpu.Stack.Pop()
	if !ok {
		err = ErrStackUnderflow
		return
	}

	esp, _ := cpu.Registers.Get("ESP")
	cpu.Registers.Set("ESP", esp+STACK_CELL)

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := range Registers() {
		val, _ := cpu.Registers.Get(reg)
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg, uint32(val)>>16, uint32(val)&0xffff)
	}

	text += fmt.Sprintf("% 5s: %v\n", "flags", cpu.Flags)

	strval := "----_----"
	if val, ok := cpu.Stack.Peek(); ok {
		strval = fmt.Sprintf("%04X_%04X", uint32(val)>>16, uint32(val)&0xffff)
	}
	text += fmt.Sprintf("% 5s: %v\n", "stack", strval)

	return
}
