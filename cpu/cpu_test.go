package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpuPushPop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0)
	cpu.Registers.Set("ESP", 0x100)

	const n = 5
	for i := range n {
		assert.NoError(cpu.Push(int32(i * 10)))
	}

	esp, _ := cpu.Registers.Get("ESP")
	assert.Equal(int32(0x100-n*STACK_CELL), esp)

	for i := n - 1; i >= 0; i-- {
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(int32(i*10), val)
	}

	esp, _ = cpu.Registers.Get("ESP")
	assert.Equal(int32(0x100), esp)

	_, err := cpu.Pop()
	assert.True(errors.Is(err, ErrStackUnderflow))

	esp, _ = cpu.Registers.Get("ESP")
	assert.Equal(int32(0x100), esp)
}

func TestCpuStackFull(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(2)
	assert.NoError(cpu.Push(1))
	assert.NoError(cpu.Push(2))
	assert.ErrorIs(cpu.Push(3), ErrStackFull)

	esp, _ := cpu.Registers.Get("ESP")
	assert.Equal(int32(-2*STACK_CELL), esp)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0)
	cpu.Registers.Set("EAX", 5)
	cpu.Flags.Set("ZF", true)
	cpu.Push(7)

	cpu.Reset()

	eax, _ := cpu.Registers.Get("EAX")
	assert.Equal(int32(0), eax)
	assert.False(cpu.Flags.Get("ZF"))
	assert.True(cpu.Stack.Empty())
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0)
	cpu.Registers.Set("EBX", 0x12345678)

	text := cpu.String()
	assert.Contains(text, "  EBX: 1234_5678\n")
	assert.Contains(text, "stack: ----_----\n")
}
