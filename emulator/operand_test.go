package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/x86sim/data"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := newTestEmulator()
	_, err := emu.Data.Declare("BUF", data.TYPE_WORD, []int64{1, 2, 3}, true)
	assert.NoError(err)
	_, err = emu.Data.Declare("N", data.TYPE_DWORD, []int64{4}, false)
	assert.NoError(err)

	table := [](struct {
		token string
		op    Operand
	}){
		{"eax", Operand{Kind: OPERAND_REGISTER, Token: "EAX", Name: "EAX"}},
		{"[esi]", Operand{Kind: OPERAND_INDIRECT, Token: "[ESI]", Name: "ESI"}},
		{"[N]", Operand{Kind: OPERAND_VARIABLE, Token: "[N]", Name: "N"}},
		{"buf", Operand{Kind: OPERAND_VARIABLE, Token: "BUF", Name: "BUF"}},
		{"BUF[2]", Operand{Kind: OPERAND_VARIABLE, Token: "BUF[2]", Name: "BUF", Index: 2}},
		{"BUF[BX]", Operand{Kind: OPERAND_VARIABLE, Token: "BUF[BX]", Name: "BUF", IndexReg: "BX"}},
		{"OFFSET N", Operand{Kind: OPERAND_IMMEDIATE, Token: "OFFSET N", Value: 6}},
		{"LENGTHOF BUF", Operand{Kind: OPERAND_IMMEDIATE, Token: "LENGTHOF BUF", Value: 3}},
		{"SIZEOF BUF", Operand{Kind: OPERAND_IMMEDIATE, Token: "SIZEOF BUF", Value: 2}},
		{"-5", Operand{Kind: OPERAND_IMMEDIATE, Token: "-5", Value: -5}},
		{"10h", Operand{Kind: OPERAND_IMMEDIATE, Token: "10H", Value: 16}},
	}

	for _, entry := range table {
		op, err := emu.Classify(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.op, op, entry.token)
	}

	for _, token := range []string{"", "FOO", "[FOO]", "OFFSET FOO", "BUF[FOO]"} {
		_, err := emu.Classify(token)
		assert.ErrorIs(err, ErrSyntax, token)
	}
}

func TestOperandAccess(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := newTestEmulator()
	_, err := emu.Data.Declare("BUF", data.TYPE_SBYTE, []int64{1, 2, 3}, true)
	assert.NoError(err)

	err = emu.ResolveWrite("BUF[1]", 0x1FF)
	assert.NoError(err)

	value, err := emu.ResolveRead("BUF[1]")
	assert.NoError(err)
	assert.Equal(int32(-1), value)

	emu.Registers.Set("EDI", 2)
	value, err = emu.ResolveRead("[EDI]")
	assert.NoError(err)
	assert.Equal(int32(3), value)

	op, err := emu.Classify("[EDI]")
	assert.NoError(err)
	assert.True(op.Memory())
	assert.True(op.Writable())

	width, err := emu.Width(op)
	assert.NoError(err)
	assert.Equal(8, width)

	op, err = emu.Classify("7")
	assert.NoError(err)
	assert.False(op.Memory())
	assert.False(op.Writable())
	assert.ErrorIs(emu.Write(op, 1), ErrOperandType)

	width, err = emu.Width(op)
	assert.NoError(err)
	assert.Equal(0, width)

	emu.Registers.Set("EBX", 3)
	_, err = emu.ResolveRead("BUF[EBX]")
	assert.ErrorIs(err, data.ErrIndexRange)

	assert.Equal("indirect", OPERAND_INDIRECT.String())
	assert.Equal(".DATA", SEGMENT_DATA.String())
}
