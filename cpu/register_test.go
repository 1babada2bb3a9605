package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAliasing(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		group string
		wide  string
		word  string
		high  string
		low   string
	}){
		{"A", "EAX", "AX", "AH", "AL"},
		{"B", "EBX", "BX", "BH", "BL"},
		{"C", "ECX", "CX", "CH", "CL"},
		{"D", "EDX", "DX", "DH", "DL"},
	}

	for _, entry := range table {
		rf := &RegisterFile{}

		assert.NoError(rf.Set(entry.wide, 0x11223344), entry.group)
		assert.NoError(rf.Set(entry.low, 0x78), entry.group)
		assert.NoError(rf.Set(entry.high, 0x56), entry.group)

		word, err := rf.Get(entry.word)
		assert.NoError(err)
		assert.Equal(int32(0x5678), word, entry.group)

		wide, err := rf.Get(entry.wide)
		assert.NoError(err)
		assert.Equal(int32(0x11225678), wide, entry.group)

		high, _ := rf.Get(entry.high)
		low, _ := rf.Get(entry.low)
		assert.Equal(int32(0x56), high, entry.group)
		assert.Equal(int32(0x78), low, entry.group)
	}
}

func TestRegisterWordAlias(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	for _, pair := range [][2]string{{"ESI", "SI"}, {"EDI", "DI"}, {"EBP", "BP"}, {"ESP", "SP"}} {
		rf.Set(pair[0], -1)
		rf.Set(pair[1], 0x1234)

		wide, _ := rf.Get(pair[0])
		assert.Equal(int32(-65536+0x1234), wide, pair[0])

		word, _ := rf.Get(pair[1])
		assert.Equal(int32(0x1234), word, pair[1])
	}
}

func TestRegisterTruncate(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	rf.Set("AL", 0x1ff)
	al, _ := rf.Get("AL")
	assert.Equal(int32(0xff), al)

	ah, _ := rf.Get("AH")
	assert.Equal(int32(0), ah)

	rf.Set("AX", -1)
	ax, _ := rf.Get("AX")
	assert.Equal(int32(0xffff), ax)

	eax, _ := rf.Get("EAX")
	assert.Equal(int32(0xffff), eax)
}

func TestRegisterCase(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	assert.NoError(rf.Set("eax", 42))
	val, err := rf.Get("Eax")
	assert.NoError(err)
	assert.Equal(int32(42), val)

	assert.True(IsRegister("cl"))
	assert.False(IsRegister("SIL"))
	assert.False(IsRegister("R0"))
}

func TestRegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	_, err := rf.Get("RAX")
	assert.True(errors.Is(err, ErrRegisterInvalid))
	assert.Equal(ErrRegister("RAX"), err)

	err = rf.Set("SIH", 1)
	assert.True(errors.Is(err, ErrRegisterInvalid))
}

func TestRegisterWidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(32, RegisterWidth("EBP"))
	assert.Equal(16, RegisterWidth("bp"))
	assert.Equal(8, RegisterWidth("DH"))
	assert.Equal(0, RegisterWidth("BUF"))

	var names []string
	for name := range Registers() {
		names = append(names, name)
	}
	assert.Equal([]string{"EAX", "EBX", "ECX", "EDX", "ESI", "EDI", "EBP", "ESP"}, names)
}
