package cpu

import (
	"encoding/binary"
	"iter"
	"slices"
	"strings"
)

// RegisterGroup is one of the eight 4-byte register cells.
type RegisterGroup int

const (
	REG_A  = RegisterGroup(0) // EAX
	REG_B  = RegisterGroup(1) // EBX
	REG_C  = RegisterGroup(2) // ECX
	REG_D  = RegisterGroup(3) // EDX
	REG_SI = RegisterGroup(4) // ESI
	REG_DI = RegisterGroup(5) // EDI
	REG_BP = RegisterGroup(6) // EBP
	REG_SP = RegisterGroup(7) // ESP

	REG_COUNT = 8
)

// registerView is a little-endian window into a register group.
type registerView struct {
	Group  RegisterGroup
	Offset int // Byte offset within the group.
	Size   int // Width in bytes: 1, 2 or 4.
}

// registerMap maps every register alias to its view.
var registerMap = map[string]registerView{
	"EAX": {REG_A, 0, 4}, "AX": {REG_A, 0, 2}, "AH": {REG_A, 1, 1}, "AL": {REG_A, 0, 1},
	"EBX": {REG_B, 0, 4}, "BX": {REG_B, 0, 2}, "BH": {REG_B, 1, 1}, "BL": {REG_B, 0, 1},
	"ECX": {REG_C, 0, 4}, "CX": {REG_C, 0, 2}, "CH": {REG_C, 1, 1}, "CL": {REG_C, 0, 1},
	"EDX": {REG_D, 0, 4}, "DX": {REG_D, 0, 2}, "DH": {REG_D, 1, 1}, "DL": {REG_D, 0, 1},
	"ESI": {REG_SI, 0, 4}, "SI": {REG_SI, 0, 2},
	"EDI": {REG_DI, 0, 4}, "DI": {REG_DI, 0, 2},
	"EBP": {REG_BP, 0, 4}, "BP": {REG_BP, 0, 2},
	"ESP": {REG_SP, 0, 4}, "SP": {REG_SP, 0, 2},
}

// registerOrder is the display order of the 32-bit registers.
var registerOrder = []string{"EAX", "EBX", "ECX", "EDX", "ESI", "EDI", "EBP", "ESP"}

// RegisterFile is the byte addressable general-purpose register storage.
type RegisterFile struct {
	cell [REG_COUNT][4]byte
}

func lookupRegister(name string) (view registerView, err error) {
	view, ok := registerMap[strings.ToUpper(name)]
	if !ok {
		err = ErrRegister(name)
	}
	return
}

// IsRegister returns true if name (in any case) is a register alias.
func IsRegister(name string) bool {
	_, ok := registerMap[strings.ToUpper(name)]
	return ok
}

// RegisterWidth returns the width in bits of a register alias, or 0 if name
// is not a register.
func RegisterWidth(name string) int {
	view, ok := registerMap[strings.ToUpper(name)]
	if !ok {
		return 0
	}
	return view.Size * 8
}

// Registers returns the 32-bit register names in display order.
func Registers() iter.Seq[string] {
	return slices.Values(registerOrder)
}

// Get reads a register alias. 8 and 16 bit views are zero-extended.
func (rf *RegisterFile) Get(name string) (value int32, err error) {
	view, err := lookupRegister(name)
	if err != nil {
		return
	}

	buf := rf.cell[view.Group][view.Offset : view.Offset+view.Size]
	switch view.Size {
	case 1:
		value = int32(buf[0])
	case 2:
		value = int32(binary.LittleEndian.Uint16(buf))
	default:
		value = int32(binary.LittleEndian.Uint32(buf))
	}

	return
}

// Set writes a register alias, truncating value to the alias width.
// Bytes of the group outside the alias are unmodified.
func (rf *RegisterFile) Set(name string, value int32) (err error) {
	view, err := lookupRegister(name)
	if err != nil {
		return
	}

	buf := rf.cell[view.Group][view.Offset : view.Offset+view.Size]
	switch view.Size {
	case 1:
		buf[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(value))
	default:
		binary.LittleEndian.PutUint32(buf, uint32(value))
	}

	return
}

// Reset zeros all registers.
func (rf *RegisterFile) Reset() {
	clear(rf.cell[:])
}
