package data

import (
	"strings"
)

// Type is a primitive data width keyword.
type Type int

const (
	TYPE_BYTE   = Type(0)
	TYPE_SBYTE  = Type(1)
	TYPE_WORD   = Type(2)
	TYPE_SWORD  = Type(3)
	TYPE_DWORD  = Type(4)
	TYPE_SDWORD = Type(5)
	TYPE_QWORD  = Type(6)
)

type typeInfo struct {
	Name   string
	Size   int
	Signed bool
}

var typeTable = [...]typeInfo{
	TYPE_BYTE:   {"BYTE", 1, false},
	TYPE_SBYTE:  {"SBYTE", 1, true},
	TYPE_WORD:   {"WORD", 2, false},
	TYPE_SWORD:  {"SWORD", 2, true},
	TYPE_DWORD:  {"DWORD", 4, false},
	TYPE_SDWORD: {"SDWORD", 4, true},
	TYPE_QWORD:  {"QWORD", 8, true},
}

// ParseType parses a type keyword, in any case.
func ParseType(word string) (typ Type, err error) {
	word = strings.ToUpper(word)
	for n, info := range typeTable {
		if info.Name == word {
			typ = Type(n)
			return
		}
	}

	err = ErrType(word)
	return
}

// Size in bytes of one element.
func (typ Type) Size() int {
	return typeTable[typ].Size
}

// Signed types sign-extend on read.
func (typ Type) Signed() bool {
	return typeTable[typ].Signed
}

func (typ Type) String() string {
	return typeTable[typ].Name
}

// Truncate reduces value to the width of the type, sign- or zero-extending
// according to the signedness of the type.
func (typ Type) Truncate(value int64) int64 {
	switch typ.Size() {
	case 1:
		if typ.Signed() {
			return int64(int8(value))
		}
		return int64(uint8(value))
	case 2:
		if typ.Signed() {
			return int64(int16(value))
		}
		return int64(uint16(value))
	case 4:
		if typ.Signed() {
			return int64(int32(value))
		}
		return int64(uint32(value))
	}
	return value
}
