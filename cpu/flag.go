package cpu

import (
	"fmt"
	"math/bits"
	"strings"
)

// Flags is the status flag register. Bit positions follow EFLAGS.
type Flags uint32

const (
	FLAG_CF = Flags(1 << 0)  // Carry
	FLAG_PF = Flags(1 << 2)  // Parity
	FLAG_AF = Flags(1 << 4)  // Auxiliary carry
	FLAG_ZF = Flags(1 << 6)  // Zero
	FLAG_SF = Flags(1 << 7)  // Sign
	FLAG_OF = Flags(1 << 11) // Overflow
)

var flagMap = map[string]Flags{
	"CF": FLAG_CF,
	"PF": FLAG_PF,
	"AF": FLAG_AF,
	"ZF": FLAG_ZF,
	"SF": FLAG_SF,
	"OF": FLAG_OF,
}

var flagOrder = []string{"CF", "PF", "AF", "ZF", "SF", "OF"}

// Has returns true if all bits of flag are set.
func (fl Flags) Has(flag Flags) bool {
	return fl&flag == flag
}

// Put sets or clears flag.
func (fl *Flags) Put(flag Flags, set bool) {
	if set {
		*fl |= flag
	} else {
		*fl &^= flag
	}
}

// Get reads a flag by name. Unknown names read as false.
func (fl Flags) Get(name string) bool {
	flag, ok := flagMap[strings.ToUpper(name)]
	if !ok {
		return false
	}
	return fl.Has(flag)
}

// Set writes a flag by name. Unknown names are ignored.
func (fl *Flags) Set(name string, value bool) {
	flag, ok := flagMap[strings.ToUpper(name)]
	if !ok {
		return
	}
	fl.Put(flag, value)
}

// IsFlag returns true if name is one of the six flag names.
func IsFlag(name string) bool {
	_, ok := flagMap[strings.ToUpper(name)]
	return ok
}

// parity is true when the low byte has an even number of set bits.
func parity(v int32) bool {
	return bits.OnesCount8(uint8(v))%2 == 0
}

// Arithmetic updates all six flags after result = a + b (add) or
// result = a - b (!add).
//
// The addition carry is the signed-operand approximation: both operands
// strictly positive with a negative result, or both negative with a
// positive result. The subtraction carry is the signed a < b.
func (fl *Flags) Arithmetic(result, a, b int32, add bool) {
	fl.Put(FLAG_ZF, result == 0)
	fl.Put(FLAG_SF, result < 0)
	fl.Put(FLAG_PF, parity(result))
	fl.Put(FLAG_AF, (a^b^result)&0x10 != 0)

	if add {
		fl.Put(FLAG_CF, (a > 0 && b > 0 && result < 0) || (a < 0 && b < 0 && result > 0))
		fl.Put(FLAG_OF, uint32((a^result)&(b^result))&0x80000000 != 0)
	} else {
		fl.Put(FLAG_CF, a < b)
		fl.Put(FLAG_OF, uint32((a^b)&(a^result))&0x80000000 != 0)
	}
}

// Logic updates flags after a bitwise operation. CF and OF are cleared,
// AF is unchanged.
func (fl *Flags) Logic(result int32) {
	fl.Put(FLAG_ZF, result == 0)
	fl.Put(FLAG_SF, result < 0)
	fl.Put(FLAG_PF, parity(result))
	fl.Put(FLAG_CF, false)
	fl.Put(FLAG_OF, false)
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = 0
}

func (fl Flags) String() string {
	parts := make([]string, 0, len(flagOrder))
	for _, name := range flagOrder {
		parts = append(parts, fmt.Sprintf("%v=%v", name, fl.Get(name)))
	}
	return strings.Join(parts, " ")
}
