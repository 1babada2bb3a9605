package emulator

// alu reads the destination and source, applies op and writes the result
// back to the destination when write is set. op updates the flags.
func (emu *Emulator) alu(args []string, write bool, op func(a, b int32) int32) (err error) {
	dst, src, err := emu.pair(args, write)
	if err != nil {
		return
	}

	a, err := emu.Read(dst)
	if err != nil {
		return
	}
	b, err := emu.Read(src)
	if err != nil {
		return
	}

	result := op(a, b)
	if !write {
		return
	}

	return emu.Write(dst, result)
}

// unary applies op to a single writable operand.
func (emu *Emulator) unary(args []string, op func(a int32) int32) (err error) {
	dst, err := emu.single(args, true)
	if err != nil {
		return
	}

	a, err := emu.Read(dst)
	if err != nil {
		return
	}

	return emu.Write(dst, op(a))
}

func doAdd(emu *Emulator, args []string) error {
	return emu.alu(args, true, func(a, b int32) (result int32) {
		result = a + b
		emu.Flags.Arithmetic(result, a, b, true)
		return
	})
}

// SUB and CMP pass the source first: CF is source < destination.
func doSub(emu *Emulator, args []string) error {
	return emu.alu(args, true, func(a, b int32) (result int32) {
		result = a - b
		emu.Flags.Arithmetic(result, b, a, false)
		return
	})
}

func doCmp(emu *Emulator, args []string) error {
	return emu.alu(args, false, func(a, b int32) (result int32) {
		result = a - b
		emu.Flags.Arithmetic(result, b, a, false)
		return
	})
}

func doNeg(emu *Emulator, args []string) error {
	return emu.unary(args, func(a int32) (result int32) {
		result = -a
		emu.Flags.Arithmetic(result, 0, a, false)
		return
	})
}

// INC and DEC leave CF as it was.
func doInc(emu *Emulator, args []string) error {
	return emu.unary(args, func(a int32) (result int32) {
		cf := emu.Flags.Get("CF")
		result = a + 1
		emu.Flags.Arithmetic(result, 1, a, true)
		emu.Flags.Set("CF", cf)
		return
	})
}

func doDec(emu *Emulator, args []string) error {
	return emu.unary(args, func(a int32) (result int32) {
		cf := emu.Flags.Get("CF")
		result = a - 1
		emu.Flags.Arithmetic(result, 1, a, false)
		emu.Flags.Set("CF", cf)
		return
	})
}

func doAnd(emu *Emulator, args []string) error {
	return emu.alu(args, true, func(a, b int32) (result int32) {
		result = a & b
		emu.Flags.Logic(result)
		return
	})
}

func doOr(emu *Emulator, args []string) error {
	return emu.alu(args, true, func(a, b int32) (result int32) {
		result = a | b
		emu.Flags.Logic(result)
		return
	})
}

func doXor(emu *Emulator, args []string) error {
	return emu.alu(args, true, func(a, b int32) (result int32) {
		result = a ^ b
		emu.Flags.Logic(result)
		return
	})
}

func doTest(emu *Emulator, args []string) error {
	return emu.alu(args, false, func(a, b int32) (result int32) {
		result = a & b
		emu.Flags.Logic(result)
		return
	})
}

// NOT does not affect flags.
func doNot(emu *Emulator, args []string) error {
	return emu.unary(args, func(a int32) int32 {
		return ^a
	})
}

// shift returns the SHL (left) or SHR handler. The count is an immediate
// or register of any width, masked to 5 bits; a zero count leaves the flags
// alone. The shift, CF (the last bit shifted out) and the flags are all at
// the destination width.
func shift(left bool) HandlerFunc {
	return func(emu *Emulator, args []string) (err error) {
		dst, err := emu.single(args, true)
		if err != nil {
			return
		}
		src, err := emu.Classify(args[1])
		if err != nil {
			return
		}
		if src.Memory() {
			err = syntax(ErrOperandType)
			return
		}

		width, err := emu.Width(dst)
		if err != nil {
			return
		}
		width = min(width, 32)

		a, err := emu.Read(dst)
		if err != nil {
			return
		}
		b, err := emu.Read(src)
		if err != nil {
			return
		}

		count := int(uint32(b) & 0x1f)
		if count == 0 {
			return
		}

		mask := uint64(1)<<width - 1
		ua := uint64(uint32(a)) & mask

		var shifted uint64
		var cf bool
		if left {
			shifted = (ua << count) & mask
			cf = count <= width && (ua>>(width-count))&1 != 0
		} else {
			shifted = ua >> count
			cf = (ua>>(count-1))&1 != 0
		}

		// Sign extend from the destination width for SF.
		result := int32(uint32(shifted) << (32 - width))
		result >>= 32 - width

		emu.Flags.Logic(result)
		emu.Flags.Set("CF", cf)

		return emu.Write(dst, result)
	}
}
