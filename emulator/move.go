package emulator

func doMov(emu *Emulator, args []string) (err error) {
	dst, src, err := emu.pair(args, true)
	if err != nil {
		return
	}

	value, err := emu.Read(src)
	if err != nil {
		return
	}

	return emu.Write(dst, value)
}

// extend returns the MOVSX (signed) or MOVZX handler. Only 8->16, 8->32 and
// 16->32 extensions are valid.
func extend(signed bool) HandlerFunc {
	return func(emu *Emulator, args []string) (err error) {
		dst, err := emu.Classify(args[0])
		if err != nil {
			return
		}
		src, err := emu.Classify(args[1])
		if err != nil {
			return
		}

		if dst.Kind != OPERAND_REGISTER || src.Kind == OPERAND_IMMEDIATE {
			err = syntax(ErrOperandType)
			return
		}

		dw, err := emu.Width(dst)
		if err != nil {
			return
		}
		sw, err := emu.Width(src)
		if err != nil {
			return
		}
		if !((sw == 8 && (dw == 16 || dw == 32)) || (sw == 16 && dw == 32)) {
			err = syntax(ErrExtendWidth)
			return
		}

		value, err := emu.Read(src)
		if err != nil {
			return
		}

		switch {
		case sw == 8 && signed:
			value = int32(int8(value))
		case sw == 8:
			value = int32(uint8(value))
		case signed:
			value = int32(int16(value))
		default:
			value = int32(uint16(value))
		}

		return emu.Write(dst, value)
	}
}

func doXchg(emu *Emulator, args []string) (err error) {
	a, b, err := emu.pair(args, true)
	if err != nil {
		return
	}
	if !b.Writable() {
		err = syntax(ErrOperandType)
		return
	}

	av, err := emu.Read(a)
	if err != nil {
		return
	}
	bv, err := emu.Read(b)
	if err != nil {
		return
	}

	err = emu.Write(a, bv)
	if err != nil {
		return
	}
	return emu.Write(b, av)
}
