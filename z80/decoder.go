package z80

// Index register prefix bytes.
const (
	prefixIX = 0xDD
	prefixIY = 0xFD
)

// Decode decodes the instruction at the start of data. It reads at most
// MaxInstructionLength bytes and returns false if the bytes do not form a
// defined encoding. If data is shorter than MaxInstructionLength the missing
// look-ahead bytes read as zero and an instruction that would extend past the
// end of data is reported as absent.
func Decode(data []byte) (Instruction, bool) {
	var window [MaxInstructionLength]byte
	copy(window[:], data)

	ins, ok := decodePage(0, RegHL, window[:])
	if !ok || ins.Len > len(data) {
		return Instruction{}, false
	}
	return ins, true
}

// page holds the decoding state of one opcode page. level is the number of
// prefix bytes consumed before data, ctx is the active 16-bit context register:
// HL without index prefix, IX or IY after an index prefix.
type page struct {
	level int
	ctx   Register
	data  []byte
}

func (p page) indexed() bool {
	return p.ctx != RegHL
}

// r resolves a 3-bit register code. Code 6 selects memory through the context
// register, with the displacement d when an index prefix is active.
func (p page) r(code, d byte) Argument {
	code &= 7
	if code != 6 {
		return RegisterArg{Reg: registerCodes[code]}
	}
	if p.indexed() {
		return IndexedArg{Reg: p.ctx, Displacement: int8(d)}
	}
	return IndirectArg{Reg: p.ctx}
}

// rd resolves a 3-bit register code of the base page, where the displacement
// of an indexed operand follows the opcode byte.
func (p page) rd(code byte) Argument {
	return p.r(code, p.data[1])
}

// ss resolves a 2-bit register pair code of the arithmetic family.
func (p page) ss(code byte) Argument {
	code &= 3
	if code == 2 {
		return RegisterArg{Reg: p.ctx}
	}
	return RegisterArg{Reg: pairCodesSS[code]}
}

// qq resolves a 2-bit register pair code of the stack family.
func (p page) qq(code byte) Argument {
	code &= 3
	if code == 2 {
		return RegisterArg{Reg: p.ctx}
	}
	return RegisterArg{Reg: pairCodesQQ[code]}
}

func (p page) ctxReg() Argument {
	return RegisterArg{Reg: p.ctx}
}

// address returns the little endian 16-bit value following the opcode byte.
func (p page) address() uint16 {
	return uint16(p.data[2])<<8 | uint16(p.data[1])
}

func (p page) extended() Argument {
	return ExtendedArg{Value: p.address()}
}

func (p page) absoluteIndirect() Argument {
	return AbsoluteIndirectArg{Address: p.address()}
}

func (p page) immediate() Argument {
	return ImmediateArg{Value: p.data[1]}
}

func (p page) relative() Argument {
	return RelativeArg{Offset: int8(p.data[1])}
}

func condition(code byte) Argument {
	return ConditionArg{Cond: Condition(code & 7)}
}

func reg(r Register) Argument {
	return RegisterArg{Reg: r}
}

func indirect(r Register) Argument {
	return IndirectArg{Reg: r}
}

// decodePage decodes the base page, or the index register page when ctx is IX or IY.
func decodePage(level int, ctx Register, data []byte) (Instruction, bool) {
	p := page{level: level, ctx: ctx, data: data}
	switch data[0] >> 6 {
	case 0:
		return p.section0()
	case 1:
		return p.section1()
	case 2:
		return p.section2()
	default:
		return p.section3()
	}
}

var accumulatorOps = [8]Operation{Rlca, Rrca, Rla, Rra, Daa, Cpl, Scf, Ccf}

// section0 decodes opcodes 0x00-0x3F.
func (p page) section0() (Instruction, bool) {
	op := p.data[0]
	y := (op >> 3) & 7
	q := y & 1
	pair := y >> 1

	switch op & 7 {
	case 0:
		switch y {
		case 0:
			return op0(p.level, Nop), true
		case 1:
			return op2(p.level, Ex, reg(RegAF), reg(RegAFShadow)), true
		case 2:
			return op1(p.level, Djnz, p.relative()), true
		case 3:
			return op1(p.level, Jr, p.relative()), true
		default:
			return op2(p.level, Jr, condition(y&3), p.relative()), true
		}

	case 1:
		if q == 0 {
			return op2(p.level, Ld, p.ss(pair), p.extended()), true
		}
		return op2(p.level, Add, p.ctxReg(), p.ss(pair)), true

	case 2:
		switch y {
		case 0:
			return op2(p.level, Ld, indirect(RegBC), reg(RegA)), true
		case 1:
			return op2(p.level, Ld, reg(RegA), indirect(RegBC)), true
		case 2:
			return op2(p.level, Ld, indirect(RegDE), reg(RegA)), true
		case 3:
			return op2(p.level, Ld, reg(RegA), indirect(RegDE)), true
		case 4:
			return op2(p.level, Ld, p.absoluteIndirect(), p.ctxReg()), true
		case 5:
			return op2(p.level, Ld, p.ctxReg(), p.absoluteIndirect()), true
		case 6:
			return op2(p.level, Ld, p.absoluteIndirect(), reg(RegA)), true
		default:
			return op2(p.level, Ld, reg(RegA), p.absoluteIndirect()), true
		}

	case 3:
		if q == 0 {
			return op1(p.level, Inc, p.ss(pair)), true
		}
		return op1(p.level, Dec, p.ss(pair)), true

	case 4:
		return op1(p.level, Inc, p.rd(y)), true

	case 5:
		return op1(p.level, Dec, p.rd(y)), true

	case 6:
		target := p.rd(y)
		// the immediate follows the displacement byte of an indexed target
		value := p.data[1+target.Size()]
		return op2(p.level, Ld, target, ImmediateArg{Value: value}), true

	default:
		return op0(p.level, accumulatorOps[y]), true
	}
}

// section1 decodes the 8-bit register loads 0x40-0x7F.
func (p page) section1() (Instruction, bool) {
	op := p.data[0]
	if op == 0x76 {
		return op0(p.level, Halt), true
	}
	return op2(p.level, Ld, p.rd(op>>3), p.rd(op)), true
}

// section2 decodes the accumulator arithmetic 0x80-0xBF.
func (p page) section2() (Instruction, bool) {
	op := p.data[0]
	return arithmetic(p.level, (op>>3)&7, p.rd(op)), true
}

// arithmetic builds one of the eight accumulator operations selected by code.
// SUB, AND, XOR, OR and CP name the accumulator implicitly.
func arithmetic(level int, code byte, operand Argument) Instruction {
	switch code {
	case 0:
		return op2(level, Add, reg(RegA), operand)
	case 1:
		return op2(level, Adc, reg(RegA), operand)
	case 2:
		return op1(level, Sub, operand)
	case 3:
		return op2(level, Sbc, reg(RegA), operand)
	case 4:
		return op1(level, And, operand)
	case 5:
		return op1(level, Xor, operand)
	case 6:
		return op1(level, Or, operand)
	default:
		return op1(level, Cp, operand)
	}
}

// section3 decodes opcodes 0xC0-0xFF, including the prefix bytes.
func (p page) section3() (Instruction, bool) {
	op := p.data[0]
	y := (op >> 3) & 7
	q := y & 1
	pair := y >> 1

	switch op & 7 {
	case 0:
		return op1(p.level, Ret, condition(y)), true

	case 1:
		if q == 0 {
			return op1(p.level, Pop, p.qq(pair)), true
		}
		switch pair {
		case 0:
			return op0(p.level, Ret), true
		case 1:
			return op0(p.level, Exx), true
		case 2:
			return op1(p.level, Jp, indirect(p.ctx)), true
		default:
			return op2(p.level, Ld, reg(RegSP), p.ctxReg()), true
		}

	case 2:
		return op2(p.level, Jp, condition(y), p.extended()), true

	case 3:
		switch y {
		case 0:
			return op1(p.level, Jp, p.extended()), true
		case 1:
			return decodeBitPage(p.level+1, p.ctx, p.data[1:])
		case 2:
			return op2(p.level, Out, PortArg{Port: p.data[1]}, reg(RegA)), true
		case 3:
			return op2(p.level, In, reg(RegA), PortArg{Port: p.data[1]}), true
		case 4:
			return op2(p.level, Ex, indirect(RegSP), p.ctxReg()), true
		case 5:
			return op2(p.level, Ex, reg(RegDE), reg(RegHL)), true
		case 6:
			return op0(p.level, Di), true
		default:
			return op0(p.level, Ei), true
		}

	case 4:
		return op2(p.level, Call, condition(y), p.extended()), true

	case 5:
		if q == 0 {
			return op1(p.level, Push, p.qq(pair)), true
		}
		if pair == 0 {
			return op1(p.level, Call, p.extended()), true
		}
		return p.prefixed(op)

	case 6:
		return arithmetic(p.level, y, p.immediate()), true

	default:
		return op1(p.level, Rst, RestartArg{Target: 8 * y}), true
	}
}

// prefixed delegates the prefix bytes 0xDD, 0xED and 0xFD to their pages.
// The extended page keeps an active index register as its context, an index
// prefix is not accepted after another index prefix.
func (p page) prefixed(op byte) (Instruction, bool) {
	switch op {
	case prefixIX, prefixIY:
		if p.indexed() {
			return Instruction{}, false
		}
		ctx := RegIX
		if op == prefixIY {
			ctx = RegIY
		}
		return decodePage(p.level+1, ctx, p.data[1:])
	default: // 0xED
		return decodeExtendedPage(p.level+1, p.ctx, p.data[1:])
	}
}
