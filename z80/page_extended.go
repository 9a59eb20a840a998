package z80

// block operations of the extended page indexed by the low 3 opcode bits and
// the sub-field values 4 to 7.
var blockOps = [4][4]Operation{
	{Ldi, Ldd, Ldir, Lddr},
	{Cpi, Cpd, Cpir, Cpdr},
	{Ini, Ind, Inir, Indr},
	{Outi, Outd, Otir, Otdr},
}

// decodeExtendedPage decodes the instructions following a 0xED prefix.
// Only the opcode groups 0x40-0x7F and 0x80-0xBF are defined. ctx replaces
// the register pair slot of the 16-bit arithmetic and load forms when the
// page is reached through an index prefix.
func decodeExtendedPage(level int, ctx Register, data []byte) (Instruction, bool) {
	p := page{level: level, ctx: ctx, data: data}

	switch data[0] >> 6 {
	case 1:
		return p.extendedGroup1()
	case 2:
		return p.extendedGroup2()
	default:
		return Instruction{}, false
	}
}

func (p page) extendedGroup1() (Instruction, bool) {
	op := p.data[0]
	y := (op >> 3) & 7
	q := y & 1
	pair := y >> 1

	switch op & 7 {
	case 0:
		if y == 6 {
			return Instruction{}, false
		}
		return op2(p.level, In, p.r(y, 0), indirect(RegC)), true

	case 1:
		if y == 6 {
			return Instruction{}, false
		}
		return op2(p.level, Out, indirect(RegC), p.r(y, 0)), true

	case 2:
		if q == 0 {
			return op2(p.level, Sbc, reg(RegHL), p.ss(pair)), true
		}
		return op2(p.level, Adc, reg(RegHL), p.ss(pair)), true

	case 3:
		// an address after two prefix bytes does not fit the instruction length
		if p.level+3 > MaxInstructionLength {
			return Instruction{}, false
		}
		if q == 0 {
			return op2(p.level, Ld, p.absoluteIndirect(), p.ss(pair)), true
		}
		return op2(p.level, Ld, p.ss(pair), p.absoluteIndirect()), true

	case 4:
		if y != 0 {
			return Instruction{}, false
		}
		return op0(p.level, Neg), true

	case 5:
		switch y {
		case 0:
			return op0(p.level, Retn), true
		case 1:
			return op0(p.level, Reti), true
		default:
			return Instruction{}, false
		}

	case 6:
		switch y {
		case 0:
			return op1(p.level, Im, LiteralArg{Value: 0}), true
		case 2:
			return op1(p.level, Im, LiteralArg{Value: 1}), true
		case 3:
			return op1(p.level, Im, LiteralArg{Value: 2}), true
		default:
			return Instruction{}, false
		}

	default:
		switch y {
		case 0:
			return op2(p.level, Ld, reg(RegI), reg(RegA)), true
		case 1:
			return op2(p.level, Ld, reg(RegR), reg(RegA)), true
		case 2:
			return op2(p.level, Ld, reg(RegA), reg(RegI)), true
		case 3:
			return op2(p.level, Ld, reg(RegA), reg(RegR)), true
		case 4:
			return op0(p.level, Rrd), true
		case 5:
			return op0(p.level, Rld), true
		default:
			return Instruction{}, false
		}
	}
}

func (p page) extendedGroup2() (Instruction, bool) {
	op := p.data[0]
	y := (op >> 3) & 7
	z := op & 7
	if z > 3 || y < 4 {
		return Instruction{}, false
	}
	return op0(p.level, blockOps[z][y-4]), true
}
