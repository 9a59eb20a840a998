package z80

// rotate and shift operations of the bit page, slot 6 is the undocumented SLL.
var rotateOps = [8]Operation{Rlc, Rrc, Rl, Rr, Sla, Sra, InvalidOperation, Srl}

// decodeBitPage decodes the instructions following a 0xCB prefix. After an
// index prefix the displacement byte precedes the final opcode byte.
func decodeBitPage(level int, ctx Register, data []byte) (Instruction, bool) {
	p := page{level: level, ctx: ctx, data: data}

	op := data[0]
	var d byte
	if p.indexed() {
		d, op = data[0], data[1]
		// register targets of indexed bit operations are undocumented
		if op&7 != 6 {
			return Instruction{}, false
		}
	}

	y := (op >> 3) & 7
	operand := p.r(op, d)

	switch op >> 6 {
	case 0:
		rotate := rotateOps[y]
		if rotate.IsNil() {
			return Instruction{}, false
		}
		return op1(level, rotate, operand), true
	case 1:
		return op2(level, Bit, LiteralArg{Value: y}, operand), true
	case 2:
		return op2(level, Res, LiteralArg{Value: y}, operand), true
	default:
		return op2(level, Set, LiteralArg{Value: y}, operand), true
	}
}
