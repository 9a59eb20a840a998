package z80

import "strings"

// MaxInstructionLength is the maximum number of bytes a single instruction
// occupies, including prefix bytes.
const MaxInstructionLength = 4

// Instruction is a decoded instruction. The zero value represents an absent
// instruction.
type Instruction struct {
	Op   Operation
	Args []Argument
	Len  int // encoded length in bytes, including prefixes
}

// op0 builds an instruction without arguments. level is the number of prefix
// bytes consumed before the opcode byte.
func op0(level int, op Operation) Instruction {
	return Instruction{
		Op:  op,
		Len: level + 1,
	}
}

func op1(level int, op Operation, arg Argument) Instruction {
	return Instruction{
		Op:   op,
		Args: []Argument{arg},
		Len:  level + 1 + arg.Size(),
	}
}

func op2(level int, op Operation, first, second Argument) Instruction {
	return Instruction{
		Op:   op,
		Args: []Argument{first, second},
		Len:  level + 1 + first.Size() + second.Size(),
	}
}

// String renders the instruction as assembly text, the mnemonic followed by a
// space and the comma separated arguments. An absent instruction renders as an
// empty string.
func (ins Instruction) String() string {
	if ins.Op.IsNil() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(ins.Op.Name())
	sb.WriteByte(' ')
	for i, arg := range ins.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.String())
	}
	return sb.String()
}

// Format renders the result of Decode. An absent instruction renders as an
// empty string.
func Format(ins Instruction, ok bool) string {
	if !ok {
		return ""
	}
	return ins.String()
}

// BranchTarget returns the destination address of a jump, call or restart
// instruction located at address pc. Indirect jumps through a register have no
// static destination.
func (ins Instruction) BranchTarget(pc uint16) (uint16, bool) {
	if !ins.Op.IsJump() && !ins.Op.IsCall() {
		return 0, false
	}

	for _, arg := range ins.Args {
		switch a := arg.(type) {
		case ExtendedArg:
			return a.Value, true
		case RelativeArg:
			next := pc + uint16(ins.Len)
			return next + uint16(int16(a.Offset)), true
		case RestartArg:
			return uint16(a.Target), true
		}
	}
	return 0, false
}
