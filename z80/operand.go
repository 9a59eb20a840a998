package z80

// Register identifies an 8-bit register, a register pair, an index register or
// one of the special purpose registers.
type Register uint8

// Registers addressable by Z80 instructions.
const (
	RegA Register = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegIX
	RegIY
	RegAFShadow // alternate AF register pair
	RegI
	RegR

	registerCount
)

var registerNames = [registerCount]string{
	"A", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL",
	"SP", "IX", "IY", "AF'", "I", "R",
}

// String returns the assembler name of the register.
func (r Register) String() string {
	if r >= registerCount {
		return ""
	}
	return registerNames[r]
}

// Condition identifies a flag condition of a conditional jump, call or return.
type Condition uint8

// Conditions in the order of their 3-bit encoding.
const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM

	conditionCount
)

var conditionNames = [conditionCount]string{
	"NZ", "Z", "NC", "C", "PO", "PE", "P", "M",
}

// String returns the assembler name of the condition.
func (c Condition) String() string {
	if c >= conditionCount {
		return ""
	}
	return conditionNames[c]
}

// register code tables, index 6 of registerCodes selects memory and is
// resolved by the decoder.
var (
	registerCodes = [8]Register{RegB, RegC, RegD, RegE, RegH, RegL, RegHL, RegA}
	pairCodesSS   = [4]Register{RegBC, RegDE, RegHL, RegSP}
	pairCodesQQ   = [4]Register{RegBC, RegDE, RegHL, RegAF}
)
