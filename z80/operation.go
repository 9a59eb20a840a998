package z80

import "github.com/retroenv/z80disasm/internal/instruction"

// Operation identifies the mnemonic of a decoded instruction.
type Operation uint8

// Compile-time check to ensure Operation implements instruction.Instruction.
var _ instruction.Instruction = Operation(0)

// Operations of the documented Z80 instruction set.
const (
	InvalidOperation Operation = iota
	Adc
	Add
	And
	Bit
	Call
	Ccf
	Cp
	Cpd
	Cpdr
	Cpi
	Cpir
	Cpl
	Daa
	Dec
	Di
	Djnz
	Ei
	Ex
	Exx
	Halt
	Im
	In
	Inc
	Ind
	Indr
	Ini
	Inir
	Jp
	Jr
	Ld
	Ldd
	Lddr
	Ldi
	Ldir
	Neg
	Nop
	Or
	Out
	Outd
	Otdr
	Outi
	Otir
	Pop
	Push
	Res
	Ret
	Reti
	Retn
	Rl
	Rla
	Rlc
	Rld
	Rlca
	Rst
	Rr
	Rra
	Rrc
	Rrd
	Rrca
	Sbc
	Scf
	Set
	Sla
	Sra
	Srl
	Sub
	Xor

	operationCount
)

var mnemonics = [operationCount]string{
	"", "ADC", "ADD", "AND", "BIT", "CALL", "CCF", "CP", "CPD",
	"CPDR", "CPI", "CPIR", "CPL", "DAA", "DEC", "DI", "DJNZ",
	"EI", "EX", "EXX", "HALT", "IM", "IN",
	"INC", "IND", "INDR", "INI", "INIR", "JP", "JR", "LD",
	"LDD", "LDDR", "LDI", "LDIR", "NEG", "NOP", "OR", "OUT",
	"OUTD", "OTDR", "OUTI", "OTIR", "POP", "PUSH", "RES", "RET",
	"RETI", "RETN", "RL", "RLA", "RLC", "RLD", "RLCA", "RST",
	"RR", "RRA", "RRC", "RRD", "RRCA", "SBC", "SCF", "SET",
	"SLA", "SRA", "SRL", "SUB", "XOR",
}

// Name returns the upper case mnemonic of the operation.
func (o Operation) Name() string {
	if o >= operationCount {
		return ""
	}
	return mnemonics[o]
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return o.Name()
}

// IsNil returns true if the operation does not name a mnemonic.
func (o Operation) IsNil() bool {
	return o == InvalidOperation || o >= operationCount
}

// IsCall returns true if the operation pushes a return address, this includes
// the restart instruction.
func (o Operation) IsCall() bool {
	return o == Call || o == Rst
}

// IsJump returns true if the operation transfers control without pushing a
// return address.
func (o Operation) IsJump() bool {
	return o == Jp || o == Jr || o == Djnz
}

// IsReturn returns true if the operation returns from a subroutine or an interrupt.
func (o Operation) IsReturn() bool {
	return o == Ret || o == Reti || o == Retn
}

// Unofficial returns true if the instruction is not official.
// Only the documented instruction set is decoded.
func (o Operation) Unofficial() bool {
	return false
}
