package z80

import (
	"fmt"
	"strconv"
)

// AddressingMode is a flag set describing how the value of an argument is
// interpreted.
type AddressingMode uint8

// Addressing mode flags.
const (
	RegisterMode AddressingMode = 1 << iota
	ImmediateMode
	ExtendedMode
	IndirectMode
	IndexedMode
	FlagMode
	ImplicitMode
	DisplacementMode
)

// Has returns true if all flags of mode are set.
func (m AddressingMode) Has(mode AddressingMode) bool {
	return m&mode == mode
}

// Argument is a single operand of a decoded instruction. The concrete type
// selects the addressing mode and carries only the fields that mode needs.
type Argument interface {
	fmt.Stringer

	// Mode returns the addressing mode flags of the argument.
	Mode() AddressingMode
	// Size returns the number of instruction bytes the argument occupies.
	Size() int

	argument()
}

// RegisterArg addresses a register directly.
type RegisterArg struct {
	Reg Register
}

// IndirectArg addresses memory through a register or register pair.
type IndirectArg struct {
	Reg Register
}

// IndexedArg addresses memory through an index register plus a signed displacement.
type IndexedArg struct {
	Reg          Register
	Displacement int8
}

// ImmediateArg is an 8-bit immediate value.
type ImmediateArg struct {
	Value uint8
}

// PortArg is an 8-bit immediate I/O port address.
type PortArg struct {
	Port uint8
}

// ExtendedArg is a 16-bit immediate value or absolute address.
type ExtendedArg struct {
	Value uint16
}

// AbsoluteIndirectArg addresses memory through a 16-bit absolute address.
type AbsoluteIndirectArg struct {
	Address uint16
}

// RelativeArg is a signed branch offset relative to the next instruction.
type RelativeArg struct {
	Offset int8
}

// ConditionArg is the flag condition of a conditional instruction.
type ConditionArg struct {
	Cond Condition
}

// RestartArg is the fixed target address of a restart instruction.
type RestartArg struct {
	Target uint8
}

// LiteralArg is a numeric literal encoded in the opcode, a bit index or an
// interrupt mode.
type LiteralArg struct {
	Value uint8
}

// Mode returns the addressing mode flags of the argument.
func (RegisterArg) Mode() AddressingMode {
	return RegisterMode
}

// Size returns the number of instruction bytes the argument occupies.
func (RegisterArg) Size() int {
	return 0
}

// String renders the register name.
func (a RegisterArg) String() string {
	return a.Reg.String()
}

func (RegisterArg) argument() {}

// Mode implements Argument.
func (IndirectArg) Mode() AddressingMode {
	return RegisterMode | IndirectMode
}

// Size implements Argument.
func (IndirectArg) Size() int {
	return 0
}

// String renders the register name in parentheses.
func (a IndirectArg) String() string {
	return "(" + a.Reg.String() + ")"
}

func (IndirectArg) argument() {}

// Mode implements Argument.
func (IndexedArg) Mode() AddressingMode {
	return RegisterMode | IndirectMode | IndexedMode
}

// Size implements Argument.
func (IndexedArg) Size() int {
	return 1
}

// String renders the index register and signed decimal displacement in parentheses.
func (a IndexedArg) String() string {
	return fmt.Sprintf("(%s%+d)", a.Reg, a.Displacement)
}

func (IndexedArg) argument() {}

// Mode implements Argument.
func (ImmediateArg) Mode() AddressingMode {
	return ImmediateMode
}

// Size implements Argument.
func (ImmediateArg) Size() int {
	return 1
}

// String renders the value in hexadecimal.
func (a ImmediateArg) String() string {
	return fmt.Sprintf("0x%X", a.Value)
}

func (ImmediateArg) argument() {}

// Mode implements Argument.
func (PortArg) Mode() AddressingMode {
	return ImmediateMode
}

// Size implements Argument.
func (PortArg) Size() int {
	return 1
}

// String renders the port in hexadecimal.
func (a PortArg) String() string {
	return fmt.Sprintf("0x%X", a.Port)
}

func (PortArg) argument() {}

// Mode implements Argument.
func (ExtendedArg) Mode() AddressingMode {
	return ImmediateMode | ExtendedMode
}

// Size implements Argument.
func (ExtendedArg) Size() int {
	return 2
}

// String renders the value in hexadecimal.
func (a ExtendedArg) String() string {
	return fmt.Sprintf("0x%X", a.Value)
}

func (ExtendedArg) argument() {}

// Mode implements Argument.
func (AbsoluteIndirectArg) Mode() AddressingMode {
	return ImmediateMode | ExtendedMode | IndirectMode
}

// Size implements Argument.
func (AbsoluteIndirectArg) Size() int {
	return 2
}

// String renders the address in hexadecimal.
func (a AbsoluteIndirectArg) String() string {
	return fmt.Sprintf("0x%X", a.Address)
}

func (AbsoluteIndirectArg) argument() {}

// Mode implements Argument.
func (RelativeArg) Mode() AddressingMode {
	return ImmediateMode | DisplacementMode
}

// Size implements Argument.
func (RelativeArg) Size() int {
	return 1
}

// String renders the signed decimal offset.
func (a RelativeArg) String() string {
	return fmt.Sprintf("%+d", a.Offset)
}

func (RelativeArg) argument() {}

// Mode implements Argument.
func (ConditionArg) Mode() AddressingMode {
	return FlagMode
}

// Size implements Argument.
func (ConditionArg) Size() int {
	return 0
}

// String renders the condition mnemonic.
func (a ConditionArg) String() string {
	return a.Cond.String()
}

func (ConditionArg) argument() {}

// Mode implements Argument.
func (RestartArg) Mode() AddressingMode {
	return ImplicitMode | FlagMode
}

// Size implements Argument.
func (RestartArg) Size() int {
	return 0
}

// String renders the target address in hexadecimal.
func (a RestartArg) String() string {
	return fmt.Sprintf("0x%X", a.Target)
}

func (RestartArg) argument() {}

// Mode implements Argument.
func (LiteralArg) Mode() AddressingMode {
	return ImplicitMode
}

// Size implements Argument.
func (LiteralArg) Size() int {
	return 0
}

// String renders the value in decimal.
func (a LiteralArg) String() string {
	return strconv.Itoa(int(a.Value))
}

func (LiteralArg) argument() {}
