// Package instruction contains fundamental types for CPU instructions.
package instruction

// Instruction represents a CPU instruction.
type Instruction interface {
	// IsCall returns true if the instruction is a call.
	IsCall() bool
	// IsJump returns true if the instruction is a jump or branch.
	IsJump() bool
	// IsNil returns true if the instruction is nil.
	IsNil() bool
	// IsReturn returns true if the instruction returns to a caller.
	IsReturn() bool
	// Name returns the instruction name.
	Name() string
	// Unofficial returns true if the instruction is not official.
	Unofficial() bool
}

// ControlFlow describes how an instruction affects the program flow.
func ControlFlow(ins Instruction) string {
	switch {
	case ins == nil || ins.IsNil():
		return ""
	case ins.IsCall():
		return "call"
	case ins.IsJump():
		return "jump"
	case ins.IsReturn():
		return "return"
	default:
		return ""
	}
}
