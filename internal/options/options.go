// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input     string   // file with one byte sequence per line, "-" for stdin
	Sequences []string // byte sequences passed as arguments

	Origin uint16 // address assumed for every decoded instruction

	Debug    bool
	Dump     bool // dump the decoded instruction structure
	HexBytes bool // output the instruction bytes before the mnemonic
	Quiet    bool
}

// Render returns the options that control the output of a decoded line.
func (p Program) Render() Render {
	return Render{
		Dump:     p.Dump,
		HexBytes: p.HexBytes,
		Origin:   p.Origin,
	}
}

// Render defines options to control the output of decoded instructions.
type Render struct {
	Dump     bool
	HexBytes bool
	Origin   uint16
}

// NewProgram returns a new options instance with default options.
func NewProgram() Program {
	return Program{
		HexBytes: true,
	}
}
