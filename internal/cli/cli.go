// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/z80disasm/internal/options"
	"golang.org/x/term"
)

// stdinIsTerminal reports whether the standard input is attached to a terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.NewProgram()
	var origin string
	var noHexBytes bool
	readOptionFlags(flags, &opts, &origin, &noHexBytes)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags}
	}

	if len(args) == 0 && opts.Input == "" {
		if stdinIsTerminal() {
			return opts, &UsageError{flags: flags}
		}
		opts.Input = "-"
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	address, err := strconv.ParseUint(origin, 0, 16)
	if err != nil {
		return opts, fmt.Errorf("invalid origin address '%s': %w", origin, err)
	}

	opts.Origin = uint16(address)
	opts.HexBytes = !noHexBytes
	if len(args) > 0 {
		opts.Sequences = args
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: z80disasm [options] <hex bytes>...\n\n")
	fmt.Printf("example: z80disasm \"DD 21 34 12\" CB7E\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 1 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after byte sequence, please pass the options first", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, origin *string, noHexBytes *bool) {
	flags.StringVar(&opts.Input, "i", "", "name of a text file with one hex byte sequence per line, - for stdin")
	flags.StringVar(origin, "org", "0", "address of the decoded instructions, used to resolve branch targets")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Dump, "dump", false, "dump the structure of every decoded instruction")
	flags.BoolVar(noHexBytes, "nohex", false, "do not output the instruction bytes")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
