// Package app provides the main application helper for the disassembler.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/hexinput"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/render"
)

// Stats counts the processed byte sequences.
type Stats struct {
	Decoded   int
	Undefined int
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("z80disasm", log.String("version", buildinfo.Version(version, commit, date)))
}

// Process decodes the byte sequences passed as arguments followed by the
// sequences of the input file and writes the listing to out.
func Process(logger *log.Logger, opts options.Program, stdin io.Reader, out io.Writer) (Stats, error) {
	var stats Stats
	writer := render.New(logger, out, opts.Render())

	write := func(data []byte) error {
		ok, err := writer.Write(data)
		if err != nil {
			return err
		}
		if ok {
			stats.Decoded++
		} else {
			stats.Undefined++
		}
		return nil
	}

	for _, sequence := range opts.Sequences {
		data, err := hexinput.Parse(sequence)
		if err != nil {
			return stats, fmt.Errorf("parsing argument '%s': %w", sequence, err)
		}
		if err := write(data); err != nil {
			return stats, err
		}
	}

	if opts.Input == "" {
		return stats, nil
	}

	in, closeInput, err := openInput(opts.Input, stdin)
	if err != nil {
		return stats, err
	}
	defer closeInput()

	err = hexinput.Scan(in, func(line int, data []byte) error {
		logger.Debug("Processing line", log.Int("line", line))
		return write(data)
	})
	if err != nil {
		return stats, fmt.Errorf("processing input '%s': %w", opts.Input, err)
	}
	return stats, nil
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file '%s': %w", name, err)
	}
	return file, func() { _ = file.Close() }, nil
}
