// Package render writes decoded instructions as assembly listing lines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/instruction"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/z80"
)

// Writer decodes byte sequences and writes one listing line per sequence.
type Writer struct {
	logger *log.Logger
	out    io.Writer
	opts   options.Render
	dumper *spew.ConfigState
}

// New returns a new listing writer.
func New(logger *log.Logger, out io.Writer, opts options.Render) *Writer {
	return &Writer{
		logger: logger,
		out:    out,
		opts:   opts,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		},
	}
}

// Write decodes the instruction at the start of data and writes its listing
// line. It returns whether the bytes formed a defined instruction.
// Bytes following the decoded instruction are ignored.
func (w *Writer) Write(data []byte) (bool, error) {
	ins, ok := z80.Decode(data)
	if !ok {
		return false, w.writeUndefined(data)
	}

	w.logger.Debug("Decoded instruction",
		log.String("mnemonic", ins.Op.Name()),
		log.Int("length", ins.Len))
	if extra := len(data) - ins.Len; extra > 0 {
		w.logger.Debug("Ignoring trailing bytes", log.Int("count", extra))
	}

	var sb strings.Builder
	sb.WriteString(w.prefix(data[:ins.Len]))
	sb.WriteString(strings.TrimSpace(ins.String()))

	if target, ok := ins.BranchTarget(w.opts.Origin); ok {
		fmt.Fprintf(&sb, " ; %s 0x%04X", instruction.ControlFlow(ins.Op), target)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w.out, sb.String()); err != nil {
		return true, fmt.Errorf("writing line: %w", err)
	}

	if w.opts.Dump {
		w.dumper.Fdump(w.out, ins)
	}
	return true, nil
}

func (w *Writer) writeUndefined(data []byte) error {
	if len(data) > z80.MaxInstructionLength {
		data = data[:z80.MaxInstructionLength]
	}

	w.logger.Warn("Undefined instruction encoding",
		log.String("bytes", hexBytes(data)))

	line := w.prefix(data) + "; undefined encoding\n"
	if _, err := io.WriteString(w.out, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// prefix returns the address and optional byte columns of a line.
func (w *Writer) prefix(data []byte) string {
	s := fmt.Sprintf("%04X  ", w.opts.Origin)
	if w.opts.HexBytes {
		s += fmt.Sprintf("%-11s  ", hexBytes(data))
	}
	return s
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
