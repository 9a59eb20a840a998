package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/hexinput"
	"github.com/retroenv/z80disasm/internal/options"
)

func TestProcess_Arguments(t *testing.T) {
	opts := options.NewProgram()
	opts.HexBytes = false
	opts.Sequences = []string{"00", "3E 7F", "ED00"}

	var out bytes.Buffer
	stats, err := Process(log.NewTestLogger(t), opts, nil, &out)
	assert.NoError(t, err)
	assert.Equal(t, Stats{Decoded: 2, Undefined: 1}, stats)
	assert.Equal(t, "0000  NOP\n0000  LD A,0x7F\n0000  ; undefined encoding\n", out.String())
}

func TestProcess_Stdin(t *testing.T) {
	opts := options.NewProgram()
	opts.HexBytes = false
	opts.Input = "-"

	var out bytes.Buffer
	stdin := strings.NewReader("; sample\nDD CB 06 46\nCB 30\n")
	stats, err := Process(log.NewTestLogger(t), opts, stdin, &out)
	assert.NoError(t, err)
	assert.Equal(t, Stats{Decoded: 1, Undefined: 1}, stats)
	assert.Equal(t, "0000  BIT 0,(IX+6)\n0000  ; undefined encoding\n", out.String())
}

func TestProcess_File(t *testing.T) {
	name := filepath.Join(t.TempDir(), "code.txt")
	assert.NoError(t, os.WriteFile(name, []byte("0xDD,0x21,0x34,0x12\n"), 0o600))

	opts := options.NewProgram()
	opts.Input = name

	var out bytes.Buffer
	stats, err := Process(log.NewTestLogger(t), opts, nil, &out)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Decoded)
	assert.Equal(t, "0000  DD 21 34 12  LD IX,0x1234\n", out.String())
}

func TestProcess_Errors(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.NewProgram()
	opts.Sequences = []string{"XX"}
	_, err := Process(logger, opts, nil, &bytes.Buffer{})
	assert.True(t, errors.Is(err, hexinput.ErrInvalidByte))

	opts = options.NewProgram()
	opts.Input = filepath.Join(t.TempDir(), "missing.txt")
	_, err = Process(logger, opts, nil, &bytes.Buffer{})
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "opening file"))
}
