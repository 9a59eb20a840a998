// Package hexinput parses instruction byte sequences written as hexadecimal text.
package hexinput

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmpty is returned for a sequence that does not contain any byte.
	ErrEmpty = errors.New("empty byte sequence")
	// ErrInvalidByte is returned for text that is not a hexadecimal byte.
	ErrInvalidByte = errors.New("invalid hex byte")
)

// Parse parses a byte sequence. Bytes can be separated by spaces, commas or
// colons and can carry a 0x or $ prefix, a field without separators is read as
// a run of two digit bytes:
//
//	"DD 21 34 12", "dd213412", "0xDD,0x21,0x34,0x12", "$DD $21"
func Parse(s string) ([]byte, error) {
	var data []byte
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		field = trimPrefix(field)
		if len(field) == 1 {
			field = "0" + field
		}

		b, err := hex.DecodeString(field)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", ErrInvalidByte, field, err)
		}
		data = append(data, b...)
	}

	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return data, nil
}

// Scan reads one byte sequence per line from r and calls fn for every parsed
// sequence. Empty lines and lines starting with ; or # are skipped.
func Scan(r io.Reader, fn func(line int, data []byte) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == ';' || text[0] == '#' {
			continue
		}

		data, err := Parse(text)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", line, err)
		}
		if err := fn(line, data); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', ':':
		return true
	default:
		return false
	}
}

func trimPrefix(field string) string {
	for _, prefix := range []string{"0x", "0X", "$"} {
		if strings.HasPrefix(field, prefix) {
			return field[len(prefix):]
		}
	}
	return field
}
