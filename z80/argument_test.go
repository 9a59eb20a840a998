package z80

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestArgument_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		arg      Argument
		expected string
	}{
		{"register", RegisterArg{Reg: RegAFShadow}, "AF'"},
		{"register indirect", IndirectArg{Reg: RegHL}, "(HL)"},
		{"indexed positive", IndexedArg{Reg: RegIX, Displacement: 127}, "(IX+127)"},
		{"indexed negative", IndexedArg{Reg: RegIY, Displacement: -128}, "(IY-128)"},
		{"indexed zero", IndexedArg{Reg: RegIX}, "(IX+0)"},
		{"immediate", ImmediateArg{Value: 0x7F}, "0x7F"},
		{"port", PortArg{Port: 0xFE}, "0xFE"},
		{"extended", ExtendedArg{Value: 0x1234}, "0x1234"},
		{"absolute indirect", AbsoluteIndirectArg{Address: 0xBEEF}, "0xBEEF"},
		{"relative forward", RelativeArg{Offset: 5}, "+5"},
		{"relative backward", RelativeArg{Offset: -2}, "-2"},
		{"condition", ConditionArg{Cond: CondPE}, "PE"},
		{"restart", RestartArg{Target: 0x38}, "0x38"},
		{"literal", LiteralArg{Value: 7}, "7"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.arg.String())
		})
	}
}

func TestArgument_ModeAndSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  Argument
		mode AddressingMode
		size int
	}{
		{"register", RegisterArg{}, RegisterMode, 0},
		{"register indirect", IndirectArg{}, RegisterMode | IndirectMode, 0},
		{"indexed", IndexedArg{}, RegisterMode | IndirectMode | IndexedMode, 1},
		{"immediate", ImmediateArg{}, ImmediateMode, 1},
		{"port", PortArg{}, ImmediateMode, 1},
		{"extended", ExtendedArg{}, ImmediateMode | ExtendedMode, 2},
		{"absolute indirect", AbsoluteIndirectArg{}, ImmediateMode | ExtendedMode | IndirectMode, 2},
		{"relative", RelativeArg{}, ImmediateMode | DisplacementMode, 1},
		{"condition", ConditionArg{}, FlagMode, 0},
		{"restart", RestartArg{}, ImplicitMode | FlagMode, 0},
		{"literal", LiteralArg{}, ImplicitMode, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mode := test.arg.Mode()
			assert.Equal(t, test.mode, mode)
			assert.Equal(t, test.size, test.arg.Size())

			// indexed implies indirect and register
			if mode.Has(IndexedMode) {
				assert.True(t, mode.Has(RegisterMode|IndirectMode))
			}
		})
	}
}

func TestRegisterAndCondition_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", RegA.String())
	assert.Equal(t, "HL", RegHL.String())
	assert.Equal(t, "IY", RegIY.String())
	assert.Equal(t, "R", RegR.String())
	assert.Equal(t, "", Register(200).String())

	assert.Equal(t, "NZ", CondNZ.String())
	assert.Equal(t, "C", CondC.String())
	assert.Equal(t, "M", CondM.String())
	assert.Equal(t, "", Condition(8).String())
}
