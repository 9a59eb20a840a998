package z80

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOperation_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ADC", Adc.Name())
	assert.Equal(t, "OTDR", Otdr.Name())
	assert.Equal(t, "XOR", Xor.Name())
	assert.Equal(t, "", InvalidOperation.Name())
	assert.Equal(t, "", Operation(250).Name())

	for op := Adc; op < operationCount; op++ {
		assert.False(t, op.IsNil())
		assert.True(t, op.Name() != "")
	}
}

func TestOperation_ControlFlow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op       Operation
		call     bool
		jump     bool
		isReturn bool
	}{
		{Call, true, false, false},
		{Rst, true, false, false},
		{Jp, false, true, false},
		{Jr, false, true, false},
		{Djnz, false, true, false},
		{Ret, false, false, true},
		{Reti, false, false, true},
		{Retn, false, false, true},
		{Ld, false, false, false},
		{InvalidOperation, false, false, false},
	}

	for _, test := range tests {
		t.Run(test.op.Name(), func(t *testing.T) {
			assert.Equal(t, test.call, test.op.IsCall())
			assert.Equal(t, test.jump, test.op.IsJump())
			assert.Equal(t, test.isReturn, test.op.IsReturn())
			assert.False(t, test.op.Unofficial())
		})
	}
}
