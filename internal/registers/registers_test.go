package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleRegisterAccess(t *testing.T) {
	r := New()

	for _, reg := range []SingleRegister{A, B, C, D, E, H, L} {
		r.SetSingle(reg, 0x42)
		assert.Equal(t, uint8(0x42), r.Single(reg), "register %s", reg)
		r.SetSingle(reg, 0x00)
	}
}

func TestFlagRegisterLowNibbleIsGrounded(t *testing.T) {
	r := New()

	r.SetSingle(F, 0xFF)
	assert.Equal(t, uint8(0xF0), r.Single(F))

	r.SetDouble(AF, 0x12FF)
	assert.Equal(t, uint16(0x12F0), r.Double(AF))
}

func TestDoubleRegisterCombinesHighAndLow(t *testing.T) {
	r := New()
	r.SetDouble(BC, 0x1234)

	assert.Equal(t, uint8(0x12), r.B)
	assert.Equal(t, uint8(0x34), r.C)
	assert.Equal(t, uint16(0x1234), r.Double(BC))

	r.H = 0xAB
	r.L = 0xCD
	assert.Equal(t, uint16(0xABCD), r.Double(HL))
}

func TestDoubleRegisterCounters(t *testing.T) {
	r := New()

	r.SetDouble(SP, 0xFFFE)
	r.SetDouble(PC, 0x0100)

	assert.Equal(t, uint16(0xFFFE), r.SP)
	assert.Equal(t, uint16(0x0100), r.PC)
	assert.Equal(t, uint16(0xFFFE), r.Double(SP))
	assert.Equal(t, uint16(0x0100), r.Double(PC))
}

func TestRegisterNames(t *testing.T) {
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "F", F.String())
	assert.Equal(t, "AF", AF.String())
	assert.Equal(t, "SP", SP.String())
}
