package instructions

import (
	"testing"

	"github.com/iensu/gejmboj/internal/registers"
)

func TestAddHL(t *testing.T) {
	cases := []struct {
		name   string
		hl, n  uint16
		sum    uint16
		flags  registers.Flags
		zeroIn bool
	}{
		{"no carries", 0x1234, 0x0111, 0x1345, registers.Flags{}, false},
		{"carry from bit 11", 0x0FFF, 0x0001, 0x1000, registers.Flags{HalfCarry: true}, false},
		{"carry from bit 15", 0xF000, 0x1000, 0x0000, registers.Flags{Carry: true}, false},
		{"zero flag untouched", 0x0001, 0x0001, 0x0002, registers.Flags{Zero: true}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mem, irq := testState()
			r.SetDouble(registers.HL, tc.hl)
			r.SetDouble(registers.BC, tc.n)
			r.SetFlags(tc.zeroIn, true, false, false)

			instruction := AddHL{Source: registers.BC}
			cycles := mustExecute(t, instruction, r, mem, irq)

			assertCycles(t, instruction, cycles, 2)
			if got := r.Double(registers.HL); got != tc.sum {
				t.Errorf("HL is 0x%04X, want 0x%04X", got, tc.sum)
			}
			assertFlags(t, r, tc.flags)
		})
	}
}

func TestAddHLSelf(t *testing.T) {
	r, mem, irq := testState()
	r.SetDouble(registers.HL, 0x8A23)

	mustExecute(t, AddHL{Source: registers.HL}, r, mem, irq)

	if got := r.Double(registers.HL); got != 0x1446 {
		t.Errorf("HL is 0x%04X, want 0x1446", got)
	}
	assertFlags(t, r, registers.Flags{HalfCarry: true, Carry: true})
}

func TestAddSP(t *testing.T) {
	cases := []struct {
		name   string
		sp     uint16
		offset int8
		result uint16
		flags  registers.Flags
	}{
		{"positive offset", 0xFFF8, 0x02, 0xFFFA, registers.Flags{}},
		{"low byte carries", 0x00FF, 0x01, 0x0100, registers.Flags{HalfCarry: true, Carry: true}},
		{"negative offset", 0x0100, -1, 0x00FF, registers.Flags{}},
		{"negative with low byte carries", 0x0001, -1, 0x0000, registers.Flags{HalfCarry: true, Carry: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mem, irq := testState()
			r.SP = tc.sp
			r.SetFlags(true, true, false, false)

			instruction := AddSP{Offset: tc.offset}
			cycles := mustExecute(t, instruction, r, mem, irq)

			assertCycles(t, instruction, cycles, 4)
			if r.SP != tc.result {
				t.Errorf("SP is 0x%04X, want 0x%04X", r.SP, tc.result)
			}
			assertFlags(t, r, tc.flags)
		})
	}
}

func TestIncrementPair(t *testing.T) {
	r, mem, irq := testState()
	r.SetDouble(registers.DE, 0x20FF)
	r.SetFlags(true, true, true, true)

	instruction := IncrementPair{Pair: registers.DE}
	cycles := mustExecute(t, instruction, r, mem, irq)

	assertCycles(t, instruction, cycles, 2)
	if got := r.Double(registers.DE); got != 0x2100 {
		t.Errorf("DE is 0x%04X, want 0x2100", got)
	}
	assertFlags(t, r, registers.Flags{Zero: true, Subtract: true, HalfCarry: true, Carry: true})
}

func TestDecrementPair(t *testing.T) {
	r, mem, irq := testState()
	r.SetDouble(registers.BC, 0x0000)

	mustExecute(t, DecrementPair{Pair: registers.BC}, r, mem, irq)

	if got := r.Double(registers.BC); got != 0xFFFF {
		t.Errorf("BC is 0x%04X, want 0xFFFF", got)
	}
	assertFlags(t, r, registers.Flags{})
}
