package instructions

import (
	"testing"

	"github.com/iensu/gejmboj/internal/registers"
)

func TestBit(t *testing.T) {
	t.Run("set bit clears Z", func(t *testing.T) {
		r, mem, irq := testState()
		r.A = 0x80
		r.SetFlags(false, true, false, true)

		instruction := Bit{Index: 7, Target: RegisterTarget(registers.A)}
		cycles := mustExecute(t, instruction, r, mem, irq)

		assertCycles(t, instruction, cycles, 2)
		assertFlags(t, r, registers.Flags{HalfCarry: true, Carry: true})
	})

	t.Run("clear bit sets Z", func(t *testing.T) {
		r, mem, irq := testState()
		r.A = 0x7F

		mustExecute(t, Bit{Index: 7, Target: RegisterTarget(registers.A)}, r, mem, irq)

		assertFlags(t, r, registers.Flags{Zero: true, HalfCarry: true})
	})

	t.Run("HL indirect costs three cycles", func(t *testing.T) {
		r, mem, irq := testState()
		r.SetDouble(registers.HL, 0xC000)
		mem.Write(0xC000, 0x04)

		instruction := Bit{Index: 2, Target: HLIndirectTarget()}
		cycles := mustExecute(t, instruction, r, mem, irq)

		assertCycles(t, instruction, cycles, 3)
		assertFlags(t, r, registers.Flags{HalfCarry: true})
	})

	t.Run("does not modify the target", func(t *testing.T) {
		r, mem, irq := testState()
		r.B = 0x55

		mustExecute(t, Bit{Index: 0, Target: RegisterTarget(registers.B)}, r, mem, irq)

		if r.B != 0x55 {
			t.Errorf("B is 0x%02X, want 0x55", r.B)
		}
	})
}

func TestBitIndexOutOfRange(t *testing.T) {
	r, mem, irq := testState()

	if _, err := (Bit{Index: 8, Target: RegisterTarget(registers.A)}).Execute(r, mem, irq); err == nil {
		t.Error("expected an error for bit index 8")
	}
}

func TestSetBit(t *testing.T) {
	r, mem, irq := testState()
	r.SetFlags(true, true, true, true)

	instruction := SetBit{Index: 3, Target: RegisterTarget(registers.C)}
	cycles := mustExecute(t, instruction, r, mem, irq)

	assertCycles(t, instruction, cycles, 2)
	if r.C != 0x08 {
		t.Errorf("C is 0x%02X, want 0x08", r.C)
	}
	assertFlags(t, r, registers.Flags{Zero: true, Subtract: true, HalfCarry: true, Carry: true})
}

func TestResetBit(t *testing.T) {
	r, mem, irq := testState()
	r.SetDouble(registers.HL, 0xC000)
	mem.Write(0xC000, 0xFF)

	instruction := ResetBit{Index: 5, Target: HLIndirectTarget()}
	cycles := mustExecute(t, instruction, r, mem, irq)

	assertCycles(t, instruction, cycles, 4)
	if got := mem.Read(0xC000); got != 0xDF {
		t.Errorf("(HL) is 0x%02X, want 0xDF", got)
	}
}
