package instructions

import (
	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// Nop does nothing for one machine cycle.
//
//	NOP
type Nop struct{}

func (i Nop) Execute(_ *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	return 1, nil
}

func (i Nop) Length() uint16 { return 1 }

func (i Nop) String() string { return "NOP" }

// Halt suspends the processor until an interrupt is requested. The
// driver inspects the decoded value to switch modes; executing it only
// costs the cycle.
//
//	HALT
type Halt struct{}

func (i Halt) Execute(_ *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	return 1, nil
}

func (i Halt) Length() uint16 { return 1 }

func (i Halt) String() string { return "HALT" }

// Stop suspends the processor and clocks until a joypad interrupt.
// The opcode is followed by a padding byte.
//
//	STOP
type Stop struct{}

func (i Stop) Execute(_ *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	return 1, nil
}

func (i Stop) Length() uint16 { return 2 }

func (i Stop) String() string { return "STOP" }

// DecimalAdjust corrects A to packed BCD after an addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the high nibble was corrected.
type DecimalAdjust struct{}

func (i DecimalAdjust) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	carry := r.Carry()
	if !r.Subtract() {
		if carry || r.A > 0x99 {
			r.A += 0x60
			carry = true
		}
		if r.HalfCarry() || r.A&0x0F > 0x09 {
			r.A += 0x06
		}
	} else {
		if carry {
			r.A -= 0x60
		}
		if r.HalfCarry() {
			r.A -= 0x06
		}
	}
	r.SetFlags(r.A == 0, r.Subtract(), false, carry)
	return 1, nil
}

func (i DecimalAdjust) Length() uint16 { return 1 }

func (i DecimalAdjust) String() string { return "DAA" }

// Complement flips every bit of A.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
type Complement struct{}

func (i Complement) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.A = ^r.A
	r.SetFlags(r.Zero(), true, true, r.Carry())
	return 1, nil
}

func (i Complement) Length() uint16 { return 1 }

func (i Complement) String() string { return "CPL" }

// SetCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
type SetCarryFlag struct{}

func (i SetCarryFlag) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetFlags(r.Zero(), false, false, true)
	return 1, nil
}

func (i SetCarryFlag) Length() uint16 { return 1 }

func (i SetCarryFlag) String() string { return "SCF" }

// ComplementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
type ComplementCarryFlag struct{}

func (i ComplementCarryFlag) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetFlags(r.Zero(), false, false, !r.Carry())
	return 1, nil
}

func (i ComplementCarryFlag) Length() uint16 { return 1 }

func (i ComplementCarryFlag) String() string { return "CCF" }

// DisableInterrupts clears the interrupt master enable.
//
//	DI
type DisableInterrupts struct{}

func (i DisableInterrupts) Execute(_ *registers.Registers, _ memory.Memory, irq *interrupts.Service) (uint8, error) {
	irq.IME = false
	return 1, nil
}

func (i DisableInterrupts) Length() uint16 { return 1 }

func (i DisableInterrupts) String() string { return "DI" }

// EnableInterrupts sets the interrupt master enable.
//
//	EI
type EnableInterrupts struct{}

func (i EnableInterrupts) Execute(_ *registers.Registers, _ memory.Memory, irq *interrupts.Service) (uint8, error) {
	irq.IME = true
	return 1, nil
}

func (i EnableInterrupts) Length() uint16 { return 1 }

func (i EnableInterrupts) String() string { return "EI" }
