package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// Add adds the source operand to the A register.
//
//	ADD A, n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
type Add struct {
	Source Operand
}

func (i Add) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	add(r, n, false)
	return i.Source.cycles(), nil
}

func (i Add) Length() uint16 { return 1 + i.Source.length() }

func (i Add) String() string { return fmt.Sprintf("ADD A, %s", i.Source) }

// AddCarry adds the source operand and the carry flag to the A
// register.
//
//	ADC A, n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
type AddCarry struct {
	Source Operand
}

func (i AddCarry) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	add(r, n, true)
	return i.Source.cycles(), nil
}

func (i AddCarry) Length() uint16 { return 1 + i.Source.length() }

func (i AddCarry) String() string { return fmt.Sprintf("ADC A, %s", i.Source) }

// Sub subtracts the source operand from the A register.
//
//	SUB A, n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
type Sub struct {
	Source Operand
}

func (i Sub) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	sub(r, n, false)
	return i.Source.cycles(), nil
}

func (i Sub) Length() uint16 { return 1 + i.Source.length() }

func (i Sub) String() string { return fmt.Sprintf("SUB A, %s", i.Source) }

// SubCarry subtracts the source operand and the carry flag from the A
// register.
//
//	SBC A, n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
type SubCarry struct {
	Source Operand
}

func (i SubCarry) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	sub(r, n, true)
	return i.Source.cycles(), nil
}

func (i SubCarry) Length() uint16 { return 1 + i.Source.length() }

func (i SubCarry) String() string { return fmt.Sprintf("SBC A, %s", i.Source) }

// And performs a bitwise AND between the source operand and the A
// register.
//
//	AND n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
type And struct {
	Source Operand
}

func (i And) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	r.A &= n
	r.SetFlags(r.A == 0, false, true, false)
	return i.Source.cycles(), nil
}

func (i And) Length() uint16 { return 1 + i.Source.length() }

func (i And) String() string { return fmt.Sprintf("AND %s", i.Source) }

// Or performs a bitwise OR between the source operand and the A
// register.
//
//	OR n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
type Or struct {
	Source Operand
}

func (i Or) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	r.A |= n
	r.SetFlags(r.A == 0, false, false, false)
	return i.Source.cycles(), nil
}

func (i Or) Length() uint16 { return 1 + i.Source.length() }

func (i Or) String() string { return fmt.Sprintf("OR %s", i.Source) }

// Xor performs a bitwise XOR between the source operand and the A
// register.
//
//	XOR n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
type Xor struct {
	Source Operand
}

func (i Xor) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	r.A ^= n
	r.SetFlags(r.A == 0, false, false, false)
	return i.Source.cycles(), nil
}

func (i Xor) Length() uint16 { return 1 + i.Source.length() }

func (i Xor) String() string { return fmt.Sprintf("XOR %s", i.Source) }

// Compare compares the source operand to the A register. The result
// is discarded; A is left unchanged.
//
//	CP n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
type Compare struct {
	Source Operand
}

func (i Compare) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Source.resolve(r, mem)
	if err != nil {
		return 0, err
	}
	r.SetFlags(r.A == n, true, n&0x0F > r.A&0x0F, n > r.A)
	return i.Source.cycles(), nil
}

func (i Compare) Length() uint16 { return 1 + i.Source.length() }

func (i Compare) String() string { return fmt.Sprintf("CP %s", i.Source) }

// Increment increments the target by 1.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
type Increment struct {
	Target Target
}

func (i Increment) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	incremented := n + 1
	r.SetFlags(incremented == 0, false, n&0xF == 0xF, r.Carry())
	i.Target.write(r, mem, incremented)
	if i.Target.HLIndirect {
		return 3, nil
	}
	return 1, nil
}

func (i Increment) Length() uint16 { return 1 }

func (i Increment) String() string { return fmt.Sprintf("INC %s", i.Target) }

// Decrement decrements the target by 1.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
type Decrement struct {
	Target Target
}

func (i Decrement) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	decremented := n - 1
	r.SetFlags(decremented == 0, true, n&0xF == 0x0, r.Carry())
	i.Target.write(r, mem, decremented)
	if i.Target.HLIndirect {
		return 3, nil
	}
	return 1, nil
}

func (i Decrement) Length() uint16 { return 1 }

func (i Decrement) String() string { return fmt.Sprintf("DEC %s", i.Target) }

// add adds n (plus the carry flag when withCarry is set) to A and
// recomputes all four flags.
func add(r *registers.Registers, n uint8, withCarry bool) {
	carryIn := withCarry && r.Carry()
	sum := uint16(r.A) + uint16(n)
	sumHalf := r.A&0xF + n&0xF
	if carryIn {
		sum++
		sumHalf++
	}
	r.SetFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	r.A = uint8(sum)
}

// sub subtracts n (plus the carry flag when withCarry is set) from A
// and recomputes all four flags.
func sub(r *registers.Registers, n uint8, withCarry bool) {
	carryIn := withCarry && r.Carry()
	diff := int16(r.A) - int16(n)
	diffHalf := int16(r.A&0xF) - int16(n&0xF)
	if carryIn {
		diff--
		diffHalf--
	}
	r.SetFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	r.A = uint8(diff)
}
