package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// AddHL adds a 16-bit register pair to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
type AddHL struct {
	Source registers.DoubleRegister
}

func (i AddHL) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	hl := r.Double(registers.HL)
	n := r.Double(i.Source)
	sum := uint32(hl) + uint32(n)
	r.SetFlags(r.Zero(), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	r.SetDouble(registers.HL, uint16(sum))
	return 2, nil
}

func (i AddHL) Length() uint16 { return 1 }

func (i AddHL) String() string { return fmt.Sprintf("ADD HL, %s", i.Source) }

// AddSP adds a signed 8-bit offset to the stack pointer.
//
//	ADD SP, e
//	e = signed d8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte addition.
//	C - Set if carry from bit 7 of the low byte addition.
type AddSP struct {
	Offset int8
}

func (i AddSP) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SP = addSignedOffset(r, r.SP, i.Offset)
	return 4, nil
}

func (i AddSP) Length() uint16 { return 2 }

func (i AddSP) String() string { return fmt.Sprintf("ADD SP, %d", i.Offset) }

// IncrementPair increments a 16-bit register pair by 1.
//
//	INC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
type IncrementPair struct {
	Pair registers.DoubleRegister
}

func (i IncrementPair) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetDouble(i.Pair, r.Double(i.Pair)+1)
	return 2, nil
}

func (i IncrementPair) Length() uint16 { return 1 }

func (i IncrementPair) String() string { return fmt.Sprintf("INC %s", i.Pair) }

// DecrementPair decrements a 16-bit register pair by 1.
//
//	DEC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
type DecrementPair struct {
	Pair registers.DoubleRegister
}

func (i DecrementPair) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetDouble(i.Pair, r.Double(i.Pair)-1)
	return 2, nil
}

func (i DecrementPair) Length() uint16 { return 1 }

func (i DecrementPair) String() string { return fmt.Sprintf("DEC %s", i.Pair) }

// addSignedOffset adds a signed offset to a 16-bit base and sets the
// flags from the low-byte addition, as ADD SP,e and LD HL,SP+e do.
func addSignedOffset(r *registers.Registers, base uint16, offset int8) uint16 {
	result := uint16(int32(base) + int32(offset))
	carryBits := base ^ uint16(int8(offset)) ^ result
	r.SetFlags(false, false, carryBits&0x10 == 0x10, carryBits&0x100 == 0x100)
	return result
}
