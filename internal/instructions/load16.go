package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// LoadPairImmediate loads a 16-bit immediate into a register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
type LoadPairImmediate struct {
	Pair  registers.DoubleRegister
	Value uint16
}

func (i LoadPairImmediate) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetDouble(i.Pair, i.Value)
	return 3, nil
}

func (i LoadPairImmediate) Length() uint16 { return 3 }

func (i LoadPairImmediate) String() string { return fmt.Sprintf("LD %s, $%04X", i.Pair, i.Value) }

// LoadSPToAddress stores the stack pointer at a 16-bit address, low
// byte first.
//
//	LD (a16), SP
type LoadSPToAddress struct {
	Address uint16
}

func (i LoadSPToAddress) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	memory.WriteUint16(mem, i.Address, r.SP)
	return 5, nil
}

func (i LoadSPToAddress) Length() uint16 { return 3 }

func (i LoadSPToAddress) String() string { return fmt.Sprintf("LD ($%04X), SP", i.Address) }

// LoadHLToSP copies HL into the stack pointer.
//
//	LD SP, HL
type LoadHLToSP struct{}

func (i LoadHLToSP) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SP = r.Double(registers.HL)
	return 2, nil
}

func (i LoadHLToSP) Length() uint16 { return 1 }

func (i LoadHLToSP) String() string { return "LD SP, HL" }

// LoadHLFromSPOffset loads SP plus a signed 8-bit offset into HL.
//
//	LD HL, SP+e
//	e = signed d8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte addition.
//	C - Set if carry from bit 7 of the low byte addition.
type LoadHLFromSPOffset struct {
	Offset int8
}

func (i LoadHLFromSPOffset) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetDouble(registers.HL, addSignedOffset(r, r.SP, i.Offset))
	return 3, nil
}

func (i LoadHLFromSPOffset) Length() uint16 { return 2 }

func (i LoadHLFromSPOffset) String() string { return fmt.Sprintf("LD HL, SP%+d", i.Offset) }

// Push stores a register pair on the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
//
// Flags affected: none.
type Push struct {
	Pair registers.DoubleRegister
}

func (i Push) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	push(r, mem, r.Double(i.Pair))
	return 4, nil
}

func (i Push) Length() uint16 { return 1 }

func (i Push) String() string { return fmt.Sprintf("PUSH %s", i.Pair) }

// Pop removes the top of the stack into a register pair. Popping into
// AF keeps the low nibble of F grounded to zero.
//
//	POP nn
//	nn = BC, DE, HL, AF
type Pop struct {
	Pair registers.DoubleRegister
}

func (i Pop) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.SetDouble(i.Pair, pop(r, mem))
	return 3, nil
}

func (i Pop) Length() uint16 { return 1 }

func (i Pop) String() string { return fmt.Sprintf("POP %s", i.Pair) }
