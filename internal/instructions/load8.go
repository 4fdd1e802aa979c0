package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// highPage is the base of the FF00-FFFF I/O region the LDH variants
// address.
const highPage = 0xFF00

// Load copies one 8-bit register into another.
//
//	LD r1, r2
//	r1, r2 = A, B, C, D, E, H, L
//
// Flags affected: none.
type Load struct {
	Dst registers.SingleRegister
	Src registers.SingleRegister
}

func (i Load) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	if i.Dst == registers.F || i.Src == registers.F {
		return 0, InvalidOperandError{Reason: "register F is not loadable"}
	}
	r.SetSingle(i.Dst, r.Single(i.Src))
	return 1, nil
}

func (i Load) Length() uint16 { return 1 }

func (i Load) String() string { return fmt.Sprintf("LD %s, %s", i.Dst, i.Src) }

// LoadImmediate loads an immediate byte into a register.
//
//	LD r, d8
type LoadImmediate struct {
	Dst   registers.SingleRegister
	Value uint8
}

func (i LoadImmediate) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	if i.Dst == registers.F {
		return 0, InvalidOperandError{Reason: "register F is not loadable"}
	}
	r.SetSingle(i.Dst, i.Value)
	return 2, nil
}

func (i LoadImmediate) Length() uint16 { return 2 }

func (i LoadImmediate) String() string { return fmt.Sprintf("LD %s, $%02X", i.Dst, i.Value) }

// LoadFromHL loads the byte HL points at into a register.
//
//	LD r, (HL)
type LoadFromHL struct {
	Dst registers.SingleRegister
}

func (i LoadFromHL) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	if i.Dst == registers.F {
		return 0, InvalidOperandError{Reason: "register F is not loadable"}
	}
	r.SetSingle(i.Dst, mem.Read(r.Double(registers.HL)))
	return 2, nil
}

func (i LoadFromHL) Length() uint16 { return 1 }

func (i LoadFromHL) String() string { return fmt.Sprintf("LD %s, (HL)", i.Dst) }

// LoadToHL stores a register into the byte HL points at.
//
//	LD (HL), r
type LoadToHL struct {
	Src registers.SingleRegister
}

func (i LoadToHL) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	if i.Src == registers.F {
		return 0, InvalidOperandError{Reason: "register F is not loadable"}
	}
	mem.Write(r.Double(registers.HL), r.Single(i.Src))
	return 2, nil
}

func (i LoadToHL) Length() uint16 { return 1 }

func (i LoadToHL) String() string { return fmt.Sprintf("LD (HL), %s", i.Src) }

// LoadImmediateToHL stores an immediate byte into the byte HL points
// at.
//
//	LD (HL), d8
type LoadImmediateToHL struct {
	Value uint8
}

func (i LoadImmediateToHL) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	mem.Write(r.Double(registers.HL), i.Value)
	return 3, nil
}

func (i LoadImmediateToHL) Length() uint16 { return 2 }

func (i LoadImmediateToHL) String() string { return fmt.Sprintf("LD (HL), $%02X", i.Value) }

// LoadFromPair loads the byte a register pair points at into A.
//
//	LD A, (BC) / LD A, (DE)
type LoadFromPair struct {
	Pair registers.DoubleRegister
}

func (i LoadFromPair) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.A = mem.Read(r.Double(i.Pair))
	return 2, nil
}

func (i LoadFromPair) Length() uint16 { return 1 }

func (i LoadFromPair) String() string { return fmt.Sprintf("LD A, (%s)", i.Pair) }

// LoadToPair stores A into the byte a register pair points at.
//
//	LD (BC), A / LD (DE), A
type LoadToPair struct {
	Pair registers.DoubleRegister
}

func (i LoadToPair) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	mem.Write(r.Double(i.Pair), r.A)
	return 2, nil
}

func (i LoadToPair) Length() uint16 { return 1 }

func (i LoadToPair) String() string { return fmt.Sprintf("LD (%s), A", i.Pair) }

// LoadFromAddress loads the byte at a 16-bit address into A.
//
//	LD A, (a16)
type LoadFromAddress struct {
	Address uint16
}

func (i LoadFromAddress) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.A = mem.Read(i.Address)
	return 4, nil
}

func (i LoadFromAddress) Length() uint16 { return 3 }

func (i LoadFromAddress) String() string { return fmt.Sprintf("LD A, ($%04X)", i.Address) }

// LoadToAddress stores A into the byte at a 16-bit address.
//
//	LD (a16), A
type LoadToAddress struct {
	Address uint16
}

func (i LoadToAddress) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	mem.Write(i.Address, r.A)
	return 4, nil
}

func (i LoadToAddress) Length() uint16 { return 3 }

func (i LoadToAddress) String() string { return fmt.Sprintf("LD ($%04X), A", i.Address) }

// LoadHighFromC loads the byte at FF00+C into A.
//
//	LDH A, (C)
type LoadHighFromC struct{}

func (i LoadHighFromC) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.A = mem.Read(highPage + uint16(r.C))
	return 2, nil
}

func (i LoadHighFromC) Length() uint16 { return 1 }

func (i LoadHighFromC) String() string { return "LDH A, (C)" }

// LoadHighToC stores A into the byte at FF00+C.
//
//	LDH (C), A
type LoadHighToC struct{}

func (i LoadHighToC) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	mem.Write(highPage+uint16(r.C), r.A)
	return 2, nil
}

func (i LoadHighToC) Length() uint16 { return 1 }

func (i LoadHighToC) String() string { return "LDH (C), A" }

// LoadHighFromOffset loads the byte at FF00+a8 into A.
//
//	LDH A, (a8)
type LoadHighFromOffset struct {
	Offset uint8
}

func (i LoadHighFromOffset) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.A = mem.Read(highPage + uint16(i.Offset))
	return 3, nil
}

func (i LoadHighFromOffset) Length() uint16 { return 2 }

func (i LoadHighFromOffset) String() string { return fmt.Sprintf("LDH A, ($%02X)", i.Offset) }

// LoadHighToOffset stores A into the byte at FF00+a8.
//
//	LDH (a8), A
type LoadHighToOffset struct {
	Offset uint8
}

func (i LoadHighToOffset) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	mem.Write(highPage+uint16(i.Offset), r.A)
	return 3, nil
}

func (i LoadHighToOffset) Length() uint16 { return 2 }

func (i LoadHighToOffset) String() string { return fmt.Sprintf("LDH ($%02X), A", i.Offset) }

// LoadFromHLInc loads the byte HL points at into A, then increments
// HL.
//
//	LD A, (HL+)
type LoadFromHLInc struct{}

func (i LoadFromHLInc) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	hl := r.Double(registers.HL)
	r.A = mem.Read(hl)
	r.SetDouble(registers.HL, hl+1)
	return 2, nil
}

func (i LoadFromHLInc) Length() uint16 { return 1 }

func (i LoadFromHLInc) String() string { return "LD A, (HL+)" }

// LoadToHLInc stores A into the byte HL points at, then increments
// HL.
//
//	LD (HL+), A
type LoadToHLInc struct{}

func (i LoadToHLInc) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	hl := r.Double(registers.HL)
	mem.Write(hl, r.A)
	r.SetDouble(registers.HL, hl+1)
	return 2, nil
}

func (i LoadToHLInc) Length() uint16 { return 1 }

func (i LoadToHLInc) String() string { return "LD (HL+), A" }

// LoadFromHLDec loads the byte HL points at into A, then decrements
// HL.
//
//	LD A, (HL-)
type LoadFromHLDec struct{}

func (i LoadFromHLDec) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	hl := r.Double(registers.HL)
	r.A = mem.Read(hl)
	r.SetDouble(registers.HL, hl-1)
	return 2, nil
}

func (i LoadFromHLDec) Length() uint16 { return 1 }

func (i LoadFromHLDec) String() string { return "LD A, (HL-)" }

// LoadToHLDec stores A into the byte HL points at, then decrements
// HL.
//
//	LD (HL-), A
type LoadToHLDec struct{}

func (i LoadToHLDec) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	hl := r.Double(registers.HL)
	mem.Write(hl, r.A)
	r.SetDouble(registers.HL, hl-1)
	return 2, nil
}

func (i LoadToHLDec) Length() uint16 { return 1 }

func (i LoadToHLDec) String() string { return "LD (HL-), A" }
