// Package instructions implements the Sharp SM83 instruction set.
//
// Decode turns opcode bytes into immutable Instruction values; Execute
// applies an instruction against the register file and memory and
// returns the machine cycles it consumed. Decode performs no execution
// and Execute is the only mutation path into emulator state.
package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// Instruction is a single decoded SM83 instruction.
type Instruction interface {
	// Execute applies the instruction and returns the number of
	// machine cycles consumed. Conditional instructions report the
	// cost of the path actually taken.
	Execute(r *registers.Registers, mem memory.Memory, irq *interrupts.Service) (uint8, error)

	// Length returns the number of bytes the instruction occupies,
	// including the opcode and any operand bytes.
	Length() uint16

	// String returns the instruction mnemonic.
	String() string
}

// Condition gates the conditional jump, call and return variants on
// the current flag state.
type Condition uint8

const (
	NotZero Condition = iota
	Zero
	NotCarry
	Carry
)

// conditionFromBits maps opcode bits 3-4 to a Condition.
func conditionFromBits(cc uint8) Condition {
	return Condition(cc & 0b11)
}

// Met reports whether the condition holds for the current flags.
func (c Condition) Met(r *registers.Registers) bool {
	switch c {
	case NotZero:
		return !r.Zero()
	case Zero:
		return r.Zero()
	case NotCarry:
		return !r.Carry()
	case Carry:
		return r.Carry()
	}
	return false
}

func (c Condition) String() string {
	switch c {
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NotCarry:
		return "NC"
	case Carry:
		return "C"
	}
	return "?"
}

// OperandMode selects where an 8-bit ALU source comes from.
type OperandMode uint8

const (
	// OperandRegister reads from an 8-bit register.
	OperandRegister OperandMode = iota
	// OperandImmediate reads the byte following the opcode.
	OperandImmediate
	// OperandHLIndirect reads the byte HL points at.
	OperandHLIndirect
)

// Operand is the source of an 8-bit ALU operation: a register, an
// immediate byte, or the memory byte addressed by HL.
type Operand struct {
	Mode     OperandMode
	Register registers.SingleRegister
	Value    uint8
}

// RegisterOperand returns an Operand reading from reg.
func RegisterOperand(reg registers.SingleRegister) Operand {
	return Operand{Mode: OperandRegister, Register: reg}
}

// ImmediateOperand returns an Operand carrying the immediate value.
func ImmediateOperand(value uint8) Operand {
	return Operand{Mode: OperandImmediate, Value: value}
}

// HLIndirectOperand returns an Operand reading through HL.
func HLIndirectOperand() Operand {
	return Operand{Mode: OperandHLIndirect}
}

// resolve reads the operand value. The F register is not addressable
// by any ALU operation; decode never produces it, but hand-built
// instructions are checked defensively.
func (o Operand) resolve(r *registers.Registers, mem memory.Memory) (uint8, error) {
	switch o.Mode {
	case OperandRegister:
		if o.Register == registers.F {
			return 0, InvalidOperandError{Reason: "register F is not a valid ALU operand"}
		}
		return r.Single(o.Register), nil
	case OperandImmediate:
		return o.Value, nil
	case OperandHLIndirect:
		return mem.Read(r.Double(registers.HL)), nil
	}
	return 0, InvalidOperandError{Reason: fmt.Sprintf("unknown operand mode %d", o.Mode)}
}

// cycles returns the machine cycle cost of an ALU operation using
// this operand: 1 for register forms, 2 when memory is involved.
func (o Operand) cycles() uint8 {
	if o.Mode == OperandRegister {
		return 1
	}
	return 2
}

// length returns the bytes the operand adds to its instruction.
func (o Operand) length() uint16 {
	if o.Mode == OperandImmediate {
		return 1
	}
	return 0
}

func (o Operand) String() string {
	switch o.Mode {
	case OperandRegister:
		return o.Register.String()
	case OperandImmediate:
		return fmt.Sprintf("$%02X", o.Value)
	case OperandHLIndirect:
		return "(HL)"
	}
	return "?"
}

// Target is the register, or HL-addressed byte, a read-modify-write
// instruction (INC/DEC, the CB rotate/shift group, BIT/SET/RES)
// operates on.
type Target struct {
	Register   registers.SingleRegister
	HLIndirect bool
}

// RegisterTarget returns a Target naming reg.
func RegisterTarget(reg registers.SingleRegister) Target {
	return Target{Register: reg}
}

// HLIndirectTarget returns a Target addressing through HL.
func HLIndirectTarget() Target {
	return Target{HLIndirect: true}
}

// targetFromIndex maps operand bits 0-2 of the register slot encoding
// to a Target: 0-5 name B, C, D, E, H, L, 6 is the HL-indirect slot
// and 7 names A.
func targetFromIndex(i uint8) Target {
	switch i & 0b111 {
	case 0:
		return RegisterTarget(registers.B)
	case 1:
		return RegisterTarget(registers.C)
	case 2:
		return RegisterTarget(registers.D)
	case 3:
		return RegisterTarget(registers.E)
	case 4:
		return RegisterTarget(registers.H)
	case 5:
		return RegisterTarget(registers.L)
	case 6:
		return HLIndirectTarget()
	default:
		return RegisterTarget(registers.A)
	}
}

func (t Target) read(r *registers.Registers, mem memory.Memory) (uint8, error) {
	if t.HLIndirect {
		return mem.Read(r.Double(registers.HL)), nil
	}
	if t.Register == registers.F {
		return 0, InvalidOperandError{Reason: "register F is not a valid instruction target"}
	}
	return r.Single(t.Register), nil
}

func (t Target) write(r *registers.Registers, mem memory.Memory, value uint8) {
	if t.HLIndirect {
		mem.Write(r.Double(registers.HL), value)
		return
	}
	r.SetSingle(t.Register, value)
}

func (t Target) String() string {
	if t.HLIndirect {
		return "(HL)"
	}
	return t.Register.String()
}

// push stores a 16-bit value on the stack: SP decrements before each
// byte and the low byte ends up at the lower address.
func push(r *registers.Registers, mem memory.Memory, value uint16) {
	r.SP--
	mem.Write(r.SP, uint8(value>>8))
	r.SP--
	mem.Write(r.SP, uint8(value))
}

// pop removes and returns the 16-bit value on top of the stack.
func pop(r *registers.Registers, mem memory.Memory) uint16 {
	value := memory.ReadUint16(mem, r.SP)
	r.SP += 2
	return value
}
