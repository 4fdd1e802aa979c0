package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// PC is advanced past the instruction before Execute runs, so the
// call variants push the follow-on address as-is and the relative
// jumps offset from it.

// Jump sets PC to a 16-bit address.
//
//	JP a16
type Jump struct {
	Address uint16
}

func (i Jump) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.PC = i.Address
	return 4, nil
}

func (i Jump) Length() uint16 { return 3 }

func (i Jump) String() string { return fmt.Sprintf("JP $%04X", i.Address) }

// JumpIf sets PC to a 16-bit address when the condition holds.
//
//	JP cc, a16
//	cc = NZ, Z, NC, C
type JumpIf struct {
	Condition Condition
	Address   uint16
}

func (i JumpIf) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	if !i.Condition.Met(r) {
		return 3, nil
	}
	r.PC = i.Address
	return 4, nil
}

func (i JumpIf) Length() uint16 { return 3 }

func (i JumpIf) String() string { return fmt.Sprintf("JP %s, $%04X", i.Condition, i.Address) }

// JumpHL sets PC to HL.
//
//	JP HL
type JumpHL struct{}

func (i JumpHL) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.PC = r.Double(registers.HL)
	return 1, nil
}

func (i JumpHL) Length() uint16 { return 1 }

func (i JumpHL) String() string { return "JP HL" }

// JumpRelative adds a signed 8-bit offset to PC.
//
//	JR e
//	e = signed d8
type JumpRelative struct {
	Offset int8
}

func (i JumpRelative) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.PC = uint16(int32(r.PC) + int32(i.Offset))
	return 3, nil
}

func (i JumpRelative) Length() uint16 { return 2 }

func (i JumpRelative) String() string { return fmt.Sprintf("JR %d", i.Offset) }

// JumpRelativeIf adds a signed 8-bit offset to PC when the condition
// holds.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
type JumpRelativeIf struct {
	Condition Condition
	Offset    int8
}

func (i JumpRelativeIf) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	if !i.Condition.Met(r) {
		return 2, nil
	}
	r.PC = uint16(int32(r.PC) + int32(i.Offset))
	return 3, nil
}

func (i JumpRelativeIf) Length() uint16 { return 2 }

func (i JumpRelativeIf) String() string { return fmt.Sprintf("JR %s, %d", i.Condition, i.Offset) }

// Call pushes PC on the stack and jumps to a 16-bit address.
//
//	CALL a16
type Call struct {
	Address uint16
}

func (i Call) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	push(r, mem, r.PC)
	r.PC = i.Address
	return 6, nil
}

func (i Call) Length() uint16 { return 3 }

func (i Call) String() string { return fmt.Sprintf("CALL $%04X", i.Address) }

// CallIf pushes PC and jumps to a 16-bit address when the condition
// holds.
//
//	CALL cc, a16
//	cc = NZ, Z, NC, C
type CallIf struct {
	Condition Condition
	Address   uint16
}

func (i CallIf) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	if !i.Condition.Met(r) {
		return 3, nil
	}
	push(r, mem, r.PC)
	r.PC = i.Address
	return 6, nil
}

func (i CallIf) Length() uint16 { return 3 }

func (i CallIf) String() string { return fmt.Sprintf("CALL %s, $%04X", i.Condition, i.Address) }

// Return pops the stack into PC.
//
//	RET
type Return struct{}

func (i Return) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	r.PC = pop(r, mem)
	return 4, nil
}

func (i Return) Length() uint16 { return 1 }

func (i Return) String() string { return "RET" }

// ReturnIf pops the stack into PC when the condition holds.
//
//	RET cc
//	cc = NZ, Z, NC, C
type ReturnIf struct {
	Condition Condition
}

func (i ReturnIf) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	if !i.Condition.Met(r) {
		return 2, nil
	}
	r.PC = pop(r, mem)
	return 5, nil
}

func (i ReturnIf) Length() uint16 { return 1 }

func (i ReturnIf) String() string { return fmt.Sprintf("RET %s", i.Condition) }

// ReturnInterrupt pops the stack into PC and re-enables interrupts
// immediately.
//
//	RETI
type ReturnInterrupt struct{}

func (i ReturnInterrupt) Execute(r *registers.Registers, mem memory.Memory, irq *interrupts.Service) (uint8, error) {
	r.PC = pop(r, mem)
	irq.IME = true
	return 4, nil
}

func (i ReturnInterrupt) Length() uint16 { return 1 }

func (i ReturnInterrupt) String() string { return "RETI" }

// Restart pushes PC on the stack and jumps to one of the eight fixed
// vectors in page zero.
//
//	RST n
//	n = $00, $08, $10, $18, $20, $28, $30, $38
type Restart struct {
	Vector uint16
}

func (i Restart) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	push(r, mem, r.PC)
	r.PC = i.Vector
	return 4, nil
}

func (i Restart) Length() uint16 { return 1 }

func (i Restart) String() string { return fmt.Sprintf("RST $%02X", i.Vector) }
