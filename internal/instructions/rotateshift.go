package instructions

import (
	"fmt"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// cbCycles is the machine cycle cost of a read-modify-write extended
// instruction: 2 for register targets, 4 through HL.
func cbCycles(t Target) uint8 {
	if t.HLIndirect {
		return 4
	}
	return 2
}

// rotateLeftValue rotates v one bit left. With throughCarry the old
// carry flag enters bit 0, otherwise bit 7 wraps around. The second
// return is the bit rotated out.
func rotateLeftValue(v uint8, carryIn, throughCarry bool) (uint8, bool) {
	carryOut := v&0x80 != 0
	result := v << 1
	if throughCarry {
		if carryIn {
			result |= 0x01
		}
	} else if carryOut {
		result |= 0x01
	}
	return result, carryOut
}

// rotateRightValue rotates v one bit right. With throughCarry the old
// carry flag enters bit 7, otherwise bit 0 wraps around. The second
// return is the bit rotated out.
func rotateRightValue(v uint8, carryIn, throughCarry bool) (uint8, bool) {
	carryOut := v&0x01 != 0
	result := v >> 1
	if throughCarry {
		if carryIn {
			result |= 0x80
		}
	} else if carryOut {
		result |= 0x80
	}
	return result, carryOut
}

// RotateALeft rotates the A register one bit left. ThroughCarry
// selects RLA over RLCA.
//
//	RLCA / RLA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Bit 7 of A before the rotate.
type RotateALeft struct {
	ThroughCarry bool
}

func (i RotateALeft) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	result, carry := rotateLeftValue(r.A, r.Carry(), i.ThroughCarry)
	r.A = result
	r.SetFlags(false, false, false, carry)
	return 1, nil
}

func (i RotateALeft) Length() uint16 { return 1 }

func (i RotateALeft) String() string {
	if i.ThroughCarry {
		return "RLA"
	}
	return "RLCA"
}

// RotateARight rotates the A register one bit right. ThroughCarry
// selects RRA over RRCA.
//
//	RRCA / RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Bit 0 of A before the rotate.
type RotateARight struct {
	ThroughCarry bool
}

func (i RotateARight) Execute(r *registers.Registers, _ memory.Memory, _ *interrupts.Service) (uint8, error) {
	result, carry := rotateRightValue(r.A, r.Carry(), i.ThroughCarry)
	r.A = result
	r.SetFlags(false, false, false, carry)
	return 1, nil
}

func (i RotateARight) Length() uint16 { return 1 }

func (i RotateARight) String() string {
	if i.ThroughCarry {
		return "RRA"
	}
	return "RRCA"
}

// RotateLeft rotates the target one bit left. ThroughCarry selects RL
// over RLC.
//
//	RLC n / RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Bit 7 of the target before the rotate.
type RotateLeft struct {
	Target       Target
	ThroughCarry bool
}

func (i RotateLeft) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result, carry := rotateLeftValue(n, r.Carry(), i.ThroughCarry)
	r.SetFlags(result == 0, false, false, carry)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i RotateLeft) Length() uint16 { return 2 }

func (i RotateLeft) String() string {
	if i.ThroughCarry {
		return fmt.Sprintf("RL %s", i.Target)
	}
	return fmt.Sprintf("RLC %s", i.Target)
}

// RotateRight rotates the target one bit right. ThroughCarry selects
// RR over RRC.
//
//	RRC n / RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Bit 0 of the target before the rotate.
type RotateRight struct {
	Target       Target
	ThroughCarry bool
}

func (i RotateRight) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result, carry := rotateRightValue(n, r.Carry(), i.ThroughCarry)
	r.SetFlags(result == 0, false, false, carry)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i RotateRight) Length() uint16 { return 2 }

func (i RotateRight) String() string {
	if i.ThroughCarry {
		return fmt.Sprintf("RR %s", i.Target)
	}
	return fmt.Sprintf("RRC %s", i.Target)
}

// ShiftLeft shifts the target one bit left into the carry flag. Bit 0
// is cleared.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Bit 7 of the target before the shift.
type ShiftLeft struct {
	Target Target
}

func (i ShiftLeft) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result := n << 1
	r.SetFlags(result == 0, false, false, n&0x80 != 0)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i ShiftLeft) Length() uint16 { return 2 }

func (i ShiftLeft) String() string { return fmt.Sprintf("SLA %s", i.Target) }

// ShiftRightArithmetic shifts the target one bit right into the carry
// flag. Bit 7 keeps its value.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Bit 0 of the target before the shift.
type ShiftRightArithmetic struct {
	Target Target
}

func (i ShiftRightArithmetic) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result := n>>1 | n&0x80
	r.SetFlags(result == 0, false, false, n&0x01 != 0)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i ShiftRightArithmetic) Length() uint16 { return 2 }

func (i ShiftRightArithmetic) String() string { return fmt.Sprintf("SRA %s", i.Target) }

// ShiftRightLogical shifts the target one bit right into the carry
// flag. Bit 7 is cleared.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Bit 0 of the target before the shift.
type ShiftRightLogical struct {
	Target Target
}

func (i ShiftRightLogical) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result := n >> 1
	r.SetFlags(result == 0, false, false, n&0x01 != 0)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i ShiftRightLogical) Length() uint16 { return 2 }

func (i ShiftRightLogical) String() string { return fmt.Sprintf("SRL %s", i.Target) }

// Swap exchanges the high and low nibbles of the target.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
type Swap struct {
	Target Target
}

func (i Swap) Execute(r *registers.Registers, mem memory.Memory, _ *interrupts.Service) (uint8, error) {
	n, err := i.Target.read(r, mem)
	if err != nil {
		return 0, err
	}
	result := n<<4 | n>>4
	r.SetFlags(result == 0, false, false, false)
	i.Target.write(r, mem, result)
	return cbCycles(i.Target), nil
}

func (i Swap) Length() uint16 { return 2 }

func (i Swap) String() string { return fmt.Sprintf("SWAP %s", i.Target) }
