package instructions

import (
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

// Decode reads the opcode at pc and returns the decoded instruction.
// Operand bytes are read from the bytes following the opcode; memory
// and registers are never written. Opcode bytes with no SM83 mapping
// return an UnknownOpcodeError.
func Decode(mem memory.Memory, pc uint16) (Instruction, error) {
	op := mem.Read(pc)

	if op == 0xCB {
		return decodeExtended(mem.Read(pc + 1)), nil
	}
	if op >= 0x40 && op <= 0x7F {
		return decodeLoadGrid(op), nil
	}
	if op >= 0x80 && op <= 0xBF {
		return decodeALUGrid(op), nil
	}

	d8 := func() uint8 { return mem.Read(pc + 1) }
	e8 := func() int8 { return int8(mem.Read(pc + 1)) }
	d16 := func() uint16 { return memory.ReadUint16(mem, pc+1) }

	switch op {
	case 0x00:
		return Nop{}, nil
	case 0x10:
		return Stop{}, nil

	case 0x01, 0x11, 0x21, 0x31:
		return LoadPairImmediate{Pair: pairFromBits(op>>4, false), Value: d16()}, nil
	case 0x02:
		return LoadToPair{Pair: registers.BC}, nil
	case 0x12:
		return LoadToPair{Pair: registers.DE}, nil
	case 0x22:
		return LoadToHLInc{}, nil
	case 0x32:
		return LoadToHLDec{}, nil
	case 0x0A:
		return LoadFromPair{Pair: registers.BC}, nil
	case 0x1A:
		return LoadFromPair{Pair: registers.DE}, nil
	case 0x2A:
		return LoadFromHLInc{}, nil
	case 0x3A:
		return LoadFromHLDec{}, nil
	case 0x08:
		return LoadSPToAddress{Address: d16()}, nil

	case 0x03, 0x13, 0x23, 0x33:
		return IncrementPair{Pair: pairFromBits(op>>4, false)}, nil
	case 0x0B, 0x1B, 0x2B, 0x3B:
		return DecrementPair{Pair: pairFromBits(op>>4, false)}, nil
	case 0x09, 0x19, 0x29, 0x39:
		return AddHL{Source: pairFromBits(op>>4, false)}, nil

	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		return Increment{Target: targetFromIndex(op >> 3)}, nil
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		return Decrement{Target: targetFromIndex(op >> 3)}, nil

	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x3E:
		t := targetFromIndex(op >> 3)
		return LoadImmediate{Dst: t.Register, Value: d8()}, nil
	case 0x36:
		return LoadImmediateToHL{Value: d8()}, nil

	case 0x07:
		return RotateALeft{}, nil
	case 0x0F:
		return RotateARight{}, nil
	case 0x17:
		return RotateALeft{ThroughCarry: true}, nil
	case 0x1F:
		return RotateARight{ThroughCarry: true}, nil

	case 0x18:
		return JumpRelative{Offset: e8()}, nil
	case 0x20, 0x28, 0x30, 0x38:
		return JumpRelativeIf{Condition: conditionFromBits(op >> 3), Offset: e8()}, nil

	case 0x27:
		return DecimalAdjust{}, nil
	case 0x2F:
		return Complement{}, nil
	case 0x37:
		return SetCarryFlag{}, nil
	case 0x3F:
		return ComplementCarryFlag{}, nil

	case 0xC0, 0xC8, 0xD0, 0xD8:
		return ReturnIf{Condition: conditionFromBits(op >> 3)}, nil
	case 0xC9:
		return Return{}, nil
	case 0xD9:
		return ReturnInterrupt{}, nil

	case 0xC1, 0xD1, 0xE1, 0xF1:
		return Pop{Pair: pairFromBits(op>>4, true)}, nil
	case 0xC5, 0xD5, 0xE5, 0xF5:
		return Push{Pair: pairFromBits(op>>4, true)}, nil

	case 0xC3:
		return Jump{Address: d16()}, nil
	case 0xC2, 0xCA, 0xD2, 0xDA:
		return JumpIf{Condition: conditionFromBits(op >> 3), Address: d16()}, nil
	case 0xE9:
		return JumpHL{}, nil

	case 0xCD:
		return Call{Address: d16()}, nil
	case 0xC4, 0xCC, 0xD4, 0xDC:
		return CallIf{Condition: conditionFromBits(op >> 3), Address: d16()}, nil

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return Restart{Vector: uint16(op & 0x38)}, nil

	case 0xC6:
		return Add{Source: ImmediateOperand(d8())}, nil
	case 0xCE:
		return AddCarry{Source: ImmediateOperand(d8())}, nil
	case 0xD6:
		return Sub{Source: ImmediateOperand(d8())}, nil
	case 0xDE:
		return SubCarry{Source: ImmediateOperand(d8())}, nil
	case 0xE6:
		return And{Source: ImmediateOperand(d8())}, nil
	case 0xEE:
		return Xor{Source: ImmediateOperand(d8())}, nil
	case 0xF6:
		return Or{Source: ImmediateOperand(d8())}, nil
	case 0xFE:
		return Compare{Source: ImmediateOperand(d8())}, nil

	case 0xE0:
		return LoadHighToOffset{Offset: d8()}, nil
	case 0xF0:
		return LoadHighFromOffset{Offset: d8()}, nil
	case 0xE2:
		return LoadHighToC{}, nil
	case 0xF2:
		return LoadHighFromC{}, nil
	case 0xEA:
		return LoadToAddress{Address: d16()}, nil
	case 0xFA:
		return LoadFromAddress{Address: d16()}, nil

	case 0xE8:
		return AddSP{Offset: e8()}, nil
	case 0xF8:
		return LoadHLFromSPOffset{Offset: e8()}, nil
	case 0xF9:
		return LoadHLToSP{}, nil

	case 0xF3:
		return DisableInterrupts{}, nil
	case 0xFB:
		return EnableInterrupts{}, nil
	}

	return nil, UnknownOpcodeError{Opcode: op}
}

// decodeLoadGrid decodes the 0x40-0x7F block: LD r, r' with the
// destination in bits 3-5 and the source in bits 0-2. The slot where
// both sides would be (HL) is HALT.
func decodeLoadGrid(op uint8) Instruction {
	if op == 0x76 {
		return Halt{}
	}
	dst := targetFromIndex(op >> 3)
	src := targetFromIndex(op)
	switch {
	case dst.HLIndirect:
		return LoadToHL{Src: src.Register}
	case src.HLIndirect:
		return LoadFromHL{Dst: dst.Register}
	default:
		return Load{Dst: dst.Register, Src: src.Register}
	}
}

// decodeALUGrid decodes the 0x80-0xBF block: eight ALU families in
// bits 3-5, the source slot in bits 0-2.
func decodeALUGrid(op uint8) Instruction {
	t := targetFromIndex(op)
	src := RegisterOperand(t.Register)
	if t.HLIndirect {
		src = HLIndirectOperand()
	}
	switch (op >> 3) & 0b111 {
	case 0:
		return Add{Source: src}
	case 1:
		return AddCarry{Source: src}
	case 2:
		return Sub{Source: src}
	case 3:
		return SubCarry{Source: src}
	case 4:
		return And{Source: src}
	case 5:
		return Xor{Source: src}
	case 6:
		return Or{Source: src}
	default:
		return Compare{Source: src}
	}
}

// pairFromBits maps opcode bits 4-5 to a register pair. Slot 3 is SP
// in the arithmetic and load encodings but AF for PUSH and POP.
func pairFromBits(p uint8, useAF bool) registers.DoubleRegister {
	switch p & 0b11 {
	case 0:
		return registers.BC
	case 1:
		return registers.DE
	case 2:
		return registers.HL
	default:
		if useAF {
			return registers.AF
		}
		return registers.SP
	}
}
