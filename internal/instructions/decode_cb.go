package instructions

// decodeExtended decodes a CB-prefixed opcode. The extended table is
// dense: all 256 values map to an instruction, so no error path
// exists. Bits 6-7 pick the group, bits 3-5 the rotate sub-operation
// or bit index, bits 0-2 the target slot.
func decodeExtended(op uint8) Instruction {
	target := targetFromIndex(op)
	index := (op >> 3) & 0b111

	switch op >> 6 {
	case 0:
		switch index {
		case 0:
			return RotateLeft{Target: target}
		case 1:
			return RotateRight{Target: target}
		case 2:
			return RotateLeft{Target: target, ThroughCarry: true}
		case 3:
			return RotateRight{Target: target, ThroughCarry: true}
		case 4:
			return ShiftLeft{Target: target}
		case 5:
			return ShiftRightArithmetic{Target: target}
		case 6:
			return Swap{Target: target}
		default:
			return ShiftRightLogical{Target: target}
		}
	case 1:
		return Bit{Index: index, Target: target}
	case 2:
		return ResetBit{Index: index, Target: target}
	default:
		return SetBit{Index: index, Target: target}
	}
}
