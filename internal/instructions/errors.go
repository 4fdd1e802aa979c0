package instructions

import "fmt"

// UnknownOpcodeError is returned by Decode for opcode bytes with no
// documented SM83 mapping.
type UnknownOpcodeError struct {
	Opcode uint8
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X", e.Opcode)
}

// InvalidOperandError is returned when a decoded instruction carries
// an internally inconsistent operand. Decode never produces one; the
// check guards hand-built instruction values.
type InvalidOperandError struct {
	Reason string
}

func (e InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand: %s", e.Reason)
}
