// Package registers implements the Sharp SM83 register file.
//
// The eight general purpose registers are 8-bit, but can be combined
// into the 16-bit pairs AF, BC, DE and HL:
//
//	,---.---.
//	| A | F |
//	|---|---|
//	| B | C |
//	|---|---|
//	| D | E |
//	|---|---|
//	| H | L |
//	`---´---´
//
// SP and PC are independent 16-bit counters. F is the flag register;
// its lowest nibble is grounded to 0 and can't be overwritten.
package registers

import "github.com/iensu/gejmboj/pkg/bits"

// SingleRegister identifies one of the 8-bit registers.
type SingleRegister uint8

const (
	A SingleRegister = iota
	B
	C
	D
	E
	H
	L
	F
)

func (r SingleRegister) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case F:
		return "F"
	}
	return "?"
}

// DoubleRegister identifies a 16-bit register pair, or one of the
// 16-bit counters SP and PC.
type DoubleRegister uint8

const (
	AF DoubleRegister = iota
	BC
	DE
	HL
	SP
	PC
)

func (r DoubleRegister) String() string {
	switch r {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case PC:
		return "PC"
	}
	return "??"
}

// Registers holds the SM83 register file.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F uint8

	SP uint16
	PC uint16
}

// New creates a zeroed register file.
func New() *Registers {
	return &Registers{}
}

// Single returns the value of an 8-bit register.
func (r *Registers) Single(reg SingleRegister) uint8 {
	switch reg {
	case A:
		return r.A
	case B:
		return r.B
	case C:
		return r.C
	case D:
		return r.D
	case E:
		return r.E
	case H:
		return r.H
	case L:
		return r.L
	case F:
		return r.F
	}
	return 0
}

// SetSingle sets the value of an 8-bit register. The lowest nibble of
// F is always 0 and writes to it are masked.
func (r *Registers) SetSingle(reg SingleRegister, value uint8) {
	switch reg {
	case A:
		r.A = value
	case B:
		r.B = value
	case C:
		r.C = value
	case D:
		r.D = value
	case E:
		r.E = value
	case H:
		r.H = value
	case L:
		r.L = value
	case F:
		r.F = value & 0xF0
	}
}

// Double returns the value of a 16-bit register pair, with the high
// register supplying bits 15-8.
func (r *Registers) Double(reg DoubleRegister) uint16 {
	switch reg {
	case AF:
		return bits.Combine(r.A, r.F)
	case BC:
		return bits.Combine(r.B, r.C)
	case DE:
		return bits.Combine(r.D, r.E)
	case HL:
		return bits.Combine(r.H, r.L)
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	return 0
}

// SetDouble sets the value of a 16-bit register pair, splitting the
// value into both halves. The lowest nibble of AF is always 0.
func (r *Registers) SetDouble(reg DoubleRegister, value uint16) {
	switch reg {
	case AF:
		r.A = bits.Hi(value)
		r.F = bits.Lo(value) & 0xF0
	case BC:
		r.B = bits.Hi(value)
		r.C = bits.Lo(value)
	case DE:
		r.D = bits.Hi(value)
		r.E = bits.Lo(value)
	case HL:
		r.H = bits.Hi(value)
		r.L = bits.Lo(value)
	case SP:
		r.SP = value
	case PC:
		r.PC = value
	}
}
