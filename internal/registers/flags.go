package registers

import "github.com/iensu/gejmboj/pkg/bits"

// Flag register bit positions.
const (
	FlagZero      uint8 = 7
	FlagSubtract  uint8 = 6
	FlagHalfCarry uint8 = 5
	FlagCarry     uint8 = 4
)

// Flags is the named view of the F register.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Pack packs the flags into the F register layout.
func (f Flags) Pack() uint8 {
	var b uint8
	if f.Zero {
		b = bits.Set(b, FlagZero)
	}
	if f.Subtract {
		b = bits.Set(b, FlagSubtract)
	}
	if f.HalfCarry {
		b = bits.Set(b, FlagHalfCarry)
	}
	if f.Carry {
		b = bits.Set(b, FlagCarry)
	}
	return b
}

// UnpackFlags returns the named view of an F register value.
func UnpackFlags(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// Flags returns the named view of the F register.
func (r *Registers) Flags() Flags {
	return UnpackFlags(r.F)
}

// SetFlags replaces all four flags at once.
func (r *Registers) SetFlags(zero, subtract, halfCarry, carry bool) {
	r.F = Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}.Pack()
}

// Zero reports whether the zero flag is set.
func (r *Registers) Zero() bool { return bits.Test(r.F, FlagZero) }

// Subtract reports whether the subtract flag is set.
func (r *Registers) Subtract() bool { return bits.Test(r.F, FlagSubtract) }

// HalfCarry reports whether the half-carry flag is set.
func (r *Registers) HalfCarry() bool { return bits.Test(r.F, FlagHalfCarry) }

// Carry reports whether the carry flag is set.
func (r *Registers) Carry() bool { return bits.Test(r.F, FlagCarry) }
