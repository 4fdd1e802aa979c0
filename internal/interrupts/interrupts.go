// Package interrupts exposes the interrupt-enable state the CPU core
// honors. Request detection and peripheral timing live outside the
// core; only the master enable and the IE/IF registers are modelled.
package interrupts

import "github.com/iensu/gejmboj/pkg/bits"

// Interrupt identifies one of the five interrupt sources, in priority
// order (VBlank highest).
type Interrupt uint8

const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "?"
}

// Vector returns the handler address the CPU jumps to when the
// interrupt is serviced.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Service holds the interrupt-enable state. When an interrupt is
// requested the corresponding bit in Flag is set; when it is both
// requested and enabled and IME is set, the CPU jumps to its vector
// and the Flag bit is cleared.
//
// IME is driven by the DI, EI and RETI instructions.
type Service struct {
	// IME is the interrupt master enable.
	IME bool

	Flag   uint8 // requested interrupts (IF)
	Enable uint8 // enabled interrupts (IE)
}

// NewService returns a Service with all interrupts disabled.
func NewService() *Service {
	return &Service{}
}

// Request requests the given interrupt by setting its Flag bit.
func (s *Service) Request(i Interrupt) {
	s.Flag = bits.Set(s.Flag, uint8(i))
}

// Pending reports whether any interrupt is both requested and enabled.
func (s *Service) Pending() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Acknowledge returns the highest-priority requested-and-enabled
// interrupt and clears its Flag bit. The second return value is false
// when nothing is pending.
func (s *Service) Acknowledge() (Interrupt, bool) {
	for i := VBlank; i <= Joypad; i++ {
		if bits.Test(s.Flag, uint8(i)) && bits.Test(s.Enable, uint8(i)) {
			s.Flag = bits.Reset(s.Flag, uint8(i))
			return i, true
		}
	}
	return 0, false
}
