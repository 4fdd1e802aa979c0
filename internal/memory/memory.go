// Package memory provides the 16-bit addressable byte store the CPU
// executes against.
//
// Memory data is stored little-endian: the least significant byte of a
// 16-bit value sits at the lower address. Address-space routing (ROM
// banking, memory mapped I/O, video RAM) is the responsibility of the
// surrounding machine; anything implementing Memory can be handed to
// the core.
package memory

// Memory is the sole side-effect surface for instructions that touch
// the address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// RAM is a flat 64 KiB Memory implementation.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM creates a zeroed flat address space.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write sets the byte at the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Bytes returns a copy of the full address space.
func (r *RAM) Bytes() []byte {
	b := make([]byte, len(r.data))
	copy(b, r.data[:])
	return b
}

// ReadUint16 reads a little-endian 16-bit value starting at address.
func ReadUint16(m Memory, address uint16) uint16 {
	lo := m.Read(address)
	hi := m.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteUint16 writes a little-endian 16-bit value starting at address.
func WriteUint16(m Memory, address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}
