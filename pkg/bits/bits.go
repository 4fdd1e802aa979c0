package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Combine combines the high and low bytes into a 16-bit value.
func Combine(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Hi returns the high byte of a 16-bit value.
func Hi(v uint16) uint8 {
	return uint8(v >> 8)
}

// Lo returns the low byte of a 16-bit value.
func Lo(v uint16) uint8 {
	return uint8(v)
}
