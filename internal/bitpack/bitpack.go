// Package bitpack implements the big-endian byte/word packing used to move
// block and key material between byte slices and the 32-bit limbs the round
// function operates on.
package bitpack

// Pack32 reads the first four bytes of b as a big-endian uint32.
func Pack32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// Unpack32 writes x into the first four bytes of b, big-endian.
func Unpack32(b []byte, x uint32) {
	_ = b[3]
	b[0] = byte(x >> 24)
	b[1] = byte(x >> 16)
	b[2] = byte(x >> 8)
	b[3] = byte(x)
}
