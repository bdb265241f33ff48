package keysched

// Mix4 is the MIX64 linear mixing layer: each output word is the XOR of
// the three input words at the other positions.
func Mix4(x [4]uint32) [4]uint32 {
	return [4]uint32{
		x[1] ^ x[2] ^ x[3],
		x[0] ^ x[2] ^ x[3],
		x[0] ^ x[1] ^ x[3],
		x[0] ^ x[1] ^ x[2],
	}
}

// Mix8 is the MIX64H/MIX128 linear mixing layer, shared by the NXT64
// 8-word derivation and the NXT128 derivation.
func Mix8(x [8]uint32) [8]uint32 {
	return [8]uint32{
		x[2] ^ x[4] ^ x[6],
		x[3] ^ x[5] ^ x[7],
		x[0] ^ x[4] ^ x[6],
		x[1] ^ x[5] ^ x[7],
		x[0] ^ x[2] ^ x[6],
		x[1] ^ x[3] ^ x[7],
		x[0] ^ x[2] ^ x[4],
		x[1] ^ x[3] ^ x[5],
	}
}
