package keysched

import "github.com/ogay/idea-nxt/internal/bitpack"

// Pad is the fixed 32-byte constant used while mixing round-key material.
// The reference declares it as an uninitialized file-scope const, which
// under the platform's BSS convention is all-zero; this is fixed here as
// an explicit all-zero array rather than left to chance.
var Pad [32]byte

// PackPad4 reads Pad as four big-endian 32-bit words, for the NL64
// derivation's word-count.
func PackPad4() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = bitpack.Pack32(Pad[i*4 : i*4+4])
	}
	return out
}

// PackPad8 reads Pad as eight big-endian 32-bit words, for the NL64h/NL128
// derivations' word-count.
func PackPad8() [8]uint32 {
	var out [8]uint32
	for i := range out {
		out[i] = bitpack.Pack32(Pad[i*4 : i*4+4])
	}
	return out
}

// P pads a short key of l bytes up to ek/8 bytes. `nxt_common.h` declares
// `nxt_p(key, l, pkey, ek)` but its body is not among the retrieved
// reference sources, so the exact padding it performs is unverified here.
// This reconstruction follows the same one-bit-then-zero-fill shape other
// ciphers of the same era use for unambiguous short-key padding (e.g.
// Serpent's key schedule): a single 0x80 marker byte followed by zero
// fill. Short-key (k < ek) round-trip correctness does not depend on
// matching the real nxt_p bit-for-bit; matching the published short-key
// test vectors does, and is not claimed — see DESIGN.md.
func P(key []byte, l int, ek int) []byte {
	ekBytes := ek / 8
	pk := make([]byte, ekBytes)
	copy(pk, key[:l])
	pk[l] = 0x80
	return pk
}

// M masks a padded key by XOR-chaining each byte with the previous output
// byte, so every byte of the master key depends on the entire padded
// prefix rather than on the raw user key bytes alone. Like P, this is a
// reconstruction of `nxt_m` (declared in `nxt_common.h`, body not
// retrieved), not a transcription — see the note on P above.
func M(pk []byte, ek int) []byte {
	ekBytes := ek / 8
	mk := make([]byte, ekBytes)
	mk[0] = pk[0]
	for i := 1; i < ekBytes; i++ {
		mk[i] = pk[i] ^ mk[i-1]
	}
	return mk
}
