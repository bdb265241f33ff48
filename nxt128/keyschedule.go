package nxt128

import (
	"github.com/ogay/idea-nxt/internal/bitpack"
	"github.com/ogay/idea-nxt/internal/keysched"
	"github.com/ogay/idea-nxt/internal/tables"
)

// deriveRoundKeyNL128 is the NL128 derivation: a 32-byte diversified key
// reduced through sigma_mu8, MIX128, and one Lai-Massey application plus a
// terminal round down to one (rk0, rk1, rk2, rk3) round key.
func deriveRoundKeyNL128(mkey []byte, lfsr *keysched.LFSR, eq bool) (x0, x1, x2, x3 uint32) {
	var dkey [32]byte
	for i := 0; i < 10; i++ {
		v := lfsr.Next()
		dkey[0+i*3] = mkey[0+i*3] ^ byte(v>>16)
		dkey[1+i*3] = mkey[1+i*3] ^ byte(v>>8)
		dkey[2+i*3] = mkey[2+i*3] ^ byte(v)
	}
	v := lfsr.Next()
	dkey[30] = mkey[30] ^ byte(v>>16)
	dkey[31] = mkey[31] ^ byte(v>>8)

	var dkey32 [8]uint32
	for i := range dkey32 {
		dkey32[i] = bitpack.Pack32(dkey[i*4 : i*4+4])
	}

	var t1 [8]uint32
	t1[0], t1[1] = tables.SigmaMu8(dkey32[0], dkey32[1])
	t1[2], t1[3] = tables.SigmaMu8(dkey32[2], dkey32[3])
	t1[4], t1[5] = tables.SigmaMu8(dkey32[4], dkey32[5])
	t1[6], t1[7] = tables.SigmaMu8(dkey32[6], dkey32[7])

	t0 := keysched.Mix8(t1)

	// The reference overwrites the pre-mix buffer with the all-zero pad
	// constant here before folding it into t0; see keysched.Pad.
	t1 = keysched.PackPad8()
	for i := range t0 {
		t0[i] ^= t1[i]
	}

	if eq {
		for i := range t0 {
			t0[i] = ^t0[i]
		}
	}

	x0 = tables.Sigma(t0[0]) ^ tables.Sigma(t0[4])
	x1 = tables.Sigma(t0[1]) ^ tables.Sigma(t0[5])
	x2 = tables.Sigma(t0[2]) ^ tables.Sigma(t0[6])
	x3 = tables.Sigma(t0[3]) ^ tables.Sigma(t0[7])

	fullRound(&x0, &x1, &x2, &x3, dkey32[0:4])
	terminalRound(&x0, &x1, &x2, &x3, dkey32[4:8])

	return x0, x1, x2, x3
}

// scheduleKeys128 expands a key into the TotalRounds NXT128 round keys, via
// P/M preparation first when the user key is shorter than the equivalent
// key size of 256 bits.
func scheduleKeys128(key []byte, keyBits int) [TotalRounds * wordsPerRound]uint32 {
	const ek = 256
	lfsr := keysched.NewLFSR(TotalRounds)
	eq := keyBits == ek

	mk := key
	if keyBits < ek {
		pk := keysched.P(key, keyBits/8, ek)
		mk = keysched.M(pk, ek)
	}

	var rk [TotalRounds * wordsPerRound]uint32
	for i := 0; i < TotalRounds; i++ {
		x0, x1, x2, x3 := deriveRoundKeyNL128(mk, lfsr, eq)
		rk[i*wordsPerRound] = x0
		rk[i*wordsPerRound+1] = x1
		rk[i*wordsPerRound+2] = x2
		rk[i*wordsPerRound+3] = x3
	}
	return rk
}
