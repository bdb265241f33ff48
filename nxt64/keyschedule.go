package nxt64

import (
	"github.com/ogay/idea-nxt/internal/bitpack"
	"github.com/ogay/idea-nxt/internal/keysched"
	"github.com/ogay/idea-nxt/internal/tables"
)

// deriveRoundKeyNL64 is the NL64 derivation used when the equivalent key
// size is 128 bits (user keys of 64 or 128 bits): a 16-byte diversified key
// reduced through sigma_mu4, MIX64, and two Lai-Massey applications down to
// one (rk0, rk1) round key.
func deriveRoundKeyNL64(mkey []byte, lfsr *keysched.LFSR, eq bool) (uint32, uint32) {
	var dkey [16]byte
	for i := 0; i < 5; i++ {
		v := lfsr.Next()
		dkey[0+i*3] = mkey[0+i*3] ^ byte(v>>16)
		dkey[1+i*3] = mkey[1+i*3] ^ byte(v>>8)
		dkey[2+i*3] = mkey[2+i*3] ^ byte(v)
	}
	v := lfsr.Next()
	dkey[15] = mkey[15] ^ byte(v>>16)

	var dkey32 [4]uint32
	for i := range dkey32 {
		dkey32[i] = bitpack.Pack32(dkey[i*4 : i*4+4])
	}

	var t0 [4]uint32
	for i := range t0 {
		t0[i] = tables.SigmaMu4(dkey32[i])
	}
	t1 := keysched.Mix4(t0)

	// The reference overwrites the pre-mix buffer with the all-zero pad
	// constant here before folding it into t1; see keysched.Pad.
	t0 = keysched.PackPad4()
	for i := range t1 {
		t1[i] ^= t0[i]
	}

	if eq {
		for i := range t1 {
			t1[i] = ^t1[i]
		}
	}

	x0 := tables.Sigma(t1[0]) ^ tables.Sigma(t1[2])
	x1 := tables.Sigma(t1[1]) ^ tables.Sigma(t1[3])

	fullRound(&x0, &x1, dkey32[0:2])
	terminalRound(&x0, &x1, dkey32[2:4])

	return x0, x1
}

// deriveRoundKeyNL64h is the NL64h derivation used when the equivalent key
// size is 256 bits (user keys of 192 or 256 bits): an 8-word diversified
// key reduced through sigma_mu4, MIX64H (the NXT128 mixing pattern applied
// to 8 words), and three Lai-Massey applications plus a terminal round.
func deriveRoundKeyNL64h(mkey []byte, lfsr *keysched.LFSR, eq bool) (uint32, uint32) {
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

	var t0 [8]uint32
	for i := range t0 {
		t0[i] = tables.SigmaMu4(dkey32[i])
	}
	t1 := keysched.Mix8(t0)

	t0 = keysched.PackPad8()
	for i := range t1 {
		t1[i] ^= t0[i]
	}

	if eq {
		for i := range t1 {
			t1[i] = ^t1[i]
		}
	}

	x0 := tables.Sigma(t1[0]) ^ tables.Sigma(t1[1]) ^ tables.Sigma(t1[4]) ^ tables.Sigma(t1[5])
	x1 := tables.Sigma(t1[2]) ^ tables.Sigma(t1[3]) ^ tables.Sigma(t1[6]) ^ tables.Sigma(t1[7])

	fullRound(&x0, &x1, dkey32[0:2])
	fullRound(&x0, &x1, dkey32[2:4])
	fullRound(&x0, &x1, dkey32[4:6])
	terminalRound(&x0, &x1, dkey32[6:8])

	return x0, x1
}

// scheduleKeys64 expands a key of at most 128 bits (equivalent key size
// ek=128) into the TotalRounds round keys, via P/M preparation first when
// the user key is shorter than ek. NXT64 dispatches on key length between
// this and scheduleKeys64h rather than using a single fixed ek: the
// reference's nxt64_ks64 (ek=128, used for key_len<=128) and nxt64_ks64h
// (ek=256, used for key_len>128) are two distinct key-preparation paths,
// not one ek shared across all key sizes.
func scheduleKeys64(key []byte, keyBits int) [TotalRounds * wordsPerRound]uint32 {
	const ek = 128
	lfsr := keysched.NewLFSR(TotalRounds)
	eq := keyBits == ek

	mk := key
	if keyBits < ek {
		pk := keysched.P(key, keyBits/8, ek)
		mk = keysched.M(pk, ek)
	}

	var rk [TotalRounds * wordsPerRound]uint32
	for i := 0; i < TotalRounds; i++ {
		x0, x1 := deriveRoundKeyNL64(mk, lfsr, eq)
		rk[i*wordsPerRound] = x0
		rk[i*wordsPerRound+1] = x1
	}
	return rk
}

// scheduleKeys64h expands a key of more than 128 bits (equivalent key size
// ek=256) into the TotalRounds round keys, mirroring the reference's
// nxt64_ks64h.
func scheduleKeys64h(key []byte, keyBits int) [TotalRounds * wordsPerRound]uint32 {
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
		x0, x1 := deriveRoundKeyNL64h(mk, lfsr, eq)
		rk[i*wordsPerRound] = x0
		rk[i*wordsPerRound+1] = x1
	}
	return rk
}
