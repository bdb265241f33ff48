// Package nxt64 implements the NXT64 block cipher (IDEA NXT / FOX, 64-bit
// block), a Lai-Massey construction over two 32-bit words with a
// non-linear, table-driven round function and a GF(2^25) LFSR-derived key
// schedule.
package nxt64

import (
	"github.com/ogay/idea-nxt/internal/bitpack"
	"github.com/ogay/idea-nxt/internal/tables"
)

const (
	// BlockSize is the NXT64 block size in bytes.
	BlockSize = 8
	// TotalRounds is the number of Lai-Massey rounds applied per block.
	// Changing it changes every round-key derivation and all published
	// test vectors; it is a compile-time parameter, not a runtime one.
	TotalRounds = 16
	// wordsPerRound is the number of 32-bit round-key words consumed per
	// round: one pair (rk0, rk1) for NXT64's f32.
	wordsPerRound = 2
)

// Context holds the pre-expanded round-key schedule for one key. It is
// read-only once built by NewContext and may be shared across goroutines
// for concurrent Encrypt/Decrypt calls; it must not be rebuilt (via a new
// NewContext writing over the same value) concurrently with in-flight use.
type Context struct {
	rk [TotalRounds * wordsPerRound]uint32
}

// NewContext expands key (keyBits bits long, keyBits a positive multiple
// of 8 not exceeding 256) into a Context.
func NewContext(key []byte, keyBits int) (*Context, error) {
	if keyBits <= 0 || keyBits%8 != 0 || keyBits > 256 {
		return nil, InvalidKeyLengthError(keyBits)
	}
	if len(key) < keyBits/8 {
		return nil, InvalidKeyLengthError(keyBits)
	}

	ctx := &Context{}
	if keyBits <= 128 {
		ctx.rk = scheduleKeys64(key, keyBits)
	} else {
		ctx.rk = scheduleKeys64h(key, keyBits)
	}
	return ctx, nil
}

// Zero overwrites the expanded round-key material with zeroes. Call it
// once a Context is no longer needed.
func (c *Context) Zero() {
	for i := range c.rk {
		c.rk[i] = 0
	}
}

func or32(x uint32) uint32 {
	return (x << 16) ^ (x >> 16) ^ (x & 0x0000ffff)
}

func io32(x uint32) uint32 {
	return (x << 16) ^ (x >> 16) ^ (x & 0xffff0000)
}

// f32 is the NXT64 round function: state XOR round key, sigma_mu4, sigma.
func f32(x0, x1, rk0, rk1 uint32) uint32 {
	f := x0 ^ x1 ^ rk0
	f = rk1 ^ tables.SigmaMu4(f)
	f = rk0 ^ tables.Sigma(f)
	return f
}

// fullRound is LMOR: the Lai-Massey layer with the orthomorphism applied to
// the first half, used for every encryption round but the last.
func fullRound(x0, x1 *uint32, rk []uint32) {
	f := f32(*x0, *x1, rk[0], rk[1])
	*x0 = or32(*x0 ^ f)
	*x1 ^= f
}

// inverseRound is LMIO: the Lai-Massey layer with the inverse orthomorphism,
// used for every decryption round but the last.
func inverseRound(x0, x1 *uint32, rk []uint32) {
	f := f32(*x0, *x1, rk[0], rk[1])
	*x0 = io32(*x0 ^ f)
	*x1 ^= f
}

// terminalRound is LMID: the Lai-Massey layer with no orthomorphism,
// applied once per block transform (the same round serves both directions).
func terminalRound(x0, x1 *uint32, rk []uint32) {
	f := f32(*x0, *x1, rk[0], rk[1])
	*x0 ^= f
	*x1 ^= f
}

// Encrypt writes the NXT64 encryption of the 8-byte block src into dst.
// dst and src may overlap entirely (in-place operation is supported).
func (c *Context) Encrypt(dst, src []byte) error {
	if len(src) != BlockSize {
		return InvalidBlockLengthError(len(src))
	}
	if len(dst) != BlockSize {
		return InvalidBlockLengthError(len(dst))
	}

	x0 := bitpack.Pack32(src[0:4])
	x1 := bitpack.Pack32(src[4:8])

	for i := 0; i < TotalRounds-1; i++ {
		fullRound(&x0, &x1, c.rk[i*wordsPerRound:])
	}
	terminalRound(&x0, &x1, c.rk[(TotalRounds-1)*wordsPerRound:])

	bitpack.Unpack32(dst[0:4], x0)
	bitpack.Unpack32(dst[4:8], x1)
	return nil
}

// Decrypt writes the NXT64 decryption of the 8-byte block src into dst.
// dst and src may overlap entirely (in-place operation is supported).
func (c *Context) Decrypt(dst, src []byte) error {
	if len(src) != BlockSize {
		return InvalidBlockLengthError(len(src))
	}
	if len(dst) != BlockSize {
		return InvalidBlockLengthError(len(dst))
	}

	x0 := bitpack.Pack32(src[0:4])
	x1 := bitpack.Pack32(src[4:8])

	for i := TotalRounds - 1; i > 0; i-- {
		inverseRound(&x0, &x1, c.rk[i*wordsPerRound:])
	}
	terminalRound(&x0, &x1, c.rk[0:])

	bitpack.Unpack32(dst[0:4], x0)
	bitpack.Unpack32(dst[4:8], x1)
	return nil
}
