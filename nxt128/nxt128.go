// Package nxt128 implements the NXT128 block cipher (IDEA NXT / FOX,
// 128-bit block): two parallel 64-bit Lai-Massey halves coupled through a
// shared round function f64 built on the mu8 MDS diffusion layer.
package nxt128

import (
	"github.com/ogay/idea-nxt/internal/bitpack"
	"github.com/ogay/idea-nxt/internal/tables"
)

const (
	// BlockSize is the NXT128 block size in bytes.
	BlockSize = 16
	// TotalRounds is the number of Lai-Massey rounds applied per block.
	TotalRounds = 16
	// wordsPerRound is the number of 32-bit round-key words consumed per
	// round: the quadruple (rk0, rk1, rk2, rk3) for NXT128's f64.
	wordsPerRound = 4
)

// Context holds the pre-expanded round-key schedule for one key. It is
// read-only once built by NewContext and may be shared across goroutines
// for concurrent Encrypt/Decrypt calls; it must not be rebuilt concurrently
// with in-flight use.
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

	ctx := &Context{rk: scheduleKeys128(key, keyBits)}
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

// f64 is the NXT128 round function, producing one 32-bit output per half
// of the 128-bit state from the mu8-diffused, S-box-substituted mix of
// both halves.
func f64(x0, x1, x2, x3, rk0, rk1, rk2, rk3 uint32) (f0, f1 uint32) {
	tmp0 := x0 ^ x1 ^ rk0
	tmp1 := x2 ^ x3 ^ rk1

	smu0, smu1 := tables.SigmaMu8(tmp0, tmp1)
	smu0 ^= rk2
	smu1 ^= rk3

	f0 = rk0 ^ tables.Sigma(smu0)
	f1 = rk1 ^ tables.Sigma(smu1)
	return f0, f1
}

// fullRound is ELMOR: the Lai-Massey layer with the orthomorphism applied
// to the first component of each half, used for every encryption round but
// the last.
func fullRound(x0, x1, x2, x3 *uint32, rk []uint32) {
	f0, f1 := f64(*x0, *x1, *x2, *x3, rk[0], rk[1], rk[2], rk[3])

	*x0 = or32(*x0 ^ f0)
	*x1 ^= f0

	*x2 = or32(*x2 ^ f1)
	*x3 ^= f1
}

// inverseRound is ELMIO: the Lai-Massey layer with the inverse
// orthomorphism, used for every decryption round but the last.
func inverseRound(x0, x1, x2, x3 *uint32, rk []uint32) {
	f0, f1 := f64(*x0, *x1, *x2, *x3, rk[0], rk[1], rk[2], rk[3])

	*x0 = io32(*x0 ^ f0)
	*x1 ^= f0

	*x2 = io32(*x2 ^ f1)
	*x3 ^= f1
}

// terminalRound is ELMID: the Lai-Massey layer with no orthomorphism.
func terminalRound(x0, x1, x2, x3 *uint32, rk []uint32) {
	f0, f1 := f64(*x0, *x1, *x2, *x3, rk[0], rk[1], rk[2], rk[3])

	*x0 ^= f0
	*x1 ^= f0
	*x2 ^= f1
	*x3 ^= f1
}

// Encrypt writes the NXT128 encryption of the 16-byte block src into dst.
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
	x2 := bitpack.Pack32(src[8:12])
	x3 := bitpack.Pack32(src[12:16])

	for i := 0; i < TotalRounds-1; i++ {
		fullRound(&x0, &x1, &x2, &x3, c.rk[i*wordsPerRound:])
	}
	terminalRound(&x0, &x1, &x2, &x3, c.rk[(TotalRounds-1)*wordsPerRound:])

	bitpack.Unpack32(dst[0:4], x0)
	bitpack.Unpack32(dst[4:8], x1)
	bitpack.Unpack32(dst[8:12], x2)
	bitpack.Unpack32(dst[12:16], x3)
	return nil
}

// Decrypt writes the NXT128 decryption of the 16-byte block src into dst.
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
	x2 := bitpack.Pack32(src[8:12])
	x3 := bitpack.Pack32(src[12:16])

	for i := TotalRounds - 1; i > 0; i-- {
		inverseRound(&x0, &x1, &x2, &x3, c.rk[i*wordsPerRound:])
	}
	terminalRound(&x0, &x1, &x2, &x3, c.rk[0:])

	bitpack.Unpack32(dst[0:4], x0)
	bitpack.Unpack32(dst[4:8], x1)
	bitpack.Unpack32(dst[8:12], x2)
	bitpack.Unpack32(dst[12:16], x3)
	return nil
}
