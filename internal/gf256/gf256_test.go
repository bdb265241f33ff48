package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaMulDivAreInverses(t *testing.T) {
	for x := 0; x < 256; x++ {
		b := byte(x)
		assert.Equal(t, b, AlphaDiv(AlphaMul(b)), "alpha_div(alpha_mul(%#x))", b)
		assert.Equal(t, b, AlphaMul(AlphaDiv(b)), "alpha_mul(alpha_div(%#x))", b)
	}
}

func TestAlphaMulZeroFixed(t *testing.T) {
	assert.Equal(t, byte(0), AlphaMul(0))
	assert.Equal(t, byte(0), AlphaDiv(0))
}

func TestMulMatchesRepeatedAlphaMul(t *testing.T) {
	// Multiplying by alpha twice via Mul must match two AlphaMul steps,
	// since alpha is 0x02.
	for x := 0; x < 256; x++ {
		b := byte(x)
		assert.Equal(t, AlphaMul(AlphaMul(b)), Mul(b, 0x04))
	}
}

func TestSBoxIsAPermutation(t *testing.T) {
	seen := make(map[byte]bool, 256)
	for _, v := range SBox {
		assert.False(t, seen[v], "duplicate S-box output %#x", v)
		seen[v] = true
	}
	assert.Len(t, seen, 256)
}

func TestMulIdentity(t *testing.T) {
	for x := 0; x < 256; x++ {
		assert.Equal(t, byte(x), Mul(byte(x), 1))
	}
}
