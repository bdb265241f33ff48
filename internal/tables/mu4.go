package tables

import "github.com/ogay/idea-nxt/internal/gf256"

var tbsm0, tbsm1, tbsm2, tbsm3 [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		s := gf256.SBox[i]
		mul := gf256.AlphaMul(s)
		nu := gf256.AlphaDiv(s) ^ s

		tbsm0[i] = uint32(s)<<24 ^ uint32(s)<<16 ^ uint32(nu)<<8 ^ uint32(mul)
		tbsm1[i] = uint32(s)<<24 ^ uint32(nu)<<16 ^ uint32(mul)<<8 ^ uint32(s)
		tbsm2[i] = uint32(s)<<24 ^ uint32(mul)<<16 ^ uint32(s)<<8 ^ uint32(nu)
		tbsm3[i] = uint32(mul)<<24 ^ uint32(s)<<16 ^ uint32(s)<<8 ^ uint32(s)
	}
}

// SigmaMu4 applies the S-box followed by the NXT64 4x4 mu4 MDS diffusion
// matrix to a 32-bit word, one round's worth of the f32 non-linear layer.
func SigmaMu4(x uint32) uint32 {
	return tbsm0[(x>>24)&0xff] ^ tbsm1[(x>>16)&0xff] ^ tbsm2[(x>>8)&0xff] ^ tbsm3[x&0xff]
}
