package tables

import "github.com/ogay/idea-nxt/internal/gf256"

// tbsm0..tbsm7 are doubled: entry 2*i holds the first 32-bit half of the
// mu8 diffusion of S(i), entry 2*i+1 the second half.
var tbsm0_128, tbsm1_128, tbsm2_128, tbsm3_128 [512]uint32
var tbsm4_128, tbsm5_128, tbsm6_128, tbsm7_128 [512]uint32

func init() {
	for i := 0; i < 256; i++ {
		s := gf256.SBox[i]
		mul1 := gf256.AlphaMul(s)
		mul2 := gf256.AlphaMul(mul1)
		div1 := gf256.AlphaDiv(s)
		div2 := gf256.AlphaDiv(div1)
		mulXorS := mul1 ^ s
		divOfDivXorS := gf256.AlphaDiv(div1 ^ s)

		j := 2 * i

		tbsm0_128[j] = uint32(s)<<24 ^ uint32(s)<<16 ^ uint32(mulXorS)<<8 ^ uint32(divOfDivXorS)
		tbsm0_128[j+1] = uint32(mul1)<<24 ^ uint32(mul2)<<16 ^ uint32(div1)<<8 ^ uint32(div2)

		tbsm1_128[j] = uint32(s)<<24 ^ uint32(mulXorS)<<16 ^ uint32(divOfDivXorS)<<8 ^ uint32(mul1)
		tbsm1_128[j+1] = uint32(mul2)<<24 ^ uint32(div1)<<16 ^ uint32(div2)<<8 ^ uint32(s)

		tbsm2_128[j] = uint32(s)<<24 ^ uint32(divOfDivXorS)<<16 ^ uint32(mul1)<<8 ^ uint32(mul2)
		tbsm2_128[j+1] = uint32(div1)<<24 ^ uint32(div2)<<16 ^ uint32(s)<<8 ^ uint32(mulXorS)

		tbsm3_128[j] = uint32(s)<<24 ^ uint32(mul1)<<16 ^ uint32(mul2)<<8 ^ uint32(div1)
		tbsm3_128[j+1] = uint32(div2)<<24 ^ uint32(s)<<16 ^ uint32(mulXorS)<<8 ^ uint32(divOfDivXorS)

		tbsm4_128[j] = uint32(s)<<24 ^ uint32(mul2)<<16 ^ uint32(div1)<<8 ^ uint32(div2)
		tbsm4_128[j+1] = uint32(s)<<24 ^ uint32(mulXorS)<<16 ^ uint32(divOfDivXorS)<<8 ^ uint32(mul1)

		tbsm5_128[j] = uint32(s)<<24 ^ uint32(div1)<<16 ^ uint32(div2)<<8 ^ uint32(s)
		tbsm5_128[j+1] = uint32(mulXorS)<<24 ^ uint32(divOfDivXorS)<<16 ^ uint32(mul1)<<8 ^ uint32(mul2)

		tbsm6_128[j] = uint32(s)<<24 ^ uint32(div2)<<16 ^ uint32(s)<<8 ^ uint32(mulXorS)
		tbsm6_128[j+1] = uint32(divOfDivXorS)<<24 ^ uint32(mul1)<<16 ^ uint32(mul2)<<8 ^ uint32(div1)

		tbsm7_128[j] = uint32(mulXorS)<<24 ^ uint32(s)<<16 ^ uint32(s)<<8 ^ uint32(s)
		tbsm7_128[j+1] = uint32(s)<<24 ^ uint32(s)<<16 ^ uint32(s)<<8 ^ uint32(s)
	}
}

// SigmaMu8 applies the S-box followed by the NXT128 8x8 mu8 MDS diffusion
// matrix to the 64-bit pair (x, y), the non-linear layer of f64.
func SigmaMu8(x, y uint32) (smu0, smu1 uint32) {
	i0 := int((x>>24)&0xff) * 2
	i1 := int((x>>16)&0xff) * 2
	i2 := int((x>>8)&0xff) * 2
	i3 := int(x&0xff) * 2
	j0 := int((y>>24)&0xff) * 2
	j1 := int((y>>16)&0xff) * 2
	j2 := int((y>>8)&0xff) * 2
	j3 := int(y&0xff) * 2

	smu0 = tbsm0_128[i0] ^ tbsm1_128[i1] ^ tbsm2_128[i2] ^ tbsm3_128[i3] ^
		tbsm4_128[j0] ^ tbsm5_128[j1] ^ tbsm6_128[j2] ^ tbsm7_128[j3]
	smu1 = tbsm0_128[i0+1] ^ tbsm1_128[i1+1] ^ tbsm2_128[i2+1] ^ tbsm3_128[i3+1] ^
		tbsm4_128[j0+1] ^ tbsm5_128[j1+1] ^ tbsm6_128[j2+1] ^ tbsm7_128[j3+1]
	return smu0, smu1
}
