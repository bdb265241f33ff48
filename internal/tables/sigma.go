// Package tables holds the precomputed, read-only lookup tables that fuse
// the NXT/FOX S-box with the mu4 (NXT64) and mu8 (NXT128) MDS diffusion
// layers, plus the plain S-box-only sigma substitution shared by both
// variants. All tables are built once at package init from gf256.SBox and
// are safe for unsynchronized concurrent reads thereafter.
package tables

import "github.com/ogay/idea-nxt/internal/gf256"

var tbs0, tbs1, tbs2, tbs3 [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		s := uint32(gf256.SBox[i])
		tbs0[i] = s << 24
		tbs1[i] = s << 16
		tbs2[i] = s << 8
		tbs3[i] = s
	}
}

// Sigma applies the S-box to each byte of x and XORs the four results back
// together without any diffusion.
func Sigma(x uint32) uint32 {
	return tbs0[(x>>24)&0xff] ^ tbs1[(x>>16)&0xff] ^ tbs2[(x>>8)&0xff] ^ tbs3[x&0xff]
}
