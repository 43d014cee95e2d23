package des_ecb

import (
	"encoding/binary"

	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

const (
	rounds = 16
)

// -----------------------------------------------------------------------------

// subkeys holds the 16 48-bit round keys of a single call, right-aligned in a uint64.
type subkeys [rounds]uint64

// -----------------------------------------------------------------------------

func newSubkeys(key []byte) *subkeys {
	var sk subkeys

	cd := permute(binary.BigEndian.Uint64(key), 64, pc1[:])
	c := uint32(cd>>28) & 0x0fffffff
	d := uint32(cd) & 0x0fffffff
	for i := 0; i < rounds; i++ {
		c = rotateLeft28(c, shifts[i])
		d = rotateLeft28(d, shifts[i])
		sk[i] = permute(uint64(c)<<28|uint64(d), 56, pc2[:])
	}

	// Done
	return &sk
}

func (sk *subkeys) zeroize() {
	util.SafeZeroMemUint64(sk[:])
}

// cryptBlock runs the full DES transform on one 8-byte block. Decryption is the same
// network walked with the subkeys in reverse order.
func (sk *subkeys) cryptBlock(dst, src []byte, decrypt bool) {
	block := permute(binary.BigEndian.Uint64(src), 64, initialPermutation[:])

	l := uint32(block >> 32)
	r := uint32(block)
	for i := 0; i < rounds; i++ {
		k := sk[i]
		if decrypt {
			k = sk[rounds-1-i]
		}
		l, r = r, l^feistel(r, k)
	}

	// The halves are swapped after the last round.
	block = permute(uint64(r)<<32|uint64(l), 64, finalPermutation[:])
	binary.BigEndian.PutUint64(dst, block)
}

// -----------------------------------------------------------------------------

func feistel(r uint32, k uint64) uint32 {
	x := permute(uint64(r), 32, expansion[:]) ^ k

	var out uint32
	for i := 0; i < 8; i++ {
		chunk := byte(x>>(42-6*i)) & 0x3f
		// Bits 1 and 6 select the row, bits 2 to 5 the column.
		row := (chunk>>4)&0x02 | chunk&0x01
		col := (chunk >> 1) & 0x0f
		out = out<<4 | uint32(sBoxes[i][row][col])
	}
	return uint32(permute(uint64(out), 32, pBox[:]))
}

// permute builds a len(table)-bit value taking, for every entry, the bit at that 1-based
// position of the inBits-wide input, counting from its most significant bit.
func permute(in uint64, inBits uint, table []byte) uint64 {
	var out uint64

	for _, pos := range table {
		out = out<<1 | (in>>(inBits-uint(pos)))&1
	}
	return out
}

func rotateLeft28(v uint32, n byte) uint32 {
	return ((v << n) | (v >> (28 - n))) & 0x0fffffff
}
