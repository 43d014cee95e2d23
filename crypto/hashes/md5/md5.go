package md5

import (
	"encoding/binary"
	"math/bits"

	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/models"
)

// -----------------------------------------------------------------------------

const (
	// Size is the size of an MD5 digest in bytes.
	Size = 16

	chunkSize = 64
)

// -----------------------------------------------------------------------------

// Per-round left rotation amounts.
var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// table[i] = floor(abs(sin(i+1)) * 2^32)
var table = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// -----------------------------------------------------------------------------

type md5Hash struct{}

// -----------------------------------------------------------------------------

// New returns the MD5 hash function.
func New() models.Hash {
	return md5Hash{}
}

// Size returns the digest length.
func (md5Hash) Size() int {
	return Size
}

// Sum returns the digest of msg.
func (md5Hash) Sum(msg []byte) []byte {
	return Sum(msg)
}

// Sum returns the 16-byte MD5 digest of msg.
func Sum(msg []byte) []byte {
	state := [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

	padded := pad(msg)
	for ofs := 0; ofs < len(padded); ofs += chunkSize {
		compress(&state, padded[ofs:ofs+chunkSize])
	}

	out := make([]byte, Size)
	for i, w := range state {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}

	// Done
	return out
}

// HexDigest hashes the UTF-8 encoding of text and returns the lowercase hex digest.
func HexDigest(text string) string {
	return codec.BytesToHex(Sum(codec.TextToBytes(text)))
}

// -----------------------------------------------------------------------------

// pad appends 0x80, zeros and the message bit length as a little-endian uint64 so the
// result is a multiple of 64 bytes.
func pad(msg []byte) []byte {
	msgLen := len(msg)
	total := ((msgLen+8)/chunkSize + 1) * chunkSize

	padded := make([]byte, total)
	copy(padded, msg)
	padded[msgLen] = 0x80
	binary.LittleEndian.PutUint64(padded[total-8:], uint64(msgLen)*8)
	return padded
}

func compress(state *[4]uint32, chunk []byte) {
	var m [16]uint32

	for i := range m {
		m[i] = binary.LittleEndian.Uint32(chunk[4*i:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}

		f += a + table[i] + m[g]
		a, d, c = d, c, b
		b += bits.RotateLeft32(f, shifts[i])
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}
