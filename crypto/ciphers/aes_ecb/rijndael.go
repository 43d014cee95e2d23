package aes_ecb

import (
	"encoding/binary"

	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// keySchedule holds the expanded round keys of a single call. It is never shared.
type keySchedule struct {
	nr        int
	roundKeys []byte // 16 bytes per round, nr+1 rounds.
}

// -----------------------------------------------------------------------------

func expandKey(key []byte) *keySchedule {
	nk := len(key) / 4
	nr := nk + 6
	total := 4 * (nr + 1)

	w := make([]uint32, total)
	defer util.SafeZeroMemUint32(w)

	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < total; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ (uint32(rcon[i/nk]) << 24)
		} else if nk == 8 && i%nk == 4 {
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}

	ks := &keySchedule{
		nr:        nr,
		roundKeys: make([]byte, 4*total),
	}
	for i := 0; i < total; i++ {
		binary.BigEndian.PutUint32(ks.roundKeys[4*i:], w[i])
	}

	// Done
	return ks
}

func (ks *keySchedule) zeroize() {
	util.SafeZeroMem(ks.roundKeys)
	ks.nr = 0
}

func (ks *keySchedule) encryptBlock(dst, src []byte) {
	var state [16]byte

	copy(state[:], src)
	ks.addRoundKey(&state, 0)
	for round := 1; round < ks.nr; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		ks.addRoundKey(&state, round)
	}
	subBytes(&state)
	shiftRows(&state)
	ks.addRoundKey(&state, ks.nr)

	copy(dst, state[:])
	util.SafeZeroMem(state[:])
}

func (ks *keySchedule) decryptBlock(dst, src []byte) {
	var state [16]byte

	copy(state[:], src)
	ks.addRoundKey(&state, ks.nr)
	for round := ks.nr - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		ks.addRoundKey(&state, round)
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	ks.addRoundKey(&state, 0)

	copy(dst, state[:])
	util.SafeZeroMem(state[:])
}

// The state is column-major: byte i lives in row i%4 and column i/4.
func (ks *keySchedule) addRoundKey(state *[16]byte, round int) {
	rk := ks.roundKeys[16*round : 16*round+16]
	for i := 0; i < 16; i++ {
		state[i] ^= rk[i]
	}
}

// -----------------------------------------------------------------------------

func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

func subWord(w uint32) uint32 {
	return uint32(sBox[w>>24])<<24 |
		uint32(sBox[(w>>16)&0xff])<<16 |
		uint32(sBox[(w>>8)&0xff])<<8 |
		uint32(sBox[w&0xff])
}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

func invSubBytes(state *[16]byte) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(state *[16]byte) {
	var tmp [16]byte

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			tmp[r+4*c] = state[r+4*((c+r)%4)]
		}
	}
	*state = tmp
}

func invShiftRows(state *[16]byte) {
	var tmp [16]byte

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			tmp[r+4*((c+r)%4)] = state[r+4*c]
		}
	}
	*state = tmp
}

func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		col := state[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		all := a0 ^ a1 ^ a2 ^ a3

		// 2*a0 ^ 3*a1 ^ a2 ^ a3 == a0 ^ all ^ xtime(a0^a1), and so on for every row.
		col[0] = a0 ^ all ^ xtime(a0^a1)
		col[1] = a1 ^ all ^ xtime(a1^a2)
		col[2] = a2 ^ all ^ xtime(a2^a3)
		col[3] = a3 ^ all ^ xtime(a3^a0)
	}
}

func invMixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		col := state[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]

		col[0] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		col[1] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		col[2] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		col[3] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// xtime multiplies by x (0x02) modulo x^8 + x^4 + x^3 + x + 1.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return (a << 1) ^ 0x1b
	}
	return a << 1
}

// gmul multiplies two elements of GF(2^8).
func gmul(a, b byte) byte {
	var p byte

	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}
