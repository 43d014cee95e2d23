package util

// -----------------------------------------------------------------------------

// SafeZeroMem zeros the given memory.
func SafeZeroMem(v []byte) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}

// SafeZeroMemArray zeros the given memory array.
func SafeZeroMemArray(v [][]byte) {
	for idx := range v {
		SafeZeroMem(v[idx])
	}
}

// SafeZeroMemUint32 zeros a slice of 32-bit words, like an expanded key schedule.
func SafeZeroMemUint32(v []uint32) {
	for idx := range v {
		v[idx] = 0
	}
}

// SafeZeroMemUint64 zeros a slice of 64-bit words.
func SafeZeroMemUint64(v []uint64) {
	for idx := range v {
		v[idx] = 0
	}
}
