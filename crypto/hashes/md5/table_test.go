package md5

import (
	"math"
	"testing"
)

// -----------------------------------------------------------------------------

func TestTableMatchesSine(t *testing.T) {
	for i := range table {
		want := uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
		if table[i] != want {
			t.Fatalf("table[%d] = 0x%08x, want 0x%08x", i, table[i], want)
		}
	}
}

func TestPad(t *testing.T) {
	for msgLen := 0; msgLen < 200; msgLen++ {
		padded := pad(make([]byte, msgLen))
		if len(padded)%chunkSize != 0 || len(padded) < msgLen+9 || len(padded) > msgLen+9+chunkSize {
			t.Fatalf("bad padded length %d for a %d-byte message", len(padded), msgLen)
		}
		if padded[msgLen] != 0x80 {
			t.Fatalf("missing 0x80 marker for a %d-byte message", msgLen)
		}
	}
}
