package sha256_test

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	mathrand "math/rand"
	"strings"
	"testing"

	"github.com/mxmauro/cryptocore/crypto/hashes/sha256"
)

// -----------------------------------------------------------------------------

func TestKnownVectors(t *testing.T) {
	vectors := []struct {
		input  string
		digest string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{strings.Repeat("a", 1000000), "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	}

	for _, v := range vectors {
		if got := sha256.HexDigest(v.input); got != v.digest {
			t.Fatalf("sha256 of a %d-byte input = %s, want %s", len(v.input), got, v.digest)
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	rnd := mathrand.New(mathrand.NewSource(256))

	for msgLen := 0; msgLen < 300; msgLen++ {
		msg := make([]byte, msgLen)
		_, _ = rnd.Read(msg)

		want := stdsha256.Sum256(msg)
		got := sha256.Sum(msg)
		if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
			t.Fatalf("digest mismatch for a %d-byte message", msgLen)
		}
	}

	h := sha256.New()
	if h.Size() != sha256.Size || len(h.Sum([]byte("x"))) != sha256.Size {
		t.Fatal("unexpected digest size")
	}
}
