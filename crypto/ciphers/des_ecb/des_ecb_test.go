package des_ecb_test

import (
	"bytes"
	stddes "crypto/des"
	"crypto/rand"
	"encoding/hex"
	"errors"
	mathrand "math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/mxmauro/cryptocore/crypto/ciphers/des_ecb"
	"github.com/mxmauro/cryptocore/crypto/padding"
	"github.com/mxmauro/cryptocore/models"
)

// -----------------------------------------------------------------------------

var (
	testPlainText = []byte("Hello world!")
)

// -----------------------------------------------------------------------------

func TestDesEcb(t *testing.T) {
	t.Log("Generating a new key")
	key, err := des_ecb.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Creating cipher")
	cipher, err := des_ecb.NewFromKey(key)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Encrypting 'Hello world!'")
	encryptedData, err := cipher.Encrypt(testPlainText)
	if err != nil {
		t.Fatal(err)
	}
	if len(encryptedData) != 2*des_ecb.BlockSize {
		t.Fatalf("unexpected ciphertext length %d", len(encryptedData))
	}

	t.Log("Decrypting encrypted data")
	decryptedData, err := cipher.Decrypt(encryptedData)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Verifying if decrypted data matches")
	if !bytes.Equal(decryptedData, testPlainText) {
		t.Fatalf("decrypted data does not match test plain text")
	}
}

func TestKnownVectors(t *testing.T) {
	vectors := []struct {
		key        string
		plaintext  string
		ciphertext string
	}{
		// FIPS 81
		{"0123456789ABCDEF", "4E6F772069732074", "3FA40E8A984D4815"},
		{"0123456789ABCDEF", "68652074696D6520", "6A271787AB8883F9"},
		{"0123456789ABCDEF", "666F7220616C6C20", "893D51EC4B563B53"},
		// Classic worked example.
		{"133457799BBCDFF1", "0123456789ABCDEF", "85E813540F0AB405"},
	}

	for _, v := range vectors {
		cipher, err := des_ecb.NewFromKey(mustHex(t, v.key))
		if err != nil {
			t.Fatal(err)
		}

		ct, err := cipher.EncryptBlocks(mustHex(t, v.plaintext))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.EqualFold(hex.EncodeToString(ct), v.ciphertext) {
			t.Fatalf("key %s plaintext %s: got %x, want %s", v.key, v.plaintext, ct, v.ciphertext)
		}

		pt, err := cipher.DecryptBlocks(ct)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.EqualFold(hex.EncodeToString(pt), v.plaintext) {
			t.Fatalf("key %s: decrypted %x, want %s", v.key, pt, v.plaintext)
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	rnd := mathrand.New(mathrand.NewSource(81))

	for iter := 0; iter < 50; iter++ {
		key := make([]byte, des_ecb.KeyLen)
		_, _ = rnd.Read(key)
		plaintext := make([]byte, rnd.Intn(70))
		_, _ = rnd.Read(plaintext)

		ref, err := stddes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		padded := padding.PKCS7Pad(plaintext, des_ecb.BlockSize)
		expected := make([]byte, len(padded))
		for ofs := 0; ofs < len(padded); ofs += des_ecb.BlockSize {
			ref.Encrypt(expected[ofs:], padded[ofs:ofs+des_ecb.BlockSize])
		}

		cipher, err := des_ecb.NewFromKey(key)
		if err != nil {
			t.Fatal(err)
		}
		ct, err := cipher.Encrypt(plaintext)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(ct, expected) {
			t.Fatalf("iteration %d: ciphertext differs from crypto/des", iter)
		}

		pt, err := cipher.Decrypt(ct)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("iteration %d: round trip mismatch", iter)
		}
	}
}

func TestInvalidKeyLength(t *testing.T) {
	for _, keyLen := range []int{0, 7, 9, 16} {
		_, err := des_ecb.NewFromKey(make([]byte, keyLen))
		if !errors.Is(err, models.ErrKeyLength) {
			t.Fatalf("key of %d bytes was not rejected", keyLen)
		}
	}
}

func TestDecryptInvalidInput(t *testing.T) {
	cipher, err := des_ecb.NewFromKey([]byte("8bytekey"))
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{0, 3, 7, 9} {
		_, err = cipher.Decrypt(make([]byte, size))
		if !errors.Is(err, models.ErrInvalidLength) {
			t.Fatalf("ciphertext of %d bytes was not rejected", size)
		}
	}

	t.Log("Decrypting a block whose padding was corrupted before encryption")
	block := []byte{'a', 'b', 'c', 'd', 4, 4, 9, 4}
	ct, err := cipher.EncryptBlocks(block)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := cipher.Decrypt(ct)
	if !errors.Is(err, models.ErrInvalidPadding) {
		t.Fatal("corrupted padding was accepted")
	}
	if pt != nil {
		t.Fatal("partial plaintext returned")
	}
}

// -----------------------------------------------------------------------------

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGenerateKeyShortReads(t *testing.T) {
	t.Log("Generating a key from a reader returning one byte per call")
	key, err := des_ecb.GenerateKey(iotest.OneByteReader(rand.Reader))
	if err != nil {
		t.Fatal(err)
	}
	if len(key) != des_ecb.KeyLen {
		t.Fatalf("unexpected key length %d", len(key))
	}

	t.Log("Generating a key from an exhausted reader")
	key, err = des_ecb.GenerateKey(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, models.ErrKeyLength) {
		t.Fatalf("unexpected error %v", err)
	}
	if key != nil {
		t.Fatal("partial key returned")
	}
}
