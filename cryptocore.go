package cryptocore

import (
	"crypto/rand"

	"github.com/mxmauro/cryptocore/codec"
	"go.uber.org/zap"
)

// -----------------------------------------------------------------------------

var defaultEngine = &Engine{
	logger:         zap.NewNop(),
	rg:             rand.Reader,
	outputEncoding: codec.Base64,
}

// -----------------------------------------------------------------------------

// EncryptText encrypts the UTF-8 encoding of plaintext using the named algorithm ("aes128", "aes256"
// or "des") in ECB mode with PKCS7 padding.
//
// The key is the UTF-8 encoding of keyText. If keyAutoAdjust is false, its length must match the
// algorithm key length exactly. Otherwise it is truncated or zero padded on the right.
func EncryptText(plaintext string, keyText string, algo string, keyAutoAdjust bool) ([]byte, error) {
	return defaultEngine.EncryptText(plaintext, keyText, algo, keyAutoAdjust)
}

// EncryptBytes encrypts plaintext with a raw key.
func EncryptBytes(plaintext []byte, key []byte, algo string) ([]byte, error) {
	return defaultEngine.EncryptBytes(plaintext, key, algo)
}

// DecryptBytes reverses EncryptText and returns the raw plaintext bytes.
func DecryptBytes(ciphertext []byte, keyText string, algo string, keyAutoAdjust bool) ([]byte, error) {
	return defaultEngine.DecryptBytes(ciphertext, keyText, algo, keyAutoAdjust)
}

// DecryptWithKey decrypts ciphertext with a raw key.
func DecryptWithKey(ciphertext []byte, key []byte, algo string) ([]byte, error) {
	return defaultEngine.DecryptWithKey(ciphertext, key, algo)
}

// DecryptText reverses EncryptText. The plaintext must be valid UTF-8.
func DecryptText(ciphertext []byte, keyText string, algo string, keyAutoAdjust bool) (string, error) {
	return defaultEngine.DecryptText(ciphertext, keyText, algo, keyAutoAdjust)
}

// EncryptToString works like EncryptText but returns the ciphertext as hex or base64 text.
func EncryptToString(plaintext string, keyText string, algo string, keyAutoAdjust bool, enc codec.Encoding) (string, error) {
	return defaultEngine.EncryptToString(plaintext, keyText, algo, keyAutoAdjust, enc)
}

// DecryptFromString decodes hex or base64 ciphertext and decrypts it into UTF-8 text.
func DecryptFromString(text string, keyText string, algo string, keyAutoAdjust bool, enc codec.Encoding) (string, error) {
	return defaultEngine.DecryptFromString(text, keyText, algo, keyAutoAdjust, enc)
}

// HashHex returns the lowercase hex digest ("md5" or "sha256") of the UTF-8 encoding of text.
func HashHex(text string, algo string) (string, error) {
	return defaultEngine.HashHex(text, algo)
}

// GenerateKey creates a random key for the given cipher algorithm using crypto/rand.
func GenerateKey(algo string) ([]byte, error) {
	return defaultEngine.GenerateKey(algo)
}

// BytesToHex encodes b as lowercase hex.
func BytesToHex(b []byte) string {
	return codec.BytesToHex(b)
}

// HexToBytes decodes hex text. Whitespace is ignored.
func HexToBytes(s string) ([]byte, error) {
	return codec.HexToBytes(s)
}

// BytesToBase64 encodes b using the standard base64 alphabet with padding.
func BytesToBase64(b []byte) string {
	return codec.BytesToBase64(b)
}

// Base64ToBytes decodes standard base64 text. Whitespace is ignored and missing padding is tolerated.
func Base64ToBytes(s string) ([]byte, error) {
	return codec.Base64ToBytes(s)
}
