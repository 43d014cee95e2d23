package models

// -----------------------------------------------------------------------------

// Cipher is the minimal interface that must be implemented by all block ciphers.
//
// A cipher holds only its key. Round keys are expanded on every call and wiped before
// the call returns, so a single instance can be shared between goroutines.
type Cipher interface {
	// KeyLen returns the length of the key used by the cipher.
	KeyLen() int
	// BlockSize returns the size, in bytes, of a single cipher block.
	BlockSize() int

	// Encrypt pads the plaintext with PKCS7 and encrypts it in ECB mode.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt decrypts the ECB ciphertext and removes the PKCS7 padding.
	Decrypt(ciphertext []byte) ([]byte, error)

	// EncryptBlocks encrypts whole blocks without adding any padding.
	EncryptBlocks(src []byte) ([]byte, error)
	// DecryptBlocks decrypts whole blocks without removing any padding.
	DecryptBlocks(src []byte) ([]byte, error)
}

// Hash is the minimal interface that must be implemented by all hash functions.
type Hash interface {
	// Size returns the digest length in bytes.
	Size() int

	// Sum returns the digest of the given message.
	Sum(msg []byte) []byte
}
