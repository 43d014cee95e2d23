package aes_ecb

import (
	"io"

	"github.com/mxmauro/cryptocore/crypto/padding"
	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// Key128Len and Key256Len are the supported key sizes in bytes.
	Key128Len = 16
	Key256Len = 32
)

// -----------------------------------------------------------------------------

type aesEcbCipher struct {
	key []byte
}

// -----------------------------------------------------------------------------

// GenerateKey generates a new random AES key of the given length.
func GenerateKey(r io.Reader, keyLen int) ([]byte, error) {
	if keyLen != Key128Len && keyLen != Key256Len {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "aes key must be 16 or 32 bytes long, got %d", keyLen)
	}

	key := make([]byte, keyLen)
	_, err := io.ReadFull(r, key)
	if err != nil {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "unable to generate aes key: %v", err)
	}

	// Done.
	return key, nil
}

// NewFromKey creates a new AES-ECB cipher object from the given 16 or 32 byte key.
func NewFromKey(key []byte) (models.Cipher, error) {
	if len(key) != Key128Len && len(key) != Key256Len {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "aes key must be 16 or 32 bytes long, got %d", len(key))
	}

	c := &aesEcbCipher{
		key: make([]byte, len(key)),
	}
	copy(c.key, key)

	// Done.
	return c, nil
}

// KeyLen returns the length of the key used by the cipher.
func (c *aesEcbCipher) KeyLen() int {
	return len(c.key)
}

// BlockSize returns the AES block size.
func (c *aesEcbCipher) BlockSize() int {
	return BlockSize
}

// Encrypt pads the plaintext with PKCS7 and encrypts every block independently.
func (c *aesEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := padding.PKCS7Pad(plaintext, BlockSize)
	defer util.SafeZeroMem(padded)

	return c.EncryptBlocks(padded)
}

// Decrypt decrypts every block independently and strips the PKCS7 padding. On failure
// no plaintext is returned.
func (c *aesEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	padded, err := c.DecryptBlocks(ciphertext)
	if err != nil {
		return nil, err
	}
	defer util.SafeZeroMem(padded)

	return padding.PKCS7Unpad(padded, BlockSize)
}

// EncryptBlocks encrypts whole blocks without padding.
func (c *aesEcbCipher) EncryptBlocks(src []byte) ([]byte, error) {
	err := checkBlocks(src)
	if err != nil {
		return nil, err
	}

	ks := expandKey(c.key)
	defer ks.zeroize()

	dst := make([]byte, len(src))
	for ofs := 0; ofs < len(src); ofs += BlockSize {
		ks.encryptBlock(dst[ofs:ofs+BlockSize], src[ofs:ofs+BlockSize])
	}

	// Done.
	return dst, nil
}

// DecryptBlocks decrypts whole blocks without removing padding.
func (c *aesEcbCipher) DecryptBlocks(src []byte) ([]byte, error) {
	err := checkBlocks(src)
	if err != nil {
		return nil, err
	}

	ks := expandKey(c.key)
	defer ks.zeroize()

	dst := make([]byte, len(src))
	for ofs := 0; ofs < len(src); ofs += BlockSize {
		ks.decryptBlock(dst[ofs:ofs+BlockSize], src[ofs:ofs+BlockSize])
	}

	// Done.
	return dst, nil
}

// -----------------------------------------------------------------------------

func checkBlocks(src []byte) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return util.NewExtendedErrorf(models.ErrInvalidLength, "aes input length %d is not a positive multiple of %d", len(src), BlockSize)
	}
	return nil
}
