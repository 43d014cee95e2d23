package des_ecb

import (
	"io"

	"github.com/mxmauro/cryptocore/crypto/padding"
	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

const (
	// BlockSize is the DES block size in bytes.
	BlockSize = 8

	// KeyLen is the DES key size in bytes, parity bits included.
	KeyLen = 8
)

// -----------------------------------------------------------------------------

type desEcbCipher struct {
	key []byte
}

// -----------------------------------------------------------------------------

// GenerateKey generates a new random DES key.
func GenerateKey(r io.Reader) ([]byte, error) {
	key := make([]byte, KeyLen)

	_, err := io.ReadFull(r, key)
	if err != nil {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "unable to generate des key: %v", err)
	}

	// Done.
	return key, nil
}

// NewFromKey creates a new DES-ECB cipher object from the given 8-byte key. Parity bits
// are ignored.
func NewFromKey(key []byte) (models.Cipher, error) {
	if len(key) != KeyLen {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "des key must be 8 bytes long, got %d", len(key))
	}

	c := &desEcbCipher{
		key: make([]byte, KeyLen),
	}
	copy(c.key, key)

	// Done.
	return c, nil
}

// KeyLen returns the length of the key used by the cipher.
func (c *desEcbCipher) KeyLen() int {
	return KeyLen
}

// BlockSize returns the DES block size.
func (c *desEcbCipher) BlockSize() int {
	return BlockSize
}

// Encrypt pads the plaintext with PKCS7 and encrypts every block independently.
func (c *desEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := padding.PKCS7Pad(plaintext, BlockSize)
	defer util.SafeZeroMem(padded)

	return c.EncryptBlocks(padded)
}

// Decrypt decrypts every block independently and strips the PKCS7 padding.
func (c *desEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	padded, err := c.DecryptBlocks(ciphertext)
	if err != nil {
		return nil, err
	}
	defer util.SafeZeroMem(padded)

	return padding.PKCS7Unpad(padded, BlockSize)
}

// EncryptBlocks encrypts whole blocks without padding.
func (c *desEcbCipher) EncryptBlocks(src []byte) ([]byte, error) {
	return c.cryptBlocks(src, false)
}

// DecryptBlocks decrypts whole blocks without removing padding.
func (c *desEcbCipher) DecryptBlocks(src []byte) ([]byte, error) {
	return c.cryptBlocks(src, true)
}

func (c *desEcbCipher) cryptBlocks(src []byte, decrypt bool) ([]byte, error) {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return nil, util.NewExtendedErrorf(models.ErrInvalidLength, "des input length %d is not a positive multiple of %d", len(src), BlockSize)
	}

	sk := newSubkeys(c.key)
	defer sk.zeroize()

	dst := make([]byte, len(src))
	for ofs := 0; ofs < len(src); ofs += BlockSize {
		sk.cryptBlock(dst[ofs:ofs+BlockSize], src[ofs:ofs+BlockSize], decrypt)
	}

	// Done.
	return dst, nil
}
