package cryptocore

import (
	"crypto/rand"
	"io"

	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/crypto/ciphers"
	"github.com/mxmauro/cryptocore/crypto/hashes"
	"github.com/mxmauro/cryptocore/crypto/keys"
	"github.com/mxmauro/cryptocore/util"
	"go.uber.org/zap"
)

// -----------------------------------------------------------------------------

// Engine exposes the cipher, hash and encoding primitives to callers. An Engine holds no
// per-operation state and can be used concurrently from any number of goroutines.
type Engine struct {
	logger         *zap.Logger
	rg             io.Reader
	keyAutoAdjust  bool
	outputEncoding codec.Encoding
}

// -----------------------------------------------------------------------------

// New creates a new engine with the given options.
func New(opts Options) (*Engine, error) {
	e := Engine{
		logger:         opts.Logger,
		rg:             opts.RandomGeneratorReader,
		keyAutoAdjust:  opts.KeyAutoAdjust,
		outputEncoding: opts.OutputEncoding,
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.rg == nil {
		e.rg = rand.Reader
	}
	if len(e.outputEncoding) == 0 {
		e.outputEncoding = codec.Base64
	} else {
		enc, err := parseCiphertextEncoding(string(e.outputEncoding))
		if err != nil {
			return nil, err
		}
		e.outputEncoding = enc
	}

	// Done
	return &e, nil
}

// EncryptText encrypts the UTF-8 encoding of plaintext with the key derived from keyText.
func (e *Engine) EncryptText(plaintext string, keyText string, algo string, keyAutoAdjust bool) ([]byte, error) {
	key, err := e.deriveKey(keyText, algo, keyAutoAdjust)
	if err != nil {
		return nil, e.fail("encrypt", algo, err)
	}
	defer util.SafeZeroMem(key)

	return e.EncryptBytes(codec.TextToBytes(plaintext), key, algo)
}

// EncryptBytes encrypts plaintext with a raw key. The key length must match the algorithm.
func (e *Engine) EncryptBytes(plaintext []byte, key []byte, algo string) ([]byte, error) {
	cipher, err := ciphers.NewFromKey(algo, key)
	if err != nil {
		return nil, e.fail("encrypt", algo, err)
	}

	ciphertext, err := cipher.Encrypt(plaintext)
	if err != nil {
		return nil, e.fail("encrypt", algo, err)
	}

	e.logger.Debug("encrypted", zap.String("algorithm", algo), zap.Int("input_length", len(plaintext)))

	// Done
	return ciphertext, nil
}

// DecryptBytes decrypts ciphertext with the key derived from keyText and returns the raw plaintext.
func (e *Engine) DecryptBytes(ciphertext []byte, keyText string, algo string, keyAutoAdjust bool) ([]byte, error) {
	key, err := e.deriveKey(keyText, algo, keyAutoAdjust)
	if err != nil {
		return nil, e.fail("decrypt", algo, err)
	}
	defer util.SafeZeroMem(key)

	return e.DecryptWithKey(ciphertext, key, algo)
}

// DecryptWithKey decrypts ciphertext with a raw key. The key length must match the algorithm.
func (e *Engine) DecryptWithKey(ciphertext []byte, key []byte, algo string) ([]byte, error) {
	cipher, err := ciphers.NewFromKey(algo, key)
	if err != nil {
		return nil, e.fail("decrypt", algo, err)
	}

	plaintext, err := cipher.Decrypt(ciphertext)
	if err != nil {
		return nil, e.fail("decrypt", algo, err)
	}

	e.logger.Debug("decrypted", zap.String("algorithm", algo), zap.Int("input_length", len(ciphertext)))

	// Done
	return plaintext, nil
}

// DecryptText works like DecryptBytes but also requires the plaintext to be valid UTF-8.
func (e *Engine) DecryptText(ciphertext []byte, keyText string, algo string, keyAutoAdjust bool) (string, error) {
	plaintext, err := e.DecryptBytes(ciphertext, keyText, algo, keyAutoAdjust)
	if err != nil {
		return "", err
	}
	defer util.SafeZeroMem(plaintext)

	text, err := codec.BytesToText(plaintext)
	if err != nil {
		return "", e.fail("decrypt", algo, err)
	}
	return text, nil
}

// EncryptToString encrypts plaintext and returns the ciphertext as text in the given encoding.
func (e *Engine) EncryptToString(plaintext string, keyText string, algo string, keyAutoAdjust bool, enc codec.Encoding) (string, error) {
	ciphertext, err := e.EncryptText(plaintext, keyText, algo, keyAutoAdjust)
	if err != nil {
		return "", err
	}

	s, err := codec.Encode(ciphertext, enc)
	if err != nil {
		return "", e.fail("encode", algo, err)
	}
	return s, nil
}

// DecryptFromString decodes text in the given encoding and decrypts it into a UTF-8 string.
func (e *Engine) DecryptFromString(text string, keyText string, algo string, keyAutoAdjust bool, enc codec.Encoding) (string, error) {
	ciphertext, err := codec.Decode(text, enc)
	if err != nil {
		return "", e.fail("decode", algo, err)
	}

	return e.DecryptText(ciphertext, keyText, algo, keyAutoAdjust)
}

// EncryptString is EncryptToString using the key mode and output encoding set in the engine options.
func (e *Engine) EncryptString(plaintext string, keyText string, algo string) (string, error) {
	return e.EncryptToString(plaintext, keyText, algo, e.keyAutoAdjust, e.outputEncoding)
}

// DecryptString is DecryptFromString using the key mode and output encoding set in the engine options.
func (e *Engine) DecryptString(text string, keyText string, algo string) (string, error) {
	return e.DecryptFromString(text, keyText, algo, e.keyAutoAdjust, e.outputEncoding)
}

// HashHex returns the lowercase hex digest of the UTF-8 encoding of text.
func (e *Engine) HashHex(text string, algo string) (string, error) {
	digest, err := hashes.HexDigest(algo, text)
	if err != nil {
		return "", e.fail("hash", algo, err)
	}

	e.logger.Debug("hashed", zap.String("algorithm", algo), zap.Int("input_length", len(text)))

	// Done
	return digest, nil
}

// GenerateKey creates a random key suitable for the given cipher algorithm.
func (e *Engine) GenerateKey(algo string) ([]byte, error) {
	key, err := ciphers.GenerateKey(algo, e.rg)
	if err != nil {
		return nil, e.fail("generate key", algo, err)
	}
	return key, nil
}

func (e *Engine) deriveKey(keyText string, algo string, keyAutoAdjust bool) ([]byte, error) {
	keyLen, err := ciphers.KeyLen(algo)
	if err != nil {
		return nil, err
	}
	return keys.Derive(keyText, keyLen, keyAutoAdjust)
}

func (e *Engine) fail(op string, algo string, err error) error {
	e.logger.Warn(
		op+" failed",
		zap.String("algorithm", algo),
		zap.String("kind", ErrorKind(err)),
		zap.Error(err),
	)
	return err
}
