package ciphers

import (
	"io"
	"sort"
	"strings"

	"github.com/mxmauro/cryptocore/crypto/ciphers/aes_ecb"
	"github.com/mxmauro/cryptocore/crypto/ciphers/des_ecb"
	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// GenerateKeyFunc creates a random key for an engine.
type GenerateKeyFunc func(io.Reader) ([]byte, error)

// NewFromKeyFunc creates an engine cipher from a key.
type NewFromKeyFunc func([]byte) (models.Cipher, error)

type engineFunc struct {
	KeyLen      int
	BlockSize   int
	GenerateKey GenerateKeyFunc
	NewFromKey  NewFromKeyFunc
}

// -----------------------------------------------------------------------------

// The list is read-only. Engines cannot be registered at runtime.
var enginesList = map[string]engineFunc{
	"aes128": {
		KeyLen:    aes_ecb.Key128Len,
		BlockSize: aes_ecb.BlockSize,
		GenerateKey: func(r io.Reader) ([]byte, error) {
			return aes_ecb.GenerateKey(r, aes_ecb.Key128Len)
		},
		NewFromKey: aes_ecb.NewFromKey,
	},
	"aes256": {
		KeyLen:    aes_ecb.Key256Len,
		BlockSize: aes_ecb.BlockSize,
		GenerateKey: func(r io.Reader) ([]byte, error) {
			return aes_ecb.GenerateKey(r, aes_ecb.Key256Len)
		},
		NewFromKey: aes_ecb.NewFromKey,
	},
	"des": {
		KeyLen:      des_ecb.KeyLen,
		BlockSize:   des_ecb.BlockSize,
		GenerateKey: des_ecb.GenerateKey,
		NewFromKey:  des_ecb.NewFromKey,
	},
}

// -----------------------------------------------------------------------------

// SupportedEngines returns the sorted list of supported encryption engines.
func SupportedEngines() []string {
	list := make([]string, 0, len(enginesList))
	for name := range enginesList {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// IsEngineSupported returns true if the given encryption engine is supported.
func IsEngineSupported(engine string) bool {
	_, ok := enginesList[normalize(engine)]
	return ok
}

// CanonicalName returns the registry name of the given encryption engine, so " AES128" becomes "aes128".
func CanonicalName(engine string) (string, error) {
	_, err := getEngine(engine)
	if err != nil {
		return "", err
	}
	return normalize(engine), nil
}

// KeyLen returns the exact key length required by the given encryption engine.
func KeyLen(engine string) (int, error) {
	e, err := getEngine(engine)
	if err != nil {
		return 0, err
	}
	return e.KeyLen, nil
}

// BlockSize returns the block size of the given encryption engine.
func BlockSize(engine string) (int, error) {
	e, err := getEngine(engine)
	if err != nil {
		return 0, err
	}
	return e.BlockSize, nil
}

// GenerateKey generates a new key for the given encryption engine.
func GenerateKey(engine string, r io.Reader) ([]byte, error) {
	e, err := getEngine(engine)
	if err != nil {
		return nil, err
	}
	return e.GenerateKey(r)
}

// NewFromKey creates a new cipher object from the given key and encryption engine. The
// key length must match the engine exactly, so a 32-byte key is rejected by "aes128".
func NewFromKey(engine string, key []byte) (models.Cipher, error) {
	e, err := getEngine(engine)
	if err != nil {
		return nil, err
	}
	if len(key) != e.KeyLen {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "%s key must be %d bytes long, got %d", normalize(engine), e.KeyLen, len(key))
	}
	return e.NewFromKey(key)
}

// -----------------------------------------------------------------------------

func getEngine(engine string) (engineFunc, error) {
	e, ok := enginesList[normalize(engine)]
	if !ok {
		return engineFunc{}, util.NewExtendedErrorf(models.ErrUnsupportedAlgorithm, "engine '%s' is not supported", engine)
	}
	return e, nil
}

func normalize(engine string) string {
	return strings.ToLower(strings.TrimSpace(engine))
}
