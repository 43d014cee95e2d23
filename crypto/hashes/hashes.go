package hashes

import (
	"sort"
	"strings"

	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/crypto/hashes/md5"
	"github.com/mxmauro/cryptocore/crypto/hashes/sha256"
	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// NewFunc creates a hash implementation.
type NewFunc func() models.Hash

// -----------------------------------------------------------------------------

// The list is never modified after package initialization.
var algorithmsList = map[string]NewFunc{
	"md5":    md5.New,
	"sha256": sha256.New,
}

var aliases = map[string]string{
	"sha-256": "sha256",
}

// -----------------------------------------------------------------------------

// SupportedAlgorithms returns the sorted list of supported hash algorithms.
func SupportedAlgorithms() []string {
	list := make([]string, 0, len(algorithmsList))
	for name := range algorithmsList {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// IsAlgorithmSupported returns true if the given hash algorithm is supported.
func IsAlgorithmSupported(algo string) bool {
	_, ok := algorithmsList[normalize(algo)]
	return ok
}

// New returns the hash function registered under the given name.
func New(algo string) (models.Hash, error) {
	fn, ok := algorithmsList[normalize(algo)]
	if !ok {
		return nil, util.NewExtendedErrorf(models.ErrUnsupportedAlgorithm, "hash algorithm '%s' is not supported", algo)
	}
	return fn(), nil
}

// Digest hashes msg with the given algorithm.
func Digest(algo string, msg []byte) ([]byte, error) {
	h, err := New(algo)
	if err != nil {
		return nil, err
	}
	return h.Sum(msg), nil
}

// HexDigest hashes the UTF-8 encoding of text and returns the lowercase hex digest.
func HexDigest(algo string, text string) (string, error) {
	digest, err := Digest(algo, codec.TextToBytes(text))
	if err != nil {
		return "", err
	}
	return codec.BytesToHex(digest), nil
}

// -----------------------------------------------------------------------------

func normalize(algo string) string {
	algo = strings.ToLower(strings.TrimSpace(algo))
	if alias, ok := aliases[algo]; ok {
		return alias
	}
	return algo
}
