package cryptocore

import (
	"github.com/mxmauro/cryptocore/models"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidFormat is returned when hex, base64 or envelope data is malformed or when key share
	// parameters are out of range.
	ErrInvalidFormat = models.ErrInvalidFormat

	// ErrInvalidLength is returned when a ciphertext is empty or not a whole number of blocks.
	ErrInvalidLength = models.ErrInvalidLength

	// ErrInvalidPadding is returned when the padding of a decrypted message is wrong. It usually means
	// the key is wrong or the ciphertext was tampered.
	ErrInvalidPadding = models.ErrInvalidPadding

	// ErrKeyLength is returned when a key does not have the length the algorithm requires.
	ErrKeyLength = models.ErrKeyLength

	// ErrDecode is returned when decrypted data is not valid UTF-8 text.
	ErrDecode = models.ErrDecode

	// ErrUnsupportedAlgorithm is returned when a cipher or hash name is unknown.
	ErrUnsupportedAlgorithm = models.ErrUnsupportedAlgorithm
)

// -----------------------------------------------------------------------------

// ErrorKind returns the kind name of the given error, for example "InvalidPadding", or an empty
// string if the error does not belong to any known kind.
func ErrorKind(err error) string {
	return models.ErrorKind(err)
}
