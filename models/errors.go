package models

import (
	"errors"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidFormat is returned when hex or base64 text is malformed.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidLength is returned when a ciphertext is empty or not aligned to the cipher block size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidPadding is returned when PKCS7 padding verification fails.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrKeyLength is returned when the key byte length is not supported by the selected algorithm.
	ErrKeyLength = errors.New("invalid key length")

	// ErrDecode is returned when bytes expected to be text are not valid UTF-8.
	ErrDecode = errors.New("invalid utf-8 data")

	// ErrUnsupportedAlgorithm is returned when a cipher or hash selector is unknown.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

var errorKindNames = []struct {
	err  error
	name string
}{
	{ErrInvalidFormat, "InvalidFormat"},
	{ErrInvalidLength, "InvalidLength"},
	{ErrInvalidPadding, "InvalidPadding"},
	{ErrKeyLength, "KeyLengthError"},
	{ErrDecode, "DecodeError"},
	{ErrUnsupportedAlgorithm, "UnsupportedAlgorithm"},
}

// -----------------------------------------------------------------------------

// ErrorKind returns the name of the error kind wrapped by err or an empty string if err
// does not belong to any known kind.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKindNames {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
