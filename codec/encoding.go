package codec

import (
	"strings"

	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// Encoding selects how a byte sequence is represented as text.
type Encoding string

const (
	// UTF8 treats bytes as text. Only valid for plaintext.
	UTF8 Encoding = "utf8"

	// Hex is lowercase hexadecimal.
	Hex Encoding = "hex"

	// Base64 is the standard alphabet with padding.
	Base64 Encoding = "base64"
)

// -----------------------------------------------------------------------------

// ParseEncoding converts a user supplied name into an Encoding. Matching is case-insensitive
// and "utf-8" is accepted as an alias of "utf8".
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf8", "utf-8", "text":
		return UTF8, nil
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	}
	return "", util.NewExtendedErrorf(models.ErrInvalidFormat, "unknown encoding '%s'", name)
}

// Encode converts b into text using the given encoding.
func Encode(b []byte, enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		return BytesToText(b)
	case Hex:
		return BytesToHex(b), nil
	case Base64:
		return BytesToBase64(b), nil
	}
	return "", util.NewExtendedErrorf(models.ErrInvalidFormat, "unknown encoding '%s'", string(enc))
}

// Decode converts text in the given encoding back into bytes.
func Decode(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return TextToBytes(s), nil
	case Hex:
		return HexToBytes(s)
	case Base64:
		return Base64ToBytes(s)
	}
	return nil, util.NewExtendedErrorf(models.ErrInvalidFormat, "unknown encoding '%s'", string(enc))
}
