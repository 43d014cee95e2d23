package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// TextToBytes returns the UTF-8 encoding of text.
func TextToBytes(text string) []byte {
	return []byte(text)
}

// BytesToText decodes b as UTF-8. Ill-formed sequences are rejected instead of being
// replaced with U+FFFD.
func BytesToText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", util.NewExtendedError(models.ErrDecode, "data is not valid utf-8")
	}
	return string(b), nil
}

// BytesToHex returns the lowercase hexadecimal representation of b.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hexadecimal string. Whitespace is ignored and both letter cases
// are accepted.
func HexToBytes(s string) ([]byte, error) {
	raw := stripWhitespace(s)
	if len(raw) == 0 {
		return []byte{}, nil
	}
	if len(raw)%2 != 0 {
		return nil, util.NewExtendedError(models.ErrInvalidFormat, "hex length must be even")
	}
	for idx := 0; idx < len(raw); idx++ {
		if !isHexDigit(raw[idx]) {
			return nil, util.NewExtendedErrorf(models.ErrInvalidFormat, "invalid hex character at offset %d", idx)
		}
	}

	out, err := hex.DecodeString(raw)
	if err != nil {
		return nil, util.NewExtendedError(models.ErrInvalidFormat, err.Error())
	}

	// Done
	return out, nil
}

// BytesToBase64 returns the standard, padded, base64 representation of b.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes a standard alphabet base64 string. Whitespace is ignored and
// missing trailing padding is added back.
func Base64ToBytes(s string) ([]byte, error) {
	raw := stripWhitespace(s)
	if len(raw) == 0 {
		return []byte{}, nil
	}

	switch len(raw) % 4 {
	case 1:
		return nil, util.NewExtendedError(models.ErrInvalidFormat, "invalid base64 length")
	case 2:
		raw += "=="
	case 3:
		raw += "="
	}
	for idx := 0; idx < len(raw); idx++ {
		if !isBase64Char(raw[idx]) {
			return nil, util.NewExtendedErrorf(models.ErrInvalidFormat, "invalid base64 character at offset %d", idx)
		}
	}

	out, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// Misplaced padding characters end up here.
		return nil, util.NewExtendedError(models.ErrInvalidFormat, err.Error())
	}

	// Done
	return out, nil
}

// -----------------------------------------------------------------------------

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBase64Char(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '+' || c == '/' || c == '='
}
