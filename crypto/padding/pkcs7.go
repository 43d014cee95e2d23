package padding

import (
	"fmt"

	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// PKCS7Pad returns a copy of data followed by n bytes of value n, where
// n = blockSize - len(data)%blockSize. When data is already aligned, a full block of
// padding is appended. blockSize must be in the range [1, 255].
func PKCS7Pad(data []byte, blockSize int) []byte {
	checkBlockSize(blockSize)

	padLen := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for idx := len(data); idx < len(out); idx++ {
		out[idx] = byte(padLen)
	}

	// Done
	return out
}

// PKCS7Unpad verifies and strips PKCS7 padding. Every padding byte is checked, not only
// the last one. The returned slice is a copy; data is left untouched.
func PKCS7Unpad(data []byte, blockSize int) ([]byte, error) {
	checkBlockSize(blockSize)

	dataLen := len(data)
	if dataLen == 0 || dataLen%blockSize != 0 {
		return nil, util.NewExtendedErrorf(models.ErrInvalidLength, "data length %d is not a multiple of %d", dataLen, blockSize)
	}

	padLen := int(data[dataLen-1])
	if padLen < 1 || padLen > blockSize {
		return nil, util.NewExtendedError(models.ErrInvalidPadding, "padding length out of range")
	}
	bad := byte(0)
	for idx := dataLen - padLen; idx < dataLen; idx++ {
		bad |= data[idx] ^ byte(padLen)
	}
	if bad != 0 {
		return nil, util.NewExtendedError(models.ErrInvalidPadding, "padding bytes mismatch")
	}

	out := make([]byte, dataLen-padLen)
	copy(out, data)

	// Done
	return out, nil
}

// -----------------------------------------------------------------------------

func checkBlockSize(blockSize int) {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("padding: invalid block size %d", blockSize))
	}
}
