package keys

import (
	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/models"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

// Derive turns user supplied key text into targetLen bytes of key material.
//
// The text is UTF-8 encoded. In strict mode the encoded length must match targetLen
// exactly. When autoAdjust is set, longer keys are truncated on the right and shorter
// keys are zero-padded on the right.
func Derive(keyText string, targetLen int, autoAdjust bool) ([]byte, error) {
	raw := codec.TextToBytes(keyText)
	defer util.SafeZeroMem(raw)

	return Adjust(raw, targetLen, autoAdjust)
}

// Adjust applies the same length rules as Derive to raw key bytes. The result is
// always a fresh copy.
func Adjust(key []byte, targetLen int, autoAdjust bool) ([]byte, error) {
	if targetLen <= 0 {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "invalid target key length %d", targetLen)
	}
	if !autoAdjust && len(key) != targetLen {
		return nil, util.NewExtendedErrorf(models.ErrKeyLength, "key must be %d bytes long, got %d", targetLen, len(key))
	}

	out := make([]byte, targetLen)
	copy(out, key)

	// Done
	return out, nil
}
