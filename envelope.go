package cryptocore

import (
	bstd "github.com/deneonet/benc/std"
	"github.com/mxmauro/cryptocore/crypto/ciphers"
	"github.com/mxmauro/cryptocore/util"
)

// -----------------------------------------------------------------------------

const (
	envelopeVersion = 1
)

// -----------------------------------------------------------------------------

// Seal packs a ciphertext together with the name of the algorithm that produced it into a
// versioned binary envelope. The algorithm is stored under its canonical name.
func Seal(algo string, ciphertext []byte) ([]byte, error) {
	algo, err := ciphers.CanonicalName(algo)
	if err != nil {
		return nil, err
	}

	bufSize := bstd.SizeUint16() + bstd.SizeString(algo) + bstd.SizeBytes(ciphertext)
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, envelopeVersion)
	ofs = bstd.MarshalString(ofs, buf, algo)
	_ = bstd.MarshalBytes(ofs, buf, ciphertext)

	// Done
	return buf, nil
}

// Open unpacks an envelope created by Seal. The returned ciphertext is a copy.
func Open(buf []byte) (algo string, ciphertext []byte, err error) {
	if len(buf) <= bstd.SizeUint16() {
		return "", nil, util.NewExtendedError(ErrInvalidFormat, "envelope too short")
	}

	ofs, version, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return "", nil, util.NewExtendedError(ErrInvalidFormat, "malformed envelope version")
	}
	switch version {
	case 1:
		ofs, algo, err = bstd.UnmarshalString(ofs, buf)
		if err != nil {
			return "", nil, util.NewExtendedError(ErrInvalidFormat, "malformed envelope algorithm")
		}
		ofs, ciphertext, err = bstd.UnmarshalBytesCopied(ofs, buf)
		if err != nil {
			return "", nil, util.NewExtendedError(ErrInvalidFormat, "malformed envelope ciphertext")
		}

	default:
		return "", nil, util.NewExtendedErrorf(ErrInvalidFormat, "unsupported envelope version %d", version)
	}

	// Check if we reached the end of the buffer.
	if ofs != len(buf) {
		return "", nil, util.NewExtendedError(ErrInvalidFormat, "trailing data after envelope")
	}

	algo, err = ciphers.CanonicalName(algo)
	if err != nil {
		return "", nil, err
	}

	// Done
	return algo, ciphertext, nil
}
