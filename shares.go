package cryptocore

import (
	"github.com/mxmauro/cryptocore/util"
	"github.com/mxmauro/shamir"
)

// -----------------------------------------------------------------------------

const (
	maxShares = 255
)

// -----------------------------------------------------------------------------

// SplitKey splits a key into the given number of shares using Shamir's secret sharing scheme so
// any threshold of them can rebuild it. A single share is a copy of the key.
func SplitKey(key []byte, shares int, threshold int) ([][]byte, error) {
	if len(key) == 0 {
		return nil, util.NewExtendedError(ErrInvalidFormat, "cannot split an empty key")
	}
	if shares < 1 || shares > maxShares {
		return nil, util.NewExtendedErrorf(ErrInvalidFormat, "shares must be between 1 and %d", maxShares)
	}
	if shares == 1 {
		if threshold != 1 {
			return nil, util.NewExtendedError(ErrInvalidFormat, "threshold must be 1 when using a single share")
		}
		split := make([][]byte, 1)
		split[0] = append([]byte(nil), key...)
		return split, nil
	}
	if threshold < 2 || threshold > shares {
		return nil, util.NewExtendedErrorf(ErrInvalidFormat, "threshold must be between 2 and %d", shares)
	}

	split, err := shamir.Split(key, shares, threshold)
	if err != nil {
		return nil, util.NewExtendedError(ErrInvalidFormat, "unable to split key: "+err.Error())
	}

	// Done
	return split, nil
}

// CombineKey rebuilds a key from the shares produced by SplitKey. Combining fewer shares than the
// threshold does not fail but yields a wrong key.
func CombineKey(parts [][]byte) ([]byte, error) {
	switch len(parts) {
	case 0:
		return nil, util.NewExtendedError(ErrInvalidFormat, "no key shares were provided")
	case 1:
		if len(parts[0]) == 0 {
			return nil, util.NewExtendedError(ErrInvalidFormat, "empty key share")
		}
		return append([]byte(nil), parts[0]...), nil
	}

	key, err := shamir.Combine(parts)
	if err != nil {
		return nil, util.NewExtendedError(ErrInvalidFormat, "unable to combine key shares: "+err.Error())
	}

	// Done
	return key, nil
}
