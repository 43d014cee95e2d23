package cryptocore_test

import (
	"testing"

	"github.com/mxmauro/cryptocore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestSplitCombineKey(t *testing.T) {
	t.Log("Generating a new key")
	key, err := cryptocore.GenerateKey("aes256")
	require.NoError(t, err)

	t.Log("Splitting key into 5 shares with a threshold of 3")
	shares, err := cryptocore.SplitKey(key, 5, 3)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	t.Log("Combining different subsets of shares")
	for _, idx := range [][]int{{0, 1, 2}, {2, 3, 4}, {4, 0, 2}, {0, 1, 2, 3, 4}} {
		parts := make([][]byte, 0, len(idx))
		for _, i := range idx {
			parts = append(parts, shares[i])
		}
		combined, err := cryptocore.CombineKey(parts)
		require.NoError(t, err)
		assert.Equal(t, key, combined)
	}

	t.Log("Combining less shares than the threshold")
	combined, err := cryptocore.CombineKey(shares[:2])
	require.NoError(t, err)
	assert.NotEqual(t, key, combined)

	t.Log("Rebuilt key must decrypt")
	ciphertext, err := cryptocore.EncryptBytes([]byte("Hello world!"), key, "aes256")
	require.NoError(t, err)
	combined, err = cryptocore.CombineKey(shares[1:4])
	require.NoError(t, err)
	plaintext, err := cryptocore.DecryptWithKey(ciphertext, combined, "aes256")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello world!"), plaintext)
}

func TestSplitKeySingleShare(t *testing.T) {
	key := []byte("8bytekey")

	shares, err := cryptocore.SplitKey(key, 1, 1)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, key, shares[0])

	shares[0][0] = 'X'
	assert.Equal(t, []byte("8bytekey"), key)

	combined, err := cryptocore.CombineKey(shares)
	require.NoError(t, err)
	assert.Equal(t, shares[0], combined)
}

func TestSplitKeyErrors(t *testing.T) {
	key := []byte("Sixteen byte key")

	tests := []struct {
		name      string
		key       []byte
		shares    int
		threshold int
	}{
		{name: "empty key", key: nil, shares: 3, threshold: 2},
		{name: "no shares", key: key, shares: 0, threshold: 0},
		{name: "too many shares", key: key, shares: 256, threshold: 2},
		{name: "single share with threshold", key: key, shares: 1, threshold: 2},
		{name: "threshold of one", key: key, shares: 3, threshold: 1},
		{name: "threshold above shares", key: key, shares: 3, threshold: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := cryptocore.SplitKey(tt.key, tt.shares, tt.threshold)
			require.ErrorIs(t, err, cryptocore.ErrInvalidFormat)
			assert.Nil(t, shares)
		})
	}

	_, err := cryptocore.CombineKey(nil)
	require.ErrorIs(t, err, cryptocore.ErrInvalidFormat)
	_, err = cryptocore.CombineKey([][]byte{{}})
	require.ErrorIs(t, err, cryptocore.ErrInvalidFormat)
}
