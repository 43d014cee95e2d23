package keys_test

import (
	"testing"

	"github.com/mxmauro/cryptocore/crypto/keys"
	"github.com/mxmauro/cryptocore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		keyText    string
		targetLen  int
		autoAdjust bool
		want       []byte
		wantErr    error
	}{
		{
			name:      "strict exact length",
			keyText:   "12345678",
			targetLen: 8,
			want:      []byte("12345678"),
		},
		{
			name:      "strict short key",
			keyText:   "123456789012345",
			targetLen: 16,
			wantErr:   models.ErrKeyLength,
		},
		{
			name:      "strict multi-byte characters count as bytes",
			keyText:   "ключ",
			targetLen: 4,
			wantErr:   models.ErrKeyLength,
		},
		{
			name:       "auto zero-pads a 15 byte key",
			keyText:    "123456789012345",
			targetLen:  16,
			autoAdjust: true,
			want:       append([]byte("123456789012345"), 0),
		},
		{
			name:       "auto truncates long keys",
			keyText:    "0123456789abcdef-extra",
			targetLen:  16,
			autoAdjust: true,
			want:       []byte("0123456789abcdef"),
		},
		{
			name:       "auto empty key",
			keyText:    "",
			targetLen:  8,
			autoAdjust: true,
			want:       make([]byte, 8),
		},
		{
			name:       "invalid target length",
			keyText:    "abc",
			targetLen:  0,
			autoAdjust: true,
			wantErr:    models.ErrKeyLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := keys.Derive(tt.keyText, tt.targetLen, tt.autoAdjust)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestAdjustReturnsCopy(t *testing.T) {
	src := []byte("0123456789abcdef")

	key, err := keys.Adjust(src, 16, false)
	require.NoError(t, err)
	key[0] = 'X'
	assert.Equal(t, byte('0'), src[0])
}
