package codec_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestHexRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for size := 0; size < 64; size++ {
		buf := make([]byte, size)
		_, _ = rnd.Read(buf)

		s := codec.BytesToHex(buf)
		require.Len(t, s, size*2)

		out, err := codec.HexToBytes(s)
		require.NoError(t, err)
		require.True(t, bytes.Equal(buf, out), "round trip mismatch for %d bytes", size)
	}
}

func TestBytesToHexIsLowercase(t *testing.T) {
	assert.Equal(t, "00abcdef7f", codec.BytesToHex([]byte{0x00, 0xab, 0xcd, 0xef, 0x7f}))
}

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{name: "empty", input: "", want: []byte{}},
		{name: "only whitespace", input: " \t\n", want: []byte{}},
		{name: "mixed case", input: "DeadBEEF", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "embedded whitespace", input: " de ad\nbe\tef ", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "odd length", input: "abc", wantErr: models.ErrInvalidFormat},
		{name: "non hex character", input: "zz", wantErr: models.ErrInvalidFormat},
		{name: "prefix is not accepted", input: "0x00", wantErr: models.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.HexToBytes(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBase64ToBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty", input: "", want: ""},
		{name: "padded", input: "aGVsbG8=", want: "hello"},
		{name: "missing single pad", input: "aGVsbG8", want: "hello"},
		{name: "missing double pad", input: "aGk", want: "hi"},
		{name: "missing double pad two chars", input: "YQ", want: "a"},
		{name: "whitespace", input: " aGVs\nbG8= ", want: "hello"},
		{name: "remainder one", input: "aGVsb", wantErr: models.ErrInvalidFormat},
		{name: "url alphabet", input: "-_-_", wantErr: models.ErrInvalidFormat},
		{name: "invalid character", input: "aGV*bG8=", wantErr: models.ErrInvalidFormat},
		{name: "misplaced padding", input: "a=Vs", wantErr: models.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Base64ToBytes(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for size := 0; size < 40; size++ {
		buf := make([]byte, size)
		_, _ = rnd.Read(buf)

		out, err := codec.Base64ToBytes(codec.BytesToBase64(buf))
		require.NoError(t, err)
		require.True(t, bytes.Equal(buf, out))
	}
}

func TestBytesToText(t *testing.T) {
	s, err := codec.BytesToText(codec.TextToBytes("héllo 世界"))
	require.NoError(t, err)
	assert.Equal(t, "héllo 世界", s)

	for _, bad := range [][]byte{{0xff}, {0xc3}, {0xe4, 0xb8}, {0xed, 0xa0, 0x80}} {
		_, err = codec.BytesToText(bad)
		require.True(t, errors.Is(err, models.ErrDecode), "% x accepted", bad)
	}
}

func TestEncoding(t *testing.T) {
	enc, err := codec.ParseEncoding("Base64")
	require.NoError(t, err)
	assert.Equal(t, codec.Base64, enc)

	enc, err = codec.ParseEncoding("UTF-8")
	require.NoError(t, err)
	assert.Equal(t, codec.UTF8, enc)

	_, err = codec.ParseEncoding("base32")
	require.ErrorIs(t, err, models.ErrInvalidFormat)

	for _, enc = range []codec.Encoding{codec.UTF8, codec.Hex, codec.Base64} {
		s, err := codec.Encode([]byte("round trip"), enc)
		require.NoError(t, err)

		out, err := codec.Decode(s, enc)
		require.NoError(t, err)
		assert.Equal(t, "round trip", string(out))
	}

	_, err = codec.Encode([]byte{0xff}, codec.UTF8)
	require.ErrorIs(t, err, models.ErrDecode)

	_, err = codec.Decode("x", codec.Encoding("rot13"))
	require.ErrorIs(t, err, models.ErrInvalidFormat)
}
