package cryptocore

import (
	"io"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mxmauro/cryptocore/codec"
	"github.com/mxmauro/cryptocore/util"
	"go.uber.org/zap"
)

// -----------------------------------------------------------------------------

// Options specifies the engine options.
type Options struct {
	// An optional logger. If nil, logging is disabled.
	Logger *zap.Logger

	// An optional random number generator reader used by GenerateKey. If nil, crypto/rand.Reader is used.
	RandomGeneratorReader io.Reader

	// KeyAutoAdjust sets the key handling mode of EncryptString and DecryptString. When enabled,
	// textual keys are truncated or zero padded to the algorithm key length.
	KeyAutoAdjust bool

	// Encoding of the ciphertext produced by EncryptString and consumed by DecryptString.
	// Must be hex or base64. Defaults to base64.
	OutputEncoding codec.Encoding
}

type envOptions struct {
	KeyAutoAdjust  bool   `env:"CRYPTOCORE_KEY_AUTO_ADJUST" env-default:"false"`
	OutputEncoding string `env:"CRYPTOCORE_OUTPUT_ENCODING" env-default:"base64"`
}

// -----------------------------------------------------------------------------

// LoadOptionsFromEnv reads the engine options from the environment. Only the key handling mode and
// the output encoding can be set this way.
func LoadOptionsFromEnv() (Options, error) {
	var env envOptions

	err := cleanenv.ReadEnv(&env)
	if err != nil {
		return Options{}, util.NewExtendedError(ErrInvalidFormat, "unable to read options from environment: "+err.Error())
	}

	enc, err := parseCiphertextEncoding(env.OutputEncoding)
	if err != nil {
		return Options{}, err
	}

	// Done
	return Options{
		KeyAutoAdjust:  env.KeyAutoAdjust,
		OutputEncoding: enc,
	}, nil
}

// parseCiphertextEncoding accepts only encodings able to carry arbitrary bytes.
func parseCiphertextEncoding(name string) (codec.Encoding, error) {
	enc, err := codec.ParseEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == codec.UTF8 {
		return "", util.NewExtendedErrorf(ErrInvalidFormat, "encoding '%s' cannot represent ciphertext", name)
	}
	return enc, nil
}
