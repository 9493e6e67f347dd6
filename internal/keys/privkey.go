package keys

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// PrivateKeyPrefix is the human-readable part of scheme-tagged private keys
const PrivateKeyPrefix = "suiprivkey"

// KeyFormat is an exportable private key encoding
type KeyFormat string

const (
	// FormatBech32 is the scheme-tagged "suiprivkey1..." encoding
	FormatBech32 KeyFormat = "bech32"

	// FormatBase64 is the legacy raw base64 secret (default scheme only)
	FormatBase64 KeyFormat = "base64"
)

// IsSchemeTagged reports whether s carries the scheme-tagged prefix
func IsSchemeTagged(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), PrivateKeyPrefix)
}

// FormatOf reports the encoding a stored private key string is in
func FormatOf(s string) KeyFormat {
	if IsSchemeTagged(s) {
		return FormatBech32
	}
	return FormatBase64
}

// EncodePrivateKey encodes flag || secret as bech32 with the suiprivkey prefix
func EncodePrivateKey(scheme Scheme, secret []byte) (string, error) {
	if len(secret) != 32 {
		return "", fmt.Errorf("secret must be 32 bytes, got %d", len(secret))
	}

	payload := make([]byte, 0, 33)
	payload = append(payload, scheme.Flag())
	payload = append(payload, secret...)

	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert bits: %w", err)
	}
	return bech32.Encode(PrivateKeyPrefix, words)
}

// DecodePrivateKey decodes a suiprivkey string into its scheme and 32-byte secret
func DecodePrivateKey(encoded string) (Scheme, []byte, error) {
	hrp, words, err := bech32.Decode(strings.TrimSpace(encoded))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidCredentialFormat, err)
	}
	if hrp != PrivateKeyPrefix {
		return 0, nil, fmt.Errorf("%w: unexpected prefix %q", ErrInvalidCredentialFormat, hrp)
	}

	payload, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidCredentialFormat, err)
	}
	if len(payload) != 33 {
		return 0, nil, fmt.Errorf("%w: expected 33 byte payload, got %d", ErrInvalidCredentialFormat, len(payload))
	}

	scheme, err := SchemeFromFlag(payload[0])
	if err != nil {
		return 0, nil, err
	}
	return scheme, payload[1:], nil
}

// decodeLegacyPrivateKey parses a raw base64 secret under the default scheme
func decodeLegacyPrivateKey(encoded string) (Keypair, error) {
	secret, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: not base64: %v", ErrInvalidCredentialFormat, err)
	}
	defer clear(secret)

	return FromSecret(DefaultScheme, secret)
}

// ExportPrivateKey re-encodes a keypair's secret in the requested format.
// Legacy base64 only exists for the default scheme; ok is false otherwise.
func ExportPrivateKey(kp Keypair, format KeyFormat) (encoded string, ok bool) {
	secret := kp.Secret()
	defer clear(secret)

	switch format {
	case FormatBech32:
		s, err := EncodePrivateKey(kp.Scheme(), secret)
		if err != nil {
			return "", false
		}
		return s, true
	case FormatBase64:
		if kp.Scheme() != DefaultScheme {
			return "", false
		}
		return base64.StdEncoding.EncodeToString(secret), true
	default:
		return "", false
	}
}
