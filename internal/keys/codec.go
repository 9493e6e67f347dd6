package keys

import (
	"fmt"
	"strings"
)

// Credentials holds the secrets a wallet was imported with.
// Mnemonic takes precedence over PrivateKey when both are set.
type Credentials struct {
	Mnemonic   string
	PrivateKey string
}

// IsEmpty reports whether no credential is set
func (c *Credentials) IsEmpty() bool {
	return c == nil || (strings.TrimSpace(c.Mnemonic) == "" && strings.TrimSpace(c.PrivateKey) == "")
}

// Decode turns credentials into a keypair.
// Every failure wraps ErrInvalidCredentialFormat.
func Decode(creds *Credentials) (Keypair, error) {
	if creds.IsEmpty() {
		return nil, fmt.Errorf("%w: no credentials", ErrInvalidCredentialFormat)
	}

	if strings.TrimSpace(creds.Mnemonic) != "" {
		return KeypairFromMnemonic(creds.Mnemonic)
	}

	if IsSchemeTagged(creds.PrivateKey) {
		scheme, secret, err := DecodePrivateKey(creds.PrivateKey)
		if err != nil {
			return nil, err
		}
		defer clear(secret)
		return FromSecret(scheme, secret)
	}

	return decodeLegacyPrivateKey(creds.PrivateKey)
}
